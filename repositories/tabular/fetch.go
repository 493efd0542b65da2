package tabular

import (
	"context"
	"fmdverse/api/models/failures"
	"fmdverse/api/utils"
	"io"
	"net/http"

	"github.com/cenkalti/backoff"
	"github.com/m-mizutani/goerr/v2"
)

// fetchRemote downloads a source over http(s). Transport errors and
// 5xx/429 statuses are retried, other statuses fail immediately.
func fetchRemote(ctx context.Context, source string, opts Options) ([]byte, error) {
	client := utils.CreateHttpClient(opts.Timeout)

	var content []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := goerr.New("unexpected status fetching metadata source",
				goerr.V("status", resp.StatusCode))
			if utils.ShouldRetryStatus(resp.StatusCode) {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		content = body
		return nil
	}

	if err := backoff.Retry(operation, utils.CreateRetryBackoff(ctx, opts.MaxRetries, opts.InitialInterval)); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch metadata source",
			goerr.V("source", source),
			goerr.T(failures.DataUnavailable))
	}

	return content, nil
}
