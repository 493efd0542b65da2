package viewsService

import (
	"fmdverse/api/models/failures"

	"github.com/m-mizutani/goerr/v2"
)

// Result carries one derived view, or the reason it could not be produced.
// Views fail independently of each other.
type Result[T any] struct {
	Data    T      `json:"data"`
	Info    string `json:"info,omitempty"`
	Warning string `json:"warning,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func Informational[T any](message string) Result[T] {
	return Result[T]{Info: message}
}

func Warned[T any](message string) Result[T] {
	return Result[T]{Warning: message}
}

func Failed[T any](message string) Result[T] {
	return Result[T]{Error: message}
}

func (r Result[T]) IsOk() bool {
	return len(r.Info) == 0 && len(r.Warning) == 0 && len(r.Error) == 0
}

// FromError classifies an operation's outcome by its failure tag :
// missing columns are informational, render failures are warnings,
// anything else is an error.
func FromError[T any](data T, err error, info string) Result[T] {
	switch {
	case err == nil:
		return Ok(data)
	case failures.IsColumnMissing(err):
		return Informational[T](info)
	case failures.IsRenderUnavailable(err):
		return Warned[T](message(err))
	default:
		return Failed[T](message(err))
	}
}

func message(err error) string {
	if goErr := goerr.Unwrap(err); goErr != nil {
		return goErr.Error()
	}
	return err.Error()
}
