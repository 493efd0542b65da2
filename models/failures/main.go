package failures

import "github.com/m-mizutani/goerr/v2"

/*
	Error taxonomy shared by the pipeline, the tree
	artifact and the http layer. Errors are tagged
	at their origin and classified with goerr.HasTag.
*/
var (
	// source could not be read or parsed
	DataUnavailable = goerr.NewTag("data_unavailable")

	// an expected column is absent from the schema ; informational
	ColumnMissing = goerr.NewTag("column_missing")

	// a derived view could not be produced for rendering ; warning
	RenderUnavailable = goerr.NewTag("render_unavailable")
)

func IsDataUnavailable(err error) bool {
	return err != nil && goerr.HasTag(err, DataUnavailable)
}

func IsColumnMissing(err error) bool {
	return err != nil && goerr.HasTag(err, ColumnMissing)
}

func IsRenderUnavailable(err error) bool {
	return err != nil && goerr.HasTag(err, RenderUnavailable)
}
