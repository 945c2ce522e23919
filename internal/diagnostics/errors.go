package diagnostics

import "errors"

var (
	ErrEmptyReport   = errors.New("report has no entries")
	ErrReportTooWide = errors.New("report entries are too wide")
)
