package imports

import "errors"

var (
	ErrEmptyFile     = errors.New("import file has no data rows")
	ErrUnreadableCSV = errors.New("import file is not readable CSV")
)
