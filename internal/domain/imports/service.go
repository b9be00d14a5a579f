package imports

import (
	"context"
	"io"
)

// ImportService loads device punch exports and roster seed files. Both are
// plain CSV; rows are appended, never replacing existing data.
type ImportService interface {
	// ImportPunches reads a "device_ip,pin,timestamp" CSV (header line
	// required) and appends the rows to the punch log.
	ImportPunches(ctx context.Context, r io.Reader) (ImportResult, error)

	// ImportEmployees reads a "pin,name" CSV (header optional) and inserts
	// roster rows for PINs not yet present.
	ImportEmployees(ctx context.Context, r io.Reader) (ImportResult, error)
}
