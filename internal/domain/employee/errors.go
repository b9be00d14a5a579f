package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidPIN       = errors.New("pin must be numeric")
	ErrNoFieldsToUpdate = errors.New("no updatable fields in request")
)
