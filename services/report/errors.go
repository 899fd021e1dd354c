package report

import "errors"

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrNotOwned          = errors.New("entity is not owned by this owner")
	ErrNotFound          = errors.New("not found")
)
