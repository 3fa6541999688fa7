package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmailExists         = errors.New("email already exists")
	ErrManagerNotFound     = errors.New("reporting manager not found")
	ErrInvalidUpdateFields = errors.New("invalid fields to update")
	ErrCannotDeleteSelf    = errors.New("cannot delete your own employee record")
	ErrHierarchyNotFound   = errors.New("no CEO found to root the hierarchy")
)
