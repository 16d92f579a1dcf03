package service

import "errors"

// ErrProductNotFound is returned by Delete for an unknown id. GetByID
// and Update treat absence as an empty result instead; the asymmetry
// mirrors the API contract, where only DELETE maps absence to an error.
var ErrProductNotFound = errors.New("product not found")

// ValidationError carries the per-field constraint failures of a
// ProductRequest. It is raised before any store call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "product request validation failed"
}
