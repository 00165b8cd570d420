package models

import "errors"

// ErrNotFound is returned when a requested resource is not found.
var ErrNotFound = errors.New("resource not found")

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
