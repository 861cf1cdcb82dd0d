package services

import "errors"

// Sentinel errors let handlers translate service failures into the HTTP
// taxonomy without inspecting store internals.
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
)
