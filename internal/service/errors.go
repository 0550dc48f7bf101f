package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the kind shared by every missing-resource error
	ErrNotFound = errors.New("not found")

	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrComboNotFound    = fmt.Errorf("combo %w", ErrNotFound)

	// ErrMissingParameter signals that a required identifier was not supplied
	ErrMissingParameter = errors.New("missing required parameter")
)
