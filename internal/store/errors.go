package store

import (
	"errors"
	"fmt"
)

var (
	// ErrTargetNotFound means the render surface could not be resolved
	ErrTargetNotFound = errors.New("render target not found")

	// ErrIndexOutOfRange means a removal index does not address an item
	ErrIndexOutOfRange = errors.New("index out of range")
)

func indexOutOfRange(index, length int) error {
	return fmt.Errorf("remove item %d of %d: %w", index, length, ErrIndexOutOfRange)
}
