package services

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks validation failures so the transport layer
// can tell a caller mistake apart from an unexpected failure.
var ErrInvalidRequest = errors.New("invalid request")

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}
