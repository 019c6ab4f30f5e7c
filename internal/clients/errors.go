package clients

import (
	"errors"
	"fmt"
)

// ErrNotFound means the collaborator answered and the entity does not exist.
var ErrNotFound = errors.New("not found")

// RemoteError means the collaborator could not give a usable answer at all:
// dial failure, timeout, non-success status or a broken body. Kept distinct
// from ErrNotFound so callers can decide between surfacing and retrying.
type RemoteError struct {
	Service string
	Err     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("call %s service: %v", e.Service, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
