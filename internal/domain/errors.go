package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidArgument marks nil or malformed input (a budget, a transaction, a request field)
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned by repositories when the requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write would duplicate an existing budget or category
	ErrConflict = errors.New("conflict")
)

// ItemKind names the kind of snapshot item an ItemError refers to
type ItemKind string

const (
	ItemKindTransaction ItemKind = "transaction"
	ItemKindBudget      ItemKind = "budget"
)

// ItemError reports the failure of a single snapshot item.
// The item is excluded from the report; every other item is still computed.
type ItemError struct {
	Kind  ItemKind
	Index int       // position in the snapshot slice
	ID    uuid.UUID // uuid.Nil when the item itself is nil
	Err   error
}

func (e *ItemError) Error() string {
	if e.ID == uuid.Nil {
		return fmt.Sprintf("%s #%d: %v", e.Kind, e.Index, e.Err)
	}
	return fmt.Sprintf("%s #%d (%s): %v", e.Kind, e.Index, e.ID, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
