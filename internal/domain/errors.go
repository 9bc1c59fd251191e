package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrDataIntegrity    = errors.New("data integrity error")

	ErrEmptyPool       = errors.New("no players satisfy the rating filter")
	ErrInvalidTeamSize = errors.New("invalid team size")
	ErrInvalidRange    = errors.New("invalid rating range")
	ErrInvalidRating   = errors.New("rating must not be negative")
	ErrInvalidName     = errors.New("name must not be empty")
	ErrEmptySelection  = errors.New("nothing selected")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrRankNotFound    = errors.New("rank not found")

	ErrDuplicateName      = errors.New("name already taken")
	ErrDuplicateThreshold = errors.New("min_rating already used by another rank")
)

// StoreError wraps any failure reaching or querying the backing store.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }

// IntegrityError reports rank tiers sharing a min_rating threshold.
type IntegrityError struct {
	MinRating int
	Tiers     []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("duplicate min_rating %d shared by tiers %s", e.MinRating, strings.Join(e.Tiers, ", "))
}

func (e *IntegrityError) Is(target error) bool { return target == ErrDataIntegrity }
