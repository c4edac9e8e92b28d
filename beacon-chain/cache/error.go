package cache

import "errors"

var (
	// ErrNotCommittee will be returned when a cache object is not a pointer to
	// a Committees struct.
	ErrNotCommittee = errors.New("object is not a committee struct")
	// ErrNotProposerIndices will be returned when a cache object is not a pointer to
	// a ProposerIndices struct.
	ErrNotProposerIndices = errors.New("object is not a proposer indices struct")
	// ErrAlreadyInProgress appears when a second caller marks the same key as in progress.
	ErrAlreadyInProgress = errors.New("already in progress")
)
