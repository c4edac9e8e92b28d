package blocks

import "github.com/pkg/errors"

var (
	// ErrHeaderMismatch is returned when a block header disagrees with the
	// state it is applied to, such as a wrong slot, proposer or parent root.
	ErrHeaderMismatch = errors.New("block header does not match beacon state")

	// ErrInvalidMerkleProof is returned when a deposit's inclusion branch does
	// not verify against the deposit root recorded in state.
	ErrInvalidMerkleProof = errors.New("deposit merkle branch did not verify")

	// ErrDuplicateOrConflicting is returned when an operation was already
	// applied to the state, such as a second exit for the same validator or a
	// slashing whose targets are all slashed.
	ErrDuplicateOrConflicting = errors.New("duplicate or conflicting operation")

	// ErrUnknownValidator is returned when an operation references a validator
	// index outside the registry.
	ErrUnknownValidator = errors.New("unknown validator index")

	// ErrInsufficientBalance is returned when a transfer demands more balance
	// than the sender holds, or would leave a dust balance behind.
	ErrInsufficientBalance = errors.New("insufficient validator balance")
)
