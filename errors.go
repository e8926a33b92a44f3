package morris

import "github.com/pkg/errors"

// Sentinel error kinds. Wrap these with github.com/pkg/errors.Wrapf at
// propagation boundaries so callers can both errors.Is against the sentinel
// and read the contextual message.
var (
	// ErrBadLength is returned by the codec when an encoded board is not
	// exactly 24 characters long.
	ErrBadLength = errors.New("morris: bad encoding length")

	// ErrBadChar is returned by the codec when an encoded board contains a
	// character other than 'E', 'W' or 'B'.
	ErrBadChar = errors.New("morris: bad encoding character")

	// ErrInvariantViolation marks a detected 0b11 field code, a stone count
	// over the configured maximum, or a Board.Set that breaks its
	// empty/occupied precondition. Field and ring indices are not
	// range-checked. It indicates a programming error; it is checked at
	// codec and precondition boundaries but not on the hot move-generation
	// path.
	ErrInvariantViolation = errors.New("morris: invariant violation")

	// ErrIllegalMove marks a move that violates a MoveGen precondition.
	// The solver core never returns it to itself; it exists for an
	// external play-loop collaborator that may import morris and
	// construct this error the same way.
	ErrIllegalMove = errors.New("morris: illegal move")
)
