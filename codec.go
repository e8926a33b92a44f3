package morris

import (
	"strings"

	"github.com/pkg/errors"
)

const encodedLength = 24

// FromString decodes a 24-character E/W/B board encoding. Character index i
// (0-based) maps to field (ring = 2 - i/8, index = i mod 8): the outer ring
// is encoded first, then the middle ring, then the inner ring.
func FromString(s string) (Board, error) {
	if len(s) != encodedLength {
		return Board{}, errors.Wrapf(ErrBadLength, "got %d chars, want %d", len(s), encodedLength)
	}

	var b Board
	for i, c := range s {
		pos := FieldPos{Ring: uint8(2 - i/8), Index: uint8(i % 8)}
		var code FieldCode
		switch c {
		case 'E':
			code = Empty
		case 'W':
			code = fcWhite
		case 'B':
			code = fcBlack
		default:
			return Board{}, errors.Wrapf(ErrBadChar, "character %q at index %d", c, i)
		}
		b.setUnchecked(pos, code)
	}

	if err := b.checkInvariants(0); err != nil {
		return Board{}, err
	}
	return b, nil
}

// ToString encodes b as the inverse of FromString.
func ToString(b Board) string {
	var sb strings.Builder
	sb.Grow(encodedLength)
	for i := 0; i < encodedLength; i++ {
		pos := FieldPos{Ring: uint8(2 - i/8), Index: uint8(i % 8)}
		switch b.Get(pos) {
		case Empty:
			sb.WriteByte('E')
		case fcWhite:
			sb.WriteByte('W')
		case fcBlack:
			sb.WriteByte('B')
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// String implements fmt.Stringer for Board using the codec's encoding.
func (b Board) String() string {
	return ToString(b)
}
