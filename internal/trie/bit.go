package trie

import (
	"fmt"
	"strconv"
)

// Bit selects one of the two children of a node.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

func (b Bit) Char() byte {
	return '0' + byte(b)
}

// ParseBits validates an entry and returns its bits in order.
func ParseBits(entry string) ([]Bit, error) {
	if entry == "" {
		return nil, fmt.Errorf("%w: empty entry", ErrMalformedEntry)
	}

	bits := make([]Bit, len(entry))
	for i := 0; i < len(entry); i++ {
		switch entry[i] {
		case '0':
			bits[i] = Zero
		case '1':
			bits[i] = One
		default:
			return nil, fmt.Errorf("%w: %q has %q at position %d", ErrMalformedEntry, entry, entry[i], i)
		}
	}

	return bits, nil
}

// Decode interprets a rating as a base-2 unsigned integer.
func Decode(bits string) (uint64, error) {
	value, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}

	return value, nil
}
