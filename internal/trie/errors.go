package trie

import "errors"

var (
	ErrMalformedEntry = errors.New("malformed entry")
	ErrLengthMismatch = errors.New("entry length mismatch")
	ErrEmptyTrie      = errors.New("trie holds no entries")
)
