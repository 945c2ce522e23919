package trie

import (
	"fmt"
	"strings"
)

// Node counts the entries whose prefix ends at it.
type Node struct {
	count    int
	children [2]*Node
}

// empty stands in for every absent child. It is never mutated.
var empty = &Node{}

func (n *Node) Count() int {
	return n.count
}

// Child returns the child for bit, or a shared zero-count leaf when no entry goes that way.
func (n *Node) Child(bit Bit) *Node {
	if child := n.children[bit]; child != nil {
		return child
	}
	return empty
}

// Trie is a binary prefix tree over equal-width bit-strings. It is built once and then
// only read, so it carries no locking.
type Trie struct {
	root  *Node
	width int
}

func New() *Trie {
	return &Trie{root: &Node{}}
}

// Build inserts entries in order into an empty trie and stops at the first invalid one.
func Build(entries []string) (*Trie, error) {
	t := New()
	for i, entry := range entries {
		if err := t.Insert(entry); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return t, nil
}

// Insert adds one entry. The entry is fully validated before any node is touched, so a
// rejected entry leaves the trie as it was.
func (t *Trie) Insert(entry string) error {
	bits, err := ParseBits(entry)
	if err != nil {
		return err
	}

	if t.root.count > 0 && len(bits) != t.width {
		return fmt.Errorf("%w: %q has %d bits, trie holds %d", ErrLengthMismatch, entry, len(bits), t.width)
	}
	t.width = len(bits)

	node := t.root
	node.count++
	for _, bit := range bits {
		if node.children[bit] == nil {
			node.children[bit] = &Node{}
		}
		node = node.children[bit]
		node.count++
	}

	return nil
}

func (t *Trie) Root() *Node {
	return t.root
}

// Len is the number of inserted entries.
func (t *Trie) Len() int {
	return t.root.count
}

// Width is the bit length shared by every entry, 0 while the trie is empty.
func (t *Trie) Width() int {
	return t.width
}

// Lookup returns the node reached by prefix, or a zero-count leaf if no entry has it.
func (t *Trie) Lookup(prefix string) (*Node, error) {
	node := t.root
	if prefix == "" {
		return node, nil
	}

	bits, err := ParseBits(prefix)
	if err != nil {
		return nil, err
	}
	for _, bit := range bits {
		node = node.Child(bit)
	}
	return node, nil
}

// Select walks from the root for Width steps and returns the bits it took. At each step a
// branch with no entries is never taken while its sibling still has some; in particular
// once a single entry remains it is followed to its end. This widens the single-entry rule
// to any empty sibling, so LeastCommon never picks a count of zero over a populated
// branch. When both branches are populated the criterion decides.
func (t *Trie) Select(criterion Criterion) (string, error) {
	if t.root.count == 0 {
		return "", ErrEmptyTrie
	}

	var sb strings.Builder
	sb.Grow(t.width)

	node := t.root
	for depth := range t.width {
		zeros, ones := node.Child(Zero), node.Child(One)

		var bit Bit
		switch {
		case zeros.count == 0 && ones.count == 0:
			return "", fmt.Errorf("descent reached an empty node at depth %d of %d", depth, t.width)
		case ones.count == 0:
			bit = Zero
		case zeros.count == 0:
			bit = One
		default:
			bit = criterion(zeros.count, ones.count)
		}

		sb.WriteByte(bit.Char())
		node = node.Child(bit)
	}

	return sb.String(), nil
}

// MaxRating follows the most common bit at every position.
func (t *Trie) MaxRating() (string, error) {
	return t.Select(MostCommon)
}

// MinRating follows the least common bit at every position.
func (t *Trie) MinRating() (string, error) {
	return t.Select(LeastCommon)
}

// RatingProduct multiplies the decoded maximizing and minimizing ratings.
func (t *Trie) RatingProduct() (uint64, error) {
	maxBits, err := t.MaxRating()
	if err != nil {
		return 0, err
	}
	minBits, err := t.MinRating()
	if err != nil {
		return 0, err
	}

	maxValue, err := Decode(maxBits)
	if err != nil {
		return 0, err
	}
	minValue, err := Decode(minBits)
	if err != nil {
		return 0, err
	}

	return maxValue * minValue, nil
}
