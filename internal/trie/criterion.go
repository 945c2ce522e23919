package trie

// Criterion picks a branch from the entry counts under bit 0 and bit 1.
type Criterion func(zeros, ones int) Bit

// MostCommon prefers 1 on a tie.
func MostCommon(zeros, ones int) Bit {
	if ones >= zeros {
		return One
	}
	return Zero
}

// LeastCommon prefers 0 on a tie.
func LeastCommon(zeros, ones int) Bit {
	if zeros <= ones {
		return Zero
	}
	return One
}
