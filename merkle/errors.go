package merkle

import "errors"

// TreeError taxonomy (§7): Full and Corrupted are fatal, the rest are
// ordinary reportable failures.
var (
	ErrTreeFull     = errors.New("merkle: tree full")
	ErrInvalidIndex = errors.New("merkle: invalid index")
	ErrInvalidDepth = errors.New("merkle: invalid depth")
	ErrDuplicate    = errors.New("merkle: duplicate leaf")
	ErrCorrupted    = errors.New("merkle: corrupted tree state")
)
