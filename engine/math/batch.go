package math

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/core"
)

// transformAll applies fn to every element of src, writing into dst.
// src and dst may be the same slice.
func transformAll[T any](src, dst []T, fn func(T) T) error {
	if src == nil {
		return fmt.Errorf("%w: source array", core.ErrNilArgument)
	}
	if dst == nil {
		return fmt.Errorf("%w: destination array", core.ErrNilArgument)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: destination holds %d elements, source %d", core.ErrOutOfRange, len(dst), len(src))
	}
	for i := range src {
		dst[i] = fn(src[i])
	}
	return nil
}

// transformRange applies fn to src[srcIndex:srcIndex+length] writing
// into dst[dstIndex:dstIndex+length]. Windows over the same backing
// array are processed in an order that never reads an element after
// it has been overwritten.
func transformRange[T any](src []T, srcIndex int, dst []T, dstIndex, length int, fn func(T) T) error {
	if src == nil {
		return fmt.Errorf("%w: source array", core.ErrNilArgument)
	}
	if dst == nil {
		return fmt.Errorf("%w: destination array", core.ErrNilArgument)
	}
	if srcIndex < 0 || dstIndex < 0 || length < 0 {
		return fmt.Errorf("%w: negative index or length (src %d, dst %d, length %d)", core.ErrOutOfRange, srcIndex, dstIndex, length)
	}
	// Compared by subtraction so huge lengths cannot overflow.
	if srcIndex > len(src) || length > len(src)-srcIndex {
		return fmt.Errorf("%w: source window of %d at %d exceeds length %d", core.ErrOutOfRange, length, srcIndex, len(src))
	}
	if dstIndex > len(dst) || length > len(dst)-dstIndex {
		return fmt.Errorf("%w: destination window of %d at %d exceeds length %d", core.ErrOutOfRange, length, dstIndex, len(dst))
	}

	in := src[srcIndex : srcIndex+length]
	out := dst[dstIndex : dstIndex+length]
	if length > 1 && overlapsAhead(in, out) {
		for i := length - 1; i >= 0; i-- {
			out[i] = fn(in[i])
		}
		return nil
	}
	for i := range in {
		out[i] = fn(in[i])
	}
	return nil
}

// overlapsAhead reports whether out starts inside in, after its first
// element, in which case a forward pass would clobber unread input.
func overlapsAhead[T any](in, out []T) bool {
	for i := 1; i < len(in); i++ {
		if &in[i] == &out[0] {
			return true
		}
	}
	return false
}
