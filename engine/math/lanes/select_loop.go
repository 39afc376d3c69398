//go:build !gamemath_unrolled

package lanes

type active = loopBackend
