package util

// Tern is the generic equivalent of C's ternary operator.
// i.e. x = cond ? a : b
// Note that both a and b are always evaluated.
func Tern[T any](cond bool, a T, b T) T {
	if cond {
		return a
	}
	return b
}
