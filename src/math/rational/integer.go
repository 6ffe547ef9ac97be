package rational

import "golang.org/x/exp/constraints"

// Integer is the set of fixed-width integer representations a Rational can be
// built on. Overflow follows the native wrapping of the chosen type.
type Integer interface {
	constraints.Integer
}

func isSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

func abs[T Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// unit returns -1 or 1 matching the sign of v. v must be non-zero.
func unit[T Integer](v T) T {
	var one T = 1
	if v < 0 {
		return -one
	}
	return one
}

func ipow[T Integer](base T, exp uint) T {
	var result T = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
