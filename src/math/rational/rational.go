// Package rational provides exact rational numbers over fixed-width integers.
//
// A Rational[T] is a numerator/denominator pair kept in lowest terms with the
// sign carried by the numerator. A zero denominator is allowed: n/0 is signed
// infinity (stored as ±1/0) and 0/0 is NaN. Arithmetic inherits the overflow
// behaviour of T and is never trapped.
//
// Rational values are comparable with == and may be copied and shared freely.
// Only the *Assign methods mutate their receiver.
package rational

// Rational is the ratio num/den. The zero value is NaN (0/0); use Zero or
// FromInt(0) for the number zero.
type Rational[T Integer] struct {
	num T
	den T
}

// New returns num/den in lowest terms with a non-negative denominator.
//
// A denominator equal to the minimum value of a signed T cannot be negated.
// It is reduced first, so New[int8](2, -128) is -1/64, but when num is odd
// the sign flip wraps like any other overflow of T and New[int8](3, -128)
// keeps the negative denominator.
func New[T Integer](num, den T) Rational[T] {
	r := Rational[T]{num: num, den: den}
	r.normalize()
	return r
}

// FromInt returns n/1.
func FromInt[T Integer](n T) Rational[T] {
	return Rational[T]{num: n, den: 1}
}

func Zero[T Integer]() Rational[T] {
	return Rational[T]{num: 0, den: 1}
}

func One[T Integer]() Rational[T] {
	return Rational[T]{num: 1, den: 1}
}

// Inf returns positive infinity for sign >= 0 and negative infinity
// otherwise. Unsigned representations only have positive infinity.
func Inf[T Integer](sign int) Rational[T] {
	var one T = 1
	if sign < 0 && isSigned[T]() {
		return Rational[T]{num: -one, den: 0}
	}
	return Rational[T]{num: one, den: 0}
}

func NaN[T Integer]() Rational[T] {
	return Rational[T]{}
}

func (r Rational[T]) Num() T { return r.num }
func (r Rational[T]) Den() T { return r.den }

func (r Rational[T]) IsInf() bool {
	return r.den == 0 && r.num != 0
}

func (r Rational[T]) IsNaN() bool {
	return r.den == 0 && r.num == 0
}

func (r Rational[T]) IsFinite() bool {
	return r.den != 0
}

// IsInt reports whether r is a finite whole number.
func (r Rational[T]) IsInt() bool {
	return r.den == 1
}

// Sign returns -1, 0 or 1. NaN has sign 0.
func (r Rational[T]) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

// IsNormalized reports whether r satisfies the representation invariant:
// a non-negative denominator and either lowest terms or the NaN pair 0/0.
func (r Rational[T]) IsNormalized() bool {
	if r.den < 0 {
		return false
	}
	if r.num == 0 && r.den == 0 {
		return true
	}
	return GCD(r.num, r.den) == 1
}

func (r *Rational[T]) normalize() {
	if r.den == 0 {
		// Keep only the sign; gcd(n, 0) is n and must not become a divisor.
		if r.num != 0 {
			r.num = unit(r.num)
		}
		return
	}
	// Reduce before moving the sign so an even minimum-value denominator
	// shrinks into range first.
	if d := GCD(r.num, r.den); d > 1 {
		r.num /= d
		r.den /= d
	}
	if r.den < 0 {
		r.num, r.den = -r.num, -r.den
	}
}

// Convert re-expresses r in the representation U, renormalizing the result.
// Widening conversions are exact; narrowing ones truncate as Go conversions do.
func Convert[U, T Integer](r Rational[T]) Rational[U] {
	return New(U(r.num), U(r.den))
}
