package rational

// Float64 returns num/den as a floating point division: ±Inf for an
// infinite r and NaN for 0/0.
func (r Rational[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// Int returns num/den truncated toward zero. It panics with
// ErrDivisionByZero when the denominator is zero.
func (r Rational[T]) Int() T {
	if r.den == 0 {
		panic(divisionByZero("Int"))
	}
	return r.num / r.den
}

// TryInt is Int returning the division by zero as an error.
func (r Rational[T]) TryInt() (v T, err error) {
	err = Try(func() { v = r.Int() })
	return v, err
}
