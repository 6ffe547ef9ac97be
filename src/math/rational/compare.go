package rational

// Equal reports field-wise equality of two normalized values. Unlike
// floating point, NaN (0/0) is equal to itself.
func (r Rational[T]) Equal(o Rational[T]) bool {
	return r.num == o.num && r.den == o.den
}

func (r Rational[T]) EqualInt(n T) bool {
	return r.den == 1 && r.num == n
}

// Cmp returns -1, 0 or 1 as r is less than, equal to or greater than o.
// It compares the cross products r.num*o.den and o.num*r.den, which may
// overflow for large operands.
func (r Rational[T]) Cmp(o Rational[T]) int {
	return cmp(r.num*o.den, o.num*r.den)
}

// CmpInt compares r with the integer n.
func (r Rational[T]) CmpInt(n T) int {
	return cmp(r.num, n*r.den)
}

func (r Rational[T]) Less(o Rational[T]) bool         { return r.Cmp(o) < 0 }
func (r Rational[T]) LessEqual(o Rational[T]) bool    { return r.Cmp(o) <= 0 }
func (r Rational[T]) Greater(o Rational[T]) bool      { return r.Cmp(o) > 0 }
func (r Rational[T]) GreaterEqual(o Rational[T]) bool { return r.Cmp(o) >= 0 }

func cmp[T Integer](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
