package rational

import "math"

func (r Rational[T]) Add(o Rational[T]) Rational[T] {
	return New(r.num*o.den+o.num*r.den, r.den*o.den)
}

func (r Rational[T]) AddInt(n T) Rational[T] {
	return New(r.num+n*r.den, r.den)
}

// Sub returns r - o. It is computed over the common denominator rather than
// by adding the negation, so unsigned representations never pass through a
// negative numerator. When an unsigned difference underflows, the wrapped
// numerator is returned over the common denominator without reduction.
func (r Rational[T]) Sub(o Rational[T]) Rational[T] {
	return sub(r.num, r.den, o.num, o.den)
}

func (r Rational[T]) SubInt(n T) Rational[T] {
	return sub(r.num, r.den, n, 1)
}

func sub[T Integer](an, ad, bn, bd T) Rational[T] {
	left, right := an*bd, bn*ad
	den := ad * bd
	if !isSigned[T]() && left < right {
		return Rational[T]{num: left - right, den: den}
	}
	return New(left-right, den)
}

func (r Rational[T]) Mul(o Rational[T]) Rational[T] {
	return New(r.num*o.num, r.den*o.den)
}

func (r Rational[T]) MulInt(n T) Rational[T] {
	return New(r.num*n, r.den)
}

// Quo returns r / o. Dividing by zero yields infinity, or NaN for 0/0.
func (r Rational[T]) Quo(o Rational[T]) Rational[T] {
	return New(r.num*o.den, r.den*o.num)
}

// QuoInt returns r / n. It panics with ErrDivisionByZero if n is zero.
func (r Rational[T]) QuoInt(n T) Rational[T] {
	if n == 0 {
		panic(divisionByZero("QuoInt"))
	}
	return New(r.num, r.den*n)
}

// Pow raises r to an integer power. Negative exponents raise the reciprocal.
// Pow(0) is 1 for every r.
func (r Rational[T]) Pow(e int) Rational[T] {
	u := uint(e)
	if e < 0 {
		// -e wraps for math.MinInt, but uint(-e) is still its magnitude 2^63.
		r, u = r.Inv(), uint(-e)
	}
	return New(ipow(r.num, u), ipow(r.den, u))
}

// PowFloat raises the float64 value of r to e.
func (r Rational[T]) PowFloat(e float64) float64 {
	return math.Pow(r.Float64(), e)
}

// Neg returns -r. For unsigned representations the numerator wraps.
func (r Rational[T]) Neg() Rational[T] {
	return Rational[T]{num: -r.num, den: r.den}
}

func (r Rational[T]) Abs() Rational[T] {
	return Rational[T]{num: abs(r.num), den: r.den}
}

// Inv returns 1/r. The inverse of zero is positive infinity.
func (r Rational[T]) Inv() Rational[T] {
	return New(r.den, r.num)
}

// IntAdd returns n + r.
func IntAdd[T Integer](n T, r Rational[T]) Rational[T] {
	return r.AddInt(n)
}

// IntSub returns n - r.
func IntSub[T Integer](n T, r Rational[T]) Rational[T] {
	return sub(n, 1, r.num, r.den)
}

// IntMul returns n * r.
func IntMul[T Integer](n T, r Rational[T]) Rational[T] {
	return r.MulInt(n)
}

// IntQuo returns n / r. Dividing by a zero r yields infinity or NaN.
func IntQuo[T Integer](n T, r Rational[T]) Rational[T] {
	return New(n*r.den, r.num)
}

func (r *Rational[T]) AddAssign(o Rational[T]) *Rational[T] {
	*r = r.Add(o)
	return r
}

func (r *Rational[T]) SubAssign(o Rational[T]) *Rational[T] {
	*r = r.Sub(o)
	return r
}

func (r *Rational[T]) MulAssign(o Rational[T]) *Rational[T] {
	*r = r.Mul(o)
	return r
}

func (r *Rational[T]) QuoAssign(o Rational[T]) *Rational[T] {
	*r = r.Quo(o)
	return r
}

func (r *Rational[T]) PowAssign(e int) *Rational[T] {
	*r = r.Pow(e)
	return r
}

func (r *Rational[T]) AddIntAssign(n T) *Rational[T] {
	*r = r.AddInt(n)
	return r
}

func (r *Rational[T]) SubIntAssign(n T) *Rational[T] {
	*r = r.SubInt(n)
	return r
}

func (r *Rational[T]) MulIntAssign(n T) *Rational[T] {
	*r = r.MulInt(n)
	return r
}

// QuoIntAssign panics with ErrDivisionByZero if n is zero; r is left unchanged.
func (r *Rational[T]) QuoIntAssign(n T) *Rational[T] {
	*r = r.QuoInt(n)
	return r
}
