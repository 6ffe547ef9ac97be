package rational

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. GCD(x, 0) is |x| and GCD(0, 0) is 0. The result is never
// negative unless it is the minimum value of a signed T, whose magnitude
// does not fit.
func GCD[T Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	// A minimum-value operand stays negative under abs; % keeps magnitudes.
	return abs(a)
}
