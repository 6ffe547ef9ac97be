package rational

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatOptions controls Text rendering.
type FormatOptions struct {
	// ShowSign prefixes non-negative values with '+'.
	ShowSign bool `yaml:"show_sign"`
	// ForceDenominator renders "/1" for whole numbers.
	ForceDenominator bool `yaml:"force_denominator"`
	// SpacedSlash renders "a / b" instead of "a/b".
	SpacedSlash bool `yaml:"spaced_slash"`
}

// String renders "num" for whole numbers and "num/den" otherwise.
func (r Rational[T]) String() string {
	return r.Text(FormatOptions{})
}

func (r Rational[T]) Text(opts FormatOptions) string {
	var b strings.Builder
	if opts.ShowSign && !r.IsNaN() && r.num >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(itoa(r.num))
	if r.den == 1 && !opts.ForceDenominator {
		return b.String()
	}
	if opts.SpacedSlash {
		b.WriteString(" / ")
	} else {
		b.WriteByte('/')
	}
	b.WriteString(itoa(r.den))
	return b.String()
}

// Format implements fmt.Formatter.
//
//	%v %s   num/den; flags '+' (sign), '#' (always show the denominator)
//	        and ' ' (spaced slash)
//	%q      the %s form, double-quoted
//	%d      the integer, only for whole numbers
//	%e %f %g and upper case variants format Float64 with the given precision
//
// Width and the '-' flag pad every verb.
func (r Rational[T]) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 'v', 's', 'q':
		s = r.Text(FormatOptions{
			ShowSign:         state.Flag('+'),
			ForceDenominator: state.Flag('#'),
			SpacedSlash:      state.Flag(' '),
		})
		if verb == 'q' {
			s = strconv.Quote(s)
		}
	case 'd':
		if !r.IsInt() {
			fmt.Fprintf(state, "%%!d(rational=%s)", r.String())
			return
		}
		s = itoa(r.num)
		if state.Flag('+') && r.num >= 0 {
			s = "+" + s
		}
	case 'e', 'E', 'f', 'F', 'g', 'G':
		prec, ok := state.Precision()
		if !ok {
			prec = -1
		}
		format := byte(verb)
		if verb == 'F' {
			format = 'f'
		}
		s = strconv.FormatFloat(r.Float64(), format, prec, 64)
		if state.Flag('+') && !strings.ContainsAny(s[:1], "+-N") {
			s = "+" + s
		}
	default:
		fmt.Fprintf(state, "%%!%c(rational=%s)", verb, r.String())
		return
	}

	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	_, _ = state.Write([]byte(s))
}

func itoa[T Integer](v T) string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
