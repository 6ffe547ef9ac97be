package rational

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrDivisionByZero is raised when an integer operand or an integer
// conversion divides by zero. Rational by rational division never raises it.
var ErrDivisionByZero = errors.New("rational: division by zero")

func divisionByZero(op string) error {
	return fmt.Errorf("%s: %w", op, ErrDivisionByZero)
}

// Try runs fn and returns any division by zero it panicked with as an error.
// Other panics propagate.
func Try(fn func()) (err error) {
	defer CheckError(&err)
	fn()
	return nil
}

// CheckError must be deferred. It recovers a division-by-zero panic, either
// ErrDivisionByZero or the runtime's integer divide fault, and stores it in err.
func CheckError(err *error) {
	v := recover()
	if v == nil {
		return
	}
	if e, ok := v.(error); ok {
		if errors.Is(e, ErrDivisionByZero) {
			*err = e
			return
		}
		var re runtime.Error
		if errors.As(e, &re) && strings.Contains(re.Error(), "divide by zero") {
			*err = fmt.Errorf("%w (%v)", ErrDivisionByZero, re)
			return
		}
	}
	panic(v)
}
