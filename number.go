package bignum

import (
	"errors"
	"fmt"
)

// Number type is a representation of a signed integer with a fixed capacity
// of [MaxLimbs] base-100 limbs, that is, of numbers from -(10^618 - 1) to
// 10^618 - 1.
// The zero value is the numeric value of 0.
// Number is a value type: assignment copies all limbs, so every method works
// on its own copy and never modifies its arguments.
// It is designed to be safe for concurrent use by multiple goroutines.
type Number struct {
	neg   bool // indicates whether the number is negative
	limbs mag  // the magnitude of the number
}

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrCapacityOverflow = errors.New("capacity overflow")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNoInverse        = errors.New("no modular inverse")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnderflow        = errors.New("underflow")
	ErrInvalidModulus   = errors.New("modulus must be positive")
	ErrNegativeExponent = errors.New("negative exponent")
)

// newNumber returns a number with the given sign and magnitude.
// Zero is never negative.
func newNumber(neg bool, m mag) Number {
	if m.isZero() {
		neg = false
	}
	return Number{neg: neg, limbs: m}
}

// New returns a number equal to x.
func New(x int64) Number {
	var m mag
	neg := x < 0
	if neg {
		// -x overflows for math.MinInt64, the unsigned conversion does not
		m.setUint64(uint64(-(x + 1)) + 1)
	} else {
		m.setUint64(uint64(x))
	}
	return newNumber(neg, m)
}

// NewFromUint64 returns a number equal to x.
func NewFromUint64(x uint64) Number {
	var m mag
	m.setUint64(x)
	return newNumber(false, m)
}

// Parse converts a decimal string to a number.
// The input string must be in one of the following formats:
//
//	1234
//	-1234
//	+0001234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Parse removes leading zeros.
//
// Parse returns an error:
//   - if the string does not represent a valid integer, see [ErrMalformedInput];
//   - if the number has more than [MaxPrec] significant digits,
//     see [ErrCapacityOverflow].
func Parse(s string) (Number, error) {
	var (
		pos   int
		width int
		neg   bool
		m     mag
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Digits
	start := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	if pos != width {
		return Number{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrMalformedInput)
	}
	if pos == start {
		return Number{}, fmt.Errorf("no digits: %w", ErrMalformedInput)
	}

	// Leading zeros
	for start < width-1 && s[start] == '0' {
		start++
	}
	digits := s[start:]
	if len(digits) > MaxPrec {
		return Number{}, fmt.Errorf("the %T can have at most %v digit(s), but it has %v digit(s): %w", Number{}, MaxPrec, len(digits), ErrCapacityOverflow)
	}

	// Limbs, two digits at a time from the least significant end
	for i, j := len(digits), 0; i > 0; i, j = i-2, j+1 {
		lo := digits[i-1] - '0'
		var hi byte
		if i >= 2 {
			hi = digits[i-2] - '0'
		}
		m[j] = hi*10 + lo
	}

	return newNumber(neg, m), nil
}

// String method implements the [fmt.Stringer] interface and returns
// a decimal representation of the number.
// The returned string is formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Number) String() string {
	n := x.limbs.len()
	if n == 0 {
		return "0"
	}

	buf := make([]byte, 0, 2*n+1)

	// Sign
	if x.neg {
		buf = append(buf, '-')
	}

	// Most significant limb without a leading zero
	top := x.limbs[n-1]
	if top >= 10 {
		buf = append(buf, '0'+top/10)
	}
	buf = append(buf, '0'+top%10)

	// Remaining limbs
	for i := n - 2; i >= 0; i-- {
		buf = append(buf, '0'+x.limbs[i]/10, '0'+x.limbs[i]%10)
	}

	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Number) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Number) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -255
//	%q:        "-255"
//	%x:         -ff
//	%X:         -FF
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Number) Format(state fmt.State, verb rune) {
	var digits string

	// Digits
	switch verb {
	case 'd', 's', 'v', 'q':
		digits = x.Abs().String()
	case 'x', 'X':
		digits, _ = x.Abs().Hex() // cannot fail for non-negative numbers
		if verb == 'x' {
			digits = toLower(digits)
		}
	default:
		fmt.Fprintf(state, "%%!%c(bignum.Number=%s)", verb, x.String())
		return
	}

	// Arithmetic sign
	sign := ""
	switch {
	case x.IsNeg():
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(sign) + len(digits) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && quote == "":
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	// Writing buffer
	buf := make([]byte, 0, width+lspaces+tspaces+lzeroes)
	buf = appendRepeat(buf, ' ', lspaces)
	buf = append(buf, quote...)
	buf = append(buf, sign...)
	buf = appendRepeat(buf, '0', lzeroes)
	buf = append(buf, digits...)
	buf = append(buf, quote...)
	buf = appendRepeat(buf, ' ', tspaces)
	state.Write(buf)
}

func appendRepeat(buf []byte, b byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, b)
	}
	return buf
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

// Limb returns the i-th base-100 limb of the magnitude of x, where limb 0 is
// the least significant one.
// Limb returns an error if i is outside of range [0, MaxLimbs).
func (x Number) Limb(i int) (int, error) {
	if i < 0 || i >= MaxLimbs {
		return 0, fmt.Errorf("limb %v of %v limb(s): %w", i, MaxLimbs, ErrIndexOutOfRange)
	}
	return int(x.limbs[i]), nil
}

// Len returns number of significant limbs in the magnitude of x.
// Zero has no limbs.
func (x Number) Len() int {
	return x.limbs.len()
}

// Prec returns number of decimal digits in the magnitude of x.
// Zero has no digits.
func (x Number) Prec() int {
	return x.limbs.prec()
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Number) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns true if x == 0.
func (x Number) IsZero() bool {
	return x.limbs.isZero()
}

// IsNeg returns true if x < 0.
func (x Number) IsNeg() bool {
	return x.neg && !x.IsZero()
}

// IsPos returns true if x > 0.
func (x Number) IsPos() bool {
	return !x.neg && !x.IsZero()
}

// IsOdd returns true if x is not divisible by 2.
func (x Number) IsOdd() bool {
	return x.limbs.isOdd()
}

// IsEven returns true if x is divisible by 2.
func (x Number) IsEven() bool {
	return !x.limbs.isOdd()
}

// IsOne returns true if x == 1.
func (x Number) IsOne() bool {
	return !x.neg && x.limbs.len() == 1 && x.limbs[0] == 1
}

// Neg returns x with opposite sign.
func (x Number) Neg() Number {
	return newNumber(!x.neg, x.limbs)
}

// Abs returns absolute value of x.
func (x Number) Abs() Number {
	return newNumber(false, x.limbs)
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Number) Cmp(y Number) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs < 0:
		return -x.limbs.cmp(&y.limbs)
	default:
		return x.limbs.cmp(&y.limbs)
	}
}

// CmpAbs compares absolute values of x and y.
func (x Number) CmpAbs(y Number) int {
	return x.limbs.cmp(&y.limbs)
}

// Add returns the sum of x and y.
//
// Add returns an error if the magnitude of the sum needs more than
// [MaxLimbs] limbs.
func (x Number) Add(y Number) (Number, error) {
	z, err := addSigned(x.neg, &x.limbs, y.neg, &y.limbs)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v + %v]: %w", x, y, err)
	}
	return z, nil
}

// Sub returns the difference of x and y.
//
// Sub returns an error if the magnitude of the difference needs more than
// [MaxLimbs] limbs.
func (x Number) Sub(y Number) (Number, error) {
	z, err := addSigned(x.neg, &x.limbs, !y.neg, &y.limbs)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v - %v]: %w", x, y, err)
	}
	return z, nil
}

// addSigned calculates (-1)^xneg * x + (-1)^yneg * y.
// For operands of opposite signs the magnitudes are compared first and the
// larger one is used as the minuend.
func addSigned(xneg bool, x *mag, yneg bool, y *mag) (Number, error) {
	var z mag

	// Special cases
	switch {
	case y.isZero():
		return newNumber(xneg, *x), nil
	case x.isZero():
		return newNumber(yneg, *y), nil
	}

	// Same signs
	if xneg == yneg {
		if !z.add(x, y) {
			return Number{}, ErrCapacityOverflow
		}
		return newNumber(xneg, z), nil
	}

	// Opposite signs
	switch x.cmp(y) {
	case 0:
		return Number{}, nil
	case 1:
		z.sub(x, y)
		return newNumber(xneg, z), nil
	default:
		z.sub(y, x)
		return newNumber(yneg, z), nil
	}
}

// Mul returns the product of x and y.
//
// Mul returns an error if the magnitude of the product needs more than
// [MaxLimbs] limbs.
func (x Number) Mul(y Number) (Number, error) {
	var z mag
	if !z.mul(&x.limbs, &y.limbs) {
		return Number{}, fmt.Errorf("computing [%v * %v]: %w", x, y, ErrCapacityOverflow)
	}
	return newNumber(x.neg != y.neg, z), nil
}

// QuoRem returns the quotient q and remainder r of x and y, such that
// x = q * y + r and |r| < |y|.
// The quotient is truncated towards zero and the remainder has the same sign
// as x.
//
// QuoRem returns an error if y is 0.
func (x Number) QuoRem(y Number) (q, r Number, err error) {
	if y.IsZero() {
		return Number{}, Number{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", x, y, x, y, ErrDivisionByZero)
	}
	qm, rm := quoRem(&x.limbs, &y.limbs)
	return newNumber(x.neg != y.neg, qm), newNumber(x.neg, rm), nil
}

// Quo returns the quotient of x and y truncated towards zero.
// Also see method [Number.QuoRem].
//
// Quo returns an error if y is 0.
func (x Number) Quo(y Number) (Number, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// QuoRemLimb returns the quotient q and remainder r of x and a single-limb
// divisor d, such that x = q * d + r.
// The quotient is truncated towards zero and the remainder has the same sign
// as x.
// This is significantly faster than [Number.QuoRem].
//
// QuoRemLimb returns an error if d is outside of range [1, 99].
func (x Number) QuoRemLimb(d int) (q Number, r int, err error) {
	switch {
	case d == 0:
		return Number{}, 0, fmt.Errorf("computing [%v div %v]: %w", x, d, ErrDivisionByZero)
	case d < 0 || d >= limbBase:
		return Number{}, 0, fmt.Errorf("divisor %v is outside of limb range [1, %v]: %w", d, limbBase-1, ErrIndexOutOfRange)
	}
	var qm mag
	rem := int(qm.quoRemLimb(&x.limbs, byte(d)))
	if x.neg {
		rem = -rem
	}
	return newNumber(x.neg, qm), rem, nil
}

// Mod returns x modulo m, which is always in range [0, |m|).
// Unlike the remainder of [Number.QuoRem], the result is never negative.
//
// Mod returns an error if m is 0.
func (x Number) Mod(m Number) (Number, error) {
	_, r, err := x.QuoRem(m)
	if err != nil {
		return Number{}, err
	}
	if r.IsNeg() {
		var z mag
		z.sub(&m.limbs, &r.limbs) // |m| - |r|, since |r| < |m|
		return newNumber(false, z), nil
	}
	return r, nil
}
