package bignum

import (
	"fmt"
)

// Nat type is a representation of an unbounded non-negative integer
// as a sequence of decimal digits.
// It is used to bridge radix conversions whose intermediate values do not
// have to fit into a [Number].
// The zero value is the numeric value of 0.
// Nat is a value type: every operation returns a new value and never
// modifies its arguments.
type Nat struct {
	digits []byte // decimal digits, the least significant first, no leading zeros
}

// NewNat returns a Nat equal to x.
func NewNat(x uint64) Nat {
	var d []byte
	for x != 0 {
		d = append(d, byte(x%10))
		x /= 10
	}
	return Nat{digits: d}
}

// ParseNat converts a string of decimal digits to a Nat.
// Leading zeros are removed.
//
// ParseNat returns an error if the string is empty or contains a character
// other than a decimal digit, see [ErrMalformedInput].
func ParseNat(s string) (Nat, error) {
	if len(s) == 0 {
		return Nat{}, fmt.Errorf("no digits: %w", ErrMalformedInput)
	}
	d := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[len(s)-1-i]
		if c < '0' || c > '9' {
			return Nat{}, fmt.Errorf("invalid character %q: %w", c, ErrMalformedInput)
		}
		d[i] = c - '0'
	}
	return newNat(d), nil
}

// newNat trims leading zeros of d.
func newNat(d []byte) Nat {
	n := len(d)
	for n > 0 && d[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Nat{}
	}
	return Nat{digits: d[:n]}
}

// String returns the decimal representation of x.
func (x Nat) String() string {
	if x.IsZero() {
		return "0"
	}
	buf := make([]byte, len(x.digits))
	for i, d := range x.digits {
		buf[len(buf)-1-i] = '0' + d
	}
	return string(buf)
}

// IsZero returns true if x == 0.
func (x Nat) IsZero() bool {
	return len(x.digits) == 0
}

// Len returns number of decimal digits in x.
// Zero has one digit.
func (x Nat) Len() int {
	if x.IsZero() {
		return 1
	}
	return len(x.digits)
}

// Digit returns the i-th decimal digit of x, where digit 0 is the least
// significant one.
// Digit returns an error if i is outside of range [0, x.Len()).
func (x Nat) Digit(i int) (int, error) {
	if i < 0 || i >= x.Len() {
		return 0, fmt.Errorf("digit %v of %v digit(s): %w", i, x.Len(), ErrIndexOutOfRange)
	}
	return int(x.digit(i)), nil
}

// digit returns the i-th digit of x or 0 if x is shorter than that.
func (x Nat) digit(i int) byte {
	if i < len(x.digits) {
		return x.digits[i]
	}
	return 0
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Nat) Cmp(y Nat) int {
	switch {
	case len(x.digits) < len(y.digits):
		return -1
	case len(x.digits) > len(y.digits):
		return 1
	}
	for i := len(x.digits) - 1; i >= 0; i-- {
		switch {
		case x.digits[i] < y.digits[i]:
			return -1
		case x.digits[i] > y.digits[i]:
			return 1
		}
	}
	return 0
}

// Inc returns x + 1.
func (x Nat) Inc() Nat {
	return x.Add(NewNat(1))
}

// Dec returns x - 1.
// Dec returns an error if x is 0, see [ErrUnderflow].
func (x Nat) Dec() (Nat, error) {
	return x.Sub(NewNat(1))
}

// Add returns x + y.
func (x Nat) Add(y Nat) Nat {
	n := max(len(x.digits), len(y.digits))
	z := make([]byte, n+1)
	var carry byte
	for i := 0; i < n; i++ {
		s := x.digit(i) + y.digit(i) + carry
		z[i] = s % 10
		carry = s / 10
	}
	z[n] = carry
	return newNat(z)
}

// Sub returns x - y.
// Sub returns an error if x < y, see [ErrUnderflow].
func (x Nat) Sub(y Nat) (Nat, error) {
	if x.Cmp(y) < 0 {
		return Nat{}, fmt.Errorf("computing [%v - %v]: %w", x, y, ErrUnderflow)
	}
	return x.sub(y), nil
}

// sub calculates x - y, assuming x >= y.
func (x Nat) sub(y Nat) Nat {
	z := make([]byte, len(x.digits))
	var borrow byte
	for i := range z {
		d := int(x.digits[i]) - int(y.digit(i)) - int(borrow)
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = byte(d)
	}
	return newNat(z)
}

// Mul returns x * y.
func (x Nat) Mul(y Nat) Nat {
	if x.IsZero() || y.IsZero() {
		return Nat{}
	}
	acc := make([]uint, len(x.digits)+len(y.digits))
	for i, a := range x.digits {
		for j, b := range y.digits {
			acc[i+j] += uint(a) * uint(b)
		}
	}
	z := make([]byte, len(acc))
	var carry uint
	for k, v := range acc {
		v += carry
		z[k] = byte(v % 10)
		carry = v / 10
	}
	return newNat(z)
}

// QuoRem returns the quotient q and remainder r of x and y, such that
// x = q * y + r and r < y.
// QuoRem returns an error if y is 0, see [ErrDivisionByZero].
func (x Nat) QuoRem(y Nat) (q, r Nat, err error) {
	if y.IsZero() {
		return Nat{}, Nat{}, fmt.Errorf("computing [%v div %v]: %w", x, y, ErrDivisionByZero)
	}
	if x.Cmp(y) < 0 {
		return Nat{}, x, nil
	}

	// Long division, every quotient digit is found by at most 9 subtractions
	qd := make([]byte, len(x.digits))
	for i := len(x.digits) - 1; i >= 0; i-- {
		r = r.shl(x.digits[i])
		for r.Cmp(y) >= 0 {
			r = r.sub(y)
			qd[i]++
		}
	}
	return newNat(qd), r, nil
}

// Quo returns the quotient of x and y.
// Quo returns an error if y is 0, see [ErrDivisionByZero].
func (x Nat) Quo(y Nat) (Nat, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x and y.
// Rem returns an error if y is 0, see [ErrDivisionByZero].
func (x Nat) Rem(y Nat) (Nat, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// shl calculates x * 10 + d.
func (x Nat) shl(d byte) Nat {
	z := make([]byte, len(x.digits)+1)
	z[0] = d
	copy(z[1:], x.digits)
	return newNat(z)
}
