package bignum

import (
	"fmt"
	"strings"
)

// Endianness is the order of digits in a hexadecimal string.
type Endianness int

const (
	// BigEndian means the first character is the most significant digit.
	BigEndian Endianness = iota
	// LittleEndian means the first character is the least significant digit.
	LittleEndian
)

// ParseEndianness converts "big" or "little" to an [Endianness].
// The comparison is case-insensitive.
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(s) {
	case "big":
		return BigEndian, nil
	case "little":
		return LittleEndian, nil
	default:
		return 0, fmt.Errorf("unknown endianness %q: %w", s, ErrMalformedInput)
	}
}

// String returns "big" or "little".
func (e Endianness) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return fmt.Sprintf("Endianness(%d)", int(e))
	}
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (e Endianness) MarshalText() ([]byte, error) {
	if e != BigEndian && e != LittleEndian {
		return nil, fmt.Errorf("unknown endianness %v: %w", e, ErrMalformedInput)
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see [ParseEndianness].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (e *Endianness) UnmarshalText(text []byte) error {
	var err error
	*e, err = ParseEndianness(string(text))
	return err
}

const hexDigits = "0123456789ABCDEF"

func hexValue(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10, true
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10, true
	default:
		return 0, false
	}
}

// HexToDecimal converts a hexadecimal string to its decimal representation.
// Both upper-case and lower-case digits are accepted.
// The result has no leading zeros.
//
// HexToDecimal returns an error if the string is empty or contains
// a character other than a hexadecimal digit, see [ErrMalformedInput].
func HexToDecimal(hex string, e Endianness) (string, error) {
	if len(hex) == 0 {
		return "", fmt.Errorf("no hex digits: %w", ErrMalformedInput)
	}
	if e != BigEndian && e != LittleEndian {
		return "", fmt.Errorf("unknown endianness %v: %w", e, ErrMalformedInput)
	}

	var dec Nat
	base := NewNat(1)
	sixteen := NewNat(16)
	for i := 0; i < len(hex); i++ {
		// Walk from the least significant character
		c := hex[i]
		if e == BigEndian {
			c = hex[len(hex)-1-i]
		}
		v, ok := hexValue(c)
		if !ok {
			return "", fmt.Errorf("invalid hex character %q: %w", c, ErrMalformedInput)
		}
		if v != 0 {
			dec = dec.Add(base.Mul(NewNat(v)))
		}
		base = base.Mul(sixteen)
	}
	return dec.String(), nil
}

// DecimalToHex converts a non-negative decimal string to its big-endian
// upper-case hexadecimal representation without leading zeros.
//
// DecimalToHex returns an error if the string is empty or contains
// a character other than a decimal digit, see [ErrMalformedInput].
func DecimalToHex(dec string) (string, error) {
	x, err := ParseNat(dec)
	if err != nil {
		return "", err
	}
	if x.IsZero() {
		return "0", nil
	}

	sixteen := NewNat(16)
	var buf []byte
	for !x.IsZero() {
		q, r, err := x.QuoRem(sixteen)
		if err != nil {
			return "", err
		}
		// r < 16, so it has at most two decimal digits
		lo, _ := r.Digit(0)
		v := lo
		if r.Len() > 1 {
			hi, _ := r.Digit(1)
			v += 10 * hi
		}
		buf = append(buf, hexDigits[v])
		x = q
	}

	// Most significant digit first
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// MaxHexPrec is the maximum number of significant hexadecimal digits a
// [Number] can be parsed from, since 16^514 > 10^618 > 16^513.
const MaxHexPrec = 514

// ParseHex converts a hexadecimal string to a non-negative number.
// Leading zeros are ignored.
// Also see [HexToDecimal] and [Parse].
//
// ParseHex returns an error:
//   - if the string is not a valid hexadecimal number, see [ErrMalformedInput];
//   - if the number has more than [MaxPrec] decimal digits,
//     see [ErrCapacityOverflow].
func ParseHex(hex string, e Endianness) (Number, error) {
	x, err := parseHex(hex, e)
	if err != nil {
		return Number{}, fmt.Errorf("parsing hex %v: %w", quoteShort(hex), err)
	}
	return x, nil
}

func parseHex(hex string, e Endianness) (Number, error) {
	// Leading zeros
	digits := hex
	switch e {
	case BigEndian:
		digits = strings.TrimLeft(digits, "0")
	case LittleEndian:
		digits = strings.TrimRight(digits, "0")
	}
	if digits == "" && hex != "" {
		return Number{}, nil
	}

	// Capacity is checked before the quadratic conversion
	if len(digits) > MaxHexPrec {
		for i := 0; i < len(digits); i++ {
			if _, ok := hexValue(digits[i]); !ok {
				return Number{}, fmt.Errorf("invalid hex character %q: %w", digits[i], ErrMalformedInput)
			}
		}
		return Number{}, fmt.Errorf("the %T can have at most %v hex digit(s), but it has %v digit(s): %w", Number{}, MaxHexPrec, len(digits), ErrCapacityOverflow)
	}

	dec, err := HexToDecimal(digits, e)
	if err != nil {
		return Number{}, err
	}
	return Parse(dec)
}

// quoteShort quotes s for an error message, eliding all but its first
// 32 bytes.
func quoteShort(s string) string {
	const n = 32
	if len(s) <= n {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%q... (%v bytes)", s[:n], len(s))
}

// Hex returns the big-endian upper-case hexadecimal representation of x
// without leading zeros, "0" for zero.
// Also see [DecimalToHex].
//
// Hex returns an error if x is negative, see [ErrUnderflow].
func (x Number) Hex() (string, error) {
	if x.IsNeg() {
		return "", fmt.Errorf("hex of [%v]: %w", x, ErrUnderflow)
	}
	return DecimalToHex(x.String())
}
