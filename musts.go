package bignum

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) Number {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustParseHex is like [ParseHex] but panics if the string cannot be parsed.
func MustParseHex(hex string, e Endianness) Number {
	x, err := ParseHex(hex, e)
	if err != nil {
		panic(fmt.Sprintf("MustParseHex(%v, %v) failed: %v", quoteShort(hex), e, err))
	}
	return x
}

// MustParseNat is like [ParseNat] but panics if the string cannot be parsed.
func MustParseNat(s string) Nat {
	x, err := ParseNat(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseNat(%q) failed: %v", s, err))
	}
	return x
}

// MustAdd is like [Number.Add] but panics if computing error.
func (x Number) MustAdd(y Number) Number {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustSub is like [Number.Sub] but panics if computing error.
func (x Number) MustSub(y Number) Number {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", y, err))
	}
	return z
}

// MustMul is like [Number.Mul] but panics if computing error.
func (x Number) MustMul(y Number) Number {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", y, err))
	}
	return z
}
