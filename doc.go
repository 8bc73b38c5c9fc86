/*
Package bignum implements immutable fixed-capacity integers and the
number-theoretic algorithms used by textbook RSA: modular exponentiation,
modular inverse and Miller-Rabin primality testing.

# Representation

[Number] is a struct with two fields:

  - Sign: a boolean indicating whether the number is negative.
  - Limbs: an array of exactly [MaxLimbs] base-100 digits, the least
    significant first. Every limb holds a value from 0 to 99, that is,
    two decimal digits.

The numerical value of a number is calculated as:

  - -(Limbs[0] + Limbs[1]*100 + Limbs[2]*100^2 + ...), if Sign is true.
  - Limbs[0] + Limbs[1]*100 + Limbs[2]*100^2 + ..., if Sign is false.

Zero is never negative, there is exactly one representation of every value.

# Constraints

A number holds at most [MaxLimbs] limbs, that is, [MaxPrec] decimal
digits, which is enough for residues of 1024-bit moduli and their squares.
Unlike the standard integers there is no "wrap around": operations whose
result does not fit return [ErrCapacityOverflow].

# Conversions

The package provides methods for converting numbers:

  - from/to decimal string:
    [Parse], [Number.String], [Number.Format].
  - from/to hexadecimal string:
    [ParseHex], [HexToDecimal], [DecimalToHex], [Number.Hex].
  - from int64:
    [New], [NewFromUint64].

Hexadecimal strings may be big-endian or little-endian, see [Endianness].
Radix conversions go through [Nat], an unbounded decimal integer, so that
intermediate powers of 16 never overflow.

# Operations

  - Arithmetic:
    [Number.Add], [Number.Sub], [Number.Mul], [Number.QuoRem],
    [Number.QuoRemLimb], [Number.Mod].
  - Modular:
    [Number.ExpMod], [Number.InverseMod], [Number.IsPrime].

Division is truncated towards zero and the remainder has the sign of the
dividend. [Number.Mod] returns the non-negative residue instead.

[Number.IsPrime] applies a single round of the Miller-Rabin test with
witness 2. Strong pseudoprimes to base 2, such as 2047, are reported as
prime.

# Errors

All methods are panic-free and pure.
Errors are returned in the following cases:

  - Division by Zero, see [ErrDivisionByZero].
  - Overflow, see [ErrCapacityOverflow].
  - Non-invertible values, see [ErrNoInverse].
  - Malformed strings, see [ErrMalformedInput].

Errors are wrapped with the operands of the failed operation and can be
checked with [errors.Is].

[errors.Is]: https://pkg.go.dev/errors#Is
*/
package bignum
