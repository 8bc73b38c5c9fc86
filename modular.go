package bignum

import (
	"fmt"
)

// mulMod calculates z = (x * y) mod m.
// m must not be zero, x and y must be less than m.
func (z *mag) mulMod(x, y, m *mag) bool {
	var p mag
	if !p.mul(x, y) {
		return false
	}
	_, *z = quoRem(&p, m)
	return true
}

// ExpMod returns x raised to the power of e modulo m, that is
// (x^e) mod m, which is always in range [0, m).
// The power is calculated using the right-to-left binary method: the parity
// of the exponent is read from its lowest limb and the exponent is halved
// by a single-limb division on every step.
//
// ExpMod returns an error:
//   - if m is not positive, see [ErrInvalidModulus];
//   - if e is negative, see [ErrNegativeExponent];
//   - if the square of a residue needs more than [MaxLimbs] limbs,
//     see [ErrCapacityOverflow].
func (x Number) ExpMod(e, m Number) (Number, error) {
	z, err := x.expMod(e, m)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v^%v mod %v]: %w", x, e, m, err)
	}
	return z, nil
}

func (x Number) expMod(e, m Number) (Number, error) {
	switch {
	case !m.IsPos():
		return Number{}, ErrInvalidModulus
	case e.IsNeg():
		return Number{}, ErrNegativeExponent
	}

	// Special cases
	one := New(1)
	if e.IsZero() {
		return one.Mod(m)
	}
	b, err := x.Mod(m)
	if err != nil {
		return Number{}, err
	}
	if b.IsZero() {
		return Number{}, nil
	}

	// General case
	res, err := one.Mod(m)
	if err != nil {
		return Number{}, err
	}
	z, base, exp := res.limbs, b.limbs, e.limbs
	for !exp.isZero() {
		if exp.isOdd() {
			if !z.mulMod(&z, &base, &m.limbs) {
				return Number{}, ErrCapacityOverflow
			}
		}
		exp.quoRemLimb(&exp, 2)
		if exp.isZero() {
			break
		}
		if !base.mulMod(&base, &base, &m.limbs) {
			return Number{}, ErrCapacityOverflow
		}
	}
	return newNumber(false, z), nil
}

// InverseMod returns the modular multiplicative inverse of x modulo m, that
// is the number d in range [0, m) such that (x * d) mod m == 1.
// The inverse is found with the extended Euclidean algorithm, x is reduced
// modulo m first.
//
// InverseMod returns an error:
//   - if m is not positive, see [ErrInvalidModulus];
//   - if x and m are not coprime, see [ErrNoInverse].
func (x Number) InverseMod(m Number) (Number, error) {
	z, err := x.inverseMod(m)
	if err != nil {
		return Number{}, fmt.Errorf("computing inverse of [%v mod %v]: %w", x, m, err)
	}
	return z, nil
}

func (x Number) inverseMod(m Number) (Number, error) {
	if !m.IsPos() {
		return Number{}, ErrInvalidModulus
	}

	v, err := x.Mod(m)
	if err != nil {
		return Number{}, err
	}

	// (a2, a3) and (b2, b3) are pairs such that a2 * x ≡ a3 and b2 * x ≡ b3,
	// the remainders a3 and b3 follow the Euclidean algorithm on m and x.
	a2, a3 := Number{}, m
	b2, b3 := New(1), v
	for !b3.IsZero() && !b3.IsOne() {
		q, r, err := a3.QuoRem(b3)
		if err != nil {
			return Number{}, err
		}
		t, err := q.Mul(b2)
		if err != nil {
			return Number{}, err
		}
		t2, err := a2.Sub(t)
		if err != nil {
			return Number{}, err
		}
		a2, a3, b2, b3 = b2, b3, t2, r
	}
	if b3.IsZero() {
		return Number{}, ErrNoInverse
	}

	// |b2| < m, so a single correction puts it into [0, m)
	for b2.IsNeg() {
		if b2, err = b2.Add(m); err != nil {
			return Number{}, err
		}
	}
	for b2.Cmp(m) >= 0 {
		if b2, err = b2.Sub(m); err != nil {
			return Number{}, err
		}
	}
	return b2, nil
}

// IsPrime reports whether x is probably prime.
// It applies the Miller-Rabin test with the single witness 2, so a composite
// number that is a strong pseudoprime to base 2, such as 2047, is reported
// as prime.
// Numbers less than 2 are not prime.
//
// IsPrime returns an error if the square of a residue modulo x needs more
// than [MaxLimbs] limbs, see [ErrCapacityOverflow].
func (x Number) IsPrime() (bool, error) {
	ok, err := x.isPrime()
	if err != nil {
		return false, fmt.Errorf("testing primality of [%v]: %w", x, err)
	}
	return ok, nil
}

func (x Number) isPrime() (bool, error) {
	two := New(2)

	// Special cases
	switch {
	case x.Cmp(two) < 0:
		return false, nil
	case x.Cmp(two) == 0:
		return true, nil
	case x.IsEven():
		return false, nil
	}

	// General case
	return x.isStrongProbablePrime(two)
}

// isStrongProbablePrime reports whether odd x > 2 is a strong probable prime
// to base a.
func (x Number) isStrongProbablePrime(a Number) (bool, error) {
	// x - 1 = 2^k * q, where q is odd
	one := New(1)
	xm1 := x
	xm1.limbs.sub(&x.limbs, &one.limbs)
	q, k := xm1, 0
	for q.IsEven() {
		q.limbs.quoRemLimb(&q.limbs, 2)
		k++
	}

	// Witness
	y, err := a.ExpMod(q, x)
	if err != nil {
		return false, err
	}
	if y.IsOne() || y.Cmp(xm1) == 0 {
		return true, nil
	}

	// Squarings
	for i := 1; i < k; i++ {
		if !y.limbs.mulMod(&y.limbs, &y.limbs, &x.limbs) {
			return false, ErrCapacityOverflow
		}
		switch {
		case y.Cmp(xm1) == 0:
			return true, nil
		case y.IsOne():
			return false, nil
		}
	}
	return false, nil
}
