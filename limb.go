package bignum

const (
	MaxLimbs = 309          // capacity of a number in base-100 limbs
	MaxPrec  = 2 * MaxLimbs // maximum length of the magnitude in decimal digits
	limbBase = 100          // radix of a limb
)

// mag (MAGnitude) is a fixed-capacity base-100 numeral.
// Index 0 holds the least significant limb, every limb is in range [0, 99].
type mag [MaxLimbs]byte

// pow10 is a cache of powers of 10 that fit into a limb.
var pow10 = [...]byte{1, 10}

// len returns number of significant limbs in z.
// len assumes that 0 has no limbs.
func (z *mag) len() int {
	for i := MaxLimbs - 1; i >= 0; i-- {
		if z[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// prec returns length of z in decimal digits.
// prec assumes that 0 has no digits.
func (z *mag) prec() int {
	n := z.len()
	if n == 0 {
		return 0
	}
	if z[n-1] < pow10[1] {
		return 2*n - 1
	}
	return 2 * n
}

func (z *mag) isZero() bool {
	return z.len() == 0
}

func (z *mag) isOdd() bool {
	// 100 is even, so the parity is decided by the lowest limb
	return z[0]&1 != 0
}

// cmp compares magnitudes and returns:
//
//	-1 if z < x
//	 0 if z == x
//	+1 if z > x
func (z *mag) cmp(x *mag) int {
	return z.cmpN(x, MaxLimbs)
}

// cmpN is like cmp, but only the lowest k limbs are compared.
func (z *mag) cmpN(x *mag, k int) int {
	for i := k - 1; i >= 0; i-- {
		switch {
		case z[i] < x[i]:
			return -1
		case z[i] > x[i]:
			return 1
		}
	}
	return 0
}

// setUint64 sets z = x.
// A uint64 never needs more than 10 limbs.
func (z *mag) setUint64(x uint64) {
	*z = mag{}
	for i := 0; x != 0; i++ {
		z[i] = byte(x % limbBase)
		x /= limbBase
	}
}

// add calculates z = x + y and checks overflow.
// If overflow occurs, z is left in an unspecified state.
func (z *mag) add(x, y *mag) bool {
	var carry byte
	for i := 0; i < MaxLimbs; i++ {
		s := x[i] + y[i] + carry // at most 199
		if s >= limbBase {
			z[i] = s - limbBase
			carry = 1
		} else {
			z[i] = s
			carry = 0
		}
	}
	return carry == 0
}

// sub calculates z = x - y.
// If x < y, the result is unpredictable.
func (z *mag) sub(x, y *mag) {
	z.subN(x, y, MaxLimbs)
}

// subN is like sub, but only the lowest k limbs are processed.
func (z *mag) subN(x, y *mag, k int) {
	var borrow byte
	for i := 0; i < k; i++ {
		d := int(x[i]) - int(y[i]) - int(borrow)
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = byte(d)
	}
}

// mulLimbN calculates z = x * d over the lowest k limbs and checks that the
// product fits into them.
// If overflow occurs, z is left in an unspecified state.
func (z *mag) mulLimbN(x *mag, d byte, k int) bool {
	var carry uint
	for i := 0; i < k; i++ {
		v := uint(x[i])*uint(d) + carry
		z[i] = byte(v % limbBase)
		carry = v / limbBase
	}
	return carry == 0
}

// mul calculates z = x * y using schoolbook multiplication and checks overflow.
// z is not modified if overflow occurs.
func (z *mag) mul(x, y *mag) bool {
	xlen, ylen := x.len(), y.len()

	// Special cases
	switch {
	case xlen == 0 || ylen == 0:
		*z = mag{}
		return true
	case xlen+ylen-1 > MaxLimbs: // the product is at least 100^(xlen+ylen-2)
		return false
	}

	// General case
	var acc [2 * MaxLimbs]uint32
	for i := 0; i < xlen; i++ {
		if x[i] == 0 {
			continue
		}
		xi := uint32(x[i])
		for j := 0; j < ylen; j++ {
			acc[i+j] += xi * uint32(y[j])
		}
	}
	var carry uint32
	for k := range acc {
		v := acc[k] + carry
		acc[k] = v % limbBase
		carry = v / limbBase
	}
	for k := MaxLimbs; k < len(acc); k++ {
		if acc[k] != 0 {
			return false
		}
	}
	for k := 0; k < MaxLimbs; k++ {
		z[k] = byte(acc[k])
	}
	return true
}

// shl (SHift Left) calculates z = x * 100 + d, which prepends a limb to the
// least significant end of x, and checks overflow.
// z is not modified if overflow occurs.
func (z *mag) shl(x *mag, d byte) bool {
	if x[MaxLimbs-1] != 0 {
		return false
	}
	copy(z[1:], x[:MaxLimbs-1])
	z[0] = d
	return true
}

// quoRemLimb calculates z = ⌊x / d⌋ and returns x - z * d.
// d must be in range [1, 99].
func (z *mag) quoRemLimb(x *mag, d byte) byte {
	var r uint
	for i := MaxLimbs - 1; i >= 0; i-- {
		v := r*limbBase + uint(x[i])
		z[i] = byte(v / uint(d))
		r = v % uint(d)
	}
	return byte(r)
}

// top returns the value of n consecutive limbs of z starting at position i
// and going down, where limbs outside of z are treated as 0.
func (z *mag) top(i, n int) uint {
	var v uint
	for k := i; k > i-n; k-- {
		v *= limbBase
		if 0 <= k && k < MaxLimbs {
			v += uint(z[k])
		}
	}
	return v
}

// quoDigit calculates d = ⌊p / y⌋ and r = p - d * y.
// The partial remainder p must be less than 100 * y, so that the quotient fits
// into a single limb.
// y must not be zero, p and y must fit into k limbs and y must have n limbs.
func quoDigit(p, y *mag, n, k int) (byte, mag) {
	// Estimate from the leading limbs.
	// The estimate is off by at most a couple of units, the loops below fix it.
	est := p.top(n, 3) / y.top(n-1, 2)
	if est > limbBase-1 {
		est = limbBase - 1
	}

	var t, r mag
	for {
		if t.mulLimbN(y, byte(est), k) && t.cmpN(p, k) <= 0 {
			break
		}
		est--
	}
	r.subN(p, &t, k)
	for r.cmpN(y, k) >= 0 {
		r.subN(&r, y, k)
		est++
	}
	return byte(est), r
}

// quoRem calculates q = ⌊x / y⌋ and r = x - q * y using long division.
// y must not be zero.
func quoRem(x, y *mag) (q, r mag) {
	n := y.len()

	// Special cases
	switch {
	case n == 1:
		r[0] = q.quoRemLimb(x, y[0])
		return q, r
	case x.cmp(y) < 0:
		return q, *x
	case n == MaxLimbs:
		// x < 100 * y, so the quotient has a single limb
		q[0], r = quoDigit(x, y, n, MaxLimbs)
		return q, r
	}

	// General case
	for i := x.len() - 1; i >= 0; i-- {
		// r < y and y has fewer than MaxLimbs limbs, so shl cannot overflow
		r.shl(&r, x[i])
		q[i], r = quoDigit(&r, y, n, n+1)
	}
	return q, r
}
