// Package batch implements the three batch programs over bignum: primality
// testing, RSA private exponent derivation and RSA ciphertext matching.
// Every task reads whitespace-separated tokens and produces the exact text of
// the output file.
package batch

import (
	"strconv"
	"strings"

	"github.com/govalues/bignum"
	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("bignum.batch")

// Task is a batch computation over the tokens of an input file.
type Task interface {
	// Name identifies the task in logs and metrics.
	Name() string
	// Run consumes the tokens it needs and returns the output text.
	Run(in *Tokens) (string, error)
}

// Primality reads one hexadecimal number and outputs "1" if it is a probable
// prime and "0" otherwise.
type Primality struct {
	Endianness bignum.Endianness
}

func (Primality) Name() string { return "primality" }

func (p Primality) Run(in *Tokens) (string, error) {
	n, err := in.NextHex("number", p.Endianness)
	if err != nil {
		return "", err
	}
	logger.Debugf("testing primality of %d-digit number", n.Prec())

	prime, err := n.IsPrime()
	if err != nil {
		return "", errors.WithMessage(err, "primality test failed")
	}
	if prime {
		return "1", nil
	}
	return "0", nil
}

// KeyGen reads the hexadecimal primes P and Q and the public exponent E and
// outputs the private exponent D = E^-1 mod (P-1)(Q-1) in big-endian
// hexadecimal.
type KeyGen struct {
	Endianness bignum.Endianness
}

func (KeyGen) Name() string { return "keygen" }

func (k KeyGen) Run(in *Tokens) (string, error) {
	p, err := in.NextHex("prime P", k.Endianness)
	if err != nil {
		return "", err
	}
	q, err := in.NextHex("prime Q", k.Endianness)
	if err != nil {
		return "", err
	}
	e, err := in.NextHex("public exponent E", k.Endianness)
	if err != nil {
		return "", err
	}

	d, err := PrivateExponent(p, q, e)
	if err != nil {
		return "", err
	}
	return d.Hex()
}

// PrivateExponent returns E^-1 mod (P-1)(Q-1).
func PrivateExponent(p, q, e bignum.Number) (bignum.Number, error) {
	one := bignum.New(1)
	pm1, err := p.Sub(one)
	if err != nil {
		return bignum.Number{}, errors.WithMessage(err, "computing P-1")
	}
	qm1, err := q.Sub(one)
	if err != nil {
		return bignum.Number{}, errors.WithMessage(err, "computing Q-1")
	}
	phi, err := pm1.Mul(qm1)
	if err != nil {
		return bignum.Number{}, errors.WithMessage(err, "computing totient")
	}
	logger.Debugf("totient has %d digits", phi.Prec())

	d, err := e.InverseMod(phi)
	if err != nil {
		return bignum.Number{}, errors.WithMessage(err, "computing private exponent")
	}
	return d, nil
}

// Match reads the counts x and y, the modulus N, the public exponent E,
// x plaintexts and y ciphertexts.
// For every plaintext m it outputs the index of m^E mod N among the
// ciphertexts or -1, separated by single spaces.
type Match struct {
	Endianness bignum.Endianness
}

func (Match) Name() string { return "match" }

func (m Match) Run(in *Tokens) (string, error) {
	x, err := in.NextCount("plaintext count")
	if err != nil {
		return "", err
	}
	y, err := in.NextCount("ciphertext count")
	if err != nil {
		return "", err
	}
	n, err := in.NextHex("modulus N", m.Endianness)
	if err != nil {
		return "", err
	}
	e, err := in.NextHex("public exponent E", m.Endianness)
	if err != nil {
		return "", err
	}
	if rem := in.Remaining(); x > rem || y > rem-x {
		return "", errors.Errorf("input declares %d plaintext(s) and %d ciphertext(s), but only %d token(s) remain", x, y, rem)
	}

	plaintexts := make([]bignum.Number, x)
	for i := range plaintexts {
		if plaintexts[i], err = in.NextHex("plaintext "+strconv.Itoa(i), m.Endianness); err != nil {
			return "", err
		}
	}
	ciphertexts := make([]bignum.Number, y)
	for j := range ciphertexts {
		if ciphertexts[j], err = in.NextHex("ciphertext "+strconv.Itoa(j), m.Endianness); err != nil {
			return "", err
		}
	}
	logger.Debugf("matching %d plaintext(s) against %d ciphertext(s)", x, y)

	out := make([]string, x)
	for i, msg := range plaintexts {
		c, err := msg.ExpMod(e, n)
		if err != nil {
			return "", errors.WithMessagef(err, "encrypting plaintext %d", i)
		}
		idx := FindIndex(ciphertexts, c)
		logger.Debugf("plaintext %d encrypts to ciphertext %d", i, idx)
		out[i] = strconv.Itoa(idx)
	}
	return strings.Join(out, " "), nil
}

// FindIndex returns the index of the first occurrence of x in xs or -1.
func FindIndex(xs []bignum.Number, x bignum.Number) int {
	for i := range xs {
		if xs[i].Cmp(x) == 0 {
			return i
		}
	}
	return -1
}
