package batch

import (
	"strings"
	"testing"

	"github.com/govalues/bignum"
	"github.com/hyperledger/fabric-lib-go/common/metrics"
	"github.com/hyperledger/fabric-lib-go/common/metrics/disabled"
	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, input string) *Tokens {
	in, err := ReadTokens(strings.NewReader(input))
	require.NoError(t, err)
	return in
}

func TestReadTokens(t *testing.T) {
	in := tokens(t, "  2 3\nCA1\t11 \r\n41\n")
	require.Equal(t, 5, in.Remaining())

	n, err := in.NextCount("x")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	tok, err := in.Next("y")
	require.NoError(t, err)
	require.Equal(t, "3", tok)

	x, err := in.NextHex("N", bignum.BigEndian)
	require.NoError(t, err)
	require.Equal(t, bignum.New(3233), x)
	require.Equal(t, 2, in.Remaining())

	_, err = in.Next("E")
	require.NoError(t, err)
	_, err = in.Next("m")
	require.NoError(t, err)
	_, err = in.Next("c")
	require.EqualError(t, err, "missing c: expected token 6, input has 5")
}

func TestTokensErrors(t *testing.T) {
	t.Run("bad-count", func(t *testing.T) {
		_, err := tokens(t, "x1").NextCount("plaintext count")
		require.EqualError(t, err, `invalid plaintext count "x1": not a decimal integer`)
	})

	t.Run("negative-count", func(t *testing.T) {
		_, err := tokens(t, "-1").NextCount("plaintext count")
		require.EqualError(t, err, "invalid plaintext count -1: must not be negative")
	})

	t.Run("bad-hex", func(t *testing.T) {
		_, err := tokens(t, "XYZ").NextHex("modulus N", bignum.BigEndian)
		require.ErrorIs(t, err, bignum.ErrMalformedInput)
		require.ErrorContains(t, err, "invalid modulus N")
	})

	t.Run("too-long", func(t *testing.T) {
		_, err := ReadTokens(strings.NewReader(strings.Repeat("F", maxTokenSize+1)))
		require.ErrorContains(t, err, "error reading input")
	})
}

func TestPrimality(t *testing.T) {
	tests := []struct {
		input string
		e     bignum.Endianness
		want  string
	}{
		{"61", bignum.BigEndian, "1"},
		{"64", bignum.BigEndian, "0"},
		{"16", bignum.LittleEndian, "1"},
		{"2", bignum.BigEndian, "1"},
		{"1", bignum.BigEndian, "0"},
		{"0", bignum.BigEndian, "0"},
		{"1EEF", bignum.BigEndian, "1"},
		{"7FF", bignum.BigEndian, "1"},
		{"7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", bignum.BigEndian, "1"},
	}
	for _, tt := range tests {
		got, err := Primality{Endianness: tt.e}.Run(tokens(t, tt.input))
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.want, got, tt.input)
	}

	t.Run("missing-number", func(t *testing.T) {
		_, err := Primality{}.Run(tokens(t, ""))
		require.EqualError(t, err, "missing number: expected token 1, input has 0")
	})

	t.Run("malformed-number", func(t *testing.T) {
		_, err := Primality{}.Run(tokens(t, "6G"))
		require.ErrorIs(t, err, bignum.ErrMalformedInput)
	})
}

func TestKeyGen(t *testing.T) {
	t.Run("green-path", func(t *testing.T) {
		got, err := KeyGen{}.Run(tokens(t, "3D 35 11"))
		require.NoError(t, err)
		require.Equal(t, "AC1", got)
	})

	t.Run("little-endian", func(t *testing.T) {
		got, err := KeyGen{Endianness: bignum.LittleEndian}.Run(tokens(t, "D3 53 11"))
		require.NoError(t, err)
		require.Equal(t, "AC1", got)
	})

	t.Run("inverse-property", func(t *testing.T) {
		p, q, e := bignum.New(61), bignum.New(53), bignum.New(17)
		d, err := PrivateExponent(p, q, e)
		require.NoError(t, err)

		phi := bignum.New(60 * 52)
		ed, err := e.Mul(d)
		require.NoError(t, err)
		r, err := ed.Mod(phi)
		require.NoError(t, err)
		require.Equal(t, bignum.New(1), r)
	})

	t.Run("no-inverse", func(t *testing.T) {
		_, err := KeyGen{}.Run(tokens(t, "3D 35 2"))
		require.ErrorIs(t, err, bignum.ErrNoInverse)
		require.ErrorContains(t, err, "computing private exponent")
	})

	t.Run("missing-exponent", func(t *testing.T) {
		_, err := KeyGen{}.Run(tokens(t, "3D 35"))
		require.EqualError(t, err, "missing public exponent E: expected token 3, input has 2")
	})
}

func TestMatch(t *testing.T) {
	t.Run("green-path", func(t *testing.T) {
		got, err := Match{}.Run(tokens(t, "3 3 CA1 11 41 2A 0 0AE6 AE6 9FD"))
		require.NoError(t, err)
		require.Equal(t, "0 2 -1", got)
	})

	t.Run("no-plaintexts", func(t *testing.T) {
		got, err := Match{}.Run(tokens(t, "0 1 CA1 11 AE6"))
		require.NoError(t, err)
		require.Equal(t, "", got)
	})

	t.Run("no-ciphertexts", func(t *testing.T) {
		got, err := Match{}.Run(tokens(t, "2 0 CA1 11 41 2A"))
		require.NoError(t, err)
		require.Equal(t, "-1 -1", got)
	})

	t.Run("declared-too-many", func(t *testing.T) {
		_, err := Match{}.Run(tokens(t, "3 0 CA1 11 41"))
		require.EqualError(t, err, "input declares 3 plaintext(s) and 0 ciphertext(s), but only 1 token(s) remain")
	})

	t.Run("zero-modulus", func(t *testing.T) {
		_, err := Match{}.Run(tokens(t, "1 1 0 11 41 AE6"))
		require.ErrorIs(t, err, bignum.ErrInvalidModulus)
		require.ErrorContains(t, err, "encrypting plaintext 0")
	})

	t.Run("malformed-ciphertext", func(t *testing.T) {
		_, err := Match{}.Run(tokens(t, "1 1 CA1 11 41 AEX"))
		require.ErrorIs(t, err, bignum.ErrMalformedInput)
		require.ErrorContains(t, err, "invalid ciphertext 0")
	})
}

func TestFindIndex(t *testing.T) {
	xs := []bignum.Number{bignum.New(5), bignum.New(7), bignum.New(5)}
	require.Equal(t, 0, FindIndex(xs, bignum.New(5)))
	require.Equal(t, 1, FindIndex(xs, bignum.New(7)))
	require.Equal(t, -1, FindIndex(xs, bignum.New(9)))
	require.Equal(t, -1, FindIndex(nil, bignum.New(5)))
}

type fakeCounter struct {
	labels []string
	total  float64
}

func (c *fakeCounter) With(labelValues ...string) metrics.Counter {
	c.labels = labelValues
	return c
}

func (c *fakeCounter) Add(delta float64) { c.total += delta }

type fakeHistogram struct {
	labels       []string
	observations int
}

func (h *fakeHistogram) With(labelValues ...string) metrics.Histogram {
	h.labels = labelValues
	return h
}

func (h *fakeHistogram) Observe(float64) { h.observations++ }

type fakeProvider struct {
	counter   *fakeCounter
	histogram *fakeHistogram
}

func (p *fakeProvider) NewCounter(metrics.CounterOpts) metrics.Counter { return p.counter }

func (p *fakeProvider) NewGauge(o metrics.GaugeOpts) metrics.Gauge {
	return (&disabled.Provider{}).NewGauge(o)
}

func (p *fakeProvider) NewHistogram(metrics.HistogramOpts) metrics.Histogram { return p.histogram }

func TestRunner(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := &fakeProvider{counter: &fakeCounter{}, histogram: &fakeHistogram{}}
		r := NewRunner(p)

		out, err := r.Process(Primality{}, strings.NewReader("61 trailing tokens"))
		require.NoError(t, err)
		require.Equal(t, "1", out)
		require.Equal(t, []string{"task", "primality", "success", "true"}, p.counter.labels)
		require.Equal(t, float64(1), p.counter.total)
		require.Equal(t, []string{"task", "primality"}, p.histogram.labels)
		require.Equal(t, 1, p.histogram.observations)
	})

	t.Run("failure", func(t *testing.T) {
		p := &fakeProvider{counter: &fakeCounter{}, histogram: &fakeHistogram{}}
		r := NewRunner(p)

		_, err := r.Process(KeyGen{}, strings.NewReader("3D 35 2"))
		require.ErrorIs(t, err, bignum.ErrNoInverse)
		require.ErrorContains(t, err, "keygen task failed")
		require.Equal(t, []string{"task", "keygen", "success", "false"}, p.counter.labels)
	})

	t.Run("disabled-metrics", func(t *testing.T) {
		r := NewRunner(&disabled.Provider{})

		out, err := r.Process(Match{}, strings.NewReader("1 1 CA1 11 41 AE6"))
		require.NoError(t, err)
		require.Equal(t, "0", out)
	})
}
