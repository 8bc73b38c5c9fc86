package bignum

import (
	"errors"
	"math/big"
	"testing"
)

func TestNat_ZeroValue(t *testing.T) {
	got := Nat{}
	if !got.IsZero() {
		t.Errorf("Nat{}.IsZero() = false, want true")
	}
	if got.String() != "0" {
		t.Errorf("Nat{}.String() = %q, want %q", got, "0")
	}
	if got.Cmp(NewNat(0)) != 0 {
		t.Errorf("Nat{}.Cmp(NewNat(0)) != 0")
	}
}

func TestParseNat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s, want string
		}{
			{"0", "0"},
			{"000", "0"},
			{"7", "7"},
			{"007", "7"},
			{"1234567890123456789012345678901234567890", "1234567890123456789012345678901234567890"},
		}
		for _, tt := range tests {
			got, err := ParseNat(tt.s)
			if err != nil {
				t.Errorf("ParseNat(%q) failed: %v", tt.s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseNat(%q) = %q, want %q", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "-1", "+1", "1a", " 1", "1.0"}
		for _, s := range tests {
			_, err := ParseNat(s)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("ParseNat(%q) = %v, want %v", s, err, ErrMalformedInput)
			}
		}
	})
}

func TestMustParseNat(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseNat(\"x\") did not panic")
		}
	}()
	MustParseNat("x")
}

func TestNat_Digit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x       string
			i, want int
			wantLen int
		}{
			{"0", 0, 0, 1},
			{"5", 0, 5, 1},
			{"1230", 0, 0, 4},
			{"1230", 1, 3, 4},
			{"1230", 3, 1, 4},
		}
		for _, tt := range tests {
			x := MustParseNat(tt.x)
			got, err := x.Digit(tt.i)
			if err != nil {
				t.Errorf("%q.Digit(%v) failed: %v", x, tt.i, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Digit(%v) = %v, want %v", x, tt.i, got, tt.want)
			}
			if x.Len() != tt.wantLen {
				t.Errorf("%q.Len() = %v, want %v", x, x.Len(), tt.wantLen)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			x string
			i int
		}{
			{"0", 1},
			{"0", -1},
			{"1230", 4},
		}
		for _, tt := range tests {
			x := MustParseNat(tt.x)
			_, err := x.Digit(tt.i)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("%q.Digit(%v) = %v, want %v", x, tt.i, err, ErrIndexOutOfRange)
			}
		}
	})
}

func TestNat_Cmp(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"0", "1", -1},
		{"10", "9", 1},
		{"123", "124", -1},
		{"124", "123", 1},
		{"999", "1000", -1},
	}
	for _, tt := range tests {
		x, y := MustParseNat(tt.x), MustParseNat(tt.y)
		if got := x.Cmp(y); got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", x, y, got, tt.want)
		}
	}
}

func TestNat_Inc(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "1"},
		{"9", "10"},
		{"999", "1000"},
		{"1234", "1235"},
	}
	for _, tt := range tests {
		x := MustParseNat(tt.x)
		if got := x.Inc(); got.String() != tt.want {
			t.Errorf("%q.Inc() = %q, want %q", x, got, tt.want)
		}
	}
}

func TestNat_Dec(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, want string
		}{
			{"1", "0"},
			{"10", "9"},
			{"1000", "999"},
		}
		for _, tt := range tests {
			x := MustParseNat(tt.x)
			got, err := x.Dec()
			if err != nil {
				t.Errorf("%q.Dec() failed: %v", x, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Dec() = %q, want %q", x, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := Nat{}.Dec()
		if !errors.Is(err, ErrUnderflow) {
			t.Errorf("0.Dec() = %v, want %v", err, ErrUnderflow)
		}
	})
}

func TestNat_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want string
		}{
			{"0", "0", "0"},
			{"5", "5", "0"},
			{"1000", "1", "999"},
			{"12345", "345", "12000"},
		}
		for _, tt := range tests {
			x, y := MustParseNat(tt.x), MustParseNat(tt.y)
			got, err := x.Sub(y)
			if err != nil {
				t.Errorf("%q.Sub(%q) failed: %v", x, y, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Sub(%q) = %q, want %q", x, y, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		x, y := MustParseNat("5"), MustParseNat("6")
		_, err := x.Sub(y)
		if !errors.Is(err, ErrUnderflow) {
			t.Errorf("%q.Sub(%q) = %v, want %v", x, y, err, ErrUnderflow)
		}
	})
}

func TestNat_QuoRem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, wantQ, wantR string
		}{
			{"0", "16", "0", "0"},
			{"15", "16", "0", "15"},
			{"16", "16", "1", "0"},
			{"255", "16", "15", "15"},
			{"1000000", "7", "142857", "1"},
			{"340282366920938463463374607431768211456", "18446744073709551616", "18446744073709551616", "0"},
		}
		for _, tt := range tests {
			x, y := MustParseNat(tt.x), MustParseNat(tt.y)
			gotQ, gotR, err := x.QuoRem(y)
			if err != nil {
				t.Errorf("%q.QuoRem(%q) failed: %v", x, y, err)
				continue
			}
			if gotQ.String() != tt.wantQ || gotR.String() != tt.wantR {
				t.Errorf("%q.QuoRem(%q) = (%q, %q), want (%q, %q)", x, y, gotQ, gotR, tt.wantQ, tt.wantR)
			}
			if q, _ := x.Quo(y); q.Cmp(gotQ) != 0 {
				t.Errorf("%q.Quo(%q) = %q, want %q", x, y, q, gotQ)
			}
			if r, _ := x.Rem(y); r.Cmp(gotR) != 0 {
				t.Errorf("%q.Rem(%q) = %q, want %q", x, y, r, gotR)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		x := MustParseNat("10")
		if _, _, err := x.QuoRem(Nat{}); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.QuoRem(0) = %v, want %v", x, err, ErrDivisionByZero)
		}
		if _, err := x.Quo(Nat{}); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.Quo(0) = %v, want %v", x, err, ErrDivisionByZero)
		}
		if _, err := x.Rem(Nat{}); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q.Rem(0) = %v, want %v", x, err, ErrDivisionByZero)
		}
	})
}

func FuzzNat_Arith(f *testing.F) {
	for _, x := range []uint64{0, 1, 9, 10, 16, 255, 4096, 1 << 32, 1<<64 - 1} {
		for _, y := range []uint64{0, 1, 7, 16, 99, 1 << 20, 1<<64 - 1} {
			f.Add(x, y)
		}
	}

	f.Fuzz(
		func(t *testing.T, a, b uint64) {
			x, y := NewNat(a), NewNat(b)
			bx, by := new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)

			if got, want := x.Add(y), new(big.Int).Add(bx, by); got.String() != want.String() {
				t.Errorf("%q.Add(%q) = %q, whereas big.Int.Add = %q", x, y, got, want)
			}
			if got, want := x.Mul(y), new(big.Int).Mul(bx, by); got.String() != want.String() {
				t.Errorf("%q.Mul(%q) = %q, whereas big.Int.Mul = %q", x, y, got, want)
			}
			if got, err := x.Sub(y); err == nil {
				if want := new(big.Int).Sub(bx, by); got.String() != want.String() {
					t.Errorf("%q.Sub(%q) = %q, whereas big.Int.Sub = %q", x, y, got, want)
				}
			} else if a >= b {
				t.Errorf("%q.Sub(%q) failed: %v", x, y, err)
			}
			if b == 0 {
				return
			}
			gotQ, gotR, err := x.QuoRem(y)
			if err != nil {
				t.Errorf("%q.QuoRem(%q) failed: %v", x, y, err)
				return
			}
			wantQ, wantR := new(big.Int).QuoRem(bx, by, new(big.Int))
			if gotQ.String() != wantQ.String() || gotR.String() != wantR.String() {
				t.Errorf("%q.QuoRem(%q) = (%q, %q), whereas big.Int.QuoRem = (%q, %q)", x, y, gotQ, gotR, wantQ, wantR)
			}
		},
	)
}
