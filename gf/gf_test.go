package gf

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestMulKnownProducts checks products worked through in FIPS-197 section
// 4.2.
func TestMulKnownProducts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		a, b, want byte
	}{
		{a: 0x57, b: 0x83, want: 0xc1},
		{a: 0x57, b: 0x13, want: 0xfe},
		{a: 0x57, b: 0x02, want: 0xae},
		{a: 0x57, b: 0x04, want: 0x47},
		{a: 0x57, b: 0x08, want: 0x8e},
		{a: 0x57, b: 0x10, want: 0x07},
		{a: 0x80, b: 0x02, want: 0x1b},
		{a: 0xff, b: 0x00, want: 0x00},
	}

	for _, tc := range testCases {
		require.Equalf(t, tc.want, Mul(tc.a, tc.b),
			"Mul(%#02x, %#02x)", tc.a, tc.b)
		require.Equalf(t, tc.want, MulFixed(tc.a, tc.b),
			"MulFixed(%#02x, %#02x)", tc.a, tc.b)
	}
}

// TestMulIdentities walks every pair of field elements.
func TestMulIdentities(t *testing.T) {
	t.Parallel()

	for a := 0; a < 256; a++ {
		x := byte(a)
		require.Zero(t, Mul(x, 0))
		require.Equal(t, x, Mul(x, 1))
		require.Equal(t, Xtime(x), Mul(x, 2))

		for b := 0; b < 256; b++ {
			y := byte(b)
			p := Mul(x, y)
			if p != Mul(y, x) {
				t.Fatalf("Mul not commutative for %#02x, %#02x", x, y)
			}
			if p != MulFixed(x, y) {
				t.Fatalf("MulFixed(%#02x, %#02x) = %#02x, want %#02x",
					x, y, MulFixed(x, y), p)
			}
		}
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()

	require.Zero(t, Inverse(0))
	require.Equal(t, byte(1), Inverse(1))

	// FIPS-197 section 4.2: {53} and {ca} are inverses.
	require.Equal(t, byte(0xca), Inverse(0x53))

	for a := 1; a < 256; a++ {
		inv := Inverse(byte(a))
		require.Equalf(t, byte(1), Mul(byte(a), inv),
			"a=%#02x inv=%#02x", a, inv)
	}
}

func TestPow(t *testing.T) {
	t.Parallel()

	require.Equal(t, byte(1), Pow(0, 0))
	require.Equal(t, byte(1), Pow(0x53, 255))

	// Round constants are successive powers of x.
	rc := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	for i, want := range rc {
		require.Equal(t, want, Pow(0x02, uint(i)))
	}
}

// TestFieldLaws checks that multiplication distributes over addition and
// is associative.
func TestFieldLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Byte().Draw(t, "a")
		b := rapid.Byte().Draw(t, "b")
		c := rapid.Byte().Draw(t, "c")

		if Mul(a, Add(b, c)) != Add(Mul(a, b), Mul(a, c)) {
			t.Fatalf("distributivity failed for %#02x %#02x %#02x",
				a, b, c)
		}
		if Mul(Mul(a, b), c) != Mul(a, Mul(b, c)) {
			t.Fatalf("associativity failed for %#02x %#02x %#02x",
				a, b, c)
		}
	})
}
