// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf implements arithmetic in GF(2^8), the field of 256 elements
// defined by the irreducible polynomial x^8 + x^4 + x^3 + x + 1 (0x11b).
// Polynomial coefficients are the bits of a byte, least significant bit
// first.
package gf

// Poly is the low byte of the reduction polynomial; the x^8 term is
// implicit.
const Poly = 0x1b

// Add returns a + b. Addition and subtraction in GF(2^8) are both XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Xtime returns a multiplied by x, reduced modulo the field polynomial.
func Xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ Poly
	}
	return a << 1
}

// Mul returns the product a*b.
//
// Mul stops as soon as the remaining bits of b are all zero, so its running
// time depends on the value of b. Use MulFixed where b may be secret.
func Mul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = Xtime(a)
		b >>= 1
	}
	return p
}

// MulFixed returns the product a*b like Mul, but always runs all eight
// iterations and selects terms with masks instead of branches.
func MulFixed(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		p ^= a & -(b & 1)
		a = a<<1 ^ Poly&-(a>>7)
		b >>= 1
	}
	return p
}

// Pow returns a raised to the n-th power. Pow(a, 0) is 1 for every a.
func Pow(a byte, n uint) byte {
	r := byte(1)
	for n > 0 {
		if n&1 != 0 {
			r = MulFixed(r, a)
		}
		a = MulFixed(a, a)
		n >>= 1
	}
	return r
}

// Inverse returns the multiplicative inverse of a. Zero has no inverse and
// maps to zero, which is the convention the AES S-box is built on.
func Inverse(a byte) byte {
	// The multiplicative group has order 255, so a^254 = a^-1.
	return Pow(a, 254)
}
