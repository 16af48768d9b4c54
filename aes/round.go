// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import "github.com/xtls/aes128/gf"

// The state is a 4x4 byte matrix stored column by column: s[r+4*c] holds
// row r of column c.

func subBytes(s *[BlockSize]byte) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func invSubBytes(s *[BlockSize]byte) {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r columns.
func shiftRows(s *[BlockSize]byte) {
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

// invShiftRows rotates row r right by r columns.
func invShiftRows(s *[BlockSize]byte) {
	s[1], s[5], s[9], s[13] = s[13], s[1], s[5], s[9]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[7], s[11], s[15], s[3]
}

// mixColumns multiplies every column by the circulant matrix
//
//	[02 03 01 01]
//	[01 02 03 01]
//	[01 01 02 03]
//	[03 01 01 02]
//
// using 2a + 3b + c + d = 2(a^b) ^ a ^ (a^b^c^d).
func mixColumns(s *[BlockSize]byte) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		t := a0 ^ a1 ^ a2 ^ a3

		s[c] = gf.MulFixed(a0^a1, 0x02) ^ a0 ^ t
		s[c+1] = gf.MulFixed(a1^a2, 0x02) ^ a1 ^ t
		s[c+2] = gf.MulFixed(a2^a3, 0x02) ^ a2 ^ t
		s[c+3] = gf.MulFixed(a3^a0, 0x02) ^ a3 ^ t
	}
}

// invMixColumns multiplies every column by the inverse circulant matrix
// {0e 0b 0d 09}. It shares the 9x term between all four outputs and the
// two 4x terms between alternate outputs instead of doing sixteen
// multiplications per column.
//
// The multiplier in 9*(a0^a1^a2^a3) is state-dependent, which is why the
// fixed-iteration multiply is used here.
func invMixColumns(s *[BlockSize]byte) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]

		t := a3 ^ a2
		u := a1 ^ a0
		v := gf.MulFixed(0x09, t^u)
		w := v ^ gf.MulFixed(a2^a0, 0x04)
		v ^= gf.MulFixed(a3^a1, 0x04)

		s[c+3] = a3 ^ v ^ gf.MulFixed(a0^a3, 0x02)
		s[c+2] = a2 ^ w ^ gf.MulFixed(t, 0x02)
		s[c+1] = a1 ^ v ^ gf.MulFixed(a2^a1, 0x02)
		s[c] = a0 ^ w ^ gf.MulFixed(u, 0x02)
	}
}

func addRoundKey(s, rk *[BlockSize]byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}

// encryptRound is one full forward round. Byte substitution commutes
// with the row rotation, so rotating first gives the same state as
// FIPS-197's SubBytes, ShiftRows order.
func encryptRound(s, rk *[BlockSize]byte) {
	shiftRows(s)
	subBytes(s)
	mixColumns(s)
	addRoundKey(s, rk)
}

// decryptRound undoes encryptRound when rk is the same round key:
// AddRoundKey, InvMixColumns, InvShiftRows, InvSubBytes.
func decryptRound(s, rk *[BlockSize]byte) {
	addRoundKey(s, rk)
	invMixColumns(s)
	invShiftRows(s)
	invSubBytes(s)
}
