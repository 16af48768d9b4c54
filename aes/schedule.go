// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

// Schedule is an expanded AES-128 key: Rounds+1 round keys of BlockSize
// bytes each, stored back to back. Round key 0 is the cipher key itself.
//
// A Schedule is never modified by this package after it is produced, so a
// single value may be shared by any number of goroutines.
type Schedule [ScheduleSize]byte

// ExpandKey runs the AES-128 key expansion over key, which must be exactly
// KeySize bytes.
func ExpandKey(key []byte) (*Schedule, error) {
	if len(key) != KeySize {
		log.Debugf("Rejected key of %d bytes for expansion", len(key))
		return nil, KeySizeError(len(key))
	}

	s := new(Schedule)
	expandKey((*[KeySize]byte)(key), s)

	log.Tracef("Expanded key into %d round keys", Rounds+1)

	return s, nil
}

// ScheduleFromBytes loads a schedule previously obtained from
// Schedule.Bytes. The buffer must be exactly ScheduleSize bytes. The round
// keys are taken as given and are not checked against any key.
func ScheduleFromBytes(b []byte) (*Schedule, error) {
	if len(b) != ScheduleSize {
		log.Debugf("Rejected schedule of %d bytes", len(b))
		return nil, &LengthError{
			What: "schedule", Got: len(b), Want: ScheduleSize,
		}
	}

	s := new(Schedule)
	copy(s[:], b)
	return s, nil
}

// RoundKey returns a copy of round key i. It panics if i is not in
// [0, Rounds].
func (s *Schedule) RoundKey(i int) [BlockSize]byte {
	return *s.roundKey(i)
}

// Bytes returns a copy of the full schedule.
func (s *Schedule) Bytes() []byte {
	b := make([]byte, ScheduleSize)
	copy(b, s[:])
	return b
}

func (s *Schedule) roundKey(i int) *[BlockSize]byte {
	return (*[BlockSize]byte)(s[i*BlockSize : (i+1)*BlockSize])
}

// Key expansion algorithm. See FIPS-197, Figure 11.
//
// Each round key is built from the previous one. The last word of the
// previous round key is rotated left one byte, run through the S-box and
// has the round constant mixed into its first byte; the result is XORed
// with the previous round key's first word. Every following word is the
// previous round key's word XOR the word just produced.
func expandKey(key *[KeySize]byte, s *Schedule) {
	copy(s[:KeySize], key[:])

	for i := 0; i < Rounds; i++ {
		prev := s.roundKey(i)
		next := s.roundKey(i + 1)

		// RotWord and SubWord on the last word, then Rcon.
		t0 := sbox[prev[13]] ^ rcon[i]
		t1 := sbox[prev[14]]
		t2 := sbox[prev[15]]
		t3 := sbox[prev[12]]

		next[0] = prev[0] ^ t0
		next[1] = prev[1] ^ t1
		next[2] = prev[2] ^ t2
		next[3] = prev[3] ^ t3

		for j := 4; j < BlockSize; j++ {
			next[j] = prev[j] ^ next[j-4]
		}
	}
}
