// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// KnownAnswer is a single AES-128 test vector, hex encoded.
type KnownAnswer struct {
	Name       string
	Key        string
	Plaintext  string
	Ciphertext string
}

// KnownAnswers returns the vectors checked by SelfTest.
func KnownAnswers() []KnownAnswer {
	return []KnownAnswer{
		{
			Name:       "FIPS-197 C.1",
			Key:        "000102030405060708090a0b0c0d0e0f",
			Plaintext:  "00112233445566778899aabbccddeeff",
			Ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			Name:       "FIPS-197 B",
			Key:        "2b7e151628aed2a6abf7158809cf4f3c",
			Plaintext:  "3243f6a8885a308d313198a2e0370734",
			Ciphertext: "3925841d02dc09fbdc118597196a0b32",
		},
	}
}

// Check encrypts the vector's plaintext and decrypts its ciphertext,
// returning an error if either direction disagrees with the vector.
func (k KnownAnswer) Check() error {
	key, err := hex.DecodeString(k.Key)
	if err != nil {
		return fmt.Errorf("%s: key: %w", k.Name, err)
	}
	pt, err := hex.DecodeString(k.Plaintext)
	if err != nil {
		return fmt.Errorf("%s: plaintext: %w", k.Name, err)
	}
	ct, err := hex.DecodeString(k.Ciphertext)
	if err != nil {
		return fmt.Errorf("%s: ciphertext: %w", k.Name, err)
	}

	s, err := ExpandKey(key)
	if err != nil {
		return fmt.Errorf("%s: %w", k.Name, err)
	}

	out := make([]byte, BlockSize)
	if err := EncryptBlock(s, out, pt); err != nil {
		return fmt.Errorf("%s: %w", k.Name, err)
	}
	if !bytes.Equal(out, ct) {
		return fmt.Errorf("%s: encrypt got %x, want %x", k.Name, out, ct)
	}

	if err := DecryptBlock(s, out, ct); err != nil {
		return fmt.Errorf("%s: %w", k.Name, err)
	}
	if !bytes.Equal(out, pt) {
		return fmt.Errorf("%s: decrypt got %x, want %x", k.Name, out, pt)
	}

	return nil
}

// SelfTest runs every vector from KnownAnswers and returns the first
// failure.
func SelfTest() error {
	for _, k := range KnownAnswers() {
		if err := k.Check(); err != nil {
			return fmt.Errorf("aes128: self-test failed: %w", err)
		}
		log.Debugf("Self-test vector %q passed", k.Name)
	}
	return nil
}
