// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aes implements the AES-128 block cipher as defined in FIPS-197:
// key expansion plus the forward and inverse cipher on single 16-byte
// blocks.
//
// The package does not implement any mode of operation or padding. Callers
// chain blocks themselves, or wrap a *Block with crypto/cipher.
//
// The implementation is a byte-oriented table implementation. S-box lookups
// are indexed by secret data, so it is not resistant to cache-timing
// attacks. Field multiplication in the column mixing step always runs a
// fixed number of iterations; see gf.MulFixed.
package aes

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// KeySize is the AES-128 key size in bytes.
	KeySize = 16

	// Rounds is the number of rounds for a 128-bit key.
	Rounds = 10

	// ScheduleSize is the size in bytes of an expanded key: one round key
	// per round plus the initial whitening key.
	ScheduleSize = (Rounds + 1) * BlockSize
)

// ErrInvalidLength matches every error returned for a key, block or
// schedule buffer of the wrong size.
var ErrInvalidLength = errors.New("aes128: invalid length")

// KeySizeError is returned for keys that are not KeySize bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes128: invalid key size " + strconv.Itoa(int(k))
}

// Is makes errors.Is(err, ErrInvalidLength) hold for key size errors.
func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidLength
}

// LengthError is returned when a block or schedule buffer has the wrong
// size.
type LengthError struct {
	// What names the offending buffer: "src", "dst" or "schedule".
	What string
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("aes128: invalid %s length %d, want %d",
		e.What, e.Got, e.Want)
}

// Is makes errors.Is(err, ErrInvalidLength) hold for length errors.
func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// A Block is an instance of AES-128 using a particular key. It satisfies
// crypto/cipher.Block and is safe for concurrent use.
type Block struct {
	block
}

// NewCipher creates and returns a new *Block. The key argument must be
// exactly KeySize bytes.
func NewCipher(key []byte) (*Block, error) {
	if len(key) != KeySize {
		log.Debugf("Rejected cipher key of %d bytes", len(key))
		return nil, KeySizeError(len(key))
	}
	return newBlock(new(Block), (*[KeySize]byte)(key)), nil
}

// BlockSize returns BlockSize.
func (c *Block) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block in src into dst. Dst and src may
// overlap. It panics if either buffer is shorter than BlockSize, like the
// crypto/cipher.Block implementations in the standard library.
func (c *Block) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}
	encryptBlock(c, (*[BlockSize]byte)(dst), (*[BlockSize]byte)(src))
}

// Decrypt decrypts the first block in src into dst. Dst and src may
// overlap. It panics if either buffer is shorter than BlockSize.
func (c *Block) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}
	decryptBlock(c, (*[BlockSize]byte)(dst), (*[BlockSize]byte)(src))
}

// Schedule returns a copy of the expanded key used by c.
func (c *Block) Schedule() Schedule {
	return c.sched
}
