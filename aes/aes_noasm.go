// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import "golang.org/x/sys/cpu"

// Implementation names the code path used for every block. There is no
// assembly: all platforms run the generic byte-oriented rounds.
const Implementation = "generic"

type block struct {
	sched Schedule
}

func newBlock(c *Block, key *[KeySize]byte) *Block {
	expandKey(key, &c.sched)
	return c
}

func encryptBlock(c *Block, dst, src *[BlockSize]byte) {
	encryptBlockGeneric(&c.sched, dst, src)
}

func decryptBlock(c *Block, dst, src *[BlockSize]byte) {
	decryptBlockGeneric(&c.sched, dst, src)
}

// HardwareAES reports whether the CPU offers AES instructions. This package
// never uses them; callers that need constant-time AES on such hardware
// should use crypto/aes instead.
func HardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES
}
