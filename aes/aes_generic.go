// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

// EncryptBlock encrypts the block in src into dst using the round keys in
// s. Both buffers must be exactly BlockSize bytes and may overlap.
// Nothing is written to dst when an error is returned.
func EncryptBlock(s *Schedule, dst, src []byte) error {
	if err := checkBlockArgs(s, dst, src); err != nil {
		return err
	}
	encryptBlockGeneric(s, (*[BlockSize]byte)(dst), (*[BlockSize]byte)(src))
	return nil
}

// DecryptBlock decrypts the block in src into dst using the round keys in
// s. It is the inverse of EncryptBlock under the same schedule.
func DecryptBlock(s *Schedule, dst, src []byte) error {
	if err := checkBlockArgs(s, dst, src); err != nil {
		return err
	}
	decryptBlockGeneric(s, (*[BlockSize]byte)(dst), (*[BlockSize]byte)(src))
	return nil
}

func checkBlockArgs(s *Schedule, dst, src []byte) error {
	switch {
	case s == nil:
		log.Debugf("Rejected nil schedule")
		return &LengthError{What: "schedule", Got: 0, Want: ScheduleSize}

	case len(src) != BlockSize:
		log.Debugf("Rejected source block of %d bytes", len(src))
		return &LengthError{What: "src", Got: len(src), Want: BlockSize}

	case len(dst) != BlockSize:
		log.Debugf("Rejected destination block of %d bytes", len(dst))
		return &LengthError{What: "dst", Got: len(dst), Want: BlockSize}
	}
	return nil
}

// Encrypt one block from src into dst, using the expanded key xk.
func encryptBlockGeneric(xk *Schedule, dst, src *[BlockSize]byte) {
	state := *src

	// First round just XORs input with key.
	addRoundKey(&state, xk.roundKey(0))

	for r := 1; r < Rounds; r++ {
		encryptRound(&state, xk.roundKey(r))
	}

	// Last round has no MixColumns.
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, xk.roundKey(Rounds))

	*dst = state
}

// Decrypt one block from src into dst, using the expanded key xk. Round
// keys are consumed from last to first.
func decryptBlockGeneric(xk *Schedule, dst, src *[BlockSize]byte) {
	state := *src

	// Undo the last encryption round.
	addRoundKey(&state, xk.roundKey(Rounds))
	invShiftRows(&state)
	invSubBytes(&state)

	for r := Rounds - 1; r > 0; r-- {
		decryptRound(&state, xk.roundKey(r))
	}

	addRoundKey(&state, xk.roundKey(0))

	*dst = state
}
