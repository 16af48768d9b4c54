package aes

import "testing"

var benchKey = []byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
}

func BenchmarkExpandKey(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ExpandKey(benchKey); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncrypt(b *testing.B) {
	c, err := NewCipher(benchKey)
	if err != nil {
		b.Fatal(err)
	}

	var buf [BlockSize]byte
	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encrypt(buf[:], buf[:])
	}
}

func BenchmarkDecrypt(b *testing.B) {
	c, err := NewCipher(benchKey)
	if err != nil {
		b.Fatal(err)
	}

	var buf [BlockSize]byte
	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Decrypt(buf[:], buf[:])
	}
}
