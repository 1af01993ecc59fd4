// Package obfuscate scrambles packed records before text encoding.
//
// Bytes are XORed from the last index to the first with a running key that
// starts at InitialKey; each output byte becomes the key for the next. The
// checksum bytes at the end are mixed first, so records that differ by a
// single millisecond still produce codes that look unrelated.
package obfuscate

// InitialKey seeds the key chain.
const InitialKey byte = 0xC3

// Obfuscate returns buf with the cascading XOR applied.
func Obfuscate(buf [10]byte) [10]byte {
	key := InitialKey
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] ^= key
		key = buf[i]
	}
	return buf
}
