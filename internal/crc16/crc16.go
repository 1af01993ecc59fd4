package crc16

import "hash"

// Polynomial is the CCITT generator polynomial x^16 + x^12 + x^5 + 1.
const Polynomial = 0x1021

// Size is the length of a checksum in bytes.
const Size = 2

// Checksum returns the CRC16-CCITT of data.
func Checksum(data []byte) uint16 {
	return update(0, data)
}

func update(sum uint16, data []byte) uint16 {
	for _, ch := range data {
		for range 8 {
			if sum&0x8000 != 0 {
				sum = sum<<1 ^ Polynomial
			} else {
				sum <<= 1
			}
			if ch&0x80 != 0 {
				sum ^= 1
			}
			ch <<= 1
		}
	}
	return sum
}

// Digest is a streaming CRC16-CCITT. The zero value is ready to use.
type Digest struct {
	sum uint16
}

var _ hash.Hash = (*Digest)(nil)

// New returns a Digest with a zeroed register.
func New() *Digest {
	return &Digest{}
}

// Write folds p into the running checksum. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.sum = update(d.sum, p)
	return len(p), nil
}

// Sum16 returns the current checksum.
func (d *Digest) Sum16() uint16 { return d.sum }

// Sum appends the big-endian checksum to b.
func (d *Digest) Sum(b []byte) []byte {
	return append(b, byte(d.sum>>8), byte(d.sum))
}

func (d *Digest) Reset() { d.sum = 0 }

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return 1 }
