// Package crc16 computes the CRC16-CCITT checksum embedded in time trial codes.
//
// The variant is the bit-serial form: polynomial 0x1021, zero initial
// register, no reflection and no final XOR. Each input bit is shifted into
// the low end of the register after the polynomial step, so the result over
// a message followed by two zero bytes equals the table-driven XMODEM CRC of
// the message alone. Codes reserve those two trailing bytes for the sum.
package crc16
