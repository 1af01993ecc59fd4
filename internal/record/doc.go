// Package record validates race results and packs them into the 10-byte
// buffer a time trial code is built from.
//
// Layout of the packed buffer:
//
//	0-3  uint32 LE  elapsedMs<<14 | ordinal<<9 | character*37+vehicle
//	4-7  [2]uint16 LE  first two UTF-16 units of the player name
//	8-9  uint16 BE  CRC16-CCITT over bytes 0-9 with 8-9 zeroed
//
// Every check runs before the buffer is written, so a rejected record never
// yields partial output. Rejections are values of *RejectError and match the
// sentinel errors below via errors.Is.
package record
