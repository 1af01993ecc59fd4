package record

import (
	"encoding/binary"
	"errors"

	"trialcode/internal/courses"
	"trialcode/internal/crc16"
)

const (
	timeShift   = 14
	courseShift = 9
	courseMask  = 0x1f
	kartMask    = 0x1ff

	checksumOffset = 8
)

// Packed is a validated record with its checksum embedded.
type Packed struct {
	Buffer        [Size]byte
	ElapsedMs     uint32
	Ordinal       int
	KartCharacter uint32
	Checksum      uint16
}

// Pack validates rec and serializes it with the checksum in bytes 8-9.
func Pack(rec RaceRecord) (Packed, error) {
	if rec.Elapsed < 0 {
		return Packed{}, reject(ErrNegativeDuration, "elapsed %s", rec.Elapsed)
	}
	ms := rec.ElapsedMillis()
	if ms >= MaxElapsed.Milliseconds() {
		return Packed{}, reject(ErrDurationTooLong, "elapsed %s must be below %s", rec.Elapsed, MaxElapsed)
	}

	course, err := courses.Resolve(rec.Course)
	if err != nil {
		if errors.Is(err, courses.ErrNotFound) {
			return Packed{}, reject(ErrUnknownCourse, "raw course id %d", rec.Course)
		}
		return Packed{}, err
	}

	kartCharacter := rec.KartCharacter()
	if kartCharacter >= MaxKartCharacter {
		return Packed{}, reject(ErrCombinationOutOfRange, "character %d with vehicle %d gives %d, limit %d",
			rec.Character, rec.Vehicle, kartCharacter, MaxKartCharacter-1)
	}

	p := Packed{
		ElapsedMs:     uint32(ms),
		Ordinal:       course.Ordinal,
		KartCharacter: kartCharacter,
	}
	word := p.ElapsedMs<<timeShift |
		(uint32(p.Ordinal)&courseMask)<<courseShift |
		kartCharacter&kartMask
	binary.LittleEndian.PutUint32(p.Buffer[0:4], word)
	binary.LittleEndian.PutUint16(p.Buffer[4:6], rec.PlayerName[0])
	binary.LittleEndian.PutUint16(p.Buffer[6:8], rec.PlayerName[1])

	p.Checksum = EmbedChecksum(&p.Buffer)
	return p, nil
}

// EmbedChecksum zeroes bytes 8-9 of buf, computes the CRC16-CCITT of the
// whole buffer, and stores it big-endian in bytes 8-9.
func EmbedChecksum(buf *[Size]byte) uint16 {
	buf[checksumOffset] = 0
	buf[checksumOffset+1] = 0
	sum := crc16.Checksum(buf[:])
	binary.BigEndian.PutUint16(buf[checksumOffset:], sum)
	return sum
}

// VerifyChecksum reports whether bytes 8-9 of buf hold the checksum of the
// rest of the buffer.
func VerifyChecksum(buf [Size]byte) bool {
	stored := binary.BigEndian.Uint16(buf[checksumOffset:])
	return EmbedChecksum(&buf) == stored
}
