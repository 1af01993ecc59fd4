package record

import (
	"time"
	"unicode/utf16"

	"trialcode/internal/textutil"
)

// Size is the length of a packed record in bytes.
const Size = 10

const (
	// MaxElapsed is the exclusive upper bound on encodable times.
	MaxElapsed = 4 * time.Minute
	// MaxKartCharacter is the exclusive upper bound on character*37+vehicle.
	MaxKartCharacter = 1 << 9
	// VehiclesPerCharacter is the multiplier applied to the character id.
	VehiclesPerCharacter = 37
)

// RaceRecord is a finished time trial as the game reports it.
type RaceRecord struct {
	Elapsed    time.Duration
	Character  uint8
	Vehicle    uint8
	PlayerName [2]uint16
	Course     int
}

// LapTime builds an elapsed duration from its minute, second, and
// millisecond components. A component that alone reaches MaxElapsed
// saturates the result at MaxElapsed, and a negative component yields
// -MaxElapsed, so Pack rejects both instead of seeing a wrapped value.
func LapTime(minutes, seconds, millis int) time.Duration {
	parts := [...]struct {
		n    int
		unit time.Duration
	}{
		{minutes, time.Minute},
		{seconds, time.Second},
		{millis, time.Millisecond},
	}
	var total time.Duration
	for _, p := range parts {
		switch {
		case p.n < 0:
			return -MaxElapsed
		case p.n >= int(MaxElapsed/p.unit):
			return MaxElapsed
		}
		total += time.Duration(p.n) * p.unit
	}
	return total
}

// NamePrefix returns the first two UTF-16 code units of name after NFC
// normalization. Whitespace is significant. Shorter names are padded with zero units; the remainder of
// longer names is dropped.
func NamePrefix(name string) [2]uint16 {
	var prefix [2]uint16
	copy(prefix[:], utf16.Encode([]rune(textutil.Normalize(name))))
	return prefix
}

// KartCharacter returns character*37+vehicle without range checks.
func (r RaceRecord) KartCharacter() uint32 {
	return uint32(r.Character)*VehiclesPerCharacter + uint32(r.Vehicle)
}

// ElapsedMillis returns the elapsed time in whole milliseconds.
func (r RaceRecord) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}
