package record

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"trialcode/internal/crc16"
)

func sampleRecord() RaceRecord {
	return RaceRecord{
		Elapsed:    LapTime(0, 45, 994),
		Character:  6,
		Vehicle:    34,
		PlayerName: NamePrefix("MK"),
		Course:     22,
	}
}

func TestPackSampleLayout(t *testing.T) {
	p, err := Pack(sampleRecord())
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	want := [Size]byte{0x00, 0x83, 0xea, 0x2c, 0x4d, 0x00, 0x4b, 0x00, 0x7b, 0xf2}
	if p.Buffer != want {
		t.Fatalf("Buffer = % x, want % x", p.Buffer, want)
	}
	if p.ElapsedMs != 45994 {
		t.Fatalf("ElapsedMs = %d, want 45994", p.ElapsedMs)
	}
	if p.Ordinal != 1 {
		t.Fatalf("Ordinal = %d, want 1", p.Ordinal)
	}
	if p.KartCharacter != 6*37+34 {
		t.Fatalf("KartCharacter = %d, want %d", p.KartCharacter, 6*37+34)
	}
	if p.Checksum != 0x7bf2 {
		t.Fatalf("Checksum = %#04x, want 0x7bf2", p.Checksum)
	}
}

func TestPackFieldExtraction(t *testing.T) {
	rec := RaceRecord{
		Elapsed:    LapTime(3, 59, 999),
		Character:  13,
		Vehicle:    30,
		PlayerName: [2]uint16{0xffff, 0x3042},
		Course:     1,
	}
	p, err := Pack(rec)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	word := binary.LittleEndian.Uint32(p.Buffer[0:4])
	if got := word >> 14; got != 239999 {
		t.Fatalf("time field = %d, want 239999", got)
	}
	if got := (word >> 9) & 0x1f; got != 31 {
		t.Fatalf("course field = %d, want 31", got)
	}
	if got := word & 0x1ff; got != 511 {
		t.Fatalf("kart field = %d, want 511", got)
	}
	if got := binary.LittleEndian.Uint16(p.Buffer[4:6]); got != 0xffff {
		t.Fatalf("name[0] = %#04x", got)
	}
	if got := binary.LittleEndian.Uint16(p.Buffer[6:8]); got != 0x3042 {
		t.Fatalf("name[1] = %#04x", got)
	}
}

func TestPackEmbedsChecksum(t *testing.T) {
	p, err := Pack(sampleRecord())
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	zeroed := p.Buffer
	zeroed[8], zeroed[9] = 0, 0
	sum := crc16.Checksum(zeroed[:])
	if p.Buffer[8] != byte(sum>>8) || p.Buffer[9] != byte(sum) {
		t.Fatalf("stored checksum % x, recomputed %#04x", p.Buffer[8:], sum)
	}
	if !VerifyChecksum(p.Buffer) {
		t.Fatal("VerifyChecksum rejected a freshly packed buffer")
	}
	tampered := p.Buffer
	tampered[2] ^= 0x01
	if VerifyChecksum(tampered) {
		t.Fatal("VerifyChecksum accepted a tampered buffer")
	}
}

func TestPackRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RaceRecord)
		want   error
	}{
		{"exactly four minutes", func(r *RaceRecord) { r.Elapsed = LapTime(4, 0, 0) }, ErrDurationTooLong},
		{"240000ms", func(r *RaceRecord) { r.Elapsed = 240000 * time.Millisecond }, ErrDurationTooLong},
		{"hour", func(r *RaceRecord) { r.Elapsed = time.Hour }, ErrDurationTooLong},
		{"negative", func(r *RaceRecord) { r.Elapsed = -time.Nanosecond }, ErrNegativeDuration},
		{"unknown course", func(r *RaceRecord) { r.Course = 0 }, ErrUnknownCourse},
		{"course past table", func(r *RaceRecord) { r.Course = 41 }, ErrUnknownCourse},
		{"combination 512", func(r *RaceRecord) { r.Character, r.Vehicle = 13, 31 }, ErrCombinationOutOfRange},
		{"combination max bytes", func(r *RaceRecord) { r.Character, r.Vehicle = 255, 255 }, ErrCombinationOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := sampleRecord()
			tt.mutate(&rec)
			p, err := Pack(rec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Pack error = %v, want %v", err, tt.want)
			}
			var rejectErr *RejectError
			if !errors.As(err, &rejectErr) {
				t.Fatalf("expected *RejectError, got %T", err)
			}
			if p != (Packed{}) {
				t.Fatalf("expected zero Packed on rejection, got %+v", p)
			}
			if !strings.HasPrefix(err.Error(), "record rejected: ") {
				t.Fatalf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestPackValidationOrder(t *testing.T) {
	rec := RaceRecord{Elapsed: 5 * time.Minute, Course: 0, Character: 200}
	if _, err := Pack(rec); !errors.Is(err, ErrDurationTooLong) {
		t.Fatalf("expected duration checked first, got %v", err)
	}
	rec.Elapsed = time.Second
	if _, err := Pack(rec); !errors.Is(err, ErrUnknownCourse) {
		t.Fatalf("expected course checked second, got %v", err)
	}
}

func TestPackBoundaries(t *testing.T) {
	rec := sampleRecord()
	rec.Elapsed = 239999 * time.Millisecond
	if _, err := Pack(rec); err != nil {
		t.Fatalf("239999ms should encode: %v", err)
	}
	rec.Elapsed = 239999*time.Millisecond + 999*time.Microsecond
	if p, err := Pack(rec); err != nil || p.ElapsedMs != 239999 {
		t.Fatalf("sub-millisecond remainder should truncate: %+v %v", p, err)
	}
	rec = sampleRecord()
	rec.Character, rec.Vehicle = 13, 30
	if _, err := Pack(rec); err != nil {
		t.Fatalf("combination 511 should encode: %v", err)
	}
	rec.Elapsed = 0
	if _, err := Pack(rec); err != nil {
		t.Fatalf("zero time should encode: %v", err)
	}
}

func TestNamePrefix(t *testing.T) {
	tests := []struct {
		name string
		want [2]uint16
	}{
		{"MK", [2]uint16{'M', 'K'}},
		{"MKDasher", [2]uint16{'M', 'K'}},
		{"M", [2]uint16{'M', 0}},
		{"", [2]uint16{0, 0}},
		{"e\u0301x", [2]uint16{0x00e9, 'x'}},
		{"\U0001F3C1go", [2]uint16{0xd83c, 0xdfc1}},
		{"\u3086\u304d", [2]uint16{0x3086, 0x304d}},
		{" MK", [2]uint16{' ', 'M'}},
	}
	for _, tt := range tests {
		if got := NamePrefix(tt.name); got != tt.want {
			t.Errorf("NamePrefix(%q) = %#04x, want %#04x", tt.name, got, tt.want)
		}
	}
}

func TestLapTime(t *testing.T) {
	if got := LapTime(0, 45, 994); got != 45994*time.Millisecond {
		t.Fatalf("LapTime = %s", got)
	}
	if got := LapTime(1, 2, 3).Milliseconds(); got != 62003 {
		t.Fatalf("LapTime ms = %d", got)
	}
	if got := LapTime(0, 239, 999); got != 239999*time.Millisecond {
		t.Fatalf("LapTime = %s", got)
	}
}

func TestLapTimeOverflowIsRejected(t *testing.T) {
	tests := []struct {
		name                   string
		minutes, seconds, msec int
		want                   error
	}{
		{"huge minutes", 101366088467973, 0, 0, ErrDurationTooLong},
		{"huge seconds", 0, math.MaxInt, 0, ErrDurationTooLong},
		{"huge millis", 0, 0, math.MaxInt, ErrDurationTooLong},
		{"four minutes of seconds", 0, 240, 0, ErrDurationTooLong},
		{"negative minutes", -101366088467973, 0, 0, ErrNegativeDuration},
		{"negative millis", 0, 10, -1, ErrNegativeDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := sampleRecord()
			rec.Elapsed = LapTime(tt.minutes, tt.seconds, tt.msec)
			if _, err := Pack(rec); !errors.Is(err, tt.want) {
				t.Fatalf("Pack(elapsed=%s) error = %v, want %v", rec.Elapsed, err, tt.want)
			}
		})
	}
}
