package trialcode

import (
	"trialcode/internal/obfuscate"
	"trialcode/internal/record"
	"trialcode/internal/textcode"
)

// Stages captures each intermediate value produced while encoding a record.
type Stages struct {
	Packed     [record.Size]byte
	Checksum   uint16
	Ordinal    int
	Obfuscated [record.Size]byte
	Code       textcode.Code
}

// Encode returns the time trial code for rec.
func Encode(rec record.RaceRecord) (textcode.Code, error) {
	stages, err := Trace(rec)
	if err != nil {
		return "", err
	}
	return stages.Code, nil
}

// Trace runs the pipeline and returns every stage.
func Trace(rec record.RaceRecord) (Stages, error) {
	packed, err := record.Pack(rec)
	if err != nil {
		return Stages{}, err
	}
	obfuscated := obfuscate.Obfuscate(packed.Buffer)
	return Stages{
		Packed:     packed.Buffer,
		Checksum:   packed.Checksum,
		Ordinal:    packed.Ordinal,
		Obfuscated: obfuscated,
		Code:       textcode.Encode(obfuscated),
	}, nil
}
