// Package trialcode turns race records into shareable time trial codes.
//
// Encode is the whole pipeline: the record is validated and packed with its
// checksum (package record), scrambled by the cascading XOR (package
// obfuscate), and rendered as sixteen symbols (package textcode). Every step
// is a pure function of its input, so records may be encoded from any number
// of goroutines without coordination; EncodeBatch does exactly that with a
// bounded worker count.
//
// Rejected records produce no code at all, only an error matching one of the
// record package's sentinel errors.
package trialcode
