// Package courses maps raw course identifiers to their ordinal positions.
//
// Courses are grouped into eight cups of four. A course's ordinal is its
// position in the cup listing (cup*4 + slot) and is what a time trial code
// stores; the raw id is the identifier the game uses internally. The table
// order is part of the code format: external decoders derive the same
// ordinals, so entries must never be reordered.
package courses
