// Package textutil provides the Unicode helpers shared by the encoder and CLI.
//
// The primary use cases are:
//   - Normalizing player names to NFC before they are cut to UTF-16 units
//   - Folding course names into comparison keys for case-insensitive lookup
//
// Fold keys drop everything except letters and digits, so "Luigi's Mansion",
// "luigis mansion" and "LUIGIS-MANSION" compare equal.
package textutil
