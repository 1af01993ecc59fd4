// Package textcode renders 80-bit buffers as 16-character codes.
//
// The buffer is read as a big-endian bit stream and split into sixteen 5-bit
// groups; each group indexes Alphabet. The alphabet avoids I, O, 0 and 1 so
// codes survive being read aloud or copied by hand. Its order is fixed by
// the code format and must not change.
package textcode
