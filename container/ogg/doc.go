// Package ogg parses Ogg-encapsulated Opus streams (RFC 3533, RFC 7845)
// from an in-memory byte slice.
//
// The entry point is Bitstream, which borrows a complete Ogg file and
// hands out a Reader positioned at the beginning of the first logical
// bitstream. The reader is a small state machine:
//
//	ReaderBeginning  --ReadHeader()-->   (ReaderInStream | ReaderEndOfStream)
//	ReaderInStream   --NextPackets(n)--> (ReaderInStream | ReaderEndOfStream)
//	ReaderEndOfStream --NextReader()-->  ReaderBeginning (chained bitstream)
//
// Each state is a distinct type exposing only the operations valid in that
// state; Go has no type-level state exclusion, so misuse (e.g. calling
// NextPackets before ReadHeader) is a compile error rather than a runtime
// one, which is the strongest guarantee available without language-level
// typestate support.
//
// Packets reassembles packet fragments that may span several pages into a
// scratch buffer whose capacity is supplied by the caller at construction
// time, since Go has no array-length generics to size it at compile time.
// Construction fails with a BufferTooSmallError up front if the capacity
// cannot hold the largest packet in the page group, so Next never
// overflows the buffer.
//
// CRC-32 verification of page checksums is intentionally not performed on
// the default parse path; CRC32 is exported separately for callers that
// need to validate untrusted input.
package ogg
