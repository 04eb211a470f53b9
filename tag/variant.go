// Package tag implements the InnamarkTag wire format (spec component
// C): a single tag byte naming one of twelve variants, followed by a
// variant-specific body built from an optional length prefix, an
// optional CRC-32 or SHA3-256 integrity field, and optional deflate
// compression.
package tag

// Variant names one of the twelve InnamarkTag layouts. The tag byte is
// a bitfield: bit0 selects compression, bit1 selects a length prefix,
// bits2-3 select the integrity field (00 none, 01 CRC-32, 10 SHA3-256).
// CRC-32 and SHA3-256 are mutually exclusive, so bits2-3 == 11 is
// never emitted and is rejected on parse.
type Variant uint8

const (
	flagCompressed	Variant = 1 << 0
	flagSized	Variant = 1 << 1
	flagCRC32	Variant = 1 << 2
	flagSHA3256	Variant = 1 << 3
)

const (
	Raw			Variant = 0x00
	CompressedRaw		Variant = 0x01
	Sized			Variant = 0x02
	CompressedSized		Variant = 0x03
	CRC32			Variant = 0x04
	CompressedCRC32		Variant = 0x05
	SizedCRC32		Variant = 0x06
	CompressedSizedCRC32	Variant = 0x07
	SHA3256			Variant = 0x08
	CompressedSHA3256	Variant = 0x09
	SizedSHA3256		Variant = 0x0A
	CompressedSizedSHA3256	Variant = 0x0B
)

// allVariants lists every known tag byte once; TestTagByteUniqueness
// asserts no two entries collide, enforcing spec Invariant 4.
var allVariants = []Variant{
	Raw, CompressedRaw, Sized, CompressedSized,
	CRC32, CompressedCRC32, SizedCRC32, CompressedSizedCRC32,
	SHA3256, CompressedSHA3256, SizedSHA3256, CompressedSizedSHA3256,
}

func( v Variant ) compressed() bool { return v & flagCompressed != 0 }
func( v Variant ) sized() bool      { return v & flagSized != 0 }
func( v Variant ) crc32() bool      { return v & flagCRC32 != 0 && v & flagSHA3256 == 0 }
func( v Variant ) sha3256() bool    { return v & flagSHA3256 != 0 && v & flagCRC32 == 0 }

// valid reports whether v names one of the twelve known variants
// (rejects the CRC32|SHA3256 combination and any byte above 0x0B).
func( v Variant ) valid() bool {
	if v > CompressedSizedSHA3256 {
		return false
	}
	return v & flagCRC32 == 0 || v & flagSHA3256 == 0
}

func( v Variant ) String() string {
	switch v {
	case Raw:
		return "Raw"
	case CompressedRaw:
		return "CompressedRaw"
	case Sized:
		return "Sized"
	case CompressedSized:
		return "CompressedSized"
	case CRC32:
		return "CRC32"
	case CompressedCRC32:
		return "CompressedCRC32"
	case SizedCRC32:
		return "SizedCRC32"
	case CompressedSizedCRC32:
		return "CompressedSizedCRC32"
	case SHA3256:
		return "SHA3256"
	case CompressedSHA3256:
		return "CompressedSHA3256"
	case SizedSHA3256:
		return "SizedSHA3256"
	case CompressedSizedSHA3256:
		return "CompressedSizedSHA3256"
	default:
		return "Unknown"
	}
}
