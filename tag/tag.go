package tag

import (
	"encoding/binary"
)

// InnamarkTag is a parsed, validated watermark tag: a variant and the
// uncompressed content it wraps.
type InnamarkTag struct {
	Variant	Variant
	Content	[]byte
}

// New builds an InnamarkTag for variant around content. It does not
// validate variant (use Serialize/Parse for the on-wire round trip);
// callers normally go through Builder instead of calling
// New directly.
func New( variant Variant, content []byte ) InnamarkTag {
	cp := make( []byte, len(content) )
	copy( cp, content )
	return InnamarkTag{ variant, cp }
}

// Serialize renders the tag to its wire bytes: tag byte, then the
// variant's body layout from spec.md §4.3 (length prefix, integrity
// field, content — each optional per the variant's flags, content
// deflated when the variant is compressed).
func( t InnamarkTag ) Serialize() ([]byte, error) {
	body := t.Content
	var err error
	if t.Variant.compressed() {
		body, err = deflateRaw( t.Content )
		if err != nil {
			return nil, err
		}
	}

	out := []byte{ byte(t.Variant) }

	if t.Variant.sized() {
		lenField := make( []byte, 4 )
		binary.LittleEndian.PutUint32( lenField, uint32(len(t.Content)) )
		out = append( out, lenField... )
	}
	if t.Variant.crc32() {
		crcField := make( []byte, 4 )
		binary.LittleEndian.PutUint32( crcField, crc32IEEE( t.Content ) )
		out = append( out, crcField... )
	}
	if t.Variant.sha3256() {
		digest := sha3256( t.Content )
		out = append( out, digest[:]... )
	}
	out = append( out, body... )
	return out, nil
}

// Parse decodes data's leading tag byte and body, validating per
// spec.md §3: the tag byte must name a known variant, a sized
// variant's declared length must equal the post-decompression content
// length, and a hashed variant's recomputed digest must equal the
// stored one. On any validation failure it returns the specific error
// (UnknownTagError / SizeMismatchError / ChecksumMismatchError /
// InflationError / TruncatedError) and a zero InnamarkTag.
func Parse( data []byte ) (InnamarkTag, error) {
	if len(data) < 1 {
		return InnamarkTag{}, TruncatedError{ 0 }
	}
	variant := Variant( data[0] )
	if !variant.valid() {
		return InnamarkTag{}, UnknownTagError{ data[0] }
	}
	rest := data[1:]

	var declaredLen uint32
	hasDeclaredLen := false
	if variant.sized() {
		if len(rest) < 4 {
			return InnamarkTag{}, TruncatedError{ variant }
		}
		declaredLen = binary.LittleEndian.Uint32( rest[:4] )
		hasDeclaredLen = true
		rest = rest[4:]
	}

	var declaredCRC uint32
	hasDeclaredCRC := false
	if variant.crc32() {
		if len(rest) < 4 {
			return InnamarkTag{}, TruncatedError{ variant }
		}
		declaredCRC = binary.LittleEndian.Uint32( rest[:4] )
		hasDeclaredCRC = true
		rest = rest[4:]
	}

	var declaredHash [32]byte
	hasDeclaredHash := false
	if variant.sha3256() {
		if len(rest) < 32 {
			return InnamarkTag{}, TruncatedError{ variant }
		}
		copy( declaredHash[:], rest[:32] )
		hasDeclaredHash = true
		rest = rest[32:]
	}

	content := rest
	if variant.compressed() {
		inflated, err := inflateRaw( rest )
		if err != nil {
			return InnamarkTag{}, err
		}
		content = inflated
	}

	if hasDeclaredLen && declaredLen != uint32(len(content)) {
		return InnamarkTag{}, SizeMismatchError{ declaredLen, uint32(len(content)) }
	}
	if hasDeclaredCRC && declaredCRC != crc32IEEE( content ) {
		return InnamarkTag{}, ChecksumMismatchError{ variant }
	}
	if hasDeclaredHash && sha3256( content ) != declaredHash {
		return InnamarkTag{}, ChecksumMismatchError{ variant }
	}

	return New( variant, content ), nil
}
