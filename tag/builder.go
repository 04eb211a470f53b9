package tag

// Builder accumulates the variant flags described in spec.md §4.3
// ("InnamarkTagBuilder carries a text string and boolean flags") and
// produces the matching InnamarkTag on Finish.
type Builder struct {
	content		[]byte
	sized		bool
	compressed	bool
	crc32		bool
	sha3256		bool
}

// NewBuilder starts a Builder around content.
func NewBuilder( content []byte ) *Builder {
	return &Builder{ content: content }
}

// NewBuilderFromText is the text-convenience constructor.
func NewBuilderFromText( text string ) *Builder {
	return NewBuilder( []byte(text) )
}

// Sized requests a length-prefixed variant.
func( b *Builder ) Sized() *Builder {
	b.sized = true
	return b
}

// Compressed requests a deflate-compressed variant.
func( b *Builder ) Compressed() *Builder {
	b.compressed = true
	return b
}

// WithCRC32 requests a CRC-32 integrity field. Mutually exclusive with
// WithSHA3256; the later call wins.
func( b *Builder ) WithCRC32() *Builder {
	b.crc32 = true
	b.sha3256 = false
	return b
}

// WithSHA3256 requests a SHA3-256 integrity field. Mutually exclusive
// with WithCRC32; the later call wins.
func( b *Builder ) WithSHA3256() *Builder {
	b.sha3256 = true
	b.crc32 = false
	return b
}

// Finish picks the variant named by the accumulated flags and returns
// the built tag.
func( b *Builder ) Finish() InnamarkTag {
	var v Variant
	if b.compressed {
		v |= flagCompressed
	}
	if b.sized {
		v |= flagSized
	}
	if b.crc32 {
		v |= flagCRC32
	}
	if b.sha3256 {
		v |= flagSHA3256
	}
	return New( v, b.content )
}

// Small implements the small(text) factory: CompressedRaw when
// deflating text shrinks it, Raw otherwise.
func Small( text string ) (InnamarkTag, error) {
	content := []byte( text )
	compressed, err := deflateRaw( content )
	if err != nil {
		return InnamarkTag{}, err
	}
	if len(compressed) < len(content) {
		return New( CompressedRaw, content ), nil
	}
	return New( Raw, content ), nil
}
