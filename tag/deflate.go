package tag

import (
	"bytes"
	"compress/flate"
	"io"
)

// deflateRaw compresses data with raw deflate (no zlib/gzip wrapper)
// at the maximum compression level, generalized from the teacher's
// protocol/compress.go gzip-based Compress helper to the wire format
// spec.md §4.3 mandates.
func deflateRaw( data []byte ) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter( &buf, flate.BestCompression )
	if err != nil {
		return nil, err
	}
	if _, err := w.Write( data ); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// inflateRaw reverses deflateRaw.
func inflateRaw( data []byte ) ([]byte, error) {
	r := flate.NewReader( bytes.NewReader( data ) )
	defer r.Close()
	out, err := io.ReadAll( r )
	if err != nil {
		return nil, InflationError{ err }
	}
	return out, nil
}
