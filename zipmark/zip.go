// Package zipmark implements the ZIP extra-field watermarking layer
// (spec component D): it parses a ZIP archive's Local File Headers,
// Central Directory, and End-of-Central-Directory record well enough
// to add, list, and remove Innamark extra fields (id 0x8777) while
// re-emitting everything else bit-exactly.
//
// Grounded on the teacher's stegano/archive/zip.go, which parses the
// same three structures with the same backward-scan-for-EOCD
// technique; generalized here from a single trailing embedded blob to
// a per-header extra-field list, with Central Directory offsets and
// lengths recomputed on every Bytes() dump so they stay consistent
// after Add/Remove.
package zipmark

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	lfhSignature  = 0x04034b50
	cdSignature   = 0x02014b50
	eocdSignature = 0x06054b50

	innamarkExtraID = uint16( 0x8777 )

	lfhFixedSize  = 30
	cdFixedSize   = 46
	eocdFixedSize = 22

	maxExtraLen = 1<<16 - 1
)

// InvalidMagicBytesError is returned when a structure's signature does
// not match the expected ZIP magic bytes.
type InvalidMagicBytesError struct {
	Offset int
	Want   uint32
	Got    uint32
}

func( e InvalidMagicBytesError ) Error() string {
	return fmt.Sprintf( "zipmark: invalid magic bytes at offset %d: want %#08x, got %#08x", e.Offset, e.Want, e.Got )
}

// OversizedHeaderError is returned by Add when appending the Innamark
// extra field would push a header's total extra-field length past
// 2^16-1.
type OversizedHeaderError struct {
	TotalExtraLen int
}

func( e OversizedHeaderError ) Error() string {
	return fmt.Sprintf( "zipmark: header extra-field total %d exceeds 65535", e.TotalExtraLen )
}

// extraField is one (id, data) pair from a Local File Header's
// extra-field list.
type extraField struct {
	ID   uint16
	Data []byte
}

func( f extraField ) encodedLen() int {
	return 4 + len( f.Data )
}

// localFileHeader is one parsed LFH entry: the fixed 30-byte prefix,
// file name, extra-field list (decoded), and the raw compressed data
// blob that follows, including its data descriptor when the entry has
// one (never interpreted — copied through verbatim).
type localFileHeader struct {
	versionNeeded     uint16
	generalPurpose    uint16
	compressionMethod uint16
	lastModTime       uint16
	lastModDate       uint16
	crc32             uint32
	compressedSize    uint32
	uncompressedSize  uint32
	fileName          []byte
	extra             []extraField
	content           []byte
}

func( h *localFileHeader ) extraLen() int {
	total := 0
	for _, f := range h.extra {
		total += f.encodedLen()
	}
	return total
}

// centralDirectoryEntry mirrors one CD record. fileNameLength is
// recomputed from the entry's name on every Bytes() dump, so this
// struct only needs to carry what isn't derivable: the record's own
// fixed fields, its own extra-field list (kept separate from the
// paired localFileHeader's — the two commonly diverge, e.g. Info-ZIP
// Extended Timestamp carries mtime+atime+ctime locally but only mtime
// centrally), and its comment.
type centralDirectoryEntry struct {
	versionMadeBy      uint16
	versionNeeded      uint16
	generalPurpose     uint16
	compressionMethod  uint16
	lastModTime        uint16
	lastModDate        uint16
	crc32              uint32
	compressedSize     uint32
	uncompressedSize   uint32
	fileCommentLength  uint16
	diskNumberStart    uint16
	internalAttributes uint16
	externalAttributes uint32
	localHeaderOffset  uint32
	extra              []extraField
	comment            []byte
}

type endOfCentralDirectory struct {
	diskNumber         uint16
	cdStartDisk        uint16
	entriesOnThisDisk  uint16
	totalEntries       uint16
	cdSize             uint32
	cdOffset           uint32
	comment            []byte
}

// Archive is a parsed ZIP file: one localFileHeader/centralDirectoryEntry
// pair per entry (in archive order), plus the trailing EOCD record.
type Archive struct {
	entries []*entry
	eocd    endOfCentralDirectory
}

type entry struct {
	name string
	lfh  *localFileHeader
	cd   *centralDirectoryEntry
}

// Parse reads data as a ZIP archive. Every field outside Local File
// Header extra-field lists is preserved verbatim for re-emission.
func Parse( data []byte ) (*Archive, error) {
	eocdOff := bytes.LastIndex( data, []byte{ 0x50, 0x4b, 0x05, 0x06 } )
	if eocdOff < 0 {
		return nil, InvalidMagicBytesError{ Offset: len(data), Want: eocdSignature }
	}
	eocd, err := parseEOCD( data, eocdOff )
	if err != nil {
		return nil, err
	}

	entries := make( []*entry, 0, eocd.totalEntries )
	cdOff := int( eocd.cdOffset )
	for i := 0; i < int(eocd.totalEntries); i++ {
		cd, nameLen, consumed, err := parseCentralDirectoryEntry( data, cdOff )
		if err != nil {
			return nil, err
		}
		name := string( data[ cdOff+cdFixedSize : cdOff+cdFixedSize+nameLen ] )

		lfh, err := parseLocalFileHeader( data, int(cd.localHeaderOffset), cd.compressedSize )
		if err != nil {
			return nil, err
		}

		entries = append( entries, &entry{ name: name, lfh: lfh, cd: cd } )
		cdOff += consumed
	}

	return &Archive{ entries: entries, eocd: eocd }, nil
}

func parseEOCD( data []byte, off int ) (endOfCentralDirectory, error) {
	if off+eocdFixedSize > len(data) {
		return endOfCentralDirectory{}, fmt.Errorf( "zipmark: truncated end-of-central-directory record" )
	}
	sig := binary.LittleEndian.Uint32( data[off:] )
	if sig != eocdSignature {
		return endOfCentralDirectory{}, InvalidMagicBytesError{ off, eocdSignature, sig }
	}
	commentLen := binary.LittleEndian.Uint16( data[off+20:] )
	commentStart := off + eocdFixedSize
	var comment []byte
	if commentStart+int(commentLen) <= len(data) {
		comment = append( []byte{}, data[commentStart:commentStart+int(commentLen)]... )
	}
	return endOfCentralDirectory{
		diskNumber:        binary.LittleEndian.Uint16( data[off+4:] ),
		cdStartDisk:       binary.LittleEndian.Uint16( data[off+6:] ),
		entriesOnThisDisk: binary.LittleEndian.Uint16( data[off+8:] ),
		totalEntries:      binary.LittleEndian.Uint16( data[off+10:] ),
		cdSize:            binary.LittleEndian.Uint32( data[off+12:] ),
		cdOffset:          binary.LittleEndian.Uint32( data[off+16:] ),
		comment:           comment,
	}, nil
}

// parseCentralDirectoryEntry parses one CD record at off, including its
// own extra-field list — kept on centralDirectoryEntry.extra rather than
// assumed identical to the paired localFileHeader's, since real-world
// writers (e.g. Info-ZIP's Extended Timestamp field 0x5455) commonly
// give the CD copy fewer subfields than the LFH copy.
func parseCentralDirectoryEntry( data []byte, off int ) (*centralDirectoryEntry, int, int, error) {
	if off+cdFixedSize > len(data) {
		return nil, 0, 0, fmt.Errorf( "zipmark: truncated central directory entry at %d", off )
	}
	sig := binary.LittleEndian.Uint32( data[off:] )
	if sig != cdSignature {
		return nil, 0, 0, InvalidMagicBytesError{ off, cdSignature, sig }
	}
	nameLen := int( binary.LittleEndian.Uint16( data[off+28:] ) )
	extraLen := int( binary.LittleEndian.Uint16( data[off+30:] ) )
	commentLen := int( binary.LittleEndian.Uint16( data[off+32:] ) )

	cd := &centralDirectoryEntry{
		versionMadeBy:      binary.LittleEndian.Uint16( data[off+4:] ),
		versionNeeded:      binary.LittleEndian.Uint16( data[off+6:] ),
		generalPurpose:     binary.LittleEndian.Uint16( data[off+8:] ),
		compressionMethod:  binary.LittleEndian.Uint16( data[off+10:] ),
		lastModTime:        binary.LittleEndian.Uint16( data[off+12:] ),
		lastModDate:        binary.LittleEndian.Uint16( data[off+14:] ),
		crc32:              binary.LittleEndian.Uint32( data[off+16:] ),
		compressedSize:     binary.LittleEndian.Uint32( data[off+20:] ),
		uncompressedSize:   binary.LittleEndian.Uint32( data[off+24:] ),
		fileCommentLength:  uint16( commentLen ),
		diskNumberStart:    binary.LittleEndian.Uint16( data[off+34:] ),
		internalAttributes: binary.LittleEndian.Uint16( data[off+36:] ),
		externalAttributes: binary.LittleEndian.Uint32( data[off+38:] ),
		localHeaderOffset:  binary.LittleEndian.Uint32( data[off+42:] ),
	}
	extraStart := off + cdFixedSize + nameLen
	extraEnd := extraStart + extraLen
	if extraEnd <= len(data) {
		cd.extra = parseExtraFields( data[extraStart:extraEnd] )
	}
	commentStart := extraEnd
	if commentStart+commentLen <= len(data) {
		cd.comment = append( []byte{}, data[commentStart:commentStart+commentLen]... )
	}
	consumed := cdFixedSize + nameLen + extraLen + commentLen
	return cd, nameLen, consumed, nil
}

func parseLocalFileHeader( data []byte, off int, cdCompressedSize uint32 ) (*localFileHeader, error) {
	if off+lfhFixedSize > len(data) {
		return nil, fmt.Errorf( "zipmark: truncated local file header at %d", off )
	}
	sig := binary.LittleEndian.Uint32( data[off:] )
	if sig != lfhSignature {
		return nil, InvalidMagicBytesError{ off, lfhSignature, sig }
	}
	nameLen := int( binary.LittleEndian.Uint16( data[off+26:] ) )
	extraLen := int( binary.LittleEndian.Uint16( data[off+28:] ) )
	compressedSize := binary.LittleEndian.Uint32( data[off+18:] )

	nameStart := off + lfhFixedSize
	extraStart := nameStart + nameLen
	contentStart := extraStart + extraLen

	h := &localFileHeader{
		versionNeeded:     binary.LittleEndian.Uint16( data[off+4:] ),
		generalPurpose:    binary.LittleEndian.Uint16( data[off+6:] ),
		compressionMethod: binary.LittleEndian.Uint16( data[off+8:] ),
		lastModTime:       binary.LittleEndian.Uint16( data[off+10:] ),
		lastModDate:       binary.LittleEndian.Uint16( data[off+12:] ),
		crc32:             binary.LittleEndian.Uint32( data[off+14:] ),
		compressedSize:    compressedSize,
		uncompressedSize:  binary.LittleEndian.Uint32( data[off+22:] ),
		fileName:          append( []byte{}, data[nameStart:extraStart]... ),
	}
	h.extra = parseExtraFields( data[extraStart:contentStart] )

	contentLen := int(compressedSize)
	if h.generalPurpose & 0x8 != 0 {
		// bit 3: the LFH size fields are zero and the sizes follow the
		// data in a data descriptor, so take the data length from the
		// Central Directory and carry the descriptor (12 bytes, 16 with
		// its optional 0x08074b50 signature) through with the blob.
		contentLen = int(cdCompressedSize) + 12
		sigAt := contentStart + int(cdCompressedSize)
		if sigAt+4 <= len(data) && binary.LittleEndian.Uint32( data[sigAt:] ) == 0x08074b50 {
			contentLen += 4
		}
	}
	contentEnd := contentStart + contentLen
	if contentEnd > len(data) {
		return nil, fmt.Errorf( "zipmark: local file header at %d declares content past end of archive", off )
	}
	h.content = append( []byte{}, data[contentStart:contentEnd]... )
	return h, nil
}

func parseExtraFields( data []byte ) []extraField {
	var out []extraField
	for i := 0; i+4 <= len(data); {
		id := binary.LittleEndian.Uint16( data[i:] )
		size := int( binary.LittleEndian.Uint16( data[i+2:] ) )
		if i+4+size > len(data) {
			break
		}
		out = append( out, extraField{ ID: id, Data: append( []byte{}, data[i+4:i+4+size]... ) } )
		i += 4 + size
	}
	return out
}
