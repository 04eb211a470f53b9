package zipmark

import (
	"encoding/binary"
)

// Bytes re-serializes the archive: Local File Headers (with their
// current extra-field lists) in original order, followed by the
// Central Directory and End-of-Central-Directory record. Offsets and
// length fields are recomputed from the live data so the result stays
// internally consistent after any Add/Remove.
func( a *Archive ) Bytes() []byte {
	var out []byte

	offsets := make( []uint32, len(a.entries) )
	for i, e := range a.entries {
		offsets[i] = uint32( len(out) )
		out = append( out, encodeLocalFileHeader( e.lfh, e.name )... )
	}

	cdStart := len( out )
	for i, e := range a.entries {
		out = append( out, encodeCentralDirectoryEntry( e.cd, e.name, offsets[i] )... )
	}
	cdSize := len( out ) - cdStart

	a.eocd.totalEntries = uint16( len( a.entries ) )
	a.eocd.entriesOnThisDisk = a.eocd.totalEntries
	a.eocd.cdSize = uint32( cdSize )
	a.eocd.cdOffset = uint32( cdStart )

	out = append( out, encodeEOCD( a.eocd )... )
	return out
}

func encodeLocalFileHeader( h *localFileHeader, name string ) []byte {
	extra := encodeExtraFields( h.extra )
	buf := make( []byte, lfhFixedSize )
	binary.LittleEndian.PutUint32( buf[0:], lfhSignature )
	binary.LittleEndian.PutUint16( buf[4:], h.versionNeeded )
	binary.LittleEndian.PutUint16( buf[6:], h.generalPurpose )
	binary.LittleEndian.PutUint16( buf[8:], h.compressionMethod )
	binary.LittleEndian.PutUint16( buf[10:], h.lastModTime )
	binary.LittleEndian.PutUint16( buf[12:], h.lastModDate )
	binary.LittleEndian.PutUint32( buf[14:], h.crc32 )
	binary.LittleEndian.PutUint32( buf[18:], h.compressedSize )
	binary.LittleEndian.PutUint32( buf[22:], h.uncompressedSize )
	binary.LittleEndian.PutUint16( buf[26:], uint16( len(name) ) )
	binary.LittleEndian.PutUint16( buf[28:], uint16( len(extra) ) )

	buf = append( buf, []byte(name)... )
	buf = append( buf, extra... )
	buf = append( buf, h.content... )
	return buf
}

func encodeCentralDirectoryEntry( cd *centralDirectoryEntry, name string, lfhOffset uint32 ) []byte {
	extra := encodeExtraFields( cd.extra )
	buf := make( []byte, cdFixedSize )
	binary.LittleEndian.PutUint32( buf[0:], cdSignature )
	binary.LittleEndian.PutUint16( buf[4:], cd.versionMadeBy )
	binary.LittleEndian.PutUint16( buf[6:], cd.versionNeeded )
	binary.LittleEndian.PutUint16( buf[8:], cd.generalPurpose )
	binary.LittleEndian.PutUint16( buf[10:], cd.compressionMethod )
	binary.LittleEndian.PutUint16( buf[12:], cd.lastModTime )
	binary.LittleEndian.PutUint16( buf[14:], cd.lastModDate )
	binary.LittleEndian.PutUint32( buf[16:], cd.crc32 )
	binary.LittleEndian.PutUint32( buf[20:], cd.compressedSize )
	binary.LittleEndian.PutUint32( buf[24:], cd.uncompressedSize )
	binary.LittleEndian.PutUint16( buf[28:], uint16( len(name) ) )
	binary.LittleEndian.PutUint16( buf[30:], uint16( len(extra) ) )
	binary.LittleEndian.PutUint16( buf[32:], cd.fileCommentLength )
	binary.LittleEndian.PutUint16( buf[34:], cd.diskNumberStart )
	binary.LittleEndian.PutUint16( buf[36:], cd.internalAttributes )
	binary.LittleEndian.PutUint32( buf[38:], cd.externalAttributes )
	binary.LittleEndian.PutUint32( buf[42:], lfhOffset )

	buf = append( buf, []byte(name)... )
	buf = append( buf, extra... )
	buf = append( buf, cd.comment... )
	return buf
}

func encodeEOCD( e endOfCentralDirectory ) []byte {
	buf := make( []byte, eocdFixedSize )
	binary.LittleEndian.PutUint32( buf[0:], eocdSignature )
	binary.LittleEndian.PutUint16( buf[4:], e.diskNumber )
	binary.LittleEndian.PutUint16( buf[6:], e.cdStartDisk )
	binary.LittleEndian.PutUint16( buf[8:], e.entriesOnThisDisk )
	binary.LittleEndian.PutUint16( buf[10:], e.totalEntries )
	binary.LittleEndian.PutUint32( buf[12:], e.cdSize )
	binary.LittleEndian.PutUint32( buf[16:], e.cdOffset )
	binary.LittleEndian.PutUint16( buf[20:], uint16( len(e.comment) ) )
	buf = append( buf, e.comment... )
	return buf
}

func encodeExtraFields( fields []extraField ) []byte {
	var out []byte
	for _, f := range fields {
		field := make( []byte, 4 )
		binary.LittleEndian.PutUint16( field[0:], f.ID )
		binary.LittleEndian.PutUint16( field[2:], uint16( len(f.Data) ) )
		out = append( out, field... )
		out = append( out, f.Data... )
	}
	return out
}
