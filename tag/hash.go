package tag

import (
	"hash/crc32"

	"golang.org/x/crypto/sha3"
)

// crc32IEEE computes CRC-32 with the IEEE polynomial (0xEDB88320
// reflected, initial 0xFFFFFFFF, final XOR 0xFFFFFFFF) over content.
// That is exactly hash/crc32's default table, so no third-party CRC
// implementation is needed here (see DESIGN.md).
func crc32IEEE( content []byte ) uint32 {
	return crc32.ChecksumIEEE( content )
}

// sha3256 computes SHA3-256 over content using the teacher's
// golang.org/x/crypto module, whose sha3 subpackage covers the
// integrity field the tag format needs.
func sha3256( content []byte ) [32]byte {
	return sha3.Sum256( content )
}
