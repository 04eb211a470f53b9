package tag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagByteUniqueness( t *testing.T ) {
	seen := map[Variant]bool{}
	for _, v := range allVariants {
		require.False( t, seen[v], "duplicate tag byte: %v", v )
		seen[v] = true
	}
	assert.Len( t, seen, 12 )
}

func TestRoundTripAllVariants( t *testing.T ) {
	payload := []byte( "Hello World, this is a reasonably long payload so that compression has something to chew on." )

	for _, v := range allVariants {
		v := v
		t.Run( v.String(), func( t *testing.T ) {
			tg := New( v, payload )
			wire, err := tg.Serialize()
			require.NoError( t, err )

			parsed, err := Parse( wire )
			require.NoError( t, err )
			assert.Equal( t, v, parsed.Variant )
			assert.True( t, bytes.Equal( payload, parsed.Content ) )
		} )
	}
}

func TestParseUnknownTagByte( t *testing.T ) {
	_, err := Parse( []byte{ 0xFF } )
	assert.ErrorAs( t, err, &UnknownTagError{} )
}

func TestParseRejectsCRCAndSHA3Combination( t *testing.T ) {
	combo := Variant( flagCRC32 | flagSHA3256 )
	assert.False( t, combo.valid() )
}

func TestSizeMismatchDetected( t *testing.T ) {
	tg := New( Sized, []byte( "abc" ) )
	wire, err := tg.Serialize()
	require.NoError( t, err )
	// corrupt the declared length field (bytes 1..4)
	wire[1] = wire[1] + 1

	_, err = Parse( wire )
	assert.ErrorAs( t, err, &SizeMismatchError{} )
}

func TestCRCMismatchDetected( t *testing.T ) {
	tg := New( CRC32, []byte( "abc" ) )
	wire, err := tg.Serialize()
	require.NoError( t, err )
	wire[len(wire)-1] ^= 0xFF // corrupt trailing content byte

	_, err = Parse( wire )
	assert.ErrorAs( t, err, &ChecksumMismatchError{} )
}

func TestSHA3MismatchDetected( t *testing.T ) {
	tg := New( SHA3256, []byte( "abc" ) )
	wire, err := tg.Serialize()
	require.NoError( t, err )
	wire[len(wire)-1] ^= 0xFF

	_, err = Parse( wire )
	assert.ErrorAs( t, err, &ChecksumMismatchError{} )
}

func TestBuilderFinishPicksVariant( t *testing.T ) {
	tg := NewBuilderFromText( "hi" ).Sized().WithCRC32().Finish()
	assert.Equal( t, SizedCRC32, tg.Variant )

	tg = NewBuilderFromText( "hi" ).Compressed().WithSHA3256().Finish()
	assert.Equal( t, CompressedSHA3256, tg.Variant )

	// later call wins between CRC32/SHA3256
	tg = NewBuilderFromText( "hi" ).WithCRC32().WithSHA3256().Finish()
	assert.Equal( t, SHA3256, tg.Variant )
}

func TestSmallPicksCompressedWhenSmaller( t *testing.T ) {
	repetitive := string( bytes.Repeat( []byte("ab"), 200 ) )
	tg, err := Small( repetitive )
	require.NoError( t, err )
	assert.Equal( t, CompressedRaw, tg.Variant )

	tg, err = Small( "x" )
	require.NoError( t, err )
	assert.Equal( t, Raw, tg.Variant )
}

func TestTruncatedData( t *testing.T ) {
	_, err := Parse( []byte{ byte(Sized), 0x01, 0x02 } )
	assert.ErrorAs( t, err, &TruncatedError{} )
}
