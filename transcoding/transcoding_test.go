package transcoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAlphabetDigitsPerByte( t *testing.T ) {
	assert.Equal( t, 4, DefaultAlphabet.DigitsPerByte() )
}

func TestEncodeZeroByteIsAllFirstDigit( t *testing.T ) {
	out := Encode( DefaultAlphabet, []byte{ 0x00 } )
	require.Len( t, out, 4 )
	for _, c := range out {
		assert.Equal( t, DefaultAlphabet.Digit( 0 ), c )
	}
}

func TestRoundTripAllByteValues( t *testing.T ) {
	data := make( []byte, 256 )
	for i := range data {
		data[i] = byte(i)
	}
	encoded := Encode( DefaultAlphabet, data )
	decoded, warnings := Decode( DefaultAlphabet, encoded )
	assert.Empty( t, warnings )
	assert.Equal( t, data, decoded )
}

func TestRoundTripS1Bytes( t *testing.T ) {
	data := []byte{ 0x00, 0x01, 0x0F, 0x41, 0x62, 0xAA, 0xF0, 0xFE, 0xFF, 0x42 }
	encoded := Encode( DefaultAlphabet, data )
	assert.Len( t, encoded, len(data) * DefaultAlphabet.DigitsPerByte() )
	decoded, warnings := Decode( DefaultAlphabet, encoded )
	assert.Empty( t, warnings )
	assert.Equal( t, data, decoded )
}

func TestDecodeDropsShortTrailingChunk( t *testing.T ) {
	encoded := Encode( DefaultAlphabet, []byte{ 0x42 } )
	decoded, warnings := Decode( DefaultAlphabet, encoded[:3] )
	assert.Empty( t, warnings )
	assert.Empty( t, decoded )
}

func TestNewAlphabetRejectsTooSmall( t *testing.T ) {
	_, err := NewAlphabet( []rune{ 'a' } )
	assert.ErrorIs( t, err, ErrAlphabetTooSmall )
}

func TestNewAlphabetRejectsDuplicates( t *testing.T ) {
	_, err := NewAlphabet( []rune{ 'a', 'a' } )
	assert.ErrorIs( t, err, ErrAlphabetNotDistinct )
}

func TestBinaryAlphabetDigitsPerByte( t *testing.T ) {
	a := MustNewAlphabet( []rune{ '0', '1' } )
	assert.Equal( t, 8, a.DigitsPerByte() )
	data := []byte{ 0xAB, 0x01 }
	decoded, warnings := Decode( a, Encode( a, data ) )
	assert.Empty( t, warnings )
	assert.Equal( t, data, decoded )
}
