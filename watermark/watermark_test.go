package watermark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromString( t *testing.T ) {
	w, err := NewFromString( "Hello World" )
	require.NoError( t, err )
	assert.Equal( t, "Hello World", w.String() )
	assert.Equal( t, 11, w.Len() )
}

func TestEqual( t *testing.T ) {
	a, _ := NewFromBytes( []byte{ 1, 2, 3 } )
	b, _ := NewFromBytes( []byte{ 1, 2, 3 } )
	c, _ := NewFromBytes( []byte{ 1, 2, 4 } )
	assert.True( t, a.Equal( b ) )
	assert.False( t, a.Equal( c ) )
}

func TestBytesIsDefensiveCopy( t *testing.T ) {
	w, _ := NewFromBytes( []byte{ 1, 2, 3 } )
	b := w.Bytes()
	b[0] = 0xff
	assert.Equal( t, byte(1), w.Bytes()[0] )
}

func TestNewFromBytesTooLarge( t *testing.T ) {
	_, err := NewFromBytes( make( []byte, MaxLength + 1 ) )
	assert.ErrorIs( t, err, ErrTooLarge )
}
