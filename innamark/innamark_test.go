package innamark

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FraunhoferISST/Innamark/textmark"
)

func longCover( words int ) []byte {
	s := ""
	for i := 0; i < words; i++ {
		if i > 0 {
			s += " "
		}
		s += "word"
	}
	return []byte( s )
}

func TestAddGetRemoveText( t *testing.T ) {
	cover := longCover( 200 )

	addResult := Add( "report.txt", cover, []byte( "secret" ), nil, false, nil )
	require.False( t, addResult.IsError(), "%v", addResult.Status().Events() )
	marked, ok := addResult.Value()
	require.True( t, ok )
	assert.NotEqual( t, cover, marked )

	hasResult := Contains( "report.txt", marked, nil, nil )
	require.False( t, hasResult.IsError() )
	has, _ := hasResult.Value()
	assert.True( t, has )

	listResult := List( "report.txt", marked, nil, true, true, nil )
	require.False( t, listResult.IsError() )
	got, _ := listResult.Value()
	require.Len( t, got, 1 )
	assert.Equal( t, []byte( "secret" ), got[0] )

	removeResult := Remove( "report.txt", marked, nil, nil )
	require.False( t, removeResult.IsError() )
	removal, _ := removeResult.Value()
	assert.Len( t, removal.Removed, 0 ) // textmark.Remove does not report removed payloads

	hasResult = Contains( "report.txt", removal.Cover, nil, nil )
	has, _ = hasResult.Value()
	assert.False( t, has )
}

func TestAddGetRemoveZip( t *testing.T ) {
	var buf bytes.Buffer
	w := zip.NewWriter( &buf )
	f, err := w.Create( "a.txt" )
	require.NoError( t, err )
	_, err = f.Write( []byte( "hello" ) )
	require.NoError( t, err )
	require.NoError( t, w.Close() )
	cover := buf.Bytes()

	addResult := Add( "bundle.zip", cover, []byte( "zmark" ), nil, false, nil )
	require.False( t, addResult.IsError(), "%v", addResult.Status().Events() )
	marked, _ := addResult.Value()

	hasResult := Contains( "bundle.zip", marked, nil, nil )
	require.False( t, hasResult.IsError() )
	has, _ := hasResult.Value()
	assert.True( t, has )

	listResult := List( "bundle.zip", marked, nil, true, true, nil )
	require.False( t, listResult.IsError() )
	got, _ := listResult.Value()
	require.Len( t, got, 1 )
	assert.Equal( t, []byte( "zmark" ), got[0] )

	removeResult := Remove( "bundle.zip", marked, nil, nil )
	require.False( t, removeResult.IsError() )
	removal, _ := removeResult.Value()
	assert.Len( t, removal.Removed, 1 )

	hasResult = Contains( "bundle.zip", removal.Cover, nil, nil )
	has, _ = hasResult.Value()
	assert.False( t, has )
}

// TestAddHonorsCustomTextConfig confirms a caller-supplied
// textmark.Config actually reaches the text codec: SingleSeparatorChar
// introduces a marker rune the default SkipInsertPosition strategy
// never writes, so its presence proves the override took effect rather
// than textmark.DefaultConfig() silently winning.
func TestAddHonorsCustomTextConfig( t *testing.T ) {
	cover := longCover( 200 )
	cfg := textmark.DefaultConfig()
	cfg.Separator = textmark.SingleSeparatorChar( '|' )

	addResult := Add( "report.txt", cover, []byte( "secret" ), nil, false, &cfg )
	require.False( t, addResult.IsError(), "%v", addResult.Status().Events() )
	marked, _ := addResult.Value()
	assert.True( t, strings.ContainsRune( string(marked), '|' ) )

	listResult := List( "report.txt", marked, nil, true, true, &cfg )
	require.False( t, listResult.IsError() )
	got, _ := listResult.Value()
	require.Len( t, got, 1 )
	assert.Equal( t, []byte( "secret" ), got[0] )
}

func TestResolveNoExtension( t *testing.T ) {
	_, err := resolve( "no_extension", nil )
	assert.IsType( t, NoFileTypeError{}, err )
}

func TestResolveUnsupportedExtension( t *testing.T ) {
	_, err := resolve( "file.xyz", nil )
	assert.IsType( t, UnsupportedTypeError{}, err )
}

func TestResolveWrongTypeOverride( t *testing.T ) {
	zipType := ZipFile
	_, err := resolve( "file.txt", &zipType )
	assert.IsType( t, WrongTypeError{}, err )
}

func TestRegisterExtensionOverride( t *testing.T ) {
	RegisterExtension( "note", TextFile )
	typ, ok := FromExtension( "note" )
	require.True( t, ok )
	assert.Equal( t, TextFile, typ )
}

func TestAddRejectsUnsupportedPayload( t *testing.T ) {
	result := Add( "report.txt", longCover( 50 ), 12345, nil, false, nil )
	assert.True( t, result.IsError() )
}
