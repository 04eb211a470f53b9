package wmconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp( t *testing.T, contents string ) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join( dir, "innamark.yaml" )
	require.NoError( t, os.WriteFile( path, []byte(contents), 0o600 ) )
	return path
}

func TestLoadMinimalConfig( t *testing.T ) {
	path := writeTemp( t, "verbose: true\n" )
	c, err := Load( path )
	require.NoError( t, err )
	assert.True( t, c.Verbose )
	assert.Nil( t, c.Alphabet )
}

func TestTextmarkConfigDefaultsWhenUnset( t *testing.T ) {
	c := &Config{}
	cfg, err := c.TextmarkConfig()
	require.NoError( t, err )
	assert.Equal( t, 4, cfg.Alphabet.Base() )
}

func TestTextmarkConfigSeparatorOverride( t *testing.T ) {
	c := &Config{ Separator: &SeparatorConfig{ Kind: "single", Separator: '|' } }
	cfg, err := c.TextmarkConfig()
	require.NoError( t, err )

	marked, st := cfg.Add( "a b c d e f g h i j k l m n o p q r s t", []byte( "x" ), false )
	require.False( t, st.IsError() )
	assert.Contains( t, marked, "|" )
}

func TestTextmarkConfigUnknownSeparatorKind( t *testing.T ) {
	c := &Config{ Separator: &SeparatorConfig{ Kind: "bogus" } }
	_, err := c.TextmarkConfig()
	assert.Error( t, err )
}

func TestApplyExtensionsUnknownType( t *testing.T ) {
	c := &Config{ Extensions: []ExtensionConfig{ { Extension: "foo", Type: "bogus" } } }
	assert.Error( t, c.ApplyExtensions() )
}
