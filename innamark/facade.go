package innamark

import (
	"fmt"

	"github.com/FraunhoferISST/Innamark/status"
	"github.com/FraunhoferISST/Innamark/tag"
	"github.com/FraunhoferISST/Innamark/textmark"
	"github.com/FraunhoferISST/Innamark/watermark"
	"github.com/FraunhoferISST/Innamark/zipmark"
)

// UnsupportedPayloadError is returned when toBytes is given a value
// of a type it does not know how to flatten.
type UnsupportedPayloadError struct {
	Type string
}

func( e UnsupportedPayloadError ) Error() string {
	return fmt.Sprintf( "innamark: unsupported payload type %s", e.Type )
}

// toBytes accepts the convenience payload shapes every facade
// operation takes: raw bytes, a string, an already-validated
// watermark.Watermark, a built tag.InnamarkTag, or a still-open
// tag.Builder (finished on the caller's behalf).
func toBytes( payload any ) ([]byte, error) {
	switch p := payload.( type ) {
	case []byte:
		return p, nil
	case string:
		return []byte( p ), nil
	case watermark.Watermark:
		return p.Bytes(), nil
	case tag.InnamarkTag:
		return p.Serialize()
	case *tag.Builder:
		return p.Finish().Serialize()
	default:
		return nil, UnsupportedPayloadError{ fmt.Sprintf( "%T", payload ) }
	}
}

// Removal bundles what Remove produces: the cleaned cover and the
// watermark payloads that were stripped from it.
type Removal struct {
	Cover   []byte
	Removed [][]byte
}

// textConfig returns cfg if the caller supplied one (from a loaded
// wmconfig.Config's alphabet/separator override), otherwise textmark's
// built-in default.
func textConfig( cfg *textmark.Config ) textmark.Config {
	if cfg != nil {
		return *cfg
	}
	return textmark.DefaultConfig()
}

// Add embeds payload into cover, dispatching to the text or ZIP codec
// by explicitType or path's extension. cover/result are []byte
// throughout: text covers are valid UTF-8, ZIP covers are archive
// bytes. textCfg overrides the text codec's alphabet/separator
// strategy (nil keeps textmark.DefaultConfig()); it has no effect on
// ZIP covers. This is the top-level Result<T>-returning operation
// spec.md §6 names as text_add/zip_add's common facade.
func Add( path string, cover []byte, payload any, explicitType *FileType, wrap bool, textCfg *textmark.Config ) status.Result[[]byte] {
	st := status.NewStatus()
	data, err := toBytes( payload )
	if err != nil {
		return status.Empty[[]byte]( st.Error( "innamark.Add", "invalid payload", err ) )
	}

	t, err := resolve( path, explicitType )
	if err != nil {
		return status.Empty[[]byte]( st.Error( "innamark.Add", "cannot resolve file type", err ) )
	}

	switch t {
	case TextFile:
		marked, tst := textConfig( textCfg ).Add( string(cover), data, wrap )
		return status.Into( tst, []byte( marked ) )
	case ZipFile:
		a, perr := zipmark.Parse( cover )
		if perr != nil {
			return status.Empty[[]byte]( st.Error( "innamark.Add", "invalid zip archive", perr ) )
		}
		zst := a.Add( data )
		if zst.IsError() {
			return status.Empty[[]byte]( zst )
		}
		return status.Into( zst, a.Bytes() )
	default:
		return status.Empty[[]byte]( st.Error( "innamark.Add", "unresolved file type", UnsupportedTypeError{ extensionOf(path) } ) )
	}
}

// Contains reports whether cover already carries a watermark.
// textCfg overrides the text codec's alphabet/separator strategy (nil
// keeps textmark.DefaultConfig()); it has no effect on ZIP covers.
func Contains( path string, cover []byte, explicitType *FileType, textCfg *textmark.Config ) status.Result[bool] {
	st := status.NewStatus()
	t, err := resolve( path, explicitType )
	if err != nil {
		return status.Empty[bool]( st.Error( "innamark.Contains", "cannot resolve file type", err ) )
	}

	switch t {
	case TextFile:
		has := textConfig( textCfg ).Contains( string(cover) )
		return status.Into( st.Success( "innamark.Contains", "checked" ), has )
	case ZipFile:
		a, perr := zipmark.Parse( cover )
		if perr != nil {
			return status.Empty[bool]( st.Error( "innamark.Contains", "invalid zip archive", perr ) )
		}
		return status.Into( st.Success( "innamark.Contains", "checked" ), a.Contains() )
	default:
		return status.Empty[bool]( st.Error( "innamark.Contains", "unresolved file type", UnsupportedTypeError{ extensionOf(path) } ) )
	}
}

// List recovers every watermark payload found in cover, narrowed by
// squash/singleWatermark per §4.2.1's shared policy. textCfg overrides
// the text codec's alphabet/separator strategy (nil keeps
// textmark.DefaultConfig()); it has no effect on ZIP covers.
func List( path string, cover []byte, explicitType *FileType, squash, singleWatermark bool, textCfg *textmark.Config ) status.Result[[][]byte] {
	st := status.NewStatus()
	t, err := resolve( path, explicitType )
	if err != nil {
		return status.Empty[[][]byte]( st.Error( "innamark.List", "cannot resolve file type", err ) )
	}

	switch t {
	case TextFile:
		found, tst := textConfig( textCfg ).RawList( string(cover), squash, singleWatermark )
		return status.Into( tst, found )
	case ZipFile:
		a, perr := zipmark.Parse( cover )
		if perr != nil {
			return status.Empty[[][]byte]( st.Error( "innamark.List", "invalid zip archive", perr ) )
		}
		found, zst := a.Get( squash, singleWatermark )
		return status.Into( zst, found )
	default:
		return status.Empty[[][]byte]( st.Error( "innamark.List", "unresolved file type", UnsupportedTypeError{ extensionOf(path) } ) )
	}
}

// Remove strips every watermark from cover, returning the cleaned
// result and the payloads that were removed. textCfg overrides the
// text codec's alphabet/separator strategy (nil keeps
// textmark.DefaultConfig()); it has no effect on ZIP covers.
func Remove( path string, cover []byte, explicitType *FileType, textCfg *textmark.Config ) status.Result[Removal] {
	st := status.NewStatus()
	t, err := resolve( path, explicitType )
	if err != nil {
		return status.Empty[Removal]( st.Error( "innamark.Remove", "cannot resolve file type", err ) )
	}

	switch t {
	case TextFile:
		cleaned, tst := textConfig( textCfg ).Remove( string(cover) )
		return status.Into( tst, Removal{ Cover: []byte( cleaned ) } )
	case ZipFile:
		a, perr := zipmark.Parse( cover )
		if perr != nil {
			return status.Empty[Removal]( st.Error( "innamark.Remove", "invalid zip archive", perr ) )
		}
		removed, zst := a.Remove()
		return status.Into( zst, Removal{ Cover: a.Bytes(), Removed: removed } )
	default:
		return status.Empty[Removal]( st.Error( "innamark.Remove", "unresolved file type", UnsupportedTypeError{ extensionOf(path) } ) )
	}
}
