package textmark

import (
	"github.com/FraunhoferISST/Innamark/status"
)

// Remove implements spec.md §4.2.2: replace every character from the
// codec's full alphabet (transcoding alphabet plus any separator
// markers) with a single ASCII space, collapsing each watermark copy
// back down to the whitespace it displaced.
func( c Config ) Remove( cover string ) (string, status.Status) {
	st := status.NewStatus()
	full := c.fullAlphabet()

	runes := []rune( cover )
	out := make( []rune, 0, len(runes) )
	removed := 0
	for _, r := range runes {
		if full[r] {
			out = append( out, ' ' )
			removed++
		} else {
			out = append( out, r )
		}
	}

	if removed == 0 {
		st = st.Success( "textmark.Remove", "cover contained no watermark characters" )
	} else {
		st = st.Success( "textmark.Remove", "removed watermark characters" )
	}
	return string( out ), st
}
