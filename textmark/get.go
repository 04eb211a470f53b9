package textmark

import (
	"fmt"
	"unicode/utf8"

	"github.com/FraunhoferISST/Innamark/status"
	"github.com/FraunhoferISST/Innamark/tag"
	"github.com/FraunhoferISST/Innamark/transcoding"
	"github.com/FraunhoferISST/Innamark/watermark"
)

// OverlappingAlphabetError is the static validation failure described
// in spec.md §4.2 step 1 of getWatermarks: the separator strategy's
// marker characters must be disjoint from the transcoding alphabet.
type OverlappingAlphabetError struct{}

func( e OverlappingAlphabetError ) Error() string {
	return "textmark: separator characters overlap the transcoding alphabet"
}

func( c Config ) validate() error {
	alphabetSet := map[rune]bool{}
	for _, r := range c.Alphabet.Chars() {
		alphabetSet[r] = true
	}
	for _, r := range c.Separator.separatorChars() {
		if alphabetSet[r] {
			return OverlappingAlphabetError{}
		}
	}
	return nil
}

// Extracted is one recovered copy: either a raw Watermark, or (when
// every recovered copy parses as a valid InnamarkTag) the parsed tag.
type Extracted struct {
	Watermark	watermark.Watermark
	Tag		*tag.InnamarkTag
}

// IsTag reports whether this entry parsed as an InnamarkTag.
func( e Extracted ) IsTag() bool {
	return e.Tag != nil
}

// extractRaw runs spec.md §4.2 getWatermarks steps 1-4: deriving
// ranges and decoding the alphabet characters within each into raw
// byte watermarks, left to right.
func( c Config ) extractRaw( cover []rune ) ([][]byte, status.Status) {
	st := status.NewStatus()
	if err := c.validate(); err != nil {
		return nil, st.Error( "textmark.Get", "invalid codec configuration", err )
	}

	alphabetSet := map[rune]bool{}
	for _, r := range c.Alphabet.Chars() {
		alphabetSet[r] = true
	}

	positions := c.Placement( cover )
	ranges := c.ranges( cover, positions )

	usedFallback := false
	if len(ranges) == 0 {
		ranges = []textRange{ { 0, len(cover) - 1 } }
		usedFallback = true
	}

	var raw [][]byte
	anyAlphabetChar := false
	for _, rg := range ranges {
		var chars []rune
		lo, hi := rg.lo, rg.hi
		if lo < 0 {
			lo = 0
		}
		if hi >= len(cover) {
			hi = len(cover) - 1
		}
		for i := lo; i <= hi && i < len(cover) && i >= 0; i++ {
			if alphabetSet[ cover[i] ] {
				chars = append( chars, cover[i] )
				anyAlphabetChar = true
			}
		}
		if len(chars) == 0 {
			continue
		}
		decoded, warnings := transcoding.Decode( c.Alphabet, chars )
		for _, w := range warnings {
			st = st.Warning( "textmark.Get", "invalid decoded byte", w )
		}
		if len(decoded) > 0 {
			raw = append( raw, decoded )
		}
	}

	if usedFallback && anyAlphabetChar {
		st = st.Warning( "textmark.Get", "no watermark frame found", IncompleteWatermarkWarning{} )
	}

	return raw, st
}

// Get implements text_get: decode every copy, optionally narrow to the
// modal value (singleWatermark) and/or deduplicate (squash), then try
// to upgrade every surviving copy to a parsed InnamarkTag.
func( c Config ) Get( cover string, squash, singleWatermark bool ) ([]Extracted, status.Status) {
	raw, st := c.extractRaw( []rune(cover) )
	if st.IsError() {
		return nil, st
	}

	if singleWatermark {
		selected, warning := mostFrequent( raw )
		raw = selected
		if warning != nil {
			st = st.Warning( "textmark.Get", warning.Error(), *warning )
		}
	}

	if squash {
		raw = squashBytes( raw )
	}

	results := make( []Extracted, 0, len(raw) )
	allTags := len(raw) > 0
	parsedTags := make( []tag.InnamarkTag, len(raw) )
	for i, r := range raw {
		parsed, err := tag.Parse( r )
		if err != nil {
			allTags = false
			continue
		}
		parsedTags[i] = parsed
	}

	if allTags {
		for i := range raw {
			t := parsedTags[i]
			results = append( results, Extracted{ Tag: &t } )
		}
	} else {
		for _, r := range raw {
			w, err := watermark.NewFromBytes( r )
			if err != nil {
				st = st.Warning( "textmark.Get", "recovered watermark too large", err )
				continue
			}
			results = append( results, Extracted{ Watermark: w } )
		}
	}

	if len(results) > 0 {
		st = st.Success( "textmark.Get", fmt.Sprintf( "recovered %d watermark(s)", len(results) ) )
	}
	return results, st
}

func squashBytes( raw [][]byte ) [][]byte {
	seen := map[string]bool{}
	var out [][]byte
	for _, r := range raw {
		key := string( r )
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append( out, r )
	}
	return out
}

// RawList extracts every recovered copy as raw bytes, without
// attempting the InnamarkTag upgrade step — the shape the facade's
// list operation needs so it can treat the text and ZIP codecs
// uniformly.
func( c Config ) RawList( cover string, squash, singleWatermark bool ) ([][]byte, status.Status) {
	raw, st := c.extractRaw( []rune(cover) )
	if st.IsError() {
		return nil, st
	}
	if singleWatermark {
		selected, warning := mostFrequent( raw )
		raw = selected
		if warning != nil {
			st = st.Warning( "textmark.RawList", warning.Error(), *warning )
		}
	}
	if squash {
		raw = squashBytes( raw )
	}
	if len(raw) > 0 {
		st = st.Success( "textmark.RawList", fmt.Sprintf( "recovered %d watermark(s)", len(raw) ) )
	}
	return raw, st
}

// GetBytes implements text_get_bytes: most-frequent raw bytes.
func( c Config ) GetBytes( cover string ) ([]byte, status.Status) {
	raw, st := c.extractRaw( []rune(cover) )
	if st.IsError() {
		return nil, st
	}
	selected, warning := mostFrequent( raw )
	if warning != nil {
		st = st.Warning( "textmark.GetBytes", warning.Error(), *warning )
	}
	if len(selected) == 0 {
		return nil, st
	}
	st = st.Success( "textmark.GetBytes", "recovered watermark" )
	return selected[0], st
}

// GetString implements text_get_string: most-frequent bytes decoded as
// UTF-8, with StringDecodeWarning when the result contains U+FFFD.
func( c Config ) GetString( cover string ) (string, status.Status) {
	b, st := c.GetBytes( cover )
	if st.IsError() || b == nil {
		return "", st
	}
	s := string( b )
	if containsReplacementChar( s ) {
		st = st.Warning( "textmark.GetString", "decoded string contains replacement characters", StringDecodeWarning{} )
	}
	return s, st
}

func containsReplacementChar( s string ) bool {
	for _, r := range s {
		if r == utf8.RuneError {
			return true
		}
	}
	return false
}

// Contains reports whether cover holds any full-alphabet character at
// all, a cheap pre-check before Get/Remove.
func( c Config ) Contains( cover string ) bool {
	full := c.fullAlphabet()
	for _, r := range cover {
		if full[r] {
			return true
		}
	}
	return false
}
