package textmark

import (
	"fmt"

	"github.com/FraunhoferISST/Innamark/status"
	"github.com/FraunhoferISST/Innamark/tag"
	"github.com/FraunhoferISST/Innamark/transcoding"
)

// minimumInsertPositions is spec.md §4.2's minimumInsertPositions(payload):
// separatedLen+1 for SkipInsertPosition (the extra position is the
// blank slot that closes the frame) and SingleSeparatorChar (one
// position beyond the framed copy, which Add leaves unwritten),
// separatedLen for StartEndSeparatorChars (the end marker itself
// closes the frame).
func minimumInsertPositions( separator SeparatorStrategy, framedLen int ) int {
	if separator.kind == kindStartEndSeparatorChars {
		return framedLen
	}
	return framedLen + 1
}

// Add inserts one or more copies of payload into cover at the
// configured placement positions, per spec.md §4.2. When wrap is true,
// payload is first wrapped in a Raw InnamarkTag (tag byte 0x00).
//
// Two distinct "not enough room" situations are both reported, per
// spec.md §4.2 step 5 and step 6, which describe them differently:
//   - the cover cannot fit even one complete copy: the best-effort
//     partial write (as many framed characters as positions allow) is
//     still returned, alongside OversizedWatermarkWarning;
//   - the cover fits one or more complete copies plus a short,
//     unusable remainder: the remainder is left untouched and only
//     the complete-copy count is reported, with incomplete=true noted
//     in the success event.
func( c Config ) Add( cover string, payload []byte, wrap bool ) (string, status.Status) {
	st := status.NewStatus()
	coverRunes := []rune( cover )

	if bad := alphabetCharsIn( coverRunes, c.fullAlphabet() ); len(bad) > 0 {
		return cover, st.Error( "textmark.Add", "cover already contains alphabet characters", ContainsAlphabetCharsError{ bad } )
	}

	positions := c.Placement( coverRunes )

	effectivePayload := payload
	if wrap {
		wrapped := tag.New( tag.Raw, payload )
		wire, err := wrapped.Serialize()
		if err != nil {
			return cover, st.Error( "textmark.Add", "failed to wrap payload", err )
		}
		effectivePayload = wire
	}

	encoded := transcoding.Encode( c.Alphabet, effectivePayload )
	framed := c.Separator.frame( encoded )
	chunkSz := c.Separator.chunkSize( len(framed) )
	minimum := minimumInsertPositions( c.Separator, len(framed) )

	out := append( []rune{}, coverRunes... )

	completeCopies := len(positions) / chunkSz
	for i := 0; i < completeCopies; i++ {
		chunkPositions := positions[ i * chunkSz : i * chunkSz + len(framed) ]
		for j, pos := range chunkPositions {
			out[pos] = framed[j]
		}
	}

	leftover := positions[ completeCopies * chunkSz : ]
	incomplete := len(leftover) > 0

	if completeCopies == 0 && incomplete {
		// the cover cannot fit a single complete copy: still write as
		// much of the framed sequence as there is room for.
		writeLen := len(leftover)
		if writeLen > len(framed) {
			writeLen = len(framed)
		}
		for j := 0; j < writeLen; j++ {
			out[leftover[j]] = framed[j]
		}
	}

	result := string( out )

	if len(positions) < minimum {
		st = st.Warning( "textmark.Add", "cover lacks enough insert positions for one copy", OversizedWatermarkWarning{ minimum, len(positions) } )
		return result, st
	}

	msg := fmt.Sprintf( "wrote %d watermark copy(ies)", completeCopies )
	if incomplete {
		msg += " (last copy incomplete)"
	}
	st = st.Success( "textmark.Add", msg )
	return result, st
}

func alphabetCharsIn( runes []rune, full map[rune]bool ) []rune {
	var bad []rune
	seen := map[rune]bool{}
	for _, r := range runes {
		if full[r] && !seen[r] {
			bad = append( bad, r )
			seen[r] = true
		}
	}
	return bad
}
