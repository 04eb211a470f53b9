package textmark

// textRange is an inclusive [lo, hi] slice of rune indices into a
// cover, the framed region one watermark copy should be decoded from.
type textRange struct {
	lo, hi int
}

// ranges derives the watermark ranges described in spec.md §4.2 step 2,
// one implementation per separator strategy.
func( c Config ) ranges( cover []rune, positions []int ) []textRange {
	switch c.Separator.kind {
	case kindSingleSeparatorChar:
		return singleSeparatorRanges( cover, c.Separator.separator )
	case kindStartEndSeparatorChars:
		return startEndRanges( cover, c.Separator.start, c.Separator.end )
	default:
		return skipInsertRanges( cover, positions, c.fullAlphabet() )
	}
}

func singleSeparatorRanges( cover []rune, sep rune ) []textRange {
	var seps []int
	for i, r := range cover {
		if r == sep {
			seps = append( seps, i )
		}
	}
	var out []textRange
	for i := 0; i + 1 < len(seps); i++ {
		out = append( out, textRange{ seps[i] + 1, seps[i+1] - 1 } )
	}
	return out
}

func startEndRanges( cover []rune, start, end rune ) []textRange {
	var out []textRange
	open := false
	rangeStart := 0
	lastEnd := -1
	for i, r := range cover {
		switch r {
		case start:
			open = true
			rangeStart = i + 1
		case end:
			if open {
				out = append( out, textRange{ rangeStart, i - 1 } )
				open = false
			} else {
				out = append( out, textRange{ lastEnd + 1, i - 1 } )
			}
			lastEnd = i
		}
	}
	return out
}

// skipInsertRanges marks a placement position as a segment boundary
// when its immediately preceding rune is not itself an alphabet/
// separator character, i.e. it was not the digit written right before
// it in the same chunk. Consecutive boundaries bracket one copy.
func skipInsertRanges( cover []rune, positions []int, full map[rune]bool ) []textRange {
	var boundaries []int
	for _, p := range positions {
		if p == 0 || !full[ cover[p-1] ] {
			boundaries = append( boundaries, p )
		}
	}
	var out []textRange
	for i := 0; i + 1 < len(boundaries); i++ {
		out = append( out, textRange{ boundaries[i], boundaries[i+1] - 1 } )
	}
	return out
}
