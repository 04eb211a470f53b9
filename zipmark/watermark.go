package zipmark

import (
	"fmt"

	"github.com/FraunhoferISST/Innamark/status"
)

// Add appends an Innamark extra field (id 0x8777, data = payload) to
// every Local File Header named, or to all headers when names is
// empty. Per spec.md §4.4, fails the whole operation with
// OversizedHeaderError if any targeted header's extra-field total
// would exceed 2^16-1; no header is modified on failure.
func( a *Archive ) Add( payload []byte, names ...string ) status.Status {
	st := status.NewStatus()
	targets := a.selectEntries( names )
	if len(targets) == 0 {
		return st.Error( "zipmark.Add", "no matching entries", fmt.Errorf( "zipmark: no local file header matched" ) )
	}

	for _, e := range targets {
		newLen := e.lfh.extraLen() + 4 + len(payload)
		if newLen > maxExtraLen {
			return st.Error( "zipmark.Add", "extra-field list would overflow", OversizedHeaderError{ newLen } )
		}
	}

	for _, e := range targets {
		e.lfh.extra = append( e.lfh.extra, extraField{ ID: innamarkExtraID, Data: append( []byte{}, payload... ) } )
	}

	return st.Success( "zipmark.Add", fmt.Sprintf( "added watermark to %d entr(ies)", len(targets) ) )
}

func( a *Archive ) selectEntries( names []string ) []*entry {
	if len(names) == 0 {
		out := make( []*entry, len(a.entries) )
		copy( out, a.entries )
		return out
	}
	want := map[string]bool{}
	for _, n := range names {
		want[n] = true
	}
	var out []*entry
	for _, e := range a.entries {
		if want[e.name] {
			out = append( out, e )
		}
	}
	return out
}

// Contains reports whether any Local File Header carries an Innamark
// extra field.
func( a *Archive ) Contains() bool {
	for _, e := range a.entries {
		for _, f := range e.lfh.extra {
			if f.ID == innamarkExtraID {
				return true
			}
		}
	}
	return false
}

// rawWatermarks collects the payloads of every Innamark extra field,
// in archive (stream) order.
func( a *Archive ) rawWatermarks() [][]byte {
	var out [][]byte
	for _, e := range a.entries {
		for _, f := range e.lfh.extra {
			if f.ID == innamarkExtraID {
				out = append( out, f.Data )
			}
		}
	}
	return out
}

// Get implements spec.md §4.4's Get: the payloads of every 0x8777
// extra-field across headers, narrowed by squash/singleWatermark per
// the §4.2.1 most-frequent policy shared with the text codec.
func( a *Archive ) Get( squash, singleWatermark bool ) ([][]byte, status.Status) {
	st := status.NewStatus()
	raw := a.rawWatermarks()

	if singleWatermark {
		selected, warning := mostFrequent( raw )
		raw = selected
		if warning != nil {
			st = st.Warning( "zipmark.Get", warning.Error(), *warning )
		}
	}
	if squash {
		raw = squashBytes( raw )
	}

	if len(raw) > 0 {
		st = st.Success( "zipmark.Get", fmt.Sprintf( "recovered %d watermark(s)", len(raw) ) )
	}
	return raw, st
}

// Remove deletes every Innamark extra field from every header,
// returning the removed payloads in the order they were found. The
// archive's Bytes() output afterwards is byte-identical to the
// original minus exactly those fields and their length contribution.
func( a *Archive ) Remove() ([][]byte, status.Status) {
	st := status.NewStatus()
	var removed [][]byte
	for _, e := range a.entries {
		kept := e.lfh.extra[:0:0]
		for _, f := range e.lfh.extra {
			if f.ID == innamarkExtraID {
				removed = append( removed, f.Data )
				continue
			}
			kept = append( kept, f )
		}
		e.lfh.extra = kept
	}

	if len(removed) == 0 {
		return removed, st.Success( "zipmark.Remove", "archive contained no watermark fields" )
	}
	return removed, st.Success( "zipmark.Remove", fmt.Sprintf( "removed %d watermark field(s)", len(removed) ) )
}

// MultipleMostFrequentWarning mirrors textmark's warning of the same
// name: n distinct watermarks tied for the highest frequency.
type MultipleMostFrequentWarning struct {
	N int
}

func( e MultipleMostFrequentWarning ) Error() string {
	return fmt.Sprintf( "zipmark: %d watermarks tied for most frequent", e.N )
}

// mostFrequent and squashBytes duplicate textmark's unexported
// helpers of the same name: both codecs share the §4.2.1 selection
// policy, but neither package imports the other (ZIP headers carry
// raw byte payloads directly, with no transcoding step to share).
func mostFrequent( raw [][]byte ) ([][]byte, *MultipleMostFrequentWarning) {
	if len(raw) == 0 {
		return nil, nil
	}
	type bucket struct {
		value []byte
		count int
	}
	var order []string
	counts := map[string]*bucket{}
	for _, r := range raw {
		key := string( r )
		if b, ok := counts[key]; ok {
			b.count++
		} else {
			counts[key] = &bucket{ value: r, count: 1 }
			order = append( order, key )
		}
	}
	max := 0
	for _, b := range counts {
		if b.count > max {
			max = b.count
		}
	}
	var tied []*bucket
	for _, key := range order {
		b := counts[key]
		if b.count == max {
			tied = append( tied, b )
		}
	}
	var out [][]byte
	for _, b := range tied {
		for i := 0; i < max; i++ {
			out = append( out, b.value )
		}
	}
	if len(tied) >= 2 {
		return out, &MultipleMostFrequentWarning{ N: len(tied) }
	}
	return out, nil
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
