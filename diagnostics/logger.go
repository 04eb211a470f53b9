// Package diagnostics renders status.Status events to a writer, in
// the teacher's colorized [LEVEL] line style.
//
// Grounded on util/log.go's Logger (colorize/prepareString helpers,
// ANSI color constants, level-gated LogError/LogWarning/LogInfo),
// adapted from a mutex-guarded file-appending logger (this package
// has no shared mutable state to guard — status.Status values are
// already collected before logging) to a plain io.Writer sink over
// status.Event values instead of the teacher's bitmask-gated strings.
package diagnostics

import (
	"fmt"
	"io"
	"time"

	"github.com/FraunhoferISST/Innamark/status"
)

const (
	redColor     = "\033[31m"
	yellowColor  = "\033[33m"
	cyanColor    = "\033[36m"
	resetColor   = "\033[0m"
)

// Logger writes status.Event values to an underlying writer.
type Logger struct {
	out       io.Writer
	colored   bool
	withTimes bool
}

// NewLogger builds a Logger writing to out.
func NewLogger( out io.Writer, colored, withTimes bool ) *Logger {
	return &Logger{ out: out, colored: colored, withTimes: withTimes }
}

func( l *Logger ) colorize( s, color string ) string {
	if l.colored {
		return color + s + resetColor
	}
	return s
}

func( l *Logger ) prepareString( label, color string ) string {
	toWrite := l.colorize( label, color ) + " "
	if l.withTimes {
		toWrite += time.Now().String() + " "
	}
	return toWrite
}

// LogEvent writes one event, colorized and labeled by its Kind.
func( l *Logger ) LogEvent( e status.Event ) {
	var label, color string
	switch e.Kind {
	case status.KindError:
		label, color = "[ERROR]", redColor
	case status.KindWarning:
		label, color = "[WARNING]", yellowColor
	default:
		label, color = "[INFO]", cyanColor
	}
	msg := e.Source + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	fmt.Fprintln( l.out, l.prepareString( label, color )+msg )
}

// LogStatus writes every event of st in order.
func( l *Logger ) LogStatus( st status.Status ) {
	for _, e := range st.Events() {
		l.LogEvent( e )
	}
}
