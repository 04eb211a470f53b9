package diagnostics

import (
	"log"
)

// Verbose gates Debugln/Debugf. Unlike the teacher's util/debug.go
// (a compile-time const), this is a runtime flag the CLI's -v switch
// sets, since a released library should not ship hardcoded debug
// output.
var Verbose = false

func Debugln( args ...any ) {
	if Verbose {
		log.Println( args... )
	}
}

func Debugf( format string, args ...any ) {
	if Verbose {
		log.Printf( format, args... )
	}
}
