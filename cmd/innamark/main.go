// Command innamark is a thin CLI wrapper around the innamark facade:
// add/list/remove watermarks in text or ZIP files from the shell.
//
// Grounded on the teacher's main.go: manual os.Args parsing (no flags
// package), a help()-on-no-args/bad-command fallback, and a fatal()
// print-then-exit helper for hard errors.
package main

import (
	"fmt"
	"os"

	"github.com/FraunhoferISST/Innamark/diagnostics"
	"github.com/FraunhoferISST/Innamark/innamark"
	"github.com/FraunhoferISST/Innamark/textmark"
	"github.com/FraunhoferISST/Innamark/wmconfig"
)

func main() {
	args := os.Args[1:]

	var explicitType *innamark.FileType
	var textCfg *textmark.Config
	verbose := false

	args = consumeFlags( args, &explicitType, &textCfg, &verbose )
	diagnostics.Verbose = verbose

	if len( args ) < 1 {
		help()
		os.Exit( 1 )
	}

	if explicitType == nil && ( args[0] == "text" || args[0] == "zip" ) {
		t := innamark.TextFile
		if args[0] == "zip" {
			t = innamark.ZipFile
		}
		explicitType = &t
		args = args[1:]
	}

	if len( args ) < 2 {
		help()
		os.Exit( 1 )
	}

	command, coverFile := args[0], args[1]
	rest := args[2:]

	cover, err := os.ReadFile( coverFile )
	if err != nil {
		fatal( "failed to read cover file:", err )
	}

	logger := diagnostics.NewLogger( os.Stderr, true, false )

	switch command {
	case "add":
		if len(rest) < 1 {
			fatal( "add requires a payload argument" )
		}
		addResult := innamark.Add( coverFile, cover, rest[0], explicitType, len(rest) > 1 && rest[1] == "wrap", textCfg )
		logger.LogStatus( addResult.Status() )
		if addResult.IsError() {
			os.Exit( 1 )
		}
		marked, _ := addResult.Value()
		os.Stdout.Write( marked )
	case "contains":
		containsResult := innamark.Contains( coverFile, cover, explicitType, textCfg )
		logger.LogStatus( containsResult.Status() )
		if containsResult.IsError() {
			os.Exit( 1 )
		}
		has, _ := containsResult.Value()
		fmt.Println( has )
	case "list":
		listResult := innamark.List( coverFile, cover, explicitType, true, true, textCfg )
		logger.LogStatus( listResult.Status() )
		if listResult.IsError() {
			os.Exit( 1 )
		}
		found, _ := listResult.Value()
		for _, w := range found {
			fmt.Printf( "%s\n", w )
		}
	case "remove":
		removeResult := innamark.Remove( coverFile, cover, explicitType, textCfg )
		logger.LogStatus( removeResult.Status() )
		if removeResult.IsError() {
			os.Exit( 1 )
		}
		removal, _ := removeResult.Value()
		diagnostics.Debugf( "removed %d watermark field(s)", len(removal.Removed) )
		os.Stdout.Write( removal.Cover )
	default:
		help()
		os.Exit( 1 )
	}
}

// consumeFlags strips leading -t/-v/-c flags from args, returning
// what's left. -t must be followed by "text" or "zip". -c loads a
// wmconfig.Config, applies its extension overrides to the process-wide
// registry, and hands back its textmark.Config so the caller's
// add/contains/list/remove dispatch honors the configured
// alphabet/separator override instead of textmark.DefaultConfig().
func consumeFlags( args []string, explicitType **innamark.FileType, textCfg **textmark.Config, verbose *bool ) []string {
	i := 0
	for i < len(args) {
		switch args[i] {
		case "-v":
			*verbose = true
			i++
		case "-t":
			if i+1 >= len(args) {
				fatal( "-t requires an argument" )
			}
			t := innamark.TextFile
			if args[i+1] == "zip" {
				t = innamark.ZipFile
			}
			*explicitType = &t
			i += 2
		case "-c":
			if i+1 >= len(args) {
				fatal( "-c requires an argument" )
			}
			cfg, err := wmconfig.Load( args[i+1] )
			if err != nil {
				fatal( "failed to load config:", err )
			}
			if err := cfg.ApplyExtensions(); err != nil {
				fatal( "failed to apply config extensions:", err )
			}
			tc, err := cfg.TextmarkConfig()
			if err != nil {
				fatal( "failed to build textmark config:", err )
			}
			*textCfg = &tc
			i += 2
		default:
			return args[i:]
		}
	}
	return args[i:]
}

func fatal( args ...any ) {
	fmt.Fprintln( os.Stderr, args... )
	os.Exit( 1 )
}

func help() {
	line := `Usage: innamark [-t text|zip] [-v] [-c config.yaml] <command> <cover-file> [payload] [wrap]
       innamark text|zip <command> <cover-file> [payload] [wrap]

Commands:
	add		embed payload into cover-file, print the result to stdout
	contains	report whether cover-file already carries a watermark
	list		print every recovered watermark
	remove		strip every watermark, print the cleaned cover-file to stdout
`
	fmt.Print( line )
}
