// Command javalex is the lexical scanner CLI entry point.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"javalex/pkg/keywords"
	"javalex/pkg/logger"
	"javalex/pkg/report"
	"javalex/pkg/scanner"
	"javalex/pkg/source"
	"javalex/pkg/token"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: javalex <command> [options]")
		fmt.Fprintln(os.Stderr, "commands: scan, errors, summary, help")
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "scan":
		os.Exit(cmdScan(os.Args[2:], false))
	case "errors":
		os.Exit(cmdScan(os.Args[2:], true))
	case "summary":
		os.Exit(cmdSummary(os.Args[2:]))
	case "help", "--help", "-h":
		printUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("usage: javalex <command> <file> [options]")
	fmt.Println("")
	fmt.Println("commands:")
	fmt.Println("  scan     print every token as <line>: [<kind>] \"<lexeme>\"")
	fmt.Println("  errors   print only Error-kind tokens")
	fmt.Println("  summary  print per-kind token counts")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  --keywords <path>  keyword file (text or YAML); default is the built-in Java set")
	fmt.Println("  --json             machine-readable output")
	fmt.Println("  --quiet            suppress the token listing, keep the exit code")
	fmt.Println("  --verbose          log loading and scan progress to stderr")
	fmt.Println("")
	fmt.Println("<file> may be '-' to read from stdin.")
	fmt.Println("exit codes: 0 clean scan, 2 lexical errors found, 1 usage or I/O failure")
}

type options struct {
	file        string
	keywordPath string
	jsonOut     bool
	quiet       bool
	verbose     bool
}

func parseArgs(args []string) (*options, bool) {
	opts := &options{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--keywords":
			if i+1 >= len(args) {
				return nil, false
			}
			i++
			opts.keywordPath = args[i]
		case "--json":
			opts.jsonOut = true
		case "--quiet":
			opts.quiet = true
		case "--verbose":
			opts.verbose = true
		default:
			if strings.HasPrefix(args[i], "-") && args[i] != "-" {
				return nil, false
			}
			if opts.file != "" {
				return nil, false
			}
			opts.file = args[i]
		}
	}
	if opts.file == "" {
		return nil, false
	}
	return opts, true
}

// newLogger builds the CLI logger with the scan ID attached, so stderr log
// entries and JSON output correlate on the same ID.
func newLogger(opts *options, scanID string) *logger.Logger {
	cfg := logger.DefaultConfig()
	if opts.verbose {
		cfg.Level = slog.LevelDebug
	}
	return logger.New("javalex", cfg).WithField("scan_id", scanID)
}

// prepare loads the keyword set and source text, then runs the scan.
func prepare(opts *options, log *logger.Logger) ([]token.Token, error) {
	kw := keywords.Default()
	if opts.keywordPath != "" {
		loaded, err := keywords.LoadFile(opts.keywordPath, log)
		if err != nil {
			return nil, err
		}
		kw = loaded
	}

	text, err := source.Load(opts.file)
	if err != nil {
		return nil, err
	}

	tokens := scanner.Scan(text, kw)
	log.Debug("Scan complete",
		slog.String("file", opts.file),
		slog.Int("tokens", len(tokens)),
	)
	return tokens, nil
}

func cmdScan(args []string, errorsOnly bool) int {
	opts, ok := parseArgs(args)
	if !ok {
		fmt.Fprintln(os.Stderr, "usage: javalex scan <file> [--keywords <path>] [--json] [--quiet]")
		return 1
	}

	scanID := uuid.NewString()
	log := newLogger(opts, scanID)

	tokens, err := prepare(opts, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	if !opts.quiet {
		if opts.jsonOut {
			shown := tokens
			if errorsOnly {
				shown = filterErrors(tokens)
			}
			b, jerr := report.ToJSON(scanID, shown)
			if jerr != nil {
				fmt.Fprintf(os.Stderr, "error serializing tokens: %s\n", jerr)
				return 1
			}
			fmt.Println(string(b))
		} else if errorsOnly {
			fmt.Print(report.FormatErrors(tokens))
		} else {
			fmt.Print(report.Format(tokens))
		}
	}

	if report.HasErrors(tokens) {
		return 2
	}
	return 0
}

func cmdSummary(args []string) int {
	opts, ok := parseArgs(args)
	if !ok {
		fmt.Fprintln(os.Stderr, "usage: javalex summary <file> [--keywords <path>] [--json]")
		return 1
	}

	scanID := uuid.NewString()
	log := newLogger(opts, scanID)

	tokens, err := prepare(opts, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	summary := report.Summarize(scanID, tokens)
	if !opts.quiet {
		if opts.jsonOut {
			b, jerr := json.Marshal(summary)
			if jerr != nil {
				fmt.Fprintf(os.Stderr, "error serializing summary: %s\n", jerr)
				return 1
			}
			fmt.Println(string(b))
		} else {
			fmt.Printf("tokens: %d\n", summary.Total)
			for _, kind := range kindOrder {
				if n, ok := summary.ByKind[kind]; ok {
					fmt.Printf("  %s: %d\n", kind, n)
				}
			}
		}
	}

	if summary.Errors > 0 {
		return 2
	}
	return 0
}

var kindOrder = []string{
	"Keyword", "Identifier", "Operator", "Literal", "Delimiter", "Comment", "Error",
}

func filterErrors(tokens []token.Token) []token.Token {
	var errs []token.Token
	for _, t := range tokens {
		if t.IsError() {
			errs = append(errs, t)
		}
	}
	return errs
}
