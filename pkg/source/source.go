// Package source loads the text handed to the scanner.
package source

import (
	"io"
	"os"
	"strings"

	"javalex/pkg/lexerrors"
)

// Load returns the full source text for path, with CRLF line endings
// normalized to LF. Passing "-" reads stdin. An empty file is valid input;
// a missing or unreadable file is a coded error and the scanner never runs.
func Load(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", lexerrors.SourceReadError("<stdin>", err)
		}
		return normalize(string(data)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", lexerrors.SourceNotFound(path)
		}
		return "", lexerrors.SourceReadError(path, err)
	}
	return normalize(string(data)), nil
}

func normalize(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
