// Package keywords supplies the reserved-word set consulted by the scanner.
//
// The set is closed and checked by exact match only: "int" is a keyword,
// "integer" is not, and membership is the whole contract — order and
// duplicates in the source file are irrelevant.
package keywords

import (
	"bufio"
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"javalex/pkg/lexerrors"
	"javalex/pkg/logger"
)

// Set is an immutable collection of reserved words.
type Set map[string]struct{}

// New builds a Set from the given words. Duplicates collapse.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is reserved.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the members in sorted order, for display and tests.
func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Default returns the built-in Java reserved words.
func Default() Set {
	return New(javaKeywords...)
}

var javaKeywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch",
	"char", "class", "const", "continue", "default", "do", "double",
	"else", "enum", "extends", "final", "finally", "float", "for",
	"goto", "if", "implements", "import", "instanceof", "int",
	"interface", "long", "native", "new", "package", "private",
	"protected", "public", "return", "short", "static", "strictfp",
	"super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while",
	"true", "false", "null",
}

// keywordFile is the strict YAML shape accepted by LoadYAML.
type keywordFile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadFile loads a keyword set from path. Files ending in .yaml or .yml are
// decoded as strict YAML; anything else is treated as plain text with one
// word per line, where blank lines and lines starting with '#' are ignored.
func LoadFile(path string, log *logger.Logger) (Set, error) {
	ext := filepath.Ext(path)
	if ext == ".yaml" || ext == ".yml" {
		return LoadYAML(path, log)
	}

	data, err := readKeywordFile(path)
	if err != nil {
		return nil, err
	}

	set := make(Set)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, lexerrors.KeywordsReadError(path, err)
	}

	if log != nil {
		log.Debug("Keyword file loaded", slog.String("path", path), slog.Int("count", len(set)))
	}
	return set, nil
}

// LoadYAML loads a keyword set from a YAML file of the form
// 'keywords: [word, ...]'. Unknown fields are rejected to catch typos.
func LoadYAML(path string, log *logger.Logger) (Set, error) {
	data, err := readKeywordFile(path)
	if err != nil {
		return nil, err
	}

	var file keywordFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, lexerrors.KeywordsParseError(path, err)
	}

	set := New(file.Keywords...)
	if log != nil {
		log.Debug("Keyword file loaded", slog.String("path", path), slog.Int("count", len(set)))
	}
	return set, nil
}

func readKeywordFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, lexerrors.KeywordsNotFound(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lexerrors.KeywordsReadError(path, err)
	}
	return data, nil
}
