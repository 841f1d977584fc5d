// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lists

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// maxBaseLen caps the sanitized base name, extension excluded.
const maxBaseLen = 50

// SanitizeFilename converts a list name into a safe CSV base name: strips
// characters illegal in file names, collapses whitespace runs to a single
// underscore, trims leading and trailing underscores, and truncates to 50
// characters. Truncation counts runes, not bytes, so multi-byte names stay
// valid UTF-8. The transform is idempotent.
func SanitizeFilename(name string) string {
	name = illegalChars.ReplaceAllString(name, "")
	name = whitespace.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if utf8.RuneCountInString(name) > maxBaseLen {
		name = string([]rune(name)[:maxBaseLen])
		name = strings.TrimRight(name, "_")
	}
	return name
}

// fileNamer hands out CSV filenames, disambiguating collisions between
// distinct list names that sanitize to the same base with a numeric suffix
// (Name.csv, Name_2.csv, ...).
type fileNamer struct {
	used map[string]int
}

func newFileNamer() *fileNamer {
	return &fileNamer{used: make(map[string]int)}
}

// Name returns the filename to use for listName and records it as taken.
// The base plus any suffix stays within the 50-rune cap.
func (n *fileNamer) Name(listName string) string {
	base := SanitizeFilename(listName)
	if base == "" {
		base = "list"
	}
	n.used[base]++
	if count := n.used[base]; count > 1 {
		suffix := fmt.Sprintf("_%d", count)
		if r := []rune(base); len(r)+len(suffix) > maxBaseLen {
			base = strings.TrimRight(string(r[:maxBaseLen-len(suffix)]), "_")
		}
		base += suffix
	}
	return base + ".csv"
}
