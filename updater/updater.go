package updater

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks a version line. Matching is exact and case sensitive.
const Prefix = "    version="

// Updater is the contract a release tool expects from a version file plugin.
type Updater interface {
	ReadVersion(contents string) (string, error)
	WriteVersion(contents, version string) string
}

// SetupPy implements Updater for setup.py files.
type SetupPy struct{}

var _ Updater = SetupPy{}

// ReadVersion calls the package level ReadVersion.
func (SetupPy) ReadVersion(contents string) (string, error) { return ReadVersion(contents) }

// WriteVersion calls the package level WriteVersion.
func (SetupPy) WriteVersion(contents, version string) string { return WriteVersion(contents, version) }

// IsVersionLine reports whether line starts with Prefix.
func IsVersionLine(line string) bool {
	return strings.HasPrefix(line, Prefix)
}

// ReadVersion returns the version declared by the first version line in
// contents. Quotes, commas and whitespace are removed from the value wherever
// they occur, so a value containing them is not returned verbatim.
func ReadVersion(contents string) (string, error) {
	for _, line := range strings.Split(contents, "\n") {
		if !IsVersionLine(line) {
			continue
		}
		return strings.TrimFunc(stripDecoration(strings.TrimPrefix(line, Prefix)), isSpace), nil
	}
	return "", ErrNotFound
}

// WriteVersion rewrites every version line in contents to declare version and
// returns the result. Contents without a version line are returned unchanged.
func WriteVersion(contents, version string) string {
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		if IsVersionLine(line) {
			lines[i] = Prefix + "'" + version + "',"
		}
	}
	return strings.Join(lines, "\n")
}

// stripDecoration removes quotes, commas and whitespace from s. Bytes that
// are not valid UTF-8 are copied through unchanged.
func stripDecoration(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else if !isDecoration(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func isDecoration(r rune) bool {
	return r == '\'' || r == '"' || r == ',' || isSpace(r)
}

// isSpace matches the ECMAScript whitespace and line terminator set: the
// Unicode White_Space runes minus U+0085, plus the byte order mark U+FEFF.
func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}
