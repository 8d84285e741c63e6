package structtext

import (
	"bufio"
	"io"
	"strings"

	errgo "gopkg.in/errgo.v1"
)

// Clean removes comments and all whitespace outside quoted spans, joining
// the lines into a single document. A comment starts at an unquoted # and
// runs to the end of its line. Quote state does not carry across lines.
func Clean(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		cleanLine(&b, line)
	}
	return b.String()
}

// ReadClean reads a whole document from r and cleans it.
func ReadClean(r io.Reader) (string, error) {
	var b strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		cleanLine(&b, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", errgo.Notef(err, "cannot read description")
	}
	return b.String(), nil
}

func cleanLine(b *strings.Builder, line string) {
	quoted := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			quoted = !quoted
			b.WriteByte(c)
		case quoted:
			b.WriteByte(c)
		case c == '#':
			return
		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
		default:
			b.WriteByte(c)
		}
	}
}
