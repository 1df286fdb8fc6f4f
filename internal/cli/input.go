package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/evdnx/movingavg/indicator"
)

const maxLineSize = 1 << 20

// readSequence reads tokens separated by whitespace and/or commas. Lines
// starting with '#' are comments. Tokens that are not numbers become NaN.
func readSequence(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var tokens []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.FieldsFunc(line, isSeparator)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return indicator.ParseFloats(tokens), nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}
