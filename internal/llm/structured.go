package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw model output.
// Markdown fences, prose around the object, comments, trailing commas and
// bare leading-decimal numbers are tolerated. If validator is non-nil the
// decoded value is validated before return.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := extractJSONBlock(stripCodeFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}
	block = stripJSONComments(block)
	block = stripTrailingCommas(block)
	block = normalizeLeadingDecimalNumbers(block)

	var result T
	if err := json.Unmarshal([]byte(block), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// jsonScanner walks a JSON-ish text byte by byte, tracking whether the
// cursor sits inside a string literal.
type jsonScanner struct {
	s        string
	pos      int
	inString bool
	escaped  bool
}

func (sc *jsonScanner) more() bool { return sc.pos < len(sc.s) }

// step consumes one byte. code is true when the byte is structural, i.e.
// outside any string literal and not a quote.
func (sc *jsonScanner) step() (c byte, code bool) {
	c = sc.s[sc.pos]
	sc.pos++
	switch {
	case sc.escaped:
		sc.escaped = false
	case sc.inString && c == '\\':
		sc.escaped = true
	case c == '"':
		sc.inString = !sc.inString
	default:
		return c, !sc.inString
	}
	return c, false
}

func (sc *jsonScanner) peek() byte {
	if sc.pos < len(sc.s) {
		return sc.s[sc.pos]
	}
	return 0
}

// stripCodeFences drops markdown fence lines (```json, ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// extractJSONBlock returns the first balanced { ... } block in s.
func extractJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}
	sc := &jsonScanner{s: s, pos: start}
	depth := 0
	for sc.more() {
		c, code := sc.step()
		if !code {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start:sc.pos]
			}
		}
	}
	return ""
}

// stripJSONComments removes // and /* */ comments outside string values.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	sc := &jsonScanner{s: s}
	for sc.more() {
		c, code := sc.step()
		if code && c == '/' {
			switch sc.peek() {
			case '/':
				if nl := strings.IndexByte(s[sc.pos:], '\n'); nl >= 0 {
					sc.pos += nl
				} else {
					sc.pos = len(s)
				}
				continue
			case '*':
				if end := strings.Index(s[sc.pos+1:], "*/"); end >= 0 {
					sc.pos += end + 3
				} else {
					sc.pos = len(s)
				}
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// stripTrailingCommas drops a comma that directly precedes } or ].
func stripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	sc := &jsonScanner{s: s}
	for sc.more() {
		c, code := sc.step()
		if code && c == ',' {
			if next := nextNonSpace(s, sc.pos); next == '}' || next == ']' {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// normalizeLeadingDecimalNumbers rewrites ".8" and "-.3" into "0.8" and
// "-0.3" outside string values.
func normalizeLeadingDecimalNumbers(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	sc := &jsonScanner{s: s}
	for sc.more() {
		c, code := sc.step()
		if code && c == '.' && isDigit(sc.peek()) && isNumericBoundary(prevNonSpace(s, sc.pos-2)) {
			b.WriteByte('0')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func prevNonSpace(s string, i int) byte {
	for ; i >= 0; i-- {
		if !isSpace(s[i]) {
			return s[i]
		}
	}
	return 0
}

func nextNonSpace(s string, i int) byte {
	for ; i < len(s); i++ {
		if !isSpace(s[i]) {
			return s[i]
		}
	}
	return 0
}

func isNumericBoundary(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
