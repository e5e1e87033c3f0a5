package modelout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// parseLiteral decodes a closed literal-data grammar: string literals with
// single or double quotes, lists, and string-keyed mappings. Nothing else:
// identifiers, numbers, function calls, and attribute access are rejected.
// This covers only the data shapes a model emits when it quotes JSON the
// Python way; it is not, and must never become, an expression evaluator.
func parseLiteral(input string) (any, error) {
	p := &literalParser{src: input}
	p.skipSpace()
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("trailing content at offset %d", p.pos)
	}
	return value, nil
}

type literalParser struct {
	src string
	pos int
}

func (p *literalParser) parseValue() (any, error) {
	if p.pos >= len(p.src) {
		return nil, errors.New("unexpected end of input")
	}
	switch c := p.src[p.pos]; c {
	case '\'', '"':
		return p.parseString()
	case '[':
		return p.parseList()
	case '{':
		return p.parseMapping()
	default:
		return nil, fmt.Errorf("unexpected character %q at offset %d", c, p.pos)
	}
}

func (p *literalParser) parseString() (string, error) {
	quote := p.src[p.pos]
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if r == rune(quote) {
			p.pos++
			return b.String(), nil
		}
		if r == '\\' {
			p.pos++
			if p.pos >= len(p.src) {
				return "", errors.New("unterminated escape sequence")
			}
			esc, escSize := utf8.DecodeRuneInString(p.src[p.pos:])
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\', '\'', '"', '/':
				b.WriteRune(esc)
			default:
				return "", fmt.Errorf("unsupported escape \\%c at offset %d", esc, p.pos)
			}
			p.pos += escSize
			continue
		}
		if r == '\n' {
			return "", fmt.Errorf("unterminated string at offset %d", p.pos)
		}
		b.WriteRune(r)
		p.pos += size
	}
	return "", errors.New("unterminated string")
}

func (p *literalParser) parseList() ([]any, error) {
	p.pos++ // consume '['
	items := []any{}

	p.skipSpace()
	if p.consume(']') {
		return items, nil
	}

	for {
		p.skipSpace()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, value)

		p.skipSpace()
		if p.consume(',') {
			p.skipSpace()
			// Trailing comma before the closing bracket is tolerated.
			if p.consume(']') {
				return items, nil
			}
			continue
		}
		if p.consume(']') {
			return items, nil
		}
		return nil, fmt.Errorf("expected ',' or ']' at offset %d", p.pos)
	}
}

func (p *literalParser) parseMapping() (map[string]any, error) {
	p.pos++ // consume '{'
	entries := map[string]any{}

	p.skipSpace()
	if p.consume('}') {
		return entries, nil
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.src) || (p.src[p.pos] != '\'' && p.src[p.pos] != '"') {
			return nil, fmt.Errorf("mapping key must be a string literal at offset %d", p.pos)
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if !p.consume(':') {
			return nil, fmt.Errorf("expected ':' after mapping key at offset %d", p.pos)
		}

		p.skipSpace()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		entries[key] = value

		p.skipSpace()
		if p.consume(',') {
			p.skipSpace()
			if p.consume('}') {
				return entries, nil
			}
			continue
		}
		if p.consume('}') {
			return entries, nil
		}
		return nil, fmt.Errorf("expected ',' or '}' at offset %d", p.pos)
	}
}

func (p *literalParser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}
