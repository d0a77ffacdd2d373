// Package scanner turns source text into an ordered token stream. The stream
// always covers the input exactly: concatenating every token value, including
// whitespace, reconstructs the source byte for byte. Malformed input never
// fails a scan; anomalies degrade and are reported through the recovery
// strategy.
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wudi/inkkit/recovery"
)

type TokenType int

const (
	TokenWhitespace TokenType = iota
	TokenComment
	TokenString
	TokenNumber
	TokenKeyword
	TokenBuiltin
	TokenIdentifier
	TokenOperator
	TokenPunct
)

func (t TokenType) String() string {
	switch t {
	case TokenWhitespace:
		return "whitespace"
	case TokenComment:
		return "comment"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenKeyword:
		return "keyword"
	case TokenBuiltin:
		return "builtin"
	case TokenIdentifier:
		return "identifier"
	case TokenOperator:
		return "operator"
	case TokenPunct:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Token is one classified lexical unit. Start and End are byte offsets into
// the scanned source; Line and Column are 1-based, Column counted in bytes.
type Token struct {
	Type   TokenType
	Value  string
	Start  int
	End    int
	Line   int
	Column int
}

type Config struct {
	Recovery recovery.Strategy
}

// Scan tokenizes source with the grammar registered for language, falling
// back to the generic grammar for unrecognized languages. Degradations are
// absorbed silently; use ScanWithConfig to observe or reject them.
func Scan(source, language string) []Token {
	toks, _ := ScanWithConfig(source, language, Config{})
	return toks
}

// ScanWithConfig tokenizes source, reporting degradations (unknown language,
// unterminated string) to cfg.Recovery. A strategy answering ActionFail turns
// the degradation into an error; otherwise the scan always succeeds.
func ScanWithConfig(source, language string, cfg Config) ([]Token, error) {
	g, ok := Lookup(language)
	if !ok {
		g = Fallback()
		if err := degrade(cfg, recovery.Degradation{
			Kind:      recovery.UnknownLanguage,
			Detail:    language,
			Component: "scanner",
		}); err != nil {
			return nil, err
		}
	}
	return g.scan(source, cfg)
}

func degrade(cfg Config, d recovery.Degradation) error {
	if cfg.Recovery == nil {
		return nil
	}
	if cfg.Recovery.OnDegraded(d) == recovery.ActionFail {
		return &DegradedError{Degradation: d}
	}
	return nil
}

// DegradedError is returned when the recovery strategy rejects a degradation.
type DegradedError struct {
	Degradation recovery.Degradation
}

func (e *DegradedError) Error() string {
	return "scan rejected: " + e.Degradation.Kind.String() + ": " + e.Degradation.Detail
}

// Covers reports whether tokens reconstruct source exactly, with contiguous
// offsets and no gaps or overlaps.
func Covers(source string, tokens []Token) bool {
	pos := 0
	for _, tok := range tokens {
		if tok.Start != pos || tok.End != pos+len(tok.Value) {
			return false
		}
		if source[tok.Start:tok.End] != tok.Value {
			return false
		}
		pos = tok.End
	}
	return pos == len(source)
}

// scan walks the source one physical line at a time, keeping a running byte
// offset so token positions stay correct across the whole document.
func (g *Grammar) scan(source string, cfg Config) ([]Token, error) {
	var tokens []Token
	offset := 0
	line := 1
	rest := source
	for len(rest) > 0 {
		content := rest
		terminator := ""
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			content = rest[:i]
			terminator = "\n"
			rest = rest[i+1:]
		} else {
			rest = ""
		}
		if strings.HasSuffix(content, "\r") {
			content = content[:len(content)-1]
			terminator = "\r" + terminator
		}

		lineToks, err := g.scanLine(content, offset, line, cfg)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineToks...)
		offset += len(content)

		if terminator != "" {
			tokens = append(tokens, Token{
				Type:   TokenWhitespace,
				Value:  terminator,
				Start:  offset,
				End:    offset + len(terminator),
				Line:   line,
				Column: len(content) + 1,
			})
			offset += len(terminator)
		}
		line++
	}
	return tokens, nil
}

// scanLine applies the grammar rules in priority order at each cursor
// position: whitespace run, line comment, string, number, word, operator,
// punctuation catch-all.
func (g *Grammar) scanLine(content string, offset, line int, cfg Config) ([]Token, error) {
	var tokens []Token
	pos := 0
	emit := func(t TokenType, start int) {
		tokens = append(tokens, Token{
			Type:   t,
			Value:  content[start:pos],
			Start:  offset + start,
			End:    offset + pos,
			Line:   line,
			Column: start + 1,
		})
	}
	for pos < len(content) {
		start := pos
		c := content[pos]

		if c == ' ' || c == '\t' {
			for pos < len(content) && (content[pos] == ' ' || content[pos] == '\t') {
				pos++
			}
			emit(TokenWhitespace, start)
			continue
		}

		if g.LineComment != "" && strings.HasPrefix(content[pos:], g.LineComment) {
			pos = len(content)
			emit(TokenComment, start)
			continue
		}

		if strings.IndexByte(g.Quotes, c) >= 0 {
			terminated := false
			pos++
			for pos < len(content) {
				if content[pos] == '\\' && pos+1 < len(content) {
					pos += 2
					continue
				}
				if content[pos] == c {
					pos++
					terminated = true
					break
				}
				pos++
			}
			if !terminated {
				// Best-effort capture to end of line.
				if err := degrade(cfg, recovery.Degradation{
					Kind:      recovery.UnterminatedString,
					Detail:    content[start:pos],
					Line:      line,
					Component: "scanner",
				}); err != nil {
					return nil, err
				}
			}
			emit(TokenString, start)
			continue
		}

		if c >= '0' && c <= '9' {
			for pos < len(content) && (isDigit(content[pos]) || content[pos] == '.') {
				pos++
			}
			emit(TokenNumber, start)
			continue
		}

		if r, size := utf8.DecodeRuneInString(content[pos:]); r == '_' || unicode.IsLetter(r) {
			pos += size
			for pos < len(content) {
				r, size := utf8.DecodeRuneInString(content[pos:])
				if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					break
				}
				pos += size
			}
			word := content[start:pos]
			switch {
			case g.Keywords[word]:
				emit(TokenKeyword, start)
			case g.Builtins[word]:
				emit(TokenBuiltin, start)
			default:
				emit(TokenIdentifier, start)
			}
			continue
		}

		// Greedy operator match: 3, then 2, then 1 characters.
		matched := false
		for n := 3; n >= 1; n-- {
			if pos+n <= len(content) && g.Operators[content[pos:pos+n]] {
				pos += n
				emit(TokenOperator, start)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Punctuation catch-all; consume a full rune so multi-byte
		// characters stay intact.
		_, size := utf8.DecodeRuneInString(content[pos:])
		pos += size
		emit(TokenPunct, start)
	}
	return tokens, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
