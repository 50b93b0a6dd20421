package color

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Translator converts markup in user text into formatting codes
type Translator interface {
	Translate(text string) string
}

// DefaultCacheSize is used when NewTranslator is given a non-positive size
const DefaultCacheSize = 512

// CachedTranslator translates '&' color codes and '&#RRGGBB' hex colors into
// section-sign codes. Results are memoized; it is safe for concurrent use.
type CachedTranslator struct {
	cache *lru.Cache[string, string]
}

// NewTranslator creates a translator holding up to size cached results
func NewTranslator(size int) (*CachedTranslator, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation cache: %w", err)
	}
	return &CachedTranslator{cache: cache}, nil
}

// Translate converts markup codes in text
func (t *CachedTranslator) Translate(text string) string {
	if !strings.ContainsRune(text, AltCodeChar) {
		return text
	}
	if out, ok := t.cache.Get(text); ok {
		return out
	}
	out := translate(text)
	t.cache.Add(text, out)
	return out
}

// Len returns the number of cached translations
func (t *CachedTranslator) Len() int {
	return t.cache.Len()
}

// translate walks bytes rather than runes: every code is ASCII, and invalid
// UTF-8 in text is copied through unchanged.
func translate(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != AltCodeChar || i+1 >= len(text) {
			b.WriteByte(c)
			continue
		}
		next := text[i+1]
		if next == '#' && i+8 <= len(text) && isHex(text[i+2:i+8]) {
			b.WriteRune(CodeChar)
			b.WriteByte('x')
			for j := i + 2; j < i+8; j++ {
				b.WriteRune(CodeChar)
				b.WriteByte(toLower(text[j]))
			}
			i += 7
			continue
		}
		if isCode(formatCodes, next) {
			b.WriteRune(CodeChar)
			b.WriteByte(toLower(next))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Strip removes section-sign formatting codes from already translated text
func Strip(text string) string {
	if !strings.ContainsRune(text, CodeChar) {
		return text
	}
	sign := string(CodeChar)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		end := i + len(sign)
		if strings.HasPrefix(text[i:], sign) && end < len(text) && isCode(formatCodes+"x", text[end]) {
			i = end
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

func isCode(codes string, c byte) bool {
	return strings.IndexByte(codes, toLower(c)) >= 0
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte("0123456789abcdefABCDEF", s[i]) < 0 {
			return false
		}
	}
	return true
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Passthrough leaves text untouched
type Passthrough struct{}

// Translate returns text unchanged
func (Passthrough) Translate(text string) string { return text }
