package relevance

import (
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"
)

// Matcher finds vocabulary keywords inside text. Matching is
// case-insensitive substring containment, so a short keyword also matches
// inside a longer word.
type Matcher struct {
	vocab Vocabulary

	// ahocorasick.Matcher keeps per-match state on its nodes.
	mu sync.Mutex
	ac *ahocorasick.Matcher
}

func NewMatcher(vocab Vocabulary) *Matcher {
	m := &Matcher{vocab: vocab}
	if len(vocab) > 0 {
		m.ac = ahocorasick.NewStringMatcher(vocab)
	}
	return m
}

// Count returns how many distinct keywords occur in text.
func (m *Matcher) Count(text string) int {
	if m.ac == nil || text == "" {
		return 0
	}

	in := []byte(strings.ToLower(text))

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ac.Match(in))
}

// Any reports whether at least one keyword occurs in text.
func (m *Matcher) Any(text string) bool {
	return m.Count(text) > 0
}

// Vocabulary returns the keywords the matcher was built from.
func (m *Matcher) Vocabulary() Vocabulary {
	return m.vocab
}
