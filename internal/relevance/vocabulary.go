package relevance

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// WomenKeywords is the default vocabulary for women-focused news.
var WomenKeywords = []string{
	// general identifiers
	"women", "woman", "female", "girl", "girls", "ladies", "womens", "women's", "lady",

	// gender equality & inclusion
	"gender equality", "gender equity", "gender justice", "gender diversity",
	"gender gap", "gender inclusion", "gender rights", "gender bias",

	// empowerment & feminism
	"empowerment", "female empowerment", "women empowerment", "nari shakti", "shakti",
	"mahila sashaktikaran", "feminism", "feminist", "women leaders", "women leadership",
	"women achievers", "women success", "women-led", "women-owned",

	// education & social campaigns
	"beti bachao", "beti padhao", "ladli yojana", "sukanya samriddhi yojana",
	"savitribai phule", "education for girls",

	// health
	"maternal", "maternity", "maternal health", "women health", "menstrual hygiene",
	"nutrition for women", "pregnancy care", "janani suraksha", "ujjwala scheme",

	// professions & sectors
	"women in tech", "women in business", "women in politics", "women in science",
	"women in education", "women in agriculture", "women in defence", "women in sports",
	"women in media", "women entrepreneurs", "nari sena", "nari brigade",

	// legal & safety
	"dowry", "dowry act", "domestic violence", "sexual harassment", "POSH Act",
	"maternity benefit act", "mahila police", "women helpline", "one stop center",

	// entrepreneurship & initiatives
	"startup india women", "stand up india", "women investors", "women founders",
	"women-led startups", "self-help groups", "SHGs for women", "sabla scheme",
}

// Vocabulary is an ordered set of lowercase keywords.
type Vocabulary []string

// NewVocabulary lowercases the keywords, drops blanks and keeps the first
// occurrence of each duplicate.
func NewVocabulary(keywords []string) Vocabulary {
	seen := make(map[string]struct{}, len(keywords))
	v := make(Vocabulary, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		v = append(v, kw)
	}
	return v
}

// DefaultVocabulary returns the women-focused vocabulary.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(WomenKeywords)
}

type vocabularyFile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadVocabulary reads a YAML file with a top-level "keywords" list.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}

	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}

	v := NewVocabulary(f.Keywords)
	if len(v) == 0 {
		return nil, fmt.Errorf("vocabulary %s has no keywords", path)
	}
	return v, nil
}
