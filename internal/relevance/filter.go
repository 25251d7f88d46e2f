package relevance

import (
	"slices"

	"github.com/Asmiya135/AshaAI/internal/model"
)

const (
	// strongKeywordCount is how many distinct keywords in the full text make
	// an article strongly relevant without a title match.
	strongKeywordCount = 2

	// minPrioritized is the smallest filtered result worth returning; below
	// it the unfiltered input is used instead.
	minPrioritized = 5

	MaxResults = 20
)

type Filter struct {
	matcher *Matcher
}

func NewFilter(matcher *Matcher) *Filter {
	return &Filter{matcher: matcher}
}

// Classify splits articles into strongly relevant and maybe relevant ones.
// Unrelated articles are dropped. Both buckets keep the input order. The
// query is not used for matching yet.
func (f *Filter) Classify(articles []model.Article, query string) (strong, maybe []model.Article) {
	for _, a := range articles {
		text := a.Title + " " + a.Description + " " + a.Content

		if f.matcher.Any(a.Title) {
			strong = append(strong, a)
			continue
		}

		switch n := f.matcher.Count(text); {
		case n >= strongKeywordCount:
			strong = append(strong, a)
		case n >= 1:
			maybe = append(maybe, a)
		}
	}
	return strong, maybe
}

// Prioritize returns strongly relevant articles followed by maybe relevant
// ones, or the input unchanged when fewer than five survive classification.
func (f *Filter) Prioritize(articles []model.Article, query string) []model.Article {
	strong, maybe := f.Classify(articles, query)

	prioritized := make([]model.Article, 0, len(strong)+len(maybe))
	prioritized = append(prioritized, strong...)
	prioritized = append(prioritized, maybe...)

	if len(prioritized) < minPrioritized && len(articles) > 0 {
		return articles
	}
	return prioritized
}

// Score counts the distinct keywords in the title and description.
func (f *Filter) Score(a model.Article) int {
	return f.matcher.Count(a.Title + " " + a.Description)
}

// Rank keeps the first MaxResults articles and orders them by descending
// score. Equal scores keep their relative order.
func (f *Filter) Rank(articles []model.Article) []model.Article {
	if len(articles) > MaxResults {
		articles = articles[:MaxResults]
	}

	type scored struct {
		article model.Article
		score   int
	}

	items := make([]scored, len(articles))
	for i, a := range articles {
		items[i] = scored{article: a, score: f.Score(a)}
	}

	slices.SortStableFunc(items, func(a, b scored) int {
		return b.score - a.score
	})

	ranked := make([]model.Article, len(items))
	for i, it := range items {
		ranked[i] = it.article
	}
	return ranked
}

// Apply runs classification, the fallback policy and ranking.
func (f *Filter) Apply(articles []model.Article, query string) []model.Article {
	return f.Rank(f.Prioritize(articles, query))
}
