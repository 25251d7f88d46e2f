package news

import "context"

type Article struct {
	Title       string
	Description string
	Content     string
	Source      string
	PublishedAt string
	URL         string
	URLToImage  string
}

type SearchParams struct {
	Query    string
	Language string
	SortBy   string
	PageSize int
}

type Searcher interface {
	Search(ctx context.Context, params SearchParams) ([]Article, error)
	Name() string
}
