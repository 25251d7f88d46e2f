package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Asmiya135/AshaAI/internal/model"
	"github.com/Asmiya135/AshaAI/internal/relevance"
	"github.com/Asmiya135/AshaAI/pkg/news"

	"github.com/gin-gonic/gin"
)

const (
	newsPageSize = 30
	// minUpstreamResults below this the topic-restricted search is replaced
	// by a search for the bare query.
	minUpstreamResults = 10
)

type NewsHandler struct {
	searcher news.Searcher
	filter   *relevance.Filter
}

func NewNewsHandler(searcher news.Searcher, filter *relevance.Filter) *NewsHandler {
	return &NewsHandler{searcher: searcher, filter: filter}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	log := logger(c)

	var query string
	if c.Request.Method == http.MethodPost {
		var req newsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Warn("invalid news request body", "error", err)
		}
		query = req.JobTitle
	} else {
		query = c.Query("query")
	}

	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a query"})
		return
	}

	articles, err := h.search(c.Request.Context(), query)
	if err != nil {
		log.Error("error searching news", "source", h.searcher.Name(), "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ranked := h.filter.Apply(articles, query)

	res := NewsResponse{
		Query:    query,
		Articles: make([]NewsArticleResponse, 0, len(ranked)),
	}
	for _, a := range ranked {
		a = a.WithPlaceholders()
		res.Articles = append(res.Articles, NewsArticleResponse{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			Source:      a.Source,
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
		})
	}

	log.Info("news served", "query", query, "upstream", len(articles), "returned", len(res.Articles))
	c.JSON(http.StatusOK, res)
}

// search asks for topic-restricted results first and falls back to the
// bare query when that yields too few.
func (h *NewsHandler) search(ctx context.Context, query string) ([]model.Article, error) {
	params := news.SearchParams{
		Query:    fmt.Sprintf("%s AND (women OR female OR gender OR empowerment)", query),
		Language: "en",
		SortBy:   "relevancy",
		PageSize: newsPageSize,
	}

	found, err := h.searcher.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(found) < minUpstreamResults {
		params.Query = query
		found, err = h.searcher.Search(ctx, params)
		if err != nil {
			return nil, err
		}
	}

	articles := make([]model.Article, len(found))
	for i, a := range found {
		articles[i] = model.Article{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			Source:      a.Source,
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
			URLToImage:  a.URLToImage,
		}
	}
	return articles, nil
}
