package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Asmiya135/AshaAI/internal/config"
	"github.com/Asmiya135/AshaAI/internal/handler"
	"github.com/Asmiya135/AshaAI/internal/relevance"
	"github.com/Asmiya135/AshaAI/pkg/news"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load("5002")

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if cfg.NewsAPIKey == "" {
		slog.Warn("NEWS_API_KEY is not set, upstream searches will be rejected")
	}

	vocab := relevance.DefaultVocabulary()
	if cfg.KeywordsFile != "" {
		loaded, err := relevance.LoadVocabulary(cfg.KeywordsFile)
		if err != nil {
			log.Fatalf("error loading keywords: %v", err)
		}
		vocab = loaded
	}

	matcher := relevance.NewMatcher(vocab)
	slog.Info("relevance vocabulary loaded", "keywords", len(matcher.Vocabulary()))

	searcher := news.NewNewsAPIClient(cfg.NewsAPIKey, cfg.HTTPTimeout)
	filter := relevance.NewFilter(matcher)
	newsHandler := handler.NewNewsHandler(searcher, filter)

	r := gin.Default()
	r.Use(handler.RequestID(), handler.CORS(cfg.FrontendURLs))

	r.GET("/get-news", newsHandler.GetNews)
	r.POST("/get-news", newsHandler.GetNews)
	r.GET("/health", handler.GetHealth)

	err := r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
