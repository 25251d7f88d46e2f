package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Asmiya135/AshaAI/internal/config"
	"github.com/Asmiya135/AshaAI/internal/handler"
	"github.com/Asmiya135/AshaAI/pkg/jobs"
	"github.com/Asmiya135/AshaAI/pkg/ocr"
	"github.com/Asmiya135/AshaAI/pkg/pii"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load("5000")

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if cfg.ScrapingDogAPIKey == "" {
		slog.Warn("SCRAPINGDOG_API_KEY is not set, job searches will fail")
	}
	if cfg.MistralAPIKey == "" {
		slog.Warn("MISTRAL_API_KEY is not set, resume processing will fail")
	}

	llmClient, err := cfg.NewLLMClient()
	if err != nil {
		log.Fatalf("error configuring LLM client: %v", err)
	}

	jobSearcher := jobs.NewScrapingDogClient(cfg.ScrapingDogAPIKey, cfg.HTTPTimeout)
	extractor := ocr.NewMistralClient(cfg.MistralAPIKey, cfg.HTTPTimeout)
	redactor := pii.NewPresidioClient(cfg.PresidioAnalyzerURL, cfg.PresidioAnonymizerURL, cfg.HTTPTimeout)

	jobHandler := handler.NewJobHandler(jobSearcher)
	resumeHandler := handler.NewResumeHandler(extractor, redactor, llmClient, jobSearcher)

	r := gin.Default()
	r.Use(handler.RequestID(), handler.CORS(cfg.FrontendURLs))

	api := r.Group("/api")
	api.POST("/search-jobs", jobHandler.SearchJobs)
	api.POST("/process-resume", resumeHandler.ProcessResume)
	api.GET("/search-linkedin-jobs", jobHandler.SearchLinkedInJobs)
	api.POST("/search-linkedin-jobs", jobHandler.SearchLinkedInJobs)
	api.GET("/test", jobHandler.TestAPI)
	api.GET("/test-scraping", jobHandler.TestScraping)
	r.GET("/health", handler.GetHealth)

	slog.Info("starting api server", "port", cfg.Port, "model", llmClient.Name())

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
