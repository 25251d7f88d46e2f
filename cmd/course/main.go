package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Asmiya135/AshaAI/internal/config"
	"github.com/Asmiya135/AshaAI/internal/handler"
	"github.com/Asmiya135/AshaAI/pkg/video"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load("5001")

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	llmClient, err := cfg.NewLLMClient()
	if err != nil {
		log.Fatalf("error configuring LLM client: %v", err)
	}

	var videos video.Searcher
	if cfg.YouTubeAPIKey != "" {
		yt, err := video.NewYouTubeClient(context.Background(), cfg.YouTubeAPIKey)
		if err != nil {
			log.Fatalf("error creating YouTube client: %v", err)
		}
		videos = yt
	} else {
		slog.Warn("YOUTUBE_API_KEY is not set, courses will have no videos")
	}

	courseHandler := handler.NewCourseHandler(llmClient, videos)

	r := gin.Default()
	r.Use(handler.RequestID(), handler.CORS(cfg.FrontendURLs))

	r.POST("/generate-course", courseHandler.GenerateCourse)
	r.GET("/health", handler.GetHealth)

	slog.Info("starting course server", "port", cfg.Port, "model", llmClient.Name())

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
