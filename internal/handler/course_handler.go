package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Asmiya135/AshaAI/pkg/llm"
	"github.com/Asmiya135/AshaAI/pkg/video"

	"github.com/gin-gonic/gin"
)

var validLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

var errNoVideoSearch = errors.New("video search is not configured")

type CourseHandler struct {
	llm    llm.Client
	videos video.Searcher
}

// NewCourseHandler builds the handler. videos may be nil, in which case no
// subsection gets a video.
func NewCourseHandler(client llm.Client, videos video.Searcher) *CourseHandler {
	return &CourseHandler{llm: client, videos: videos}
}

func (h *CourseHandler) GenerateCourse(c *gin.Context) {
	log := logger(c)

	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid course request body", "error", err)
	}

	if req.Title == "" || req.Level == "" || req.Goal == "" || req.CurrentState == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: title, level, goal, and currentState are required"})
		return
	}

	if !validLevels[strings.ToLower(req.Level)] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course level. Must be beginner, intermediate, or advanced"})
		return
	}

	ctx := c.Request.Context()

	course, err := h.llm.GenerateCourse(ctx, llm.CourseInput{
		Title:        req.Title,
		Level:        req.Level,
		Goal:         req.Goal,
		CurrentState: req.CurrentState,
	})
	if err != nil {
		log.Error("course generation error", "model", h.llm.Name(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate course", "message": err.Error()})
		return
	}

	h.attachVideos(ctx, log, course)

	c.JSON(http.StatusOK, course)
}

// attachVideos looks up one video per subsection. A failed lookup leaves
// the subsection without a video.
func (h *CourseHandler) attachVideos(ctx context.Context, log *slog.Logger, course *llm.Course) {
	for m := range course.Modules {
		module := &course.Modules[m]
		for s := range module.Subsections {
			sub := &module.Subsections[s]

			searchQuery := fmt.Sprintf("%s %s %s", course.CourseTitle, module.ModuleTitle, sub.SubsectionTitle)
			keyword, err := h.llm.VideoKeyword(ctx, llm.KeywordInput{
				SearchQuery:     searchQuery,
				SubsectionTitle: sub.SubsectionTitle,
				ModuleTitle:     module.ModuleTitle,
				CourseTitle:     course.CourseTitle,
			})
			if err != nil {
				log.Warn("error generating keyword", "error", err)
				keyword = searchQuery
			}

			link, err := h.findVideo(ctx, keyword)
			if err != nil {
				log.Warn("error finding video", "keyword", keyword, "error", err)
				sub.YoutubeVideoID = nil
				continue
			}
			sub.YoutubeVideoID = &link
		}
	}
}

func (h *CourseHandler) findVideo(ctx context.Context, keyword string) (string, error) {
	if h.videos == nil {
		return "", errNoVideoSearch
	}
	return h.videos.FindVideo(ctx, keyword)
}
