package handler

import (
	"fmt"
	"net/http"

	"github.com/Asmiya135/AshaAI/pkg/jobs"
	"github.com/Asmiya135/AshaAI/pkg/llm"
	"github.com/Asmiya135/AshaAI/pkg/ocr"
	"github.com/Asmiya135/AshaAI/pkg/pii"

	"github.com/gin-gonic/gin"
)

var errorSuggestion = llm.JobSuggestion{
	Title:  "Error processing resume",
	Reason: "An error occurred while analyzing the resume content.",
}

type ResumeHandler struct {
	ocr      ocr.Extractor
	redactor pii.Redactor
	llm      llm.Client
	jobs     jobs.Searcher
}

func NewResumeHandler(extractor ocr.Extractor, redactor pii.Redactor, client llm.Client, searcher jobs.Searcher) *ResumeHandler {
	return &ResumeHandler{
		ocr:      extractor,
		redactor: redactor,
		llm:      client,
		jobs:     searcher,
	}
}

// ProcessResume runs OCR on an uploaded resume, masks personal data, asks
// for matching positions and searches LinkedIn for the first one.
func (h *ResumeHandler) ProcessResume(c *gin.Context) {
	log := logger(c)

	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No resume file provided"})
		return
	}

	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No resume file selected"})
		return
	}

	ctx := c.Request.Context()

	f, err := file.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	log.Info("running OCR", "filename", file.Filename, "size", file.Size)
	pages, err := h.ocr.Extract(ctx, file.Filename, f)
	if err != nil {
		h.fail(c, err)
		return
	}

	if len(pages) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OCR response does not contain any text"})
		return
	}
	resumeText := pages[0].Markdown

	masked, err := h.redactor.Redact(ctx, resumeText)
	if err != nil {
		h.fail(c, err)
		return
	}

	suggestions, err := h.llm.SuggestJobs(ctx, masked)
	if err != nil {
		log.Error("error getting job suggestions", "model", h.llm.Name(), "error", err)
		suggestions = []llm.JobSuggestion{errorSuggestion}
	}

	var linkedInJobs any = []jobs.ScrapeResult{}
	if len(suggestions) > 0 {
		linkedInJobs = h.jobs.ScrapeLinkedIn(ctx, jobs.LinkedInSearch{JobTitle: suggestions[0].Title})
	}

	c.JSON(http.StatusOK, ResumeResponse{
		OCRText:        resumeText,
		MaskedText:     masked,
		JobSuggestions: suggestions,
		LinkedInJobs:   linkedInJobs,
	})
}

func (h *ResumeHandler) fail(c *gin.Context, err error) {
	logger(c).Error("error processing resume", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error processing resume: %v", err)})
}
