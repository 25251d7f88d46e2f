package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Asmiya135/AshaAI/pkg/jobs"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobs jobs.Searcher
	now  func() time.Time
}

func NewJobHandler(searcher jobs.Searcher) *JobHandler {
	return &JobHandler{jobs: searcher, now: time.Now}
}

func (h *JobHandler) SearchJobs(c *gin.Context) {
	log := logger(c)

	var req searchJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid job search body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	experience := jobs.DefaultExperience
	switch len(req.Experience) {
	case 0:
	case 2:
		experience = jobs.ExperienceRange{req.Experience[0], req.Experience[1]}
	default:
		log.Warn("invalid experience range", "experience", req.Experience)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	listings, err := h.jobs.Search(c.Request.Context(), jobs.Query{
		Position:         req.Position,
		Company:          req.Company,
		Location:         req.Location,
		Experience:       experience,
		WorkLocationType: req.WorkLocationType,
		JobType:          req.JobType,
	})
	if err != nil {
		log.Error("error searching jobs", "position", req.Position, "error", err)

		var statusErr *jobs.StatusError
		if errors.As(err, &statusErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   fmt.Sprintf("LinkedIn API request failed: %d", statusErr.StatusCode),
				"message": statusErr.Body,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SearchJobsResponse{Jobs: jobs.Transform(listings, experience, h.now())})
}

func (h *JobHandler) SearchLinkedInJobs(c *gin.Context) {
	log := logger(c)

	var req linkedInSearchRequest
	var err error
	if c.Request.Method == http.MethodPost {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		log.Warn("invalid linkedin search request", "error", err)
	}

	if req.JobTitle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No job title provided"})
		return
	}

	res := h.jobs.ScrapeLinkedIn(c.Request.Context(), jobs.LinkedInSearch{
		JobTitle:        req.JobTitle,
		GeoID:           req.GeoID,
		JobType:         req.JobType,
		ExpLevel:        req.ExpLevel,
		WorkType:        req.WorkType,
		FilterByCompany: req.FilterByCompany,
	})
	if res.Error != "" {
		log.Warn("linkedin scrape failed", "job_title", req.JobTitle, "error", res.Error)
	}

	c.JSON(http.StatusOK, res)
}

func (h *JobHandler) TestAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "API is working!"})
}

func (h *JobHandler) TestScraping(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobs.Ping(c.Request.Context()))
}
