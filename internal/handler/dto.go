package handler

import (
	"github.com/Asmiya135/AshaAI/pkg/jobs"
	"github.com/Asmiya135/AshaAI/pkg/llm"
)

type NewsArticleResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
}

type NewsResponse struct {
	Query    string                `json:"query"`
	Articles []NewsArticleResponse `json:"articles"`
}

type newsRequest struct {
	JobTitle string `json:"jobTitle"`
}

type courseRequest struct {
	Title        string `json:"title"`
	Level        string `json:"level"`
	Goal         string `json:"goal"`
	CurrentState string `json:"currentState"`
}

type searchJobsRequest struct {
	Position         string    `json:"position"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Experience       []float64 `json:"experience"`
	WorkLocationType string    `json:"workLocationType"`
	JobType          string    `json:"jobType"`
}

type SearchJobsResponse struct {
	Jobs []jobs.Job `json:"jobs"`
}

type linkedInSearchRequest struct {
	JobTitle        string `json:"jobTitle" form:"jobTitle"`
	GeoID           string `json:"geoId" form:"geoId"`
	JobType         string `json:"jobType" form:"jobType"`
	ExpLevel        string `json:"expLevel" form:"expLevel"`
	WorkType        string `json:"workType" form:"workType"`
	FilterByCompany string `json:"filterByCompany" form:"filterByCompany"`
}

type ResumeResponse struct {
	OCRText        string              `json:"ocr_text"`
	MaskedText     string              `json:"masked_text"`
	JobSuggestions []llm.JobSuggestion `json:"job_suggestions"`
	// LinkedInJobs is a jobs.ScrapeResult, or an empty list when there was
	// no suggestion to search for.
	LinkedInJobs any `json:"linkedin_jobs"`
}
