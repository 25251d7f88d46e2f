package jobs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	scrapingDogBaseURL = "https://api.scrapingdog.com"
	linkedInSearchURL  = "https://www.linkedin.com/jobs/search/"
	sampleLen          = 500
)

// StatusError is returned when the scraping API answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("scrapingdog: status %d", e.StatusCode)
}

// Query holds the filters for a LinkedIn jobs search.
type Query struct {
	Position         string
	Company          string
	Location         string
	Experience       ExperienceRange
	WorkLocationType string
	JobType          string
}

// Listing is a raw record from the linkedinjobs API.
type Listing struct {
	JobID       string
	Position    string
	Company     string
	Location    string
	PostingDate string
	Link        string
}

// LinkedInSearch describes a LinkedIn search page to scrape. Codes are
// already in LinkedIn's format.
type LinkedInSearch struct {
	JobTitle        string
	GeoID           string
	JobType         string
	ExpLevel        string
	WorkType        string
	FilterByCompany string
}

// ScrapeResult reports a scrape attempt. Exactly one of Status or Error is set.
type ScrapeResult struct {
	Status        string `json:"status,omitempty"`
	URLScraped    string `json:"url_scraped,omitempty"`
	RawHTMLLength int    `json:"raw_html_length,omitempty"`
	SampleContent string `json:"sample_content,omitempty"`
	Jobs          []Card `json:"jobs,omitempty"`

	Error        string `json:"error,omitempty"`
	URLUsed      string `json:"url_used,omitempty"`
	ResponseText string `json:"response_text,omitempty"`
}

type PingResult struct {
	Status     string `json:"status"`
	Code       int    `json:"code,omitempty"`
	SampleData string `json:"sample_data,omitempty"`
	Message    string `json:"message,omitempty"`
}

type Searcher interface {
	Search(ctx context.Context, q Query) ([]Listing, error)
	ScrapeLinkedIn(ctx context.Context, s LinkedInSearch) ScrapeResult
	Ping(ctx context.Context) PingResult
}

type ScrapingDogClient struct {
	apiKey string
	client *resty.Client
}

func NewScrapingDogClient(apiKey string, timeout time.Duration) *ScrapingDogClient {
	client := resty.New().
		SetBaseURL(scrapingDogBaseURL).
		SetTimeout(timeout)
	return &ScrapingDogClient{apiKey: apiKey, client: client}
}

// Search calls the linkedinjobs API with the mapped filters.
func (c *ScrapingDogClient) Search(ctx context.Context, q Query) ([]Listing, error) {
	params := map[string]string{
		"api_key":  c.apiKey,
		"field":    q.Position,
		"page":     "1",
		"sortBy":   "R",
		"expLevel": ExperienceLevel(q.Experience[1]),
	}
	setIf(params, "geoid", GeoID(q.Location))
	setIf(params, "jobType", JobTypeCode(q.JobType))
	setIf(params, "workType", WorkTypeCode(q.WorkLocationType))
	setIf(params, "filterByCompany", q.Company)

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/linkedinjobs")
	if err != nil {
		return nil, fmt.Errorf("scrapingdog linkedinjobs: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return parseListings(resp.Body())
}

func parseListings(body []byte) ([]Listing, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("scrapingdog linkedinjobs: invalid JSON response")
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("scrapingdog linkedinjobs: expected array, got %s", root.Type)
	}

	var listings []Listing
	root.ForEach(func(_, job gjson.Result) bool {
		listings = append(listings, Listing{
			JobID:       job.Get("job_id").String(),
			Position:    job.Get("job_position").String(),
			Company:     job.Get("company_name").String(),
			Location:    job.Get("job_location").String(),
			PostingDate: job.Get("job_posting_date").String(),
			Link:        job.Get("job_link").String(),
		})
		return true
	})
	return listings, nil
}

// LinkedInURL builds the public LinkedIn search page URL.
func LinkedInURL(s LinkedInSearch) string {
	var sb strings.Builder
	sb.WriteString(linkedInSearchURL)
	sb.WriteString("?keywords=")
	sb.WriteString(escape(s.JobTitle))

	appendParam(&sb, "location", s.GeoID)
	appendParam(&sb, "f_JT", s.JobType)
	appendParam(&sb, "f_E", s.ExpLevel)
	appendParam(&sb, "f_WT", s.WorkType)
	appendParam(&sb, "f_C", s.FilterByCompany)
	return sb.String()
}

// ScrapeLinkedIn renders a LinkedIn search page through the scrape API.
// Failures are reported in the result, never as an error.
func (c *ScrapingDogClient) ScrapeLinkedIn(ctx context.Context, s LinkedInSearch) ScrapeResult {
	linkedInURL := LinkedInURL(s)

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key": c.apiKey,
			"url":     linkedInURL,
			"dynamic": "true",
		}).
		Get("/scrape")
	if err != nil {
		return ScrapeResult{Error: fmt.Sprintf("Exception occurred: %v", err)}
	}

	body := string(resp.Body())
	if resp.StatusCode() != http.StatusOK {
		return ScrapeResult{
			Error:        fmt.Sprintf("LinkedIn scraping failed with status code: %d", resp.StatusCode()),
			URLUsed:      linkedInURL,
			ResponseText: sample(body),
		}
	}

	cards, err := parseCards(body)
	if err != nil {
		return ScrapeResult{Error: fmt.Sprintf("Exception occurred: %v", err)}
	}

	return ScrapeResult{
		Status:        "success",
		URLScraped:    linkedInURL,
		RawHTMLLength: len(body),
		SampleContent: sample(body),
		Jobs:          cards,
	}
}

// Ping checks the API key by scraping a known page.
func (c *ScrapingDogClient) Ping(ctx context.Context) PingResult {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key": c.apiKey,
			"url":     "https://www.google.com",
		}).
		Get("/scrape")
	if err != nil {
		return PingResult{Status: "error", Message: err.Error()}
	}

	if resp.StatusCode() != http.StatusOK {
		return PingResult{Status: "API key issue", Code: resp.StatusCode(), Message: resp.String()}
	}

	return PingResult{Status: "API key is working", Code: resp.StatusCode(), SampleData: sample(resp.String())}
}

func setIf(params map[string]string, key, value string) {
	if value != "" {
		params[key] = value
	}
}

func appendParam(sb *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	sb.WriteString("&")
	sb.WriteString(key)
	sb.WriteString("=")
	sb.WriteString(escape(value))
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// sample returns the first sampleLen characters of s.
func sample(s string) string {
	n := 0
	for i := range s {
		if n == sampleLen {
			return s[:i]
		}
		n++
	}
	return s
}
