package jobs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-playground/assert/v2"
)

const searchPage = `<html><body><ul class="jobs-search__results-list">
<li><div class="base-card">
  <a class="base-card__full-link" href="https://in.linkedin.com/jobs/view/data-analyst-1?refId=abc">link</a>
  <h3 class="base-search-card__title"> Data Analyst </h3>
  <h4 class="base-search-card__subtitle"> Acme </h4>
  <span class="job-search-card__location"> Pune, Maharashtra </span>
  <time datetime="2025-03-01">1 week ago</time>
</div></li>
<li><div class="base-card"><h3 class="base-search-card__title"></h3></div></li>
</ul></body></html>`

func newTestScrapingDog(t *testing.T, handler http.HandlerFunc) *ScrapingDogClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewScrapingDogClient("test-key", 0)
	c.client.SetBaseURL(srv.URL)
	return c
}

func TestSearch(t *testing.T) {
	var got url.Values
	c := newTestScrapingDog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/linkedinjobs", r.URL.Path)
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"job_id":3901,"job_position":"Data Analyst","company_name":"Acme","job_location":"Pune","job_posting_date":"2025-03-01","job_link":"https://example.com/3901"}]`))
	})

	listings, err := c.Search(context.Background(), Query{
		Position:         "Data Analyst",
		Location:         "Pune",
		Experience:       ExperienceRange{0, 2},
		WorkLocationType: "remote",
		JobType:          "fullTime",
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(listings))
	assert.Equal(t, "3901", listings[0].JobID)
	assert.Equal(t, "Acme", listings[0].Company)

	assert.Equal(t, "test-key", got.Get("api_key"))
	assert.Equal(t, "Data Analyst", got.Get("field"))
	assert.Equal(t, "102179709", got.Get("geoid"))
	assert.Equal(t, "F", got.Get("jobType"))
	assert.Equal(t, "1", got.Get("expLevel"))
	assert.Equal(t, "R", got.Get("workType"))
	assert.Equal(t, "R", got.Get("sortBy"))
	assert.Equal(t, false, got.Has("filterByCompany"))
}

func TestSearchStatusError(t *testing.T) {
	c := newTestScrapingDog(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid api key"))
	})

	_, err := c.Search(context.Background(), Query{Position: "x", Experience: DefaultExperience})

	var statusErr *StatusError
	assert.Equal(t, true, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, "invalid api key", statusErr.Body)
}

func TestSearchNotArray(t *testing.T) {
	c := newTestScrapingDog(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"nope"}`))
	})

	_, err := c.Search(context.Background(), Query{Position: "x", Experience: DefaultExperience})

	assert.NotEqual(t, nil, err)
}

func TestLinkedInURL(t *testing.T) {
	got := LinkedInURL(LinkedInSearch{JobTitle: "data analyst", GeoID: "102179709", ExpLevel: "2"})

	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=data%20analyst&location=102179709&f_E=2", got)
}

func TestScrapeLinkedIn(t *testing.T) {
	var got url.Values
	c := newTestScrapingDog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scrape", r.URL.Path)
		got = r.URL.Query()
		w.Write([]byte(searchPage))
	})

	res := c.ScrapeLinkedIn(context.Background(), LinkedInSearch{JobTitle: "Data Analyst"})

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "", res.Error)
	assert.Equal(t, len(searchPage), res.RawHTMLLength)
	assert.Equal(t, true, strings.HasPrefix(searchPage, res.SampleContent))
	assert.Equal(t, "true", got.Get("dynamic"))
	assert.Equal(t, res.URLScraped, got.Get("url"))

	assert.Equal(t, 1, len(res.Jobs))
	assert.Equal(t, Card{
		Title:    "Data Analyst",
		Company:  "Acme",
		Location: "Pune, Maharashtra",
		Posted:   "2025-03-01",
		URL:      "https://in.linkedin.com/jobs/view/data-analyst-1",
	}, res.Jobs[0])
}

func TestScrapeLinkedInFailure(t *testing.T) {
	c := newTestScrapingDog(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	})

	res := c.ScrapeLinkedIn(context.Background(), LinkedInSearch{JobTitle: "Nurse"})

	assert.Equal(t, "", res.Status)
	assert.Equal(t, "LinkedIn scraping failed with status code: 429", res.Error)
	assert.Equal(t, "slow down", res.ResponseText)
	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=Nurse", res.URLUsed)
}

func TestPing(t *testing.T) {
	c := newTestScrapingDog(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>google</html>"))
	})

	res := c.Ping(context.Background())

	assert.Equal(t, "API key is working", res.Status)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "<html>google</html>", res.SampleData)
}

func TestLinkedInURLAllFilters(t *testing.T) {
	got := LinkedInURL(LinkedInSearch{
		JobTitle:        "nurse",
		GeoID:           "102713980",
		JobType:         "F",
		ExpLevel:        "1",
		WorkType:        "R",
		FilterByCompany: "1035",
	})

	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=nurse&location=102713980&f_JT=F&f_E=1&f_WT=R&f_C=1035", got)
}

func TestSampleCountsCharacters(t *testing.T) {
	ascii := strings.Repeat("a", 600)
	assert.Equal(t, 500, len(sample(ascii)))

	// 499 ASCII bytes followed by multi-byte runes
	mixed := strings.Repeat("a", 499) + strings.Repeat("é", 10)
	got := sample(mixed)
	assert.Equal(t, strings.Repeat("a", 499)+"é", got)
	assert.Equal(t, true, utf8.ValidString(got))

	hindi := strings.Repeat("म", 600)
	assert.Equal(t, strings.Repeat("म", 500), sample(hindi))

	assert.Equal(t, "short", sample("short"))
}
