package jobs

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestTransform(t *testing.T) {
	now := time.Date(2025, 3, 8, 9, 30, 0, 0, time.UTC)

	listings := []Listing{
		{
			JobID:       "3901",
			Position:    "Backend Engineer",
			Company:     "Acme",
			Location:    "Pune",
			PostingDate: "2025-03-01",
			Link:        "https://www.linkedin.com/jobs/view/3901",
		},
		{},
	}

	got := Transform(listings, ExperienceRange{1, 3.5}, now)

	assert.Equal(t, 2, len(got))

	assert.Equal(t, "3901", got[0].ID)
	assert.Equal(t, "Backend Engineer", got[0].Title)
	assert.Equal(t, "Exciting opportunity for a Backend Engineer role at Acme.", got[0].Description)
	assert.Equal(t, "1-3.5 years of experience", got[0].Requirements)
	assert.Equal(t, "2025-03-01T00:00:00", got[0].PostedDate)
	assert.Equal(t, "Full-time", got[0].JobType)
	assert.Equal(t, "On-site", got[0].LocationType)
	assert.Equal(t, true, got[0].Salary == nil)

	assert.Equal(t, "job-2", got[1].ID)
	assert.Equal(t, "Unknown Role", got[1].Title)
	assert.Equal(t, "Unknown Company", got[1].Company)
	assert.Equal(t, "Unknown Location", got[1].Location)
	assert.Equal(t, "2025-03-08T09:30:00.000000", got[1].PostedDate)
	assert.Equal(t, "#", got[1].ApplyURL)
}

func TestExperienceRangeString(t *testing.T) {
	assert.Equal(t, "0-10", DefaultExperience.String())
}
