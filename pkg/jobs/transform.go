package jobs

import (
	"fmt"
	"strconv"
	"time"
)

const isoLocal = "2006-01-02T15:04:05.000000"

// ExperienceRange is a [min, max] range in years.
type ExperienceRange [2]float64

var DefaultExperience = ExperienceRange{0, 10}

func (r ExperienceRange) String() string {
	return fmt.Sprintf("%s-%s", formatYears(r[0]), formatYears(r[1]))
}

func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Job is the listing shape the frontend renders.
type Job struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Location     string  `json:"location"`
	JobType      string  `json:"jobType"`
	LocationType string  `json:"locationType"`
	Salary       *string `json:"salary"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	PostedDate   string  `json:"postedDate"`
	ApplyURL     string  `json:"applyUrl"`
}

// Transform reshapes upstream listings. The upstream does not report job
// type, workplace or salary, so those get fixed defaults.
func Transform(listings []Listing, experience ExperienceRange, now time.Time) []Job {
	jobs := make([]Job, 0, len(listings))
	for i, l := range listings {
		id := l.JobID
		if id == "" {
			id = fmt.Sprintf("job-%d", i+1)
		}

		title := orDefault(l.Position, "Unknown Role")
		company := orDefault(l.Company, "Unknown Company")

		postedDate := now.Format(isoLocal)
		if d, err := time.Parse("2006-01-02", l.PostingDate); err == nil {
			postedDate = d.Format("2006-01-02T15:04:05")
		}

		jobs = append(jobs, Job{
			ID:           id,
			Title:        title,
			Company:      company,
			Location:     orDefault(l.Location, "Unknown Location"),
			JobType:      "Full-time",
			LocationType: "On-site",
			Description:  fmt.Sprintf("Exciting opportunity for a %s role at %s.", title, company),
			Requirements: experience.String() + " years of experience",
			PostedDate:   postedDate,
			ApplyURL:     orDefault(l.Link, "#"),
		})
	}
	return jobs
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
