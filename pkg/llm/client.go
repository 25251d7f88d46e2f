package llm

import "context"

type JobSuggestion struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type CourseInput struct {
	Title        string
	Level        string
	Goal         string
	CurrentState string
}

type Course struct {
	CourseTitle string         `json:"courseTitle"`
	CourseLevel string         `json:"courseLevel"`
	CourseGoal  string         `json:"courseGoal"`
	Modules     []CourseModule `json:"modules"`
}

type CourseModule struct {
	ModuleID          int                `json:"moduleId"`
	ModuleTitle       string             `json:"moduleTitle"`
	ModuleDescription string             `json:"moduleDescription"`
	Subsections       []CourseSubsection `json:"subsections"`
}

type CourseSubsection struct {
	SubsectionID    int    `json:"subsectionId"`
	SubsectionTitle string `json:"subsectionTitle"`
	Content         string `json:"content"`
	// YoutubeVideoID holds a watch URL once a video has been looked up.
	YoutubeVideoID *string `json:"youtubeVideoId"`
}

type KeywordInput struct {
	SearchQuery     string
	SubsectionTitle string
	ModuleTitle     string
	CourseTitle     string
}

type Client interface {
	SuggestJobs(ctx context.Context, resumeText string) ([]JobSuggestion, error)
	GenerateCourse(ctx context.Context, input CourseInput) (*Course, error)
	VideoKeyword(ctx context.Context, input KeywordInput) (string, error)
	Name() string
}

// completer sends a single user prompt and returns the raw text answer.
type completer interface {
	complete(ctx context.Context, prompt string) (string, error)
}
