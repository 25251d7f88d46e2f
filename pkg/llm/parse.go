package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var jsonArrayRegex = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// extractJSONArray prefers a ```json fenced block, then the outermost array
// of objects, then the whole text.
func extractJSONArray(content string) string {
	if _, after, ok := strings.Cut(content, "```json"); ok {
		if block, _, ok := strings.Cut(after, "```"); ok {
			return strings.TrimSpace(block)
		}
	}
	if match := jsonArrayRegex.FindString(content); match != "" {
		return match
	}
	return content
}

// FallbackSuggestion is returned when the model answered but not with
// parseable suggestions.
var FallbackSuggestion = JobSuggestion{
	Title:  "General position based on resume",
	Reason: "Could not automatically determine positions. Please review the resume manually.",
}

func parseJobSuggestions(content string) []JobSuggestion {
	var suggestions []JobSuggestion
	if err := json.Unmarshal([]byte(extractJSONArray(content)), &suggestions); err != nil {
		return []JobSuggestion{FallbackSuggestion}
	}
	return suggestions
}

func parseCourse(content string) (*Course, error) {
	var course Course
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &course); err != nil {
		return nil, fmt.Errorf("failed to extract JSON from LLM response: %w", err)
	}
	return &course, nil
}

func suggestJobs(ctx context.Context, c completer, resumeText string) ([]JobSuggestion, error) {
	content, err := c.complete(ctx, buildJobSuggestionPrompt(resumeText))
	if err != nil {
		return nil, err
	}
	return parseJobSuggestions(content), nil
}

func generateCourse(ctx context.Context, c completer, input CourseInput) (*Course, error) {
	content, err := c.complete(ctx, buildCoursePrompt(input))
	if err != nil {
		return nil, err
	}
	return parseCourse(content)
}

func videoKeyword(ctx context.Context, c completer, input KeywordInput) (string, error) {
	content, err := c.complete(ctx, buildVideoKeywordPrompt(input))
	if err != nil {
		return "", err
	}

	keyword := strings.TrimSpace(content)
	if keyword == "" {
		return "", fmt.Errorf("empty keyword response")
	}
	return keyword, nil
}
