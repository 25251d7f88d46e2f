package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newChatServer(t *testing.T, status int, content string) (*httptest.Server, *string) {
	t.Helper()

	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model string `json:"model"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		gotModel = body.Model

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gemini-2.0-flash",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &gotModel
}

func TestOpenAIClientSuggestJobs(t *testing.T) {
	srv, gotModel := newChatServer(t, http.StatusOK, "```json\n[{\"title\":\"Product Manager\",\"reason\":\"Led roadmaps\"}]\n```")

	client := NewOpenAIClient("test-key", srv.URL+"/", GeminiModel)

	got, err := client.SuggestJobs(context.Background(), "resume text")

	assert.Equal(t, nil, err)
	assert.Equal(t, GeminiModel, *gotModel)
	assert.Equal(t, []JobSuggestion{{Title: "Product Manager", Reason: "Led roadmaps"}}, got)
}

func TestOpenAIClientError(t *testing.T) {
	srv, _ := newChatServer(t, http.StatusTooManyRequests, "")

	client := NewOpenAIClient("test-key", srv.URL+"/", GeminiModel)

	_, err := client.GenerateCourse(context.Background(), CourseInput{Title: "Go"})

	assert.NotEqual(t, nil, err)
}
