package ocr

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	mistralBaseURL = "https://api.mistral.ai"
	mistralModel   = "mistral-ocr-latest"
)

type Page struct {
	Index    int    `json:"index"`
	Markdown string `json:"markdown"`
}

type Extractor interface {
	// Extract runs OCR over an uploaded document and returns its pages.
	Extract(ctx context.Context, filename string, r io.Reader) ([]Page, error)
}

type MistralClient struct {
	client *resty.Client
}

func NewMistralClient(apiKey string, timeout time.Duration) *MistralClient {
	client := resty.New().
		SetBaseURL(mistralBaseURL).
		SetAuthToken(apiKey).
		SetTimeout(timeout)
	return &MistralClient{client: client}
}

func (c *MistralClient) Extract(ctx context.Context, filename string, r io.Reader) ([]Page, error) {
	fileID, err := c.Upload(ctx, filename, r)
	if err != nil {
		return nil, err
	}

	signedURL, err := c.SignedURL(ctx, fileID)
	if err != nil {
		return nil, err
	}

	return c.Process(ctx, signedURL)
}

// Upload stores the document with purpose "ocr" and returns its file id.
func (c *MistralClient) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var out struct {
		ID string `json:"id"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, r).
		SetFormData(map[string]string{"purpose": "ocr"}).
		SetResult(&out).
		Post("/v1/files")
	if err != nil {
		return "", fmt.Errorf("mistral upload: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("mistral upload: status %d: %s", resp.StatusCode(), resp.String())
	}
	if out.ID == "" {
		return "", fmt.Errorf("mistral upload: no file id in response")
	}

	return out.ID, nil
}

func (c *MistralClient) SignedURL(ctx context.Context, fileID string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", fileID).
		SetQueryParam("expiry", "24").
		SetResult(&out).
		Get("/v1/files/{id}/url")
	if err != nil {
		return "", fmt.Errorf("mistral signed url: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("mistral signed url: status %d: %s", resp.StatusCode(), resp.String())
	}

	return out.URL, nil
}

func (c *MistralClient) Process(ctx context.Context, documentURL string) ([]Page, error) {
	var out struct {
		Pages []Page `json:"pages"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"model": mistralModel,
			"document": map[string]string{
				"type":         "document_url",
				"document_url": documentURL,
			},
		}).
		SetResult(&out).
		Post("/v1/ocr")
	if err != nil {
		return nil, fmt.Errorf("mistral ocr: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("mistral ocr: status %d: %s", resp.StatusCode(), resp.String())
	}

	return out.Pages, nil
}
