package pii

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// SensitiveEntities are the entity types that get masked.
var SensitiveEntities = []string{
	"NAME", "PERSON", "EMAIL_ADDRESS", "PHONE_NUMBER", "CREDIT_CARD", "US_SSN",
	"US_BANK_NUMBER", "US_DRIVER_LICENSE", "US_PASSPORT",
}

type Redactor interface {
	Redact(ctx context.Context, text string) (string, error)
}

// Finding is one analyzer result.
type Finding struct {
	EntityType string  `json:"entity_type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
}

// PresidioClient uses the Presidio analyzer and anonymizer REST services.
type PresidioClient struct {
	analyzer   *resty.Client
	anonymizer *resty.Client
	sensitive  map[string]bool
}

func NewPresidioClient(analyzerURL, anonymizerURL string, timeout time.Duration) *PresidioClient {
	sensitive := make(map[string]bool, len(SensitiveEntities))
	for _, e := range SensitiveEntities {
		sensitive[e] = true
	}

	return &PresidioClient{
		analyzer:   resty.New().SetBaseURL(analyzerURL).SetTimeout(timeout),
		anonymizer: resty.New().SetBaseURL(anonymizerURL).SetTimeout(timeout),
		sensitive:  sensitive,
	}
}

// Redact masks the sensitive entities found in text.
func (c *PresidioClient) Redact(ctx context.Context, text string) (string, error) {
	findings, err := c.Analyze(ctx, text)
	if err != nil {
		return "", err
	}

	filtered := findings[:0]
	for _, f := range findings {
		if c.sensitive[f.EntityType] {
			filtered = append(filtered, f)
		}
	}

	return c.Anonymize(ctx, text, filtered)
}

func (c *PresidioClient) Analyze(ctx context.Context, text string) ([]Finding, error) {
	var findings []Finding

	resp, err := c.analyzer.R().
		SetContext(ctx).
		SetBody(map[string]string{"text": text, "language": "en"}).
		SetResult(&findings).
		Post("/analyze")
	if err != nil {
		return nil, fmt.Errorf("presidio analyze: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("presidio analyze: status %d: %s", resp.StatusCode(), resp.String())
	}

	return findings, nil
}

func (c *PresidioClient) Anonymize(ctx context.Context, text string, findings []Finding) (string, error) {
	if findings == nil {
		findings = []Finding{}
	}

	var out struct {
		Text string `json:"text"`
	}

	resp, err := c.anonymizer.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"text":             text,
			"analyzer_results": findings,
		}).
		SetResult(&out).
		Post("/anonymize")
	if err != nil {
		return "", fmt.Errorf("presidio anonymize: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("presidio anonymize: status %d: %s", resp.StatusCode(), resp.String())
	}

	return out.Text, nil
}
