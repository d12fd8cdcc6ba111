package summarize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultModel is the summarization model requested from the service.
const DefaultModel = "facebook/bart-large-cnn"

// Generation parameters sent with every request. Decoding is deterministic
// (sampling disabled) so repeated runs over unchanged files produce the
// same summaries.
const (
	maxSummaryLength = 100
	minSummaryLength = 30
)

// HFClient calls a HuggingFace-style inference endpoint hosting a
// text-summarization model.
type HFClient struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewHFClient creates a client targeting the given service and model.
func NewHFClient(baseURL, model string) *HFClient {
	if model == "" {
		model = DefaultModel
	}
	return &HFClient{
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type summarizeRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters summarizeParameters `json:"parameters"`
}

type summarizeParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type summarizeResponse struct {
	SummaryText string `json:"summary_text"`
}

// Summarize sends the text to the inference endpoint and returns the
// generated summary.
func (c *HFClient) Summarize(text string) (string, error) {
	body, err := json.Marshal(summarizeRequest{
		Inputs: text,
		Parameters: summarizeParameters{
			MaxLength: maxSummaryLength,
			MinLength: minSummaryLength,
			DoSample:  false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal summarize request: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/models/"+c.model, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("summarize request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("summarization service returned %d: %s", resp.StatusCode, string(respBody))
	}

	var results []summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("decode summarize response: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("summarization service returned no candidates")
	}

	return results[0].SummaryText, nil
}
