// Package inference calls an external Ollama-compatible model service for
// vision and text generation. The service endpoint, model, and optional
// auth-header provider are injected; header generation itself (for
// authenticated deployments) lives outside this package.
package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// HeaderFunc supplies auth headers for the target service. Nil means no
// extra headers (plain local deployments).
type HeaderFunc func(serviceURL string) (map[string]string, error)

// Client talks to one /api/generate endpoint with one model.
type Client struct {
	ServiceURL string
	Model      string
	Headers    HeaderFunc

	httpClient *http.Client
}

// New returns a client with the default 60s request timeout.
func New(serviceURL, model string, headers HeaderFunc) *Client {
	return &Client{
		ServiceURL: serviceURL,
		Model:      model,
		Headers:    headers,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images,omitempty"`
	Stream bool     `json:"stream"`
	Format string   `json:"format"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// visionPrompt instructs the model to emit exactly the nine-key JSON
// object the API contract expects.
const visionPrompt = `You are an expert vision model specializing in analyzing Rubik's Cube faces. Your task is to identify the color of each of the 9 tiles on the cube face shown in the image.

**Instructions:**
1.  Examine the image to determine the color of each of the 9 tiles.
2.  The valid colors and their required codes are:
    - Red: "R"
    - Green: "G"
    - Blue: "B"
    - Orange: "O"
    - Yellow: "Y"
    - White: "W"
3.  Map each color to its position on the cube face using these keys:
    - ` + "`TL`" + `: Top-Left
    - ` + "`TC`" + `: Top-Center
    - ` + "`TR`" + `: Top-Right
    - ` + "`ML`" + `: Middle-Left
    - ` + "`C`" + `: Center
    - ` + "`MR`" + `: Middle-Right
    - ` + "`BL`" + `: Bottom-Left
    - ` + "`BC`" + `: Bottom-Center
    - ` + "`BR`" + `: Bottom-Right
4.  Your response MUST be a single, valid JSON object. Do not include any text, explanations, or markdown formatting like ` + "```json" + ` before or after the JSON object.

**Example of a perfect response:**
{
    "TL": "R", "TC": "G", "TR": "B",
    "ML": "W", "C": "Y", "MR": "O",
    "BL": "G", "BC": "R", "BR": "W"
}
`

// fenceRe strips markdown code fences some models wrap around their JSON.
var fenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*|```\\s*$")

// Vision asks the model to read the nine tile colors from an image and
// returns the position-key to color-code mapping it produced. The probe,
// when non-nil, runs before the network call so an abandoned request
// never starts one.
func (c *Client) Vision(ctx context.Context, image []byte, probe func() error) (map[string]string, error) {
	if probe != nil {
		if err := probe(); err != nil {
			return nil, err
		}
	}

	raw, err := c.generate(ctx, generateRequest{
		Model:  c.Model,
		Prompt: visionPrompt,
		Images: []string{base64.StdEncoding.EncodeToString(image)},
		Format: "json",
	})
	if err != nil {
		return nil, err
	}

	cleaned := fenceRe.ReplaceAllString(strings.TrimSpace(raw), "")
	var tiles map[string]string
	if err := json.Unmarshal([]byte(cleaned), &tiles); err != nil {
		return nil, fmt.Errorf("vision response is not valid JSON: %w", err)
	}
	return tiles, nil
}

// Text runs a JSON-format text generation request and returns the raw
// JSON object the model produced.
func (c *Client) Text(ctx context.Context, prompt string) ([]byte, error) {
	raw, err := c.generate(ctx, generateRequest{
		Model:  c.Model,
		Prompt: prompt,
		Format: "json",
	})
	if err != nil {
		return nil, err
	}
	return []byte(raw), nil
}

func (c *Client) generate(ctx context.Context, gr generateRequest) (string, error) {
	body, err := json.Marshal(gr)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.ServiceURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	if c.Headers != nil {
		headers, err := c.Headers(c.ServiceURL)
		if err != nil {
			return "", fmt.Errorf("auth headers: %w", err)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference service returned %s", resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode inference response: %w", err)
	}
	if out.Response == "" {
		return "", fmt.Errorf("inference service returned an empty response field")
	}
	return out.Response, nil
}
