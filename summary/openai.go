package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the chat model used for summaries.
	DefaultModel = "gpt-4o"

	// DefaultTimeout bounds one completion request.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxTokens caps the summary length.
	DefaultMaxTokens = 150

	// DefaultTemperature is the sampling temperature.
	DefaultTemperature = 0.7
)

// systemPrompt sets the editorial voice for every summary.
const systemPrompt = "You are an experienced newspaper editor. Create engaging, well-written summaries in a journalistic style."

// userPromptPrefix frames the source text handed to the model.
const userPromptPrefix = "Summarize this news article in an engaging way, like a professional newspaper. Don't include any URLs or references:\n\n"

// OpenAI summarizes through the chat completions API. A client without
// an API key passes text through unchanged, so a missing key degrades
// the press to raw source text instead of failing it.
type OpenAI struct {
	// APIKey authenticates requests. Empty disables summarization.
	APIKey string

	// Model is the chat model. Default: DefaultModel.
	Model string

	// BaseURL is the API root without a trailing slash.
	// Default: DefaultBaseURL.
	BaseURL string

	// Client is the HTTP client. Default: a client with a 60 second
	// timeout.
	Client *http.Client

	// MaxTokens caps the completion. Default: DefaultMaxTokens.
	MaxTokens int

	// Temperature is the sampling temperature. The zero value means
	// DefaultTemperature.
	Temperature float64
}

// NewOpenAI creates a summarizer with the default model and limits.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		APIKey:      apiKey,
		Model:       DefaultModel,
		BaseURL:     DefaultBaseURL,
		Client:      &http.Client{Timeout: DefaultTimeout},
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize implements Summarizer. Empty input and a missing key both
// return the input unchanged.
func (o *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	if o.APIKey == "" || strings.TrimSpace(text) == "" {
		return text, nil
	}

	payload, err := json.Marshal(chatRequest{
		Model: o.model(),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPromptPrefix + text},
		},
		MaxTokens:   o.maxTokens(),
		Temperature: o.temperature(),
	})
	if err != nil {
		return "", errors.Wrap(err, "encoding completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL()+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "building completion request")
	}
	req.Header.Set("Authorization", "Bearer "+o.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := o.client().Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling completion API")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", errors.Errorf("completion API status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(slurp)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "decoding completion response")
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response carries no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func (o *OpenAI) model() string {
	if o.Model != "" {
		return o.Model
	}
	return DefaultModel
}

func (o *OpenAI) baseURL() string {
	if o.BaseURL != "" {
		return o.BaseURL
	}
	return DefaultBaseURL
}

func (o *OpenAI) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return &http.Client{Timeout: DefaultTimeout}
}

func (o *OpenAI) maxTokens() int {
	if o.MaxTokens > 0 {
		return o.MaxTokens
	}
	return DefaultMaxTokens
}

func (o *OpenAI) temperature() float64 {
	if o.Temperature > 0 {
		return o.Temperature
	}
	return DefaultTemperature
}
