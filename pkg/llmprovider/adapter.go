package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"adhd-task-assistant/pkg/gemini"
	"adhd-task-assistant/pkg/openaicompat"
)

// OpenAICompatAdapter adapts pkg/openaicompat to the Provider interface
type OpenAICompatAdapter struct {
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new adapter
func NewOpenAICompatAdapter(client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openaicompat.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		messages = append(messages, openaicompat.Message{Role: "system", Content: req.SystemInstruction.Text()})
	}
	for _, msg := range req.Messages {
		messages = append(messages, openaicompat.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.ChatCompletion(ctx, &openaicompat.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	})
	if err != nil {
		var apiErr *openaicompat.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%s: %w: %w", a.client.Provider(), ErrProviderRateLimited, err)
		}
		return nil, fmt.Errorf("%s: %w", a.client.Provider(), err)
	}

	content := Message{Role: "assistant", Parts: []Part{}}
	if resp.Content != "" {
		content.Parts = append(content.Parts, Part{Text: resp.Content})
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	return &Response{
		Content:      content,
		ProviderName: a.client.Provider(),
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.client.Provider()
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Message, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, gemini.Message{Role: msg.Role, Text: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%s: %w: %w", gemini.ProviderName, ErrProviderRateLimited, err)
		}
		return nil, fmt.Errorf("%s: %w", gemini.ProviderName, err)
	}

	content := Message{Role: "assistant", Parts: []Part{}}
	if resp.Text != "" {
		content.Parts = append(content.Parts, Part{Text: resp.Text})
	}

	return &Response{
		Content:      content,
		ProviderName: gemini.ProviderName,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return gemini.ProviderName
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
