package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"rfp-management-api/internal/entity"
)

const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIExtractor delegates extraction to a chat completion asked to return
// bare JSON. Unlike PatternExtractor it can fail — on any API or parse error
// the caller is expected to fall back to the deterministic extractor.
type OpenAIExtractor struct {
	client *openai.Client
	model  string
}

func NewOpenAIExtractor(apiKey string, model string) *OpenAIExtractor {
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIExtractor{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (e *OpenAIExtractor) ExtractRFP(ctx context.Context, text string) (*RFPFields, error) {
	prompt := fmt.Sprintf("Extract structured RFP JSON from this text: %s\n"+
		"Return only JSON matching fields: title, description, items (list of {name,qty,specs}), "+
		"budget, delivery_days, payment_terms, warranty_months", text)

	content, err := e.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Title          string        `json:"title"`
		Description    string        `json:"description"`
		Items          []entity.Item `json:"items"`
		Budget         *float64      `json:"budget"`
		DeliveryDays   *int          `json:"delivery_days"`
		PaymentTerms   *string       `json:"payment_terms"`
		WarrantyMonths *int          `json:"warranty_months"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("completion is not valid JSON: %w", err)
	}

	fields := &RFPFields{
		Title:          parsed.Title,
		Description:    parsed.Description,
		Items:          parsed.Items,
		Budget:         parsed.Budget,
		DeliveryDays:   parsed.DeliveryDays,
		PaymentTerms:   parsed.PaymentTerms,
		WarrantyMonths: parsed.WarrantyMonths,
	}
	if fields.Title == "" {
		fields.Title = truncate(text, titleLimit)
	}
	if fields.Description == "" {
		fields.Description = text
	}
	if fields.Items == nil {
		fields.Items = make([]entity.Item, 0)
	}

	return fields, nil
}

func (e *OpenAIExtractor) ExtractProposal(ctx context.Context, text string) (*ProposalFields, error) {
	prompt := fmt.Sprintf("Extract proposal details from text: %s\n"+
		"Return JSON with fields: total_price, delivery_days, warranty_months, notes", text)

	content, err := e.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		TotalPrice     *float64 `json:"total_price"`
		DeliveryDays   *int     `json:"delivery_days"`
		WarrantyMonths *int     `json:"warranty_months"`
		Notes          string   `json:"notes"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("completion is not valid JSON: %w", err)
	}

	fields := &ProposalFields{
		TotalPrice:     parsed.TotalPrice,
		DeliveryDays:   parsed.DeliveryDays,
		WarrantyMonths: parsed.WarrantyMonths,
		Notes:          truncate(parsed.Notes, notesLimit),
	}
	if fields.Notes == "" {
		fields.Notes = truncate(text, notesLimit)
	}

	return fields, nil
}

func (e *OpenAIExtractor) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
		MaxTokens:   800,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion has no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	// Some models wrap the JSON in a markdown fence despite the instruction.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	return strings.TrimSpace(content), nil
}
