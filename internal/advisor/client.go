// Package advisor provides optional external context for predictions: an
// accounting-info search used to enrich reasoning text, and a complex
// analysis path for receipts the rule tables cannot place. Both calls are
// best-effort; the engine swallows their failures.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/kanjoflow/kanjo/internal/common"
	"github.com/kanjoflow/kanjo/internal/model"
)

const defaultModel = "claude-sonnet-4-5-20250929"

// Config holds configuration for the advisor client.
type Config struct {
	APIKey     string
	Model      string
	MaxRetries int
	RetryDelay time.Duration
	MaxTokens  int64
}

// Client calls the Anthropic API for both advisor operations.
type Client struct {
	api       anthropic.Client
	logger    *slog.Logger
	model     anthropic.Model
	maxTokens int64
	retryOpts common.RetryOptions
}

// NewClient creates an advisor client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: advisor API key", common.ErrMissingConfig)
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		logger:    logger,
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		retryOpts: common.RetryOptions{
			MaxAttempts:  cfg.MaxRetries,
			InitialDelay: cfg.RetryDelay,
		},
	}, nil
}

// SearchAccountingInfo returns a short note on the tax treatment of a
// spend, for inclusion in the prediction's reasoning text.
func (c *Client) SearchAccountingInfo(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(
		"次の支出について、日本の税務上の取り扱いを1〜2文で簡潔に説明してください。%s", query)

	text, err := c.complete(ctx, "あなたは日本の税務・会計の専門家です。", prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// analyzeResponse is the JSON shape the analysis prompt asks for.
type analyzeResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
	TaxNotes   string  `json:"tax_notes"`
}

// Analyze asks the model to classify a receipt no rule table covered.
func (c *Client) Analyze(ctx context.Context, ocr *model.OCRResult, info *model.ExtractedInfo) (*model.Prediction, error) {
	if ocr == nil {
		return nil, errors.New("nil OCR result")
	}

	var sb strings.Builder
	sb.WriteString("次のレシートの勘定科目を判定してください。\n")
	fmt.Fprintf(&sb, "支払先: %s\n金額: %d円\n", ocr.Vendor, ocr.Amount)
	if len(ocr.Items) > 0 {
		sb.WriteString("品目: ")
		for i, item := range ocr.Items {
			if i > 0 {
				sb.WriteString("、")
			}
			sb.WriteString(item.Name)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "本文:\n%s\n\n", ocr.Text)
	fmt.Fprintf(&sb, "勘定科目は次のいずれかから選んでください: %s\n", strings.Join(model.Vocabulary(), "、"))
	sb.WriteString(`JSONのみで回答してください: {"category": "...", "confidence": 0.0, "reasoning": "...", "tax_notes": "..."}`)

	text, err := c.complete(ctx, "あなたは日本の経理担当者向けの勘定科目判定アシスタントです。", sb.String())
	if err != nil {
		return nil, err
	}

	parsed, err := parseAnalyzeResponse(text)
	if err != nil {
		return nil, err
	}

	return &model.Prediction{
		Category:   parsed.Category,
		Confidence: parsed.Confidence,
		Reasoning:  parsed.Reasoning,
		TaxNotes:   parsed.TaxNotes,
	}, nil
}

// complete sends one user message and returns the concatenated text blocks.
func (c *Client) complete(ctx context.Context, system, prompt string) (string, error) {
	var out string

	err := common.WithRetry(ctx, func() error {
		message, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     c.model,
			MaxTokens: c.maxTokens,
			System: []anthropic.TextBlockParam{
				{Text: system},
			},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if err != nil {
			return classifyAPIError(err)
		}

		var sb strings.Builder
		for _, block := range message.Content {
			if block.Type == "text" {
				sb.WriteString(block.Text)
			}
		}
		out = sb.String()
		return nil
	}, c.retryOpts)

	return out, err
}

// classifyAPIError maps an SDK failure onto the shared retry sentinels.
// HTTP 429 becomes ErrRateLimit, which WithRetry backs off at its maximum
// delay; other 4xx responses are marked non-retryable.
func classifyAPIError(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", common.ErrRateLimit, err)
		case apierr.StatusCode >= 400 && apierr.StatusCode < 500:
			return &common.RetryableError{
				Err:       fmt.Errorf("%w: %v", common.ErrAdvisorUnavailable, err),
				Retryable: false,
			}
		}
	}
	return fmt.Errorf("%w: %v", common.ErrAdvisorUnavailable, err)
}

// parseAnalyzeResponse extracts the first JSON object from the model's
// reply, tolerating code fences and surrounding prose.
func parseAnalyzeResponse(text string) (*analyzeResponse, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response: %q", text)
	}

	var parsed analyzeResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if parsed.Category == "" {
		return nil, errors.New("analysis response missing category")
	}
	return &parsed, nil
}
