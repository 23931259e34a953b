// Package nlu maps free-form utterances to canonical intent records. The
// external provider is consulted first when configured; every failure mode
// (network, timeout, non-2xx, malformed body, low confidence) degrades to the
// local rule-based classifier instead of surfacing an error.
package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"banking-assistant/internal/config"
	"banking-assistant/internal/domain"
)

// Raw provider results below this confidence are treated as misclassified and
// replaced by the rule-based result.
const minProviderConfidence = 0.5

type Classifier struct {
	url    string
	token  string
	client *http.Client
	logger *slog.Logger
}

func NewClassifier(cfg config.NLUConfig, logger *slog.Logger) *Classifier {
	return &Classifier{
		url:    cfg.URL,
		token:  cfg.Token,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type providerRequest struct {
	Utterance string `json:"utterance"`
}

// providerResponse tolerates the provider's loose typing: amount and
// transaction_count may arrive as numbers or numeric strings, and any field
// may be missing or null.
type providerResponse struct {
	Intent           string      `json:"intent"`
	Amount           interface{} `json:"amount"`
	Receiver         string      `json:"receiver"`
	TransactionCount interface{} `json:"transaction_count"`
	Confidence       float64     `json:"confidence"`
}

// Classify never fails outward: the result is always a usable canonical
// intent, possibly unknown with low confidence.
func (c *Classifier) Classify(ctx context.Context, utterance string) domain.CanonicalIntent {
	if c.url == "" {
		return classifyByRules(utterance)
	}

	parsed, ok := c.callProvider(ctx, utterance)
	if !ok {
		return classifyByRules(utterance)
	}

	intent := normalizeIntent(parsed.Intent)
	if intent == "" || parsed.Confidence <= minProviderConfidence {
		c.logger.Warn("Provider result below confidence floor, using fallback",
			"intent", parsed.Intent,
			"confidence", parsed.Confidence)
		return classifyByRules(utterance)
	}

	result := domain.CanonicalIntent{
		Intent:     intent,
		Receiver:   parsed.Receiver,
		Confidence: parsed.Confidence,
		Source:     domain.SourceNLUExternal,
	}
	if amount, ok := coerceInt64(parsed.Amount); ok {
		result.Amount = amount
	}
	if count, ok := coerceInt64(parsed.TransactionCount); ok {
		result.TransactionCount = int(count)
	}
	return result
}

func (c *Classifier) callProvider(ctx context.Context, utterance string) (*providerResponse, bool) {
	body, err := json.Marshal(providerRequest{Utterance: utterance})
	if err != nil {
		return nil, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.logger.Warn("Failed to build provider request", "error", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("NLU provider unreachable, using fallback", "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("NLU provider returned non-2xx status, using fallback", "status", resp.StatusCode)
		return nil, false
	}

	var parsed providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn("Malformed NLU provider response, using fallback", "error", err)
		return nil, false
	}
	return &parsed, true
}

// normalizeIntent collapses unrecognized provider labels to the empty string
// so the caller falls back; downstream code never branches on
// provider-specific names.
func normalizeIntent(raw string) domain.Intent {
	switch domain.Intent(raw) {
	case domain.IntentCheckBalance, domain.IntentSendMoney, domain.IntentTransactionHistory, domain.IntentUnknown:
		return domain.Intent(raw)
	default:
		return ""
	}
}

// coerceInt64 accepts the numeric shapes providers actually send ("500", 500,
// 500.0) and rejects fractions and non-positive values.
func coerceInt64(raw interface{}) (int64, bool) {
	var value decimal.Decimal
	switch v := raw.(type) {
	case float64:
		value = decimal.NewFromFloat(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return 0, false
		}
		value = parsed
	case json.Number:
		parsed, err := decimal.NewFromString(v.String())
		if err != nil {
			return 0, false
		}
		value = parsed
	default:
		return 0, false
	}

	if !value.IsInteger() || !value.IsPositive() {
		return 0, false
	}
	return value.IntPart(), true
}
