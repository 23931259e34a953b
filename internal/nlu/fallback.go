package nlu

import (
	"regexp"
	"strconv"
	"strings"

	"banking-assistant/internal/domain"
)

// Rule-based classifier used whenever the external provider is unavailable,
// returns garbage, or is not confident. First matching category wins, in this
// priority order: balance, send money, history.
//
// The extraction regexes are intentionally simple: "to <word>" misfires on
// multi-word names and "N transaction/recent/last/previous" misses other
// phrasings of a count. Downstream guidance prompts cover those gaps.

const (
	fallbackConfidence = 0.8
	unknownConfidence  = 0.3
)

var (
	balanceKeywords = []string{"balance", "how much", "money left", "account"}
	sendKeywords    = []string{"send", "transfer", "pay", "give"}
	historyKeywords = []string{"transaction", "history", "statement", "recent"}

	amountPattern   = regexp.MustCompile(`(\d+)`)
	receiverPattern = regexp.MustCompile(`to\s+(\w+)`)
	countPattern    = regexp.MustCompile(`(\d+)\s+(?:transaction|recent|last|previous)`)
)

func classifyByRules(utterance string) domain.CanonicalIntent {
	text := strings.ToLower(utterance)

	if containsAny(text, balanceKeywords) {
		return domain.CanonicalIntent{
			Intent:     domain.IntentCheckBalance,
			Confidence: fallbackConfidence,
			Source:     domain.SourceNLUFallback,
		}
	}

	if containsAny(text, sendKeywords) {
		result := domain.CanonicalIntent{
			Intent:     domain.IntentSendMoney,
			Confidence: fallbackConfidence,
			Source:     domain.SourceNLUFallback,
		}
		if m := amountPattern.FindStringSubmatch(text); m != nil {
			if amount, err := strconv.ParseInt(m[1], 10, 64); err == nil {
				result.Amount = amount
			}
		}
		if m := receiverPattern.FindStringSubmatch(text); m != nil {
			result.Receiver = m[1]
		}
		return result
	}

	if containsAny(text, historyKeywords) {
		result := domain.CanonicalIntent{
			Intent:     domain.IntentTransactionHistory,
			Confidence: fallbackConfidence,
			Source:     domain.SourceNLUFallback,
		}
		if m := countPattern.FindStringSubmatch(text); m != nil {
			if count, err := strconv.Atoi(m[1]); err == nil {
				result.TransactionCount = count
			}
		}
		return result
	}

	return domain.CanonicalIntent{
		Intent:     domain.IntentUnknown,
		Confidence: unknownConfidence,
		Source:     domain.SourceNLUFallback,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
