package service

import (
	"context"
	"strings"

	"mindlift/internal/apperr"
	"mindlift/internal/logger"
	"mindlift/internal/model"
)

// Completer is any text-completion provider.
type Completer interface {
	Complete(ctx context.Context, system string, turns []model.HistoryItem) (string, error)
}

// Moderator is any text-moderation provider returning a flagged verdict.
type Moderator interface {
	Moderate(ctx context.Context, input string) (bool, error)
}

// historyWindow is how many trailing turns of conversation history get
// forwarded upstream.
const historyWindow = 6

var crisisKeywords = []string{
	"suicide",
	"kill myself",
	"i want to die",
	"hurt myself",
	"self harm",
	"cutting",
}

const crisisReply = "I'm really sorry you're feeling this way. If you're in immediate danger, " +
	"please call your local emergency services or reach out to a trusted person now."

const systemPrompt = "You are MindLift, a compassionate youth-friendly mental wellness assistant. " +
	"Always respond empathetically. Never give medical/legal instructions. " +
	"Encourage emergency help if needed."

// Assistant routes each inbound message through the crisis-safety gate:
// keyword scan first, then a moderation call, then the completion provider.
// A keyword hit never reaches the network.
type Assistant struct {
	completer Completer
	moderator Moderator
}

func NewAssistant(completer Completer, moderator Moderator) *Assistant {
	return &Assistant{completer: completer, moderator: moderator}
}

// Respond classifies and answers one user message. The returned result is
// always one of the two variants; errors are either apperr.ErrValidation
// (empty message) or apperr.ErrUpstream (provider failure).
func (a *Assistant) Respond(ctx context.Context, message string, history []model.HistoryItem) (*model.ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperr.Validation("message must be a non-empty string")
	}

	if matchesCrisisKeyword(message) {
		logger.Info("chat.crisis", "stage", "keyword")
		return &model.ChatResult{Type: model.ChatResultCrisis, Reply: crisisReply}, nil
	}

	flagged, err := a.moderator.Moderate(ctx, message)
	if err != nil {
		return nil, err
	}
	if flagged {
		logger.Info("chat.crisis", "stage", "moderation")
		return &model.ChatResult{Type: model.ChatResultCrisis, Reply: crisisReply}, nil
	}

	turns := append(sanitizeHistory(history), model.HistoryItem{Role: "user", Content: message})
	reply, err := a.completer.Complete(ctx, systemPrompt, turns)
	if err != nil {
		return nil, err
	}
	return &model.ChatResult{Type: model.ChatResultOK, Reply: reply}, nil
}

func matchesCrisisKeyword(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// sanitizeHistory drops malformed turns rather than rejecting the request,
// and keeps only the trailing window.
func sanitizeHistory(history []model.HistoryItem) []model.HistoryItem {
	out := make([]model.HistoryItem, 0, len(history))
	for _, h := range history {
		if (h.Role == "user" || h.Role == "assistant") && h.Content != "" {
			out = append(out, h)
		}
	}
	if len(out) > historyWindow {
		out = out[len(out)-historyWindow:]
	}
	return out
}
