// internal/application/classifier.go
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rkarim/chatcart/internal/domain"
	"github.com/rkarim/chatcart/internal/ports"
)

// Keyword rules run before the model call so the common intents never pay
// for a completion. Order matters: cart beats checkout beats add.
var (
	cartKeywords     = []string{"cart", "basket", "order", "saman", "meri shopping", "mere saman"}
	checkoutKeywords = []string{"checkout", "payment", "order complete", "order kar do", "payment karni hai"}
	addKeywords      = []string{"add", "lo", "dal"}
)

const classifyPromptFmt = `You are a shopping chatbot. Read the user's message and decide which action to take.

Possible actions:
- greet
- login_progress (the user is giving their name, phone or address)
- login (all three fields are complete)
- list_categories
- list_items
- add_to_cart
- show_cart
- checkout
- logout

Also detect the user's language:
- english -> "lang": "en"
- roman urdu -> "lang": "ur"

Respond with a single JSON object and nothing else.

Example:
User: "mera naam hamid hai"
Response:
{"action": "login_progress", "payload": {"name": "Hamid"}, "lang": "ur"}

User: "my phone number is 03124567896"
Response:
{"action": "login_progress", "payload": {"phone": "03124567896"}, "lang": "en"}

User message: %q`

// Classifier turns free text into a structured (action, payload, language)
// triple: cheap keyword rules first, then the category names, then a model
// completion as the fallback.
type Classifier struct {
	catalog   *CatalogService
	completer ports.CompleterPort
	log       logrus.FieldLogger
}

func NewClassifier(catalog *CatalogService, completer ports.CompleterPort, log logrus.FieldLogger) *Classifier {
	return &Classifier{catalog: catalog, completer: completer, log: log}
}

func (c *Classifier) Classify(ctx context.Context, text string) domain.Classification {
	lowered := strings.ToLower(text)

	if containsAny(lowered, cartKeywords) {
		return ruleHit(domain.ActionShowCart, nil)
	}
	if containsAny(lowered, checkoutKeywords) {
		return ruleHit(domain.ActionCheckout, nil)
	}
	// The add rule deliberately leaves the payload empty; item extraction
	// from free text is handled by the model path only.
	if containsAny(lowered, addKeywords) {
		return ruleHit(domain.ActionAddToCart, nil)
	}
	for _, cat := range c.catalog.Categories(ctx) {
		if strings.Contains(lowered, strings.ToLower(cat)) {
			return ruleHit(domain.ActionListItems, map[string]any{"category_name": cat})
		}
	}
	return c.classifyWithModel(ctx, text)
}

func (c *Classifier) classifyWithModel(ctx context.Context, text string) domain.Classification {
	fallback := domain.Classification{Action: domain.ActionGreet, Payload: map[string]any{}, Language: domain.LangEnglish}

	out, err := c.completer.Complete(ctx, fmt.Sprintf(classifyPromptFmt, text))
	if err != nil {
		c.log.WithError(err).Warn("model classification failed, defaulting to greet")
		return fallback
	}
	var cls domain.Classification
	if err := json.Unmarshal([]byte(extractJSON(out)), &cls); err != nil {
		c.log.WithError(err).WithField("completion", out).Warn("undecodable model classification, defaulting to greet")
		return fallback
	}
	cls.Action = strings.ToLower(strings.TrimSpace(cls.Action))
	if cls.Action == "" {
		cls.Action = domain.ActionGreet
	}
	if cls.Payload == nil {
		cls.Payload = map[string]any{}
	}
	cls.Language = domain.ParseLanguage(string(cls.Language))
	return cls
}

func ruleHit(action string, payload map[string]any) domain.Classification {
	if payload == nil {
		payload = map[string]any{}
	}
	return domain.Classification{Action: action, Payload: payload, Language: domain.LangEnglish}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// extractJSON narrows a completion to its outermost JSON object, which
// tolerates models wrapping the object in prose or code fences.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
