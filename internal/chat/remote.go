package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"unicode"

	"storefront-demo/internal/cart"
	"storefront-demo/internal/catalog"
	"storefront-demo/internal/domain"
	"storefront-demo/internal/llm"
)

const systemPrompt = `You are a helpful shopping assistant for our e-commerce website.
Your goal is to:
- Provide friendly, concise assistance to website visitors
- Answer questions about products, shipping, returns, and pricing
- Give personalized recommendations when appropriate
- Maintain a professional but conversational tone
- Keep responses brief and to the point (1-3 sentences max)
- Never make up information about products or policies you don't know about
- Politely let users know if you need more information to help them

You can look up the catalog and the shopper's cart with the provided tools.
You are representing our brand, so be courteous and helpful at all times.`

const (
	// ApologyText replaces the reply when the remote call fails.
	ApologyText = "I encountered an error while processing your request. Please try again later."
	// EmptyReplyText is used when the provider answers without content.
	EmptyReplyText = "I couldn't generate a response."

	defaultMaxToolRounds = 1
	maxContextProducts   = 5
)

var errToolLoop = errors.New("assistant kept requesting tools")

var commerceKeywords = []string{
	"buy", "recommend", "suggest", "price", "cost", "cheap", "afford", "budget",
	"looking for", "search", "find", "gift", "product", "purchase", "shop",
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "you": true, "are": true, "can": true, "what": true,
	"want": true, "need": true, "have": true, "with": true, "some": true, "any": true, "me": true,
	"show": true, "please": true, "your": true, "this": true, "that": true, "get": true,
}

// Completer issues one chat completion round.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message, tools []llm.Tool) (llm.Result, error)
}

// RemoteResponder delegates to the AI endpoint, resolving tool requests locally.
type RemoteResponder struct {
	client        Completer
	products      ProductSource
	logger        *log.Logger
	maxToolRounds int
}

func NewRemoteResponder(client Completer, products ProductSource, logger *log.Logger) *RemoteResponder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &RemoteResponder{
		client:        client,
		products:      products,
		logger:        logger,
		maxToolRounds: defaultMaxToolRounds,
	}
}

// WithMaxToolRounds bounds how many tool round trips one reply may take.
func (r *RemoteResponder) WithMaxToolRounds(n int) *RemoteResponder {
	if n < 0 {
		n = 0
	}
	r.maxToolRounds = n
	return r
}

// Respond returns the assistant's final text. The history must not include text.
func (r *RemoteResponder) Respond(ctx context.Context, text string, history []domain.ChatMessage, shopperCart CartReader) (string, error) {
	messages := r.buildConversation(text, history, shopperCart)
	runner := toolRunner{products: r.products, cart: shopperCart}
	tools := Tools()

	for round := 0; ; round++ {
		if round >= r.maxToolRounds {
			tools = nil
		}
		res, err := r.client.Complete(ctx, messages, tools)
		if err != nil {
			return "", err
		}
		if res.Kind == llm.KindFinal {
			if strings.TrimSpace(res.Text) == "" {
				return EmptyReplyText, nil
			}
			return res.Text, nil
		}
		if tools == nil {
			return "", errToolLoop
		}

		messages = append(messages, res.Assistant)
		for _, call := range res.Calls {
			r.logger.Printf("chat: tool call name=%s id=%s", call.Function.Name, call.ID)
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Content:    runner.Run(call),
			})
		}
	}
}

func (r *RemoteResponder) buildConversation(text string, history []domain.ChatMessage, shopperCart CartReader) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+4)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})

	if HasCommerceIntent(text) && r.products != nil {
		if found := relevantProducts(r.products.List(), text); len(found) > 0 {
			messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: describeProducts(found)})
		}
	}
	if shopperCart != nil {
		messages = append(messages, llm.Message{
			Role:    llm.RoleSystem,
			Content: "Current cart: " + cart.Describe(shopperCart.Snapshot()),
		})
	}

	for _, m := range history {
		role := llm.RoleAssistant
		if m.Sender == domain.SenderUser {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Text})
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: text})
}

// HasCommerceIntent reports whether text looks like a shopping request.
func HasCommerceIntent(text string) bool {
	lower := strings.ToLower(text)
	for _, k := range commerceKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// relevantProducts searches the catalog for each significant word of text and falls back
// to the default recommendations when nothing matches.
func relevantProducts(products []domain.Product, text string) []domain.Product {
	seen := map[string]bool{}
	var words []string
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	}) {
		if len(w) < 3 || stopWords[w] || seen[w] || isCommerceKeyword(w) {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}

	hit := map[string]bool{}
	for _, w := range words {
		for _, p := range catalog.SearchProducts(products, w, "") {
			hit[p.ID] = true
		}
	}

	var out []domain.Product
	for _, p := range products {
		if hit[p.ID] {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = catalog.GetRecommendedProducts(products, catalog.RecommendOptions{})
	}
	if len(out) > maxContextProducts {
		out = out[:maxContextProducts]
	}
	return out
}

func isCommerceKeyword(w string) bool {
	for _, k := range commerceKeywords {
		if k == w {
			return true
		}
	}
	return false
}

func describeProducts(products []domain.Product) string {
	var b strings.Builder
	b.WriteString("Products that may be relevant:")
	for _, p := range products {
		fmt.Fprintf(&b, "\n- %s (id %s, %s) $%s: %s", p.Name, p.ID, p.Category, p.Price.StringFixed(2), p.Description)
	}
	return b.String()
}
