package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-demo/internal/cart"
	"storefront-demo/internal/catalog"
	"storefront-demo/internal/domain"
	"storefront-demo/internal/llm"
)

func sampleCart(t *testing.T) *cart.Store {
	t.Helper()
	c := catalog.New(catalog.SampleProducts())
	p, err := c.Get("1")
	require.NoError(t, err)
	s := cart.NewStore()
	s.AddItem(*p)
	s.AddItem(*p)
	return s
}

func TestRemoteResponderBuildsConversation(t *testing.T) {
	fake := &fakeCompleter{results: []llm.Result{final("Try the headphones.")}}
	r := NewRemoteResponder(fake, catalog.New(catalog.SampleProducts()), nil)
	history := []domain.ChatMessage{
		{Text: GreetingText, Sender: domain.SenderBot},
		{Text: "hi", Sender: domain.SenderUser},
		{Text: "hello", Sender: domain.SenderBot},
	}

	got, err := r.Respond(context.Background(), "I want to buy headphones", history, sampleCart(t))
	require.NoError(t, err)
	assert.Equal(t, "Try the headphones.", got)

	require.Equal(t, 1, fake.calls())
	msgs := fake.requests[0]
	roles := make([]string, 0, len(msgs))
	for _, m := range msgs {
		roles = append(roles, m.Role)
	}
	assert.Equal(t, []string{"system", "system", "system", "assistant", "user", "assistant", "user"}, roles)
	assert.Contains(t, msgs[0].Content, "shopping assistant")
	assert.Contains(t, msgs[1].Content, "Premium Wireless Headphones")
	assert.NotContains(t, msgs[1].Content, "Ergonomic Keyboard")
	assert.Contains(t, msgs[2].Content, "x2")
	assert.Equal(t, "I want to buy headphones", msgs[len(msgs)-1].Content)
	assert.Len(t, fake.tools[0], 3)
}

func TestRemoteResponderSkipsProductContextWithoutIntent(t *testing.T) {
	fake := &fakeCompleter{results: []llm.Result{final("ok")}}
	r := NewRemoteResponder(fake, catalog.New(catalog.SampleProducts()), nil)
	_, err := r.Respond(context.Background(), "how are you today", nil, nil)
	require.NoError(t, err)
	msgs := fake.requests[0]
	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, llm.RoleUser, msgs[1].Role)
}

func TestRemoteResponderToolRoundTrip(t *testing.T) {
	fake := &fakeCompleter{results: []llm.Result{
		toolRequest("call_1", ToolGetCartContents, "{}"),
		final("You have two headphones in your cart."),
	}}
	r := NewRemoteResponder(fake, catalog.New(catalog.SampleProducts()), nil)

	got, err := r.Respond(context.Background(), "what is in my cart", nil, sampleCart(t))
	require.NoError(t, err)
	assert.Equal(t, "You have two headphones in your cart.", got)
	require.Equal(t, 2, fake.calls())
	assert.Nil(t, fake.tools[1])

	second := fake.requests[1]
	toolMsg := second[len(second)-1]
	assert.Equal(t, llm.RoleTool, toolMsg.Role)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)
	var view cartView
	require.NoError(t, json.Unmarshal([]byte(toolMsg.Content), &view))
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, "299.98", view.TotalPrice)
	assert.Equal(t, llm.RoleAssistant, second[len(second)-2].Role)
}

func TestRemoteResponderStopsRepeatedToolRequests(t *testing.T) {
	fake := &fakeCompleter{results: []llm.Result{toolRequest("c", ToolSearchProducts, `{"query":"watch"}`)}}
	r := NewRemoteResponder(fake, catalog.New(catalog.SampleProducts()), nil)
	_, err := r.Respond(context.Background(), "find a watch", nil, nil)
	assert.ErrorIs(t, err, errToolLoop)
	assert.Equal(t, 2, fake.calls())
}

func TestRemoteResponderEmptyReply(t *testing.T) {
	fake := &fakeCompleter{results: []llm.Result{final("  ")}}
	r := NewRemoteResponder(fake, nil, nil)
	got, err := r.Respond(context.Background(), "hi", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, EmptyReplyText, got)
}

func TestRemoteResponderPropagatesError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("boom")}
	r := NewRemoteResponder(fake, nil, nil)
	_, err := r.Respond(context.Background(), "hi", nil, nil)
	assert.EqualError(t, err, "boom")
}

func TestToolRunner(t *testing.T) {
	runner := toolRunner{products: catalog.New(catalog.SampleProducts()), cart: sampleCart(t)}

	var products []productView
	out := runner.Run(llm.ToolCall{Function: llm.FunctionCall{Name: ToolSearchProducts, Arguments: `{"query":"headphones"}`}})
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "149.99", products[0].Price)

	out = runner.Run(llm.ToolCall{Function: llm.FunctionCall{Name: ToolGetRecommendedProducts, Arguments: `{"age":8,"maxPrice":120}`}})
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.NotEmpty(t, products)
	assert.Equal(t, "7", products[0].ID)

	out = runner.Run(llm.ToolCall{Function: llm.FunctionCall{Name: "deleteEverything"}})
	assert.Contains(t, out, `"error"`)

	out = runner.Run(llm.ToolCall{Function: llm.FunctionCall{Name: ToolSearchProducts, Arguments: `not json`}})
	assert.Contains(t, out, "invalid arguments")
}

// The full stack against a simulated endpoint: the final message comes from the second response.
func TestRemoteResponderOverHTTP(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		var body struct {
			Messages []llm.Message `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if n == 1 {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"first","tool_calls":[{"id":"call_9","type":"function","function":{"name":"getCartContents","arguments":"{}"}}]}}]}`))
			return
		}
		last := body.Messages[len(body.Messages)-1]
		assert.Equal(t, llm.RoleTool, last.Role)
		assert.True(t, strings.Contains(last.Content, "Premium Wireless Headphones"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"second"}}]}`))
	}))
	defer srv.Close()

	client := llm.NewClient(llm.NewConfig(llm.Options{URL: srv.URL, APIKey: "k"}), srv.Client(), nil)
	r := NewRemoteResponder(client, catalog.New(catalog.SampleProducts()), nil)
	got, err := r.Respond(context.Background(), "what's in my cart?", nil, sampleCart(t))
	require.NoError(t, err)
	assert.Equal(t, "second", got)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
