package chat

import (
	"context"
	"sync"

	"storefront-demo/internal/llm"
)

type staticCreds bool

func (c staticCreds) HasCredential() bool { return bool(c) }

// fakeCompleter replays results in order and records every request.
type fakeCompleter struct {
	mu       sync.Mutex
	results  []llm.Result
	err      error
	requests [][]llm.Message
	tools    [][]llm.Tool
	block    chan struct{}
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []llm.Message, tools []llm.Tool) (llm.Result, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return llm.Result{}, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]llm.Message, len(messages))
	copy(cp, messages)
	f.requests = append(f.requests, cp)
	f.tools = append(f.tools, tools)
	if f.err != nil {
		return llm.Result{}, f.err
	}
	idx := len(f.requests) - 1
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	return f.results[idx], nil
}

func (f *fakeCompleter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func final(text string) llm.Result {
	return llm.Result{Kind: llm.KindFinal, Text: text, Assistant: llm.Message{Role: llm.RoleAssistant, Content: text}}
}

func toolRequest(id, name, args string) llm.Result {
	call := llm.ToolCall{ID: id, Type: "function", Function: llm.FunctionCall{Name: name, Arguments: args}}
	return llm.Result{
		Kind:      llm.KindToolRequests,
		Calls:     []llm.ToolCall{call},
		Assistant: llm.Message{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{call}},
	}
}
