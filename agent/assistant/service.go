// Package assistant is the composition root of the query-resolution pipeline:
// knowledge retrieval, the tool-calling agent loop, and conversation history.
package assistant

import (
	"context"
	"errors"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
	historyx "github.com/farhanfadillahr/shipping-price-checker/agent/history"
	nodex "github.com/farhanfadillahr/shipping-price-checker/agent/nodes"
	promptx "github.com/farhanfadillahr/shipping-price-checker/agent/prompt"
)

const defaultMaxIterations = 5

// Config tunes the assistant. Zero values fall back to defaults.
type Config struct {
	SystemPrompt  string
	MaxIterations int
	MaxExchanges  int
}

// Assistant resolves user utterances into natural-language answers. It is
// single-threaded per instance: each message is handled to completion before
// the next is accepted.
type Assistant struct {
	model     einomodel.BaseChatModel
	knowledge contractx.KnowledgeBase
	executor  contractx.ToolExecutor
	history   *historyx.Window

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	systemPrompt  string
	maxIterations int
}

// New binds the tool declarations to the chat model and compiles the
// handle-message graph.
func New(
	model einomodel.ToolCallingChatModel,
	knowledge contractx.KnowledgeBase,
	executor contractx.ToolExecutor,
	toolInfos []*schema.ToolInfo,
	cfg Config,
) (*Assistant, error) {
	if model == nil {
		return nil, errors.New("chat model is required")
	}
	if knowledge == nil {
		return nil, errors.New("knowledge base is required")
	}
	if executor == nil {
		return nil, errors.New("tool executor is required")
	}

	boundModel, err := model.WithTools(toolInfos)
	if err != nil {
		return nil, fmt.Errorf("%w: bind tools: %v", contractx.ErrModelInvoke, err)
	}

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = promptx.System()
	}
	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}

	a := &Assistant{
		model:         boundModel,
		knowledge:     knowledge,
		executor:      executor,
		history:       historyx.NewWindow(cfg.MaxExchanges),
		systemPrompt:  systemPrompt,
		maxIterations: maxIterations,
	}

	graphRunner, err := a.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	a.graphRunner = graphRunner

	return a, nil
}

// Chat resolves one user message. Nothing throws past this boundary: every
// failure degrades to a textual explanation instead of terminating the
// session.
func (a *Assistant) Chat(ctx context.Context, text string) string {
	out, err := a.graphRunner.Invoke(ctx, nodex.GraphInput{Text: text})
	if err != nil {
		log.Error().Err(err).Msg("chat pipeline failed")
		switch {
		case errors.Is(err, contractx.ErrValidation):
			return "Please type a shipping question, for example: \"How much to ship 1kg from Jakarta to Surabaya?\""
		case errors.Is(err, contractx.ErrIterationBudget):
			return "I wasn't able to finish working through that request. Could you rephrase it or break it into smaller steps?"
		default:
			return fmt.Sprintf("I apologize, but I encountered an error: %s. Please try rephrasing your question.", err)
		}
	}
	return out.Reply
}

// Reset clears the conversation history.
func (a *Assistant) Reset() {
	a.history.Reset()
}

// History returns a copy of the buffered conversation turns.
func (a *Assistant) History() []contractx.Turn {
	return a.history.Turns()
}
