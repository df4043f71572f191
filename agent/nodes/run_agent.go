package nodes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

// RunAgent drives the tool-calling decision cycle: each iteration either
// executes the tools the model requested, feeding their text output back as
// observations, or accepts the model's content as the final answer. The loop
// is bounded; exhausting the budget surfaces ErrIterationBudget.
func RunAgent(
	ctx context.Context,
	in *GraphState,
	model einomodel.BaseChatModel,
	executor contractx.ToolExecutor,
	systemPrompt string,
	turns []contractx.Turn,
	maxIterations int,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if maxIterations <= 0 {
		maxIterations = 5
	}

	messages := make([]*schema.Message, 0, len(turns)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	for _, turn := range turns {
		switch turn.Role {
		case contractx.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(turn.Text, nil))
		default:
			messages = append(messages, schema.UserMessage(turn.Text))
		}
	}
	messages = append(messages, schema.UserMessage(in.AugmentedText))

	for i := 0; i < maxIterations; i++ {
		msg, err := model.Generate(ctx, messages)
		if err != nil {
			return nil, fmt.Errorf("%w: generate: %v", contractx.ErrModelInvoke, err)
		}
		if msg == nil {
			return nil, fmt.Errorf("%w: model returned nil message", contractx.ErrModelInvoke)
		}

		if len(msg.ToolCalls) == 0 {
			reply := strings.TrimSpace(msg.Content)
			if reply == "" {
				return nil, fmt.Errorf("%w: model returned empty reply", contractx.ErrModelInvoke)
			}
			in.Reply = reply
			return in, nil
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			observation := runToolCall(ctx, executor, call)
			messages = append(messages, schema.ToolMessage(observation, call.ID))
		}
	}

	return nil, contractx.ErrIterationBudget
}

// runToolCall parses one tool call and executes it. Parse failures become
// observation text so the model can recover; they never abort the loop.
func runToolCall(ctx context.Context, executor contractx.ToolExecutor, call schema.ToolCall) string {
	name := strings.TrimSpace(call.Function.Name)
	if name == "" {
		return fmt.Sprintf("Error: %s", contractx.ErrToolParse)
	}

	args := map[string]any{}
	if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			log.Warn().Err(err).Str("tool", name).Msg("tool arguments did not parse")
			return fmt.Sprintf("Error: invalid arguments for tool %s: %s", name, err)
		}
	}

	log.Debug().Str("tool", name).Msg("executing tool")
	return executor(ctx, name, args)
}
