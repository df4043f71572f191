package nodes

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

// RetrieveContext fetches knowledge passages for the user text and builds the
// augmented prompt. Retrieval failure degrades to the raw text; it never fails
// the turn.
func RetrieveContext(ctx context.Context, in *GraphState, kb contractx.KnowledgeBase) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	knowledgeBlock, err := kb.ContextFor(ctx, in.Text)
	if err != nil {
		log.Warn().Err(err).Msg("knowledge retrieval failed, continuing without context")
		knowledgeBlock = ""
	}
	in.Knowledge = knowledgeBlock

	if knowledgeBlock == "" {
		in.AugmentedText = in.Text
		return in, nil
	}

	in.AugmentedText = fmt.Sprintf(
		"User Query: %s\n\n%s\nBased on the above context and user query, please help the user with their shipping inquiry.",
		in.Text, knowledgeBlock,
	)
	return in, nil
}
