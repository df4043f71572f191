package nodes

import (
	"fmt"
	"strings"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Reply)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: agent produced empty reply", contractx.ErrValidation)
	}
	return GraphOutput{Reply: reply}, nil
}
