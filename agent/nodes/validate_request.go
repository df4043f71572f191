package nodes

import (
	"fmt"
	"strings"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

func ValidateRequest(in GraphInput) (*GraphState, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: user message is empty", contractx.ErrValidation)
	}
	return &GraphState{Text: text}, nil
}
