package nodes

import (
	"fmt"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
	historyx "github.com/farhanfadillahr/shipping-price-checker/agent/history"
)

// AppendHistory records the finished exchange in the sliding window. The raw
// user text is stored, not the augmented prompt.
func AppendHistory(in *GraphState, window *historyx.Window) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if window == nil {
		return nil, fmt.Errorf("%w: history window is nil", contractx.ErrValidation)
	}

	window.AppendExchange(in.Text, in.Reply)
	return in, nil
}
