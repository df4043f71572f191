// Package nodes contains the node functions of the assistant's message
// pipeline graph. Each node takes the shared GraphState plus its dependencies
// and returns the state for the next node.
package nodes

// GraphInput is the pipeline entrypoint payload.
type GraphInput struct {
	Text string
}

// GraphOutput is the pipeline result.
type GraphOutput struct {
	Reply string
}

// GraphState flows between nodes of the handle-message graph.
type GraphState struct {
	Text          string
	Knowledge     string
	AugmentedText string
	Reply         string
}
