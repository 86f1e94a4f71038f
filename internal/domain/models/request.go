package models

// AgentRequest is the envelope accepted by the agent endpoint. Either
// Tool (direct invocation) or Query (natural language routing) must be
// present; Validate in the dispatcher enforces that.
type AgentRequest struct {
	Tool          string                 `json:"tool,omitempty"`
	ToolArguments map[string]interface{} `json:"tool_arguments,omitempty"`
	Query         string                 `json:"query,omitempty"`
	RawDataOnly   bool                   `json:"raw_data_only,omitempty" default:"false"`
}

// AgentResponse is the envelope returned for every agent request.
// Failures are carried inside Data under the "error" key rather than
// as transport-level status codes.
type AgentResponse struct {
	Response string      `json:"response"`
	Data     interface{} `json:"data"`
}

// ErrorData builds the failure payload for an AgentResponse.
func ErrorData(message string) map[string]interface{} {
	return map[string]interface{}{"error": message}
}
