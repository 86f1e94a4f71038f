package usecase

import (
	"context"
	"encoding/json"

	"SolPulse/internal/domain/models"
	drepo "SolPulse/internal/domain/repository"
	"SolPulse/internal/tools"
	applogger "SolPulse/pkg/logger"
)

const systemPrompt = `You are a Solana blockchain data expert with access to wallet assets, token holder analytics, swap history, and DEX trading data.

RESPONSE GUIDELINES:
- Keep responses concise and focused on the specific data requested
- Format monetary values in a readable way (e.g. "$150.4M")
- Only provide metrics relevant to the query
- Highlight any anomalies or significant patterns if found`

// Dispatcher routes agent requests either directly to a named tool or
// through the language model for tool selection and narration.
type Dispatcher struct {
	registry *tools.Registry
	llm      drepo.ToolLLM
	log      *applogger.Logger
	metrics  drepo.Metrics
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(reg *tools.Registry, llm drepo.ToolLLM, l *applogger.Logger, m drepo.Metrics) *Dispatcher {
	return &Dispatcher{registry: reg, llm: llm, log: l, metrics: m}
}

// Definitions exposes the registered tool definitions.
func (d *Dispatcher) Definitions() []interface{} {
	defs := d.registry.Definitions()
	out := make([]interface{}, len(defs))
	for i, def := range defs {
		out[i] = def
	}
	return out
}

// Handle processes one agent request. Failures surface inside the
// response envelope under the "error" key; the envelope itself always
// succeeds.
func (d *Dispatcher) Handle(ctx context.Context, req *models.AgentRequest) *models.AgentResponse {
	switch {
	case req.Tool != "":
		return &models.AgentResponse{
			Response: "",
			Data:     d.execute(ctx, req.Tool, req.ToolArguments),
		}
	case req.Query != "":
		return d.handleQuery(ctx, req)
	default:
		d.metrics.RecordError("missing_input")
		return &models.AgentResponse{
			Response: "",
			Data:     models.ErrorData(models.ErrMissingInput.Error()),
		}
	}
}

// handleQuery routes a natural language query. Only the first tool
// call of the model's answer is executed.
func (d *Dispatcher) handleQuery(ctx context.Context, req *models.AgentRequest) *models.AgentResponse {
	selection, content, err := d.llm.SelectTool(ctx, systemPrompt, req.Query, d.registry.Definitions())
	if err != nil {
		d.log.Error("tool selection failed", applogger.Error(err))
		return &models.AgentResponse{
			Response: "",
			Data:     models.ErrorData("Failed to process query"),
		}
	}

	// free text answer, no tool involved
	if selection == nil {
		return &models.AgentResponse{
			Response: content,
			Data:     map[string]interface{}{},
		}
	}

	var args map[string]interface{}
	if selection.Arguments != "" {
		if err := json.Unmarshal([]byte(selection.Arguments), &args); err != nil {
			d.metrics.RecordError("malformed_tool_arguments")
			d.log.Error("malformed tool arguments",
				applogger.String("tool", selection.Name),
				applogger.Error(err),
			)
			return &models.AgentResponse{
				Response: "",
				Data:     models.ErrorData("malformed tool arguments: " + err.Error()),
			}
		}
	}

	data := d.execute(ctx, selection.Name, args)

	if req.RawDataOnly {
		return &models.AgentResponse{Response: "", Data: data}
	}
	if hasError(data) {
		return &models.AgentResponse{Response: "", Data: data}
	}

	narration, err := d.llm.Narrate(ctx, systemPrompt, req.Query, selection.ID, data)
	if err != nil {
		// narration is best effort, the data still answers the request
		d.log.Warn("narration failed", applogger.Error(err))
		return &models.AgentResponse{Response: "", Data: data}
	}
	return &models.AgentResponse{Response: narration, Data: data}
}

// execute resolves and runs a tool, folding failures into the error
// payload shape.
func (d *Dispatcher) execute(ctx context.Context, name string, args map[string]interface{}) interface{} {
	op, ok := d.registry.Get(name)
	if !ok {
		d.metrics.RecordError("unsupported_operation")
		return models.ErrorData((&models.UnsupportedOperationError{Name: name}).Error())
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := op.Handler(ctx, args)
	if err != nil {
		d.log.Error("operation failed",
			applogger.String("operation", name),
			applogger.Error(err),
		)
		return models.ErrorData(err.Error())
	}
	return result
}

func hasError(data interface{}) bool {
	m, ok := data.(map[string]interface{})
	if !ok {
		return false
	}
	_, has := m["error"]
	return has
}
