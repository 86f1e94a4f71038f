// Package tools holds the operation registry that both dispatch modes
// resolve tool names against.
package tools

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Handler executes one operation against already-coerced arguments.
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Middleware wraps a Handler with a cross-cutting concern.
type Middleware func(Handler) Handler

// Chain applies middlewares so the first listed is outermost.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Operation binds a tool definition to its handler and cache policy.
type Operation struct {
	Definition openai.Tool
	TTL        time.Duration
	Handler    Handler
}

// Name returns the operation's function name.
func (o *Operation) Name() string {
	if o.Definition.Function == nil {
		return ""
	}
	return o.Definition.Function.Name
}

// Registry maps tool names to operations. Lookups are case sensitive.
type Registry struct {
	ops   map[string]*Operation
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]*Operation)}
}

// Register adds an operation. Registering a duplicate name is a
// programming error and panics.
func (r *Registry) Register(op *Operation) {
	name := op.Name()
	if name == "" {
		panic("tools: operation without a function name")
	}
	if _, exists := r.ops[name]; exists {
		panic(fmt.Sprintf("tools: duplicate operation %q", name))
	}
	r.ops[name] = op
	r.order = append(r.order, name)
}

// Get returns the operation registered under name.
func (r *Registry) Get(name string) (*Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Definitions returns tool definitions in registration order.
func (r *Registry) Definitions() []openai.Tool {
	defs := make([]openai.Tool, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.ops[name].Definition)
	}
	return defs
}

// Names returns operation names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
