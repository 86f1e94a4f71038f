package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"SolPulse/internal/domain/models"
	drepo "SolPulse/internal/domain/repository"
	"SolPulse/internal/tools"

	openai "github.com/sashabaranov/go-openai"
)

type fakeLLM struct {
	selectCalls  int
	narrateCalls int
	selection    *drepo.ToolSelection
	content      string
	selectErr    error
	narration    string
	narrateErr   error
}

func (f *fakeLLM) SelectTool(_ context.Context, _, _ string, _ []openai.Tool) (*drepo.ToolSelection, string, error) {
	f.selectCalls++
	return f.selection, f.content, f.selectErr
}

func (f *fakeLLM) Narrate(_ context.Context, _, _, _ string, _ interface{}) (string, error) {
	f.narrateCalls++
	return f.narration, f.narrateErr
}

func echoRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	reg := tools.NewRegistry()
	reg.Register(&tools.Operation{
		Definition: tools.WalletAssetsTool(),
		Handler: func(_ context.Context, args map[string]interface{}) (interface{}, error) {
			owner, err := tools.StringArg(args, "owner_address")
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"owner": owner}, nil
		},
	})
	reg.Register(&tools.Operation{
		Definition: tools.TradingInfoTool(),
		Handler: func(_ context.Context, _ map[string]interface{}) (interface{}, error) {
			return nil, models.ErrNoDataAvailable
		},
	})
	return reg
}

func errorText(t *testing.T, data interface{}) string {
	t.Helper()
	m, ok := data.(map[string]interface{})
	if !ok {
		t.Fatalf("data is %T, want map", data)
	}
	msg, ok := m["error"].(string)
	if !ok {
		t.Fatalf("no error key in %v", m)
	}
	return msg
}

func TestDispatchDirectSkipsLLM(t *testing.T) {
	llm := &fakeLLM{}
	d := NewDispatcher(echoRegistry(t), llm, testLogger(t), noopMetrics{})

	resp := d.Handle(context.Background(), &models.AgentRequest{
		Tool:          tools.OpWalletAssets,
		ToolArguments: map[string]interface{}{"owner_address": "wallet-a"},
	})

	if llm.selectCalls != 0 || llm.narrateCalls != 0 {
		t.Fatalf("direct call reached the model: select=%d narrate=%d", llm.selectCalls, llm.narrateCalls)
	}
	if resp.Response != "" {
		t.Fatalf("direct call response = %q, want empty", resp.Response)
	}
	m := resp.Data.(map[string]interface{})
	if m["owner"] != "wallet-a" {
		t.Fatalf("data = %v", resp.Data)
	}
}

func TestDispatchMissingInput(t *testing.T) {
	d := NewDispatcher(echoRegistry(t), &fakeLLM{}, testLogger(t), noopMetrics{})
	resp := d.Handle(context.Background(), &models.AgentRequest{})

	if got := errorText(t, resp.Data); got != models.ErrMissingInput.Error() {
		t.Fatalf("error = %q", got)
	}
}

func TestDispatchUnsupportedTool(t *testing.T) {
	d := NewDispatcher(echoRegistry(t), &fakeLLM{}, testLogger(t), noopMetrics{})
	resp := d.Handle(context.Background(), &models.AgentRequest{Tool: "Get_Wallet_Assets"})

	if got := errorText(t, resp.Data); !strings.Contains(got, "unsupported tool") {
		t.Fatalf("error = %q, want unsupported tool", got)
	}
}

func TestDispatchOperationErrorInEnvelope(t *testing.T) {
	d := NewDispatcher(echoRegistry(t), &fakeLLM{}, testLogger(t), noopMetrics{})
	resp := d.Handle(context.Background(), &models.AgentRequest{
		Tool:          tools.OpTradingInfo,
		ToolArguments: map[string]interface{}{"token_address": "mint"},
	})

	if got := errorText(t, resp.Data); got != models.ErrNoDataAvailable.Error() {
		t.Fatalf("error = %q", got)
	}
}

func TestDispatchQueryRoutesAndNarrates(t *testing.T) {
	llm := &fakeLLM{
		selection: &drepo.ToolSelection{
			ID:        "call-1",
			Name:      tools.OpWalletAssets,
			Arguments: `{"owner_address":"wallet-a"}`,
		},
		narration: "wallet-a holds things",
	}
	d := NewDispatcher(echoRegistry(t), llm, testLogger(t), noopMetrics{})

	resp := d.Handle(context.Background(), &models.AgentRequest{Query: "what does wallet-a hold?"})

	if llm.selectCalls != 1 || llm.narrateCalls != 1 {
		t.Fatalf("select=%d narrate=%d, want 1/1", llm.selectCalls, llm.narrateCalls)
	}
	if resp.Response != "wallet-a holds things" {
		t.Fatalf("response = %q", resp.Response)
	}
	if resp.Data.(map[string]interface{})["owner"] != "wallet-a" {
		t.Fatalf("data = %v", resp.Data)
	}
}

func TestDispatchQueryFreeTextAnswer(t *testing.T) {
	llm := &fakeLLM{content: "I can look up Solana wallets for you."}
	d := NewDispatcher(echoRegistry(t), llm, testLogger(t), noopMetrics{})

	resp := d.Handle(context.Background(), &models.AgentRequest{Query: "hello"})

	if resp.Response != llm.content {
		t.Fatalf("response = %q", resp.Response)
	}
	if m := resp.Data.(map[string]interface{}); len(m) != 0 {
		t.Fatalf("data = %v, want empty map", m)
	}
	if llm.narrateCalls != 0 {
		t.Fatalf("free text answer was narrated")
	}
}

func TestDispatchQueryRawDataOnly(t *testing.T) {
	llm := &fakeLLM{
		selection: &drepo.ToolSelection{ID: "call-1", Name: tools.OpWalletAssets, Arguments: `{"owner_address":"w"}`},
	}
	d := NewDispatcher(echoRegistry(t), llm, testLogger(t), noopMetrics{})

	resp := d.Handle(context.Background(), &models.AgentRequest{Query: "q", RawDataOnly: true})

	if llm.narrateCalls != 0 {
		t.Fatalf("raw_data_only still narrated")
	}
	if resp.Response != "" {
		t.Fatalf("response = %q, want empty", resp.Response)
	}
}

func TestDispatchMalformedArguments(t *testing.T) {
	llm := &fakeLLM{
		selection: &drepo.ToolSelection{ID: "call-1", Name: tools.OpWalletAssets, Arguments: `{"owner_address":`},
	}
	d := NewDispatcher(echoRegistry(t), llm, testLogger(t), noopMetrics{})

	resp := d.Handle(context.Background(), &models.AgentRequest{Query: "q"})

	if got := errorText(t, resp.Data); !strings.Contains(got, "malformed tool arguments") {
		t.Fatalf("error = %q", got)
	}
	if llm.narrateCalls != 0 {
		t.Fatalf("malformed arguments were narrated")
	}
}

func TestDispatchErrorPayloadNotNarrated(t *testing.T) {
	llm := &fakeLLM{
		selection: &drepo.ToolSelection{ID: "call-1", Name: tools.OpTradingInfo, Arguments: `{"token_address":"m"}`},
		narration: "should not appear",
	}
	d := NewDispatcher(echoRegistry(t), llm, testLogger(t), noopMetrics{})

	resp := d.Handle(context.Background(), &models.AgentRequest{Query: "q"})

	if llm.narrateCalls != 0 {
		t.Fatalf("error payload was narrated")
	}
	if resp.Response != "" {
		t.Fatalf("response = %q, want empty", resp.Response)
	}
	errorText(t, resp.Data)
}

func TestDispatchNarrationFailureDegradesToData(t *testing.T) {
	llm := &fakeLLM{
		selection:  &drepo.ToolSelection{ID: "call-1", Name: tools.OpWalletAssets, Arguments: `{"owner_address":"w"}`},
		narrateErr: errors.New("model unavailable"),
	}
	d := NewDispatcher(echoRegistry(t), llm, testLogger(t), noopMetrics{})

	resp := d.Handle(context.Background(), &models.AgentRequest{Query: "q"})

	if resp.Response != "" {
		t.Fatalf("response = %q, want empty on narration failure", resp.Response)
	}
	if resp.Data.(map[string]interface{})["owner"] != "w" {
		t.Fatalf("data lost on narration failure: %v", resp.Data)
	}
}

func TestDispatchSelectionFailure(t *testing.T) {
	llm := &fakeLLM{selectErr: errors.New("timeout")}
	d := NewDispatcher(echoRegistry(t), llm, testLogger(t), noopMetrics{})

	resp := d.Handle(context.Background(), &models.AgentRequest{Query: "q"})

	if got := errorText(t, resp.Data); got != "Failed to process query" {
		t.Fatalf("error = %q", got)
	}
}
