package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func newTestServer() *Server {
	return NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func press(t *testing.T, s *Server, keys ...string) PressOutput {
	t.Helper()
	_, out, err := s.handlePress(context.Background(), nil, PressInput{Keys: keys})
	if err != nil {
		t.Fatalf("press %v: %v", keys, err)
	}
	return out
}

func TestPress_AppliesKeysInOrder(t *testing.T) {
	s := newTestServer()
	out := press(t, s, "1", "2", "+", "3", "=")

	want := []string{"1", "2", "+", "3", "="}
	if strings.Join(out.Applied, " ") != strings.Join(want, " ") {
		t.Fatalf("applied = %v, want %v", out.Applied, want)
	}
	if out.State.Display != "15" {
		t.Fatalf("display = %q, want 15", out.State.Display)
	}
	if len(out.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", out.Errors)
	}
}

func TestPress_StatePersistsAcrossCalls(t *testing.T) {
	s := newTestServer()
	press(t, s, "6", "times")
	out := press(t, s, "7", "equals")
	if out.State.Display != "42" {
		t.Fatalf("display = %q, want 42", out.State.Display)
	}

	_, disp, err := s.handleDisplay(context.Background(), nil, DisplayInput{})
	if err != nil {
		t.Fatalf("display: %v", err)
	}
	if disp.State.Display != "42" || disp.State.Operation != "inactive" {
		t.Fatalf("unexpected state: %+v", disp.State)
	}
}

func TestPress_UnknownKeyAppliesNothing(t *testing.T) {
	s := newTestServer()
	_, _, err := s.handlePress(context.Background(), nil, PressInput{Keys: []string{"1", "%", "2"}})
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "keys[1]") {
		t.Fatalf("error should point at the bad key: %v", err)
	}
	if got := s.backend.String(); got != "0" {
		t.Fatalf("backend changed to %q after rejected press", got)
	}
}

func TestPress_EmptyKeysRejected(t *testing.T) {
	s := newTestServer()
	if _, _, err := s.handlePress(context.Background(), nil, PressInput{}); err == nil {
		t.Fatalf("expected error for empty keys")
	}
}

func TestPress_ReportsArithmeticErrors(t *testing.T) {
	s := newTestServer()
	out := press(t, s, "8", "/", "0", "=")
	if len(out.Errors) != 1 {
		t.Fatalf("expected one error, got %v", out.Errors)
	}
	if out.State.Display != "Error: division by zero" {
		t.Fatalf("display = %q", out.State.Display)
	}

	out = press(t, s, "5")
	if out.State.Display != "5" || out.State.Error != "" {
		t.Fatalf("error should clear on next digit: %+v", out.State)
	}
}

func TestPress_ConcurrentCallsAreSerialized(t *testing.T) {
	s := newTestServer()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := s.handlePress(context.Background(), nil, PressInput{Keys: []string{"+", "1", "="}}); err != nil {
				t.Errorf("press: %v", err)
			}
		}()
	}
	wg.Wait()
	if got := s.backend.String(); got != "20" {
		t.Fatalf("display = %q, want 20", got)
	}
}

func TestServer_InMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestServer()

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	serverSession, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	res, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "press",
		Arguments: map[string]any{"keys": []string{"9", "-", "1", "2", "="}},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool returned error: %+v", res.Content)
	}

	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var out PressOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	if out.State.Display != "-3" {
		t.Fatalf("display = %q, want -3", out.State.Display)
	}
}
