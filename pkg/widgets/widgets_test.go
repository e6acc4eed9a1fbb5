package widgets

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/go-cupertino/cupertino/pkg/platform"
)

// captureBridge is a NativeBridge recording every invocation, JSON-decoded.
type captureBridge struct {
	mu    sync.Mutex
	calls []bridgeCall
}

type bridgeCall struct {
	channel string
	method  string
	args    map[string]any
}

func (b *captureBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	var args map[string]any
	if len(argsData) > 0 {
		json.Unmarshal(argsData, &args)
	}
	b.mu.Lock()
	b.calls = append(b.calls, bridgeCall{channel: channel, method: method, args: args})
	b.mu.Unlock()
	return json.Marshal(nil)
}

func (b *captureBridge) StartEventStream(string) error { return nil }
func (b *captureBridge) StopEventStream(string) error  { return nil }

// viewCalls returns the args of invokeViewMethod calls for a view method.
func (b *captureBridge) viewCalls(viewMethod string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []map[string]any
	for _, c := range b.calls {
		if c.method == "invokeViewMethod" && c.args["method"] == viewMethod {
			result = append(result, c.args)
		}
	}
	return result
}

// createCalls returns the args of view create calls.
func (b *captureBridge) createCalls() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	var result []map[string]any
	for _, c := range b.calls {
		if c.channel == "cupertino/platform_views" && c.method == "create" {
			result = append(result, c.args)
		}
	}
	return result
}

func setupBridge(t *testing.T) *captureBridge {
	t.Helper()
	bridge := &captureBridge{}
	platform.SetupTestBridge(t.Cleanup)
	platform.SetNativeBridge(bridge)
	return bridge
}

// fireEvent delivers a native delegate event for a view.
func fireEvent(t *testing.T, viewID int64, event string, args map[string]any) {
	t.Helper()
	payload := map[string]any{"viewId": viewID, "event": event}
	for k, v := range args {
		payload[k] = v
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	if err := platform.HandleEvent("cupertino/platform_views/events", data); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
}

// fireRequest delivers a synchronous native delegate query and returns the
// decoded response.
func fireRequest(t *testing.T, viewID int64, request string, args map[string]any) any {
	t.Helper()
	payload := map[string]any{"viewId": viewID, "request": request}
	for k, v := range args {
		payload[k] = v
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resultData, err := platform.HandleMethodCall("cupertino/platform_views", "viewRequest", data)
	if err != nil {
		t.Fatalf("HandleMethodCall: %v", err)
	}
	var result any
	if err := json.Unmarshal(resultData, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return result
}
