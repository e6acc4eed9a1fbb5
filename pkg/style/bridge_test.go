package style

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/go-cupertino/cupertino/pkg/platform"
)

// styleBridge records native invocations so tests can inspect synced
// payloads.
type styleBridge struct {
	mu    sync.Mutex
	calls []map[string]any
}

func (b *styleBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	var args map[string]any
	if len(argsData) > 0 {
		json.Unmarshal(argsData, &args)
	}
	b.mu.Lock()
	b.calls = append(b.calls, map[string]any{"method": method, "args": args})
	b.mu.Unlock()
	return json.Marshal(nil)
}

func (b *styleBridge) StartEventStream(string) error { return nil }
func (b *styleBridge) StopEventStream(string) error  { return nil }

func (b *styleBridge) lastUpdateConfig(t *testing.T) map[string]any {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.calls) - 1; i >= 0; i-- {
		args, _ := b.calls[i]["args"].(map[string]any)
		if b.calls[i]["method"] == "invokeViewMethod" && args["method"] == "updateConfig" {
			return args
		}
	}
	t.Fatal("no updateConfig call captured")
	return nil
}

func setupStyleBridge(t *testing.T) *styleBridge {
	t.Helper()
	bridge := &styleBridge{}
	platform.SetupTestBridge(t.Cleanup)
	platform.SetNativeBridge(bridge)
	return bridge
}
