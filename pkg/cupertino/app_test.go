package cupertino

import (
	"encoding/json"
	"testing"

	"github.com/go-cupertino/cupertino/pkg/core"
	"github.com/go-cupertino/cupertino/pkg/platform"
)

// appBridge answers the handshake and swallows everything else.
type appBridge struct {
	version string
}

func (b *appBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	if channel == "cupertino/bridge" && method == "info" {
		return json.Marshal(map[string]any{"platform": "ios", "version": b.version})
	}
	return json.Marshal(nil)
}

func (b *appBridge) StartEventStream(string) error { return nil }
func (b *appBridge) StopEventStream(string) error  { return nil }

// labelWidget is a minimal AdapterWidget recording its syncs.
type labelWidget struct {
	label core.Binding[string]
	log   *[]string
}

type labelAdapter struct {
	log      *[]string
	disposed bool
}

func (a *labelAdapter) Dispose() { a.disposed = true }

func (w labelWidget) Key() any { return nil }

func (w labelWidget) CreateAdapter(ctx core.BuildContext) (core.Adapter, error) {
	return &labelAdapter{log: w.log}, nil
}

func (w labelWidget) UpdateAdapter(adapter core.Adapter) error {
	a := adapter.(*labelAdapter)
	*a.log = append(*a.log, w.label.Read())
	return nil
}

func setupApp(t *testing.T) {
	t.Helper()
	platform.SetupTestBridge(t.Cleanup)
}

func TestAppStartMountsRoot(t *testing.T) {
	setupApp(t)

	var log []string
	label := core.NewState("hello")
	app := NewApp(labelWidget{label: label.Binding(), log: &log})

	if err := app.Start(&appBridge{version: "1.1.0"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer app.Stop()

	if app.BridgeInfo().Version != "1.1.0" {
		t.Errorf("bridge info: %+v", app.BridgeInfo())
	}
	if len(log) != 1 || log[0] != "hello" {
		t.Errorf("mount sync: %v", log)
	}

	// State writes schedule a frame, rendered synchronously through the
	// test dispatch.
	label.Attach(app.Owner())
	label.Set("goodbye")
	if len(log) != 2 || log[1] != "goodbye" {
		t.Errorf("frame sync: %v", log)
	}
}

func TestAppStartRejectsOldScaffold(t *testing.T) {
	setupApp(t)

	var log []string
	app := NewApp(labelWidget{log: &log})
	if err := app.Start(&appBridge{version: "0.2.0"}); err == nil {
		t.Fatal("expected handshake failure")
	}
	if len(log) != 0 {
		t.Error("root mounted despite failed handshake")
	}
	if platform.HasNativeBridge() {
		t.Error("bridge left installed after failed handshake")
	}
}

func TestAppStartWithoutRoot(t *testing.T) {
	setupApp(t)

	if err := NewApp(nil).Start(&appBridge{version: "1.0.0"}); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestAppUpdateAndStop(t *testing.T) {
	setupApp(t)

	var log []string
	text := "a"
	app := NewApp(labelWidget{label: core.BindValue(&text), log: &log})
	if err := app.Start(&appBridge{version: "1.0.0"}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	text = "b"
	if err := app.Update(labelWidget{label: core.BindValue(&text), log: &log}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(log) != 2 || log[1] != "b" {
		t.Errorf("update sync: %v", log)
	}

	app.Stop()
	if err := app.Update(labelWidget{log: &log}); err == nil {
		t.Error("Update after Stop should fail")
	}
}
