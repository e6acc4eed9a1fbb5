package widgets

import (
	"net/url"
	"testing"

	"github.com/go-cupertino/cupertino/pkg/core"
	"github.com/go-cupertino/cupertino/pkg/graphics"
	"github.com/go-cupertino/cupertino/pkg/platform"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func mountSafari(t *testing.T, owner *core.BuildOwner, w SafariView) (*core.AdapterElement, *platform.BrowserView) {
	t.Helper()
	element, err := owner.Mount(w)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return element, element.Adapter().(*safariAdapter).View()
}

func TestSafariViewMountSendsConstructionParams(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	w := NewSafariView(mustURL(t, "https://example.com/article")).
		EntersReaderIfAvailable(true).
		BarCollapsingEnabled(true)
	_, view := mountSafari(t, owner, w)

	creates := bridge.createCalls()
	if len(creates) != 1 {
		t.Fatalf("expected 1 create, got %d", len(creates))
	}
	params, _ := creates[0]["params"].(map[string]any)
	if params["url"] != "https://example.com/article" {
		t.Errorf("url param: %v", params["url"])
	}
	if params["entersReaderIfAvailable"] != true || params["barCollapsingEnabled"] != true {
		t.Errorf("construction params: %v", params)
	}

	cfg := view.Configuration()
	if !cfg.EntersReaderIfAvailable || !cfg.BarCollapsingEnabled {
		t.Errorf("configuration snapshot: %+v", cfg)
	}
}

func TestSafariViewMountRunsFirstSync(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	w := NewSafariView(mustURL(t, "https://example.com")).
		DismissButtonStyle(platform.DismissButtonStyleClose)
	mountSafari(t, owner, w)

	syncs := bridge.viewCalls("setAppearance")
	if len(syncs) != 1 {
		t.Fatalf("expected 1 setAppearance on mount, got %d", len(syncs))
	}
	if syncs[0]["dismissButtonStyle"] != "close" {
		t.Errorf("dismissButtonStyle: %v", syncs[0]["dismissButtonStyle"])
	}
}

func TestSafariViewChainedSettersLastWriteWins(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	w := NewSafariView(mustURL(t, "https://example.com")).
		DismissButtonStyle(platform.DismissButtonStyleClose).
		DismissButtonStyle(platform.DismissButtonStyleCancel)
	mountSafari(t, owner, w)

	syncs := bridge.viewCalls("setAppearance")
	if syncs[0]["dismissButtonStyle"] != "cancel" {
		t.Errorf("dismissButtonStyle: got %v, want cancel", syncs[0]["dismissButtonStyle"])
	}
}

func TestSafariViewSettersDoNotMutateReceiver(t *testing.T) {
	base := NewSafariView(nil).DismissButtonStyle(platform.DismissButtonStyleClose)
	derived := base.DismissButtonStyle(platform.DismissButtonStyleCancel)

	if base.dismissButtonStyle != platform.DismissButtonStyleClose {
		t.Error("setter mutated its receiver")
	}
	if derived.dismissButtonStyle != platform.DismissButtonStyleCancel {
		t.Error("setter did not apply to the copy")
	}
}

func TestSafariViewConstructionParamsFrozenAcrossUpdates(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	element, view := mountSafari(t, owner, NewSafariView(mustURL(t, "https://example.com")).
		EntersReaderIfAvailable(false))

	// A later widget value flips a construction flag; the mounted view's
	// snapshot must not move and no second native view may be created.
	update := NewSafariView(mustURL(t, "https://other.example")).
		EntersReaderIfAvailable(true).
		PreferredControlTintColor(graphics.RGB(0x33, 0x66, 0xFF))
	if err := element.Update(update); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(bridge.createCalls()) != 1 {
		t.Error("update re-constructed the native view")
	}
	cfg := view.Configuration()
	if cfg.URL != "https://example.com" || cfg.EntersReaderIfAvailable {
		t.Errorf("construction snapshot moved: %+v", cfg)
	}

	// The mutable surface did move.
	syncs := bridge.viewCalls("setAppearance")
	if len(syncs) != 2 {
		t.Fatalf("expected 2 setAppearance calls, got %d", len(syncs))
	}
	if uint32(syncs[1]["preferredControlTintColor"].(float64)) != uint32(graphics.RGB(0x33, 0x66, 0xFF)) {
		t.Errorf("tint not synced: %v", syncs[1]["preferredControlTintColor"])
	}
}

func TestSafariViewSyncIdempotent(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	w := NewSafariView(mustURL(t, "https://example.com")).
		PreferredBarTintColor(graphics.RGB(1, 2, 3))
	element, _ := mountSafari(t, owner, w)

	if err := element.Update(w); err != nil {
		t.Fatalf("Update: %v", err)
	}

	syncs := bridge.viewCalls("setAppearance")
	if len(syncs) != 2 {
		t.Fatalf("expected 2 syncs, got %d", len(syncs))
	}
	for _, key := range []string{"preferredBarTintColor", "preferredControlTintColor", "dismissButtonStyle"} {
		if syncs[0][key] != syncs[1][key] {
			t.Errorf("sync not idempotent for %s: %v vs %v", key, syncs[0][key], syncs[1][key])
		}
	}
}

func TestSafariViewCallbacks(t *testing.T) {
	setupBridge(t)
	owner := core.NewBuildOwner()

	var loads []bool
	finished := 0
	w := NewSafariView(mustURL(t, "https://example.com")).
		OnInitialLoad(func(ok bool) { loads = append(loads, ok) }).
		OnFinished(func() { finished++ })
	_, view := mountSafari(t, owner, w)

	fireEvent(t, view.ViewID(), "onInitialLoad", map[string]any{"ok": true})
	fireEvent(t, view.ViewID(), "onFinished", nil)

	if len(loads) != 1 || !loads[0] {
		t.Errorf("loads: %v", loads)
	}
	if finished != 1 {
		t.Errorf("finished: %d", finished)
	}
}

func TestSafariViewNilURL(t *testing.T) {
	setupBridge(t)
	owner := core.NewBuildOwner()

	if _, err := owner.Mount(NewSafariView(nil)); err == nil {
		t.Error("expected mount error for nil URL")
	}
}

func TestSafariViewUnmountDisposesNativeView(t *testing.T) {
	setupBridge(t)
	owner := core.NewBuildOwner()

	element, view := mountSafari(t, owner, NewSafariView(mustURL(t, "https://example.com")))
	owner.Unmount(element)

	if platform.GetPlatformViewRegistry().GetView(view.ViewID()) != nil {
		t.Error("native view still registered after unmount")
	}
}
