package widgets

import (
	"testing"

	"github.com/go-cupertino/cupertino/pkg/core"
	"github.com/go-cupertino/cupertino/pkg/platform"
)

func mountSearchBar(t *testing.T, owner *core.BuildOwner, w SearchBar) (*core.AdapterElement, *platform.SearchBarView) {
	t.Helper()
	element, err := owner.Mount(w)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return element, element.Adapter().(*searchBarAdapter).View()
}

func TestSearchBarMountSendsPlaceholder(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	_, view := mountSearchBar(t, owner, NewSearchBar("Search", core.Binding[string]{}))

	creates := bridge.createCalls()
	if len(creates) != 1 {
		t.Fatalf("expected 1 create, got %d", len(creates))
	}
	params, _ := creates[0]["params"].(map[string]any)
	if params["placeholder"] != "Search" {
		t.Errorf("placeholder param: %v", params["placeholder"])
	}
	if view.Placeholder() != "Search" {
		t.Errorf("view placeholder: %q", view.Placeholder())
	}
}

func TestSearchBarDefaultsTranslucent(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	mountSearchBar(t, owner, NewSearchBar("", core.Binding[string]{}))

	syncs := bridge.viewCalls("updateConfig")
	if len(syncs) != 1 {
		t.Fatalf("expected 1 updateConfig on mount, got %d", len(syncs))
	}
	if syncs[0]["isTranslucent"] != true {
		t.Error("bar should default to translucent")
	}
}

func TestSearchBarChainedSettersLastWriteWins(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	w := NewSearchBar("", core.Binding[string]{}).
		Prompt("first").
		Style(platform.SearchBarStyleProminent).
		Prompt("second").
		Style(platform.SearchBarStyleMinimal)
	mountSearchBar(t, owner, w)

	args := bridge.viewCalls("updateConfig")[0]
	if args["prompt"] != "second" {
		t.Errorf("prompt: got %v, want second", args["prompt"])
	}
	if args["searchBarStyle"] != "minimal" {
		t.Errorf("searchBarStyle: got %v, want minimal", args["searchBarStyle"])
	}
}

func TestSearchBarTextBindingPushedOnSync(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	text := core.NewState("hello").Attach(owner)
	element, view := mountSearchBar(t, owner, NewSearchBar("", text.Binding()))

	if view.Text() != "hello" {
		t.Errorf("view text after mount: %q", view.Text())
	}
	if len(bridge.viewCalls("setText")) != 1 {
		t.Fatalf("expected 1 setText on mount")
	}

	// Syncing with an unchanged binding sends nothing: the view already
	// holds the bound value.
	if err := element.Update(NewSearchBar("", text.Binding())); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(bridge.viewCalls("setText")) != 1 {
		t.Error("sync re-sent an unchanged text")
	}

	text.Set("goodbye")
	owner.RenderFrame()
	calls := bridge.viewCalls("setText")
	if len(calls) != 2 || calls[1]["text"] != "goodbye" {
		t.Errorf("setText calls: %v", calls)
	}
}

func TestSearchBarUserEditWritesBinding(t *testing.T) {
	setupBridge(t)
	owner := core.NewBuildOwner()

	text := core.NewState("").Attach(owner)
	var observed []string
	w := NewSearchBar("", text.Binding()).
		OnTextChanged(func(s string) { observed = append(observed, s) })
	_, view := mountSearchBar(t, owner, w)

	fireEvent(t, view.ViewID(), "onTextChanged", map[string]any{"text": "cat"})

	if text.Get() != "cat" {
		t.Errorf("binding: got %q, want %q", text.Get(), "cat")
	}
	if len(observed) != 1 || observed[0] != "cat" {
		t.Errorf("callback: %v", observed)
	}
	if view.Text() != "cat" {
		t.Errorf("view text: %q", view.Text())
	}
}

func TestSearchBarUserEditDoesNotEcho(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	text := core.NewState("").Attach(owner)
	_, view := mountSearchBar(t, owner, NewSearchBar("", text.Binding()))

	before := len(bridge.viewCalls("setText"))
	fireEvent(t, view.ViewID(), "onTextChanged", map[string]any{"text": "cat"})
	// The edit marks the frame dirty; rendering it must not push the text
	// back to native, since the view already holds it.
	owner.RenderFrame()

	if got := len(bridge.viewCalls("setText")); got != before {
		t.Errorf("user edit echoed back to native: %d setText calls", got-before)
	}
}

func TestSearchBarScopeBindingRoundTrip(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	scope := core.NewState(0).Attach(owner)
	var observed []int
	w := NewSearchBar("", core.Binding[string]{}).
		ScopeButtonTitles("All", "Titles", "Authors").
		ShowsScopeBar(true).
		SelectedScope(scope.Binding()).
		OnScopeChanged(func(i int) { observed = append(observed, i) })
	_, view := mountSearchBar(t, owner, w)

	fireEvent(t, view.ViewID(), "onScopeChanged", map[string]any{"index": 2})
	owner.RenderFrame()

	if scope.Get() != 2 {
		t.Errorf("scope binding: got %d, want 2", scope.Get())
	}
	if len(observed) != 1 || observed[0] != 2 {
		t.Errorf("callback: %v", observed)
	}
	// No oscillation: the frame after the event sends no setSelectedScope.
	if calls := bridge.viewCalls("setSelectedScope"); len(calls) != 0 {
		t.Errorf("scope echoed back to native: %v", calls)
	}
}

func TestSearchBarEditingChanged(t *testing.T) {
	setupBridge(t)
	owner := core.NewBuildOwner()

	var phases []bool
	began, ended := 0, 0
	w := NewSearchBar("", core.Binding[string]{}).
		OnEditingBegan(func() { began++ }).
		OnEditingEnded(func() { ended++ }).
		OnEditingChanged(func(editing bool) { phases = append(phases, editing) })
	_, view := mountSearchBar(t, owner, w)

	fireEvent(t, view.ViewID(), "onEditingBegan", nil)
	fireEvent(t, view.ViewID(), "onEditingEnded", nil)

	if began != 1 || ended != 1 {
		t.Errorf("discrete callbacks: began=%d ended=%d", began, ended)
	}
	if len(phases) != 2 || !phases[0] || phases[1] {
		t.Errorf("phases: %v, want [true false]", phases)
	}
}

func TestSearchBarVetoGatesDefaultAllow(t *testing.T) {
	setupBridge(t)
	owner := core.NewBuildOwner()

	_, view := mountSearchBar(t, owner, NewSearchBar("", core.Binding[string]{}))

	if got := fireRequest(t, view.ViewID(), "shouldBeginEditing", nil); got != true {
		t.Errorf("shouldBeginEditing: got %v, want true", got)
	}
	if got := fireRequest(t, view.ViewID(), "shouldEndEditing", nil); got != true {
		t.Errorf("shouldEndEditing: got %v, want true", got)
	}
}

func TestSearchBarVetoGatesHonorHandlers(t *testing.T) {
	setupBridge(t)
	owner := core.NewBuildOwner()

	w := NewSearchBar("", core.Binding[string]{}).
		ShouldBeginEditing(func() bool { return false }).
		ShouldChangeText(func(r platform.TextRange, replacement string) bool {
			return replacement != "spam"
		})
	_, view := mountSearchBar(t, owner, w)

	if got := fireRequest(t, view.ViewID(), "shouldBeginEditing", nil); got != false {
		t.Errorf("shouldBeginEditing: got %v, want false", got)
	}
	if got := fireRequest(t, view.ViewID(), "shouldChangeText", map[string]any{
		"location": 0, "length": 0, "replacement": "spam",
	}); got != false {
		t.Errorf("shouldChangeText(spam): got %v, want false", got)
	}
	if got := fireRequest(t, view.ViewID(), "shouldChangeText", map[string]any{
		"location": 0, "length": 0, "replacement": "ham",
	}); got != true {
		t.Errorf("shouldChangeText(ham): got %v, want true", got)
	}
}

func TestSearchBarShouldChangeTextRange(t *testing.T) {
	setupBridge(t)
	owner := core.NewBuildOwner()

	var ranges []platform.TextRange
	w := NewSearchBar("", core.Binding[string]{}).
		ShouldChangeText(func(r platform.TextRange, replacement string) bool {
			ranges = append(ranges, r)
			return true
		})
	_, view := mountSearchBar(t, owner, w)

	fireRequest(t, view.ViewID(), "shouldChangeText", map[string]any{
		"location": 4, "length": 2, "replacement": "x",
	})
	if len(ranges) != 1 || ranges[0].Start != 4 || ranges[0].End != 6 {
		t.Errorf("ranges: %v", ranges)
	}

	// An untranslatable range denies without reaching the handler.
	if got := fireRequest(t, view.ViewID(), "shouldChangeText", map[string]any{
		"location": -3, "length": 2, "replacement": "x",
	}); got != false {
		t.Errorf("bad range: got %v, want false", got)
	}
	if len(ranges) != 1 {
		t.Errorf("handler consulted for untranslatable range")
	}
}

func TestSearchBarAccessoryPayload(t *testing.T) {
	bridge := setupBridge(t)
	owner := core.NewBuildOwner()

	w := NewSearchBar("", core.Binding[string]{}).
		InputAccessory(AccessoryOf(
			AccessoryItem{Kind: AccessoryFlexibleSpace},
			AccessoryItem{Kind: AccessoryDismissButton, Title: "Done"},
		))
	mountSearchBar(t, owner, w)

	args := bridge.viewCalls("updateConfig")[0]
	accessory, _ := args["inputAccessory"].(map[string]any)
	items, _ := accessory["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("accessory items: %v", args["inputAccessory"])
	}
	last, _ := items[1].(map[string]any)
	if last["kind"] != "dismiss" || last["title"] != "Done" {
		t.Errorf("dismiss item: %v", last)
	}
}

func TestSearchBarUnmountDisposesNativeView(t *testing.T) {
	setupBridge(t)
	owner := core.NewBuildOwner()

	element, view := mountSearchBar(t, owner, NewSearchBar("", core.Binding[string]{}))
	owner.Unmount(element)

	if platform.GetPlatformViewRegistry().GetView(view.ViewID()) != nil {
		t.Error("native view still registered after unmount")
	}
}
