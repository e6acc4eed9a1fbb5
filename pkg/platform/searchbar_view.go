package platform

import (
	"sync"

	"github.com/go-cupertino/cupertino/pkg/graphics"
)

// BarStyle selects the overall chrome of the native search bar.
type BarStyle int

const (
	BarStyleDefault BarStyle = iota
	BarStyleBlack
)

func (s BarStyle) String() string {
	if s == BarStyleBlack {
		return "black"
	}
	return "default"
}

// SearchBarStyle selects the search field treatment.
type SearchBarStyle int

const (
	SearchBarStyleDefault SearchBarStyle = iota
	SearchBarStyleProminent
	SearchBarStyleMinimal
)

func (s SearchBarStyle) String() string {
	switch s {
	case SearchBarStyleProminent:
		return "prominent"
	case SearchBarStyleMinimal:
		return "minimal"
	default:
		return "default"
	}
}

// SearchBarViewConfig is the full mutable surface of the native search bar.
// Every field is pushed to native on every sync; the zero value of an
// optional field means "platform default".
type SearchBarViewConfig struct {
	BarStyle                      BarStyle
	Prompt                        string // "" = no prompt line
	ShowsBookmarkButton           bool
	ShowsCancelButton             bool
	ShowsSearchResultsButton      bool
	IsSearchResultsButtonSelected bool
	BarTintColor                  graphics.Color
	Style                         SearchBarStyle
	IsTranslucent                 bool
	ScopeButtonTitles             []string
	ShowsScopeBar                 bool

	// InputAccessory is an opaque serialized view description shown above
	// the keyboard while the field is editing. Nil means none.
	InputAccessory any

	BackgroundImage         *graphics.ImageRef
	ScopeBarBackgroundImage *graphics.ImageRef

	SearchFieldBackgroundPositionAdjustment graphics.Offset
	SearchTextPositionAdjustment            graphics.Offset
}

// payload flattens the config for transport. The full bag is sent every
// time: sync is an overwrite, not a diff.
func (c SearchBarViewConfig) payload() map[string]any {
	titles := make([]string, len(c.ScopeButtonTitles))
	copy(titles, c.ScopeButtonTitles)

	return map[string]any{
		"barStyle":                      c.BarStyle.String(),
		"prompt":                        c.Prompt,
		"showsBookmarkButton":           c.ShowsBookmarkButton,
		"showsCancelButton":             c.ShowsCancelButton,
		"showsSearchResultsButton":      c.ShowsSearchResultsButton,
		"isSearchResultsButtonSelected": c.IsSearchResultsButtonSelected,
		"barTintColor":                  uint32(c.BarTintColor),
		"searchBarStyle":                c.Style.String(),
		"isTranslucent":                 c.IsTranslucent,
		"scopeButtonTitles":             titles,
		"showsScopeBar":                 c.ShowsScopeBar,
		"inputAccessory":                c.InputAccessory,
		"backgroundImage":               c.BackgroundImage.Payload(),
		"scopeBarBackgroundImage":       c.ScopeBarBackgroundImage.Payload(),
		"searchFieldBackgroundPositionAdjustment": map[string]any{"x": c.SearchFieldBackgroundPositionAdjustment.X, "y": c.SearchFieldBackgroundPositionAdjustment.Y},
		"searchTextPositionAdjustment":            map[string]any{"x": c.SearchTextPositionAdjustment.X, "y": c.SearchTextPositionAdjustment.Y},
	}
}

// SearchBarViewClient receives the native search bar's delegate callbacks.
// Exactly one client is attached per view; SetClient replaces, never fans
// out, matching the native one-delegate constraint.
type SearchBarViewClient interface {
	// ShouldBeginEditing gates focus: the native widget honors the return.
	ShouldBeginEditing() bool

	// OnEditingBegan is called after the field gains focus.
	OnEditingBegan()

	// ShouldEndEditing gates blur.
	ShouldEndEditing() bool

	// OnEditingEnded is called after the field loses focus.
	OnEditingEnded()

	// OnTextChanged is called when the search text changes.
	OnTextChanged(text string)

	// ShouldChangeText gates a pending range replacement.
	ShouldChangeText(r TextRange, replacement string) bool

	// OnSearchButtonClicked is called when the keyboard search button fires.
	OnSearchButtonClicked()

	// OnBookmarkButtonClicked is called when the bookmark button fires.
	OnBookmarkButtonClicked()

	// OnCancelButtonClicked is called when the cancel button fires.
	OnCancelButtonClicked()

	// OnResultsListButtonClicked is called when the results list button fires.
	OnResultsListButtonClicked()

	// OnScopeChanged is called when the selected scope button changes.
	OnScopeChanged(index int)
}

// SearchBarView is the platform view for the native search input control.
type SearchBarView struct {
	basePlatformView
	placeholder   string
	config        SearchBarViewConfig
	client        SearchBarViewClient
	text          string
	selectedScope int
	mu            sync.RWMutex
}

// NewSearchBarView creates a search bar platform view. The placeholder is
// the only construction-time parameter; everything else arrives via sync.
func NewSearchBarView(viewID int64, placeholder string) *SearchBarView {
	return &SearchBarView{
		basePlatformView: basePlatformView{
			viewID:   viewID,
			viewType: "search_bar",
		},
		placeholder: placeholder,
	}
}

// Create initializes the native view.
func (v *SearchBarView) Create(params map[string]any) error {
	return nil
}

// Dispose cleans up the native view.
func (v *SearchBarView) Dispose() {}

// Placeholder returns the construction-time placeholder.
func (v *SearchBarView) Placeholder() string {
	return v.placeholder
}

// SetClient sets the delegate client for this view.
func (v *SearchBarView) SetClient(client SearchBarViewClient) {
	v.mu.Lock()
	v.client = client
	v.mu.Unlock()
}

// Text returns the current search text.
func (v *SearchBarView) Text() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.text
}

// SelectedScope returns the current scope button index.
func (v *SearchBarView) SelectedScope() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selectedScope
}

// Config returns the last synced configuration.
func (v *SearchBarView) Config() SearchBarViewConfig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.config
}

// SetText pushes the search text from the Go side.
func (v *SearchBarView) SetText(text string) {
	v.mu.Lock()
	v.text = text
	v.mu.Unlock()

	GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "setText", map[string]any{
		"text": text,
	})
}

// SetSelectedScope pushes the selected scope button index from the Go side.
func (v *SearchBarView) SetSelectedScope(index int) {
	v.mu.Lock()
	v.selectedScope = index
	v.mu.Unlock()

	GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "setSelectedScope", map[string]any{
		"index": index,
	})
}

// UpdateConfig overwrites the native widget's entire mutable surface.
func (v *SearchBarView) UpdateConfig(config SearchBarViewConfig) {
	v.mu.Lock()
	v.config = config
	v.mu.Unlock()

	GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "updateConfig", config.payload())
}

// handleViewEvent routes one-way delegate events from native.
func (v *SearchBarView) handleViewEvent(event string, args map[string]any) {
	v.mu.RLock()
	client := v.client
	v.mu.RUnlock()

	switch event {
	case "onTextChanged":
		text, _ := args["text"].(string)
		v.mu.Lock()
		v.text = text
		v.mu.Unlock()
		if client != nil {
			client.OnTextChanged(text)
		}

	case "onScopeChanged":
		index, ok := toInt(args["index"])
		if !ok {
			return
		}
		v.mu.Lock()
		v.selectedScope = index
		v.mu.Unlock()
		if client != nil {
			client.OnScopeChanged(index)
		}

	case "onEditingBegan":
		if client != nil {
			client.OnEditingBegan()
		}

	case "onEditingEnded":
		if client != nil {
			client.OnEditingEnded()
		}

	case "onSearchButtonClicked":
		if client != nil {
			client.OnSearchButtonClicked()
		}

	case "onBookmarkButtonClicked":
		if client != nil {
			client.OnBookmarkButtonClicked()
		}

	case "onCancelButtonClicked":
		if client != nil {
			client.OnCancelButtonClicked()
		}

	case "onResultsListButtonClicked":
		if client != nil {
			client.OnResultsListButtonClicked()
		}
	}
}

// handleViewRequest answers synchronous delegate queries. The native widget
// blocks on the boolean result.
func (v *SearchBarView) handleViewRequest(request string, args map[string]any) (any, error) {
	v.mu.RLock()
	client := v.client
	v.mu.RUnlock()

	switch request {
	case "shouldBeginEditing":
		if client == nil {
			return true, nil
		}
		return client.ShouldBeginEditing(), nil

	case "shouldEndEditing":
		if client == nil {
			return true, nil
		}
		return client.ShouldEndEditing(), nil

	case "shouldChangeText":
		r, ok := translateNativeRange(args)
		if !ok {
			// Untranslatable range: deny the edit. The host predicate is
			// not consulted.
			return false, nil
		}
		replacement, _ := args["replacement"].(string)
		if client == nil {
			return true, nil
		}
		return client.ShouldChangeText(r, replacement), nil

	default:
		return nil, ErrMethodNotFound
	}
}

type searchBarViewFactory struct{}

func (searchBarViewFactory) ViewType() string {
	return "search_bar"
}

func (searchBarViewFactory) Create(viewID int64, params map[string]any) (PlatformView, error) {
	placeholder, _ := params["placeholder"].(string)
	return NewSearchBarView(viewID, placeholder), nil
}

func init() {
	GetPlatformViewRegistry().RegisterFactory(searchBarViewFactory{})
}
