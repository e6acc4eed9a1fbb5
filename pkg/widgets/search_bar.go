package widgets

import (
	"fmt"

	"github.com/go-cupertino/cupertino/pkg/core"
	"github.com/go-cupertino/cupertino/pkg/graphics"
	"github.com/go-cupertino/cupertino/pkg/platform"
)

// SearchBar wraps the native search input control.
//
// The placeholder is the only construction parameter. The search text lives
// in host state through a [core.Binding]: the widget pushes the bound value
// to native on every sync and writes user edits straight back. All other
// options are chained setters on the mutable surface:
//
//	bar := widgets.NewSearchBar("Search", text.Binding()).
//	    ShowsCancelButton(true).
//	    ScopeButtonTitles("All", "Titles").
//	    OnSearchButtonClicked(runQuery)
type SearchBar struct {
	placeholder string
	text        core.Binding[string]

	selectedScope core.Binding[int]

	barStyle                      platform.BarStyle
	prompt                        string
	showsBookmarkButton           bool
	showsCancelButton             bool
	showsSearchResultsButton      bool
	isSearchResultsButtonSelected bool
	barTintColor                  graphics.Color
	style                         platform.SearchBarStyle
	isTranslucent                 bool
	scopeButtonTitles             []string
	showsScopeBar                 bool
	inputAccessory                *Accessory
	backgroundImage               *graphics.ImageRef
	scopeBarBackgroundImage       *graphics.ImageRef
	searchFieldBackgroundAdjust   graphics.Offset
	searchTextAdjust              graphics.Offset

	shouldBeginEditing         func() bool
	onEditingBegan             func()
	shouldEndEditing           func() bool
	onEditingEnded             func()
	onEditingChanged           func(editing bool)
	onTextChanged              func(text string)
	shouldChangeText           func(r platform.TextRange, replacement string) bool
	onSearchButtonClicked      func()
	onBookmarkButtonClicked    func()
	onCancelButtonClicked      func()
	onResultsListButtonClicked func()
	onScopeChanged             func(index int)

	key any
}

// NewSearchBar creates a SearchBar with a placeholder and a two-way text
// binding. The bar is translucent by default, matching the native control.
func NewSearchBar(placeholder string, text core.Binding[string]) SearchBar {
	return SearchBar{
		placeholder:   placeholder,
		text:          text,
		isTranslucent: true,
	}
}

// Key implements core.Widget.
func (w SearchBar) Key() any { return w.key }

// WithKey sets the widget's reconciliation key.
func (w SearchBar) WithKey(key any) SearchBar {
	w.key = key
	return w
}

// SelectedScope binds the selected scope button index.
func (w SearchBar) SelectedScope(scope core.Binding[int]) SearchBar {
	w.selectedScope = scope
	return w
}

// BarStyle sets the overall chrome of the bar.
func (w SearchBar) BarStyle(style platform.BarStyle) SearchBar {
	w.barStyle = style
	return w
}

// Prompt sets the line of text shown above the search field. The empty
// string removes it.
func (w SearchBar) Prompt(prompt string) SearchBar {
	w.prompt = prompt
	return w
}

// ShowsBookmarkButton toggles the bookmark button in the field.
func (w SearchBar) ShowsBookmarkButton(shows bool) SearchBar {
	w.showsBookmarkButton = shows
	return w
}

// ShowsCancelButton toggles the cancel button next to the field.
func (w SearchBar) ShowsCancelButton(shows bool) SearchBar {
	w.showsCancelButton = shows
	return w
}

// ShowsSearchResultsButton toggles the results list button.
func (w SearchBar) ShowsSearchResultsButton(shows bool) SearchBar {
	w.showsSearchResultsButton = shows
	return w
}

// SearchResultsButtonSelected sets the results list button's selected state.
func (w SearchBar) SearchResultsButtonSelected(selected bool) SearchBar {
	w.isSearchResultsButtonSelected = selected
	return w
}

// BarTintColor tints the bar background. The zero color keeps the platform
// default.
func (w SearchBar) BarTintColor(color graphics.Color) SearchBar {
	w.barTintColor = color
	return w
}

// Style sets the search field treatment.
func (w SearchBar) Style(style platform.SearchBarStyle) SearchBar {
	w.style = style
	return w
}

// Translucent toggles bar translucency.
func (w SearchBar) Translucent(translucent bool) SearchBar {
	w.isTranslucent = translucent
	return w
}

// ScopeButtonTitles sets the scope buttons shown under the field.
func (w SearchBar) ScopeButtonTitles(titles ...string) SearchBar {
	w.scopeButtonTitles = titles
	return w
}

// ShowsScopeBar toggles the scope bar.
func (w SearchBar) ShowsScopeBar(shows bool) SearchBar {
	w.showsScopeBar = shows
	return w
}

// InputAccessory attaches an accessory shown above the keyboard while the
// field is editing. Nil removes it.
func (w SearchBar) InputAccessory(accessory *Accessory) SearchBar {
	w.inputAccessory = accessory
	return w
}

// BackgroundImage sets the bar's background image. Nil keeps the platform
// default.
func (w SearchBar) BackgroundImage(img *graphics.ImageRef) SearchBar {
	w.backgroundImage = img
	return w
}

// ScopeBarBackgroundImage sets the scope bar's background image.
func (w SearchBar) ScopeBarBackgroundImage(img *graphics.ImageRef) SearchBar {
	w.scopeBarBackgroundImage = img
	return w
}

// SearchFieldBackgroundPositionAdjustment offsets the field background.
func (w SearchBar) SearchFieldBackgroundPositionAdjustment(offset graphics.Offset) SearchBar {
	w.searchFieldBackgroundAdjust = offset
	return w
}

// SearchTextPositionAdjustment offsets the text within the field.
func (w SearchBar) SearchTextPositionAdjustment(offset graphics.Offset) SearchBar {
	w.searchTextAdjust = offset
	return w
}

// ShouldBeginEditing gates focus. Nil allows.
func (w SearchBar) ShouldBeginEditing(fn func() bool) SearchBar {
	w.shouldBeginEditing = fn
	return w
}

// OnEditingBegan registers a callback for the field gaining focus.
func (w SearchBar) OnEditingBegan(fn func()) SearchBar {
	w.onEditingBegan = fn
	return w
}

// ShouldEndEditing gates blur. Nil allows.
func (w SearchBar) ShouldEndEditing(fn func() bool) SearchBar {
	w.shouldEndEditing = fn
	return w
}

// OnEditingEnded registers a callback for the field losing focus.
func (w SearchBar) OnEditingEnded(fn func()) SearchBar {
	w.onEditingEnded = fn
	return w
}

// OnEditingChanged registers a callback for the editing phase: true when
// the field gains focus, false when it loses it. Runs in addition to
// OnEditingBegan and OnEditingEnded.
func (w SearchBar) OnEditingChanged(fn func(editing bool)) SearchBar {
	w.onEditingChanged = fn
	return w
}

// OnTextChanged registers a callback for the text changing. The text
// binding is written before the callback runs.
func (w SearchBar) OnTextChanged(fn func(text string)) SearchBar {
	w.onTextChanged = fn
	return w
}

// ShouldChangeText gates a pending range replacement. Nil allows. The edit
// is denied outright, without consulting the predicate, when the native
// range does not translate.
func (w SearchBar) ShouldChangeText(fn func(r platform.TextRange, replacement string) bool) SearchBar {
	w.shouldChangeText = fn
	return w
}

// OnSearchButtonClicked registers a callback for the keyboard search button.
func (w SearchBar) OnSearchButtonClicked(fn func()) SearchBar {
	w.onSearchButtonClicked = fn
	return w
}

// OnBookmarkButtonClicked registers a callback for the bookmark button.
func (w SearchBar) OnBookmarkButtonClicked(fn func()) SearchBar {
	w.onBookmarkButtonClicked = fn
	return w
}

// OnCancelButtonClicked registers a callback for the cancel button.
func (w SearchBar) OnCancelButtonClicked(fn func()) SearchBar {
	w.onCancelButtonClicked = fn
	return w
}

// OnResultsListButtonClicked registers a callback for the results list
// button.
func (w SearchBar) OnResultsListButtonClicked(fn func()) SearchBar {
	w.onResultsListButtonClicked = fn
	return w
}

// OnScopeChanged registers a callback for the scope selection changing. The
// scope binding, if set, is written before the callback runs.
func (w SearchBar) OnScopeChanged(fn func(index int)) SearchBar {
	w.onScopeChanged = fn
	return w
}

// Placeholder returns the construction-time placeholder.
func (w SearchBar) Placeholder() string { return w.placeholder }

// config assembles the full mutable surface for a sync.
func (w SearchBar) config() platform.SearchBarViewConfig {
	var accessory any
	if w.inputAccessory != nil {
		accessory = w.inputAccessory.payload()
	}
	return platform.SearchBarViewConfig{
		BarStyle:                      w.barStyle,
		Prompt:                        w.prompt,
		ShowsBookmarkButton:           w.showsBookmarkButton,
		ShowsCancelButton:             w.showsCancelButton,
		ShowsSearchResultsButton:      w.showsSearchResultsButton,
		IsSearchResultsButtonSelected: w.isSearchResultsButtonSelected,
		BarTintColor:                  w.barTintColor,
		Style:                         w.style,
		IsTranslucent:                 w.isTranslucent,
		ScopeButtonTitles:             w.scopeButtonTitles,
		ShowsScopeBar:                 w.showsScopeBar,
		InputAccessory:                accessory,
		BackgroundImage:               w.backgroundImage,
		ScopeBarBackgroundImage:       w.scopeBarBackgroundImage,

		SearchFieldBackgroundPositionAdjustment: w.searchFieldBackgroundAdjust,
		SearchTextPositionAdjustment:            w.searchTextAdjust,
	}
}

// CreateAdapter implements core.AdapterWidget.
func (w SearchBar) CreateAdapter(ctx core.BuildContext) (core.Adapter, error) {
	view, err := platform.GetPlatformViewRegistry().Create("search_bar", map[string]any{
		"placeholder": w.placeholder,
	})
	if err != nil {
		return nil, fmt.Errorf("SearchBar: %w", err)
	}
	bar, ok := view.(*platform.SearchBarView)
	if !ok {
		platform.GetPlatformViewRegistry().Dispose(view.ViewID())
		return nil, fmt.Errorf("SearchBar: unexpected platform view %T", view)
	}
	bridge := &searchBarBridge{}
	bar.SetClient(bridge)
	return &searchBarAdapter{view: bar, bridge: bridge}, nil
}

// UpdateAdapter implements core.AdapterWidget. The delegate bridge snapshot
// is refreshed first so events arriving mid-sync see the new widget, then
// the entire mutable surface and both bindings are pushed to native.
func (w SearchBar) UpdateAdapter(adapter core.Adapter) error {
	a, ok := adapter.(*searchBarAdapter)
	if !ok {
		return fmt.Errorf("SearchBar: unexpected adapter %T", adapter)
	}
	a.bridge.setWidget(w)

	a.view.UpdateConfig(w.config())

	if w.text.IsReadable() {
		if text := w.text.Read(); text != a.view.Text() {
			a.view.SetText(text)
		}
	}
	if w.selectedScope.IsReadable() {
		if scope := w.selectedScope.Read(); scope != a.view.SelectedScope() {
			a.view.SetSelectedScope(scope)
		}
	}
	return nil
}

type searchBarAdapter struct {
	view   *platform.SearchBarView
	bridge *searchBarBridge
}

// View returns the underlying search bar platform view.
func (a *searchBarAdapter) View() *platform.SearchBarView { return a.view }

func (a *searchBarAdapter) Dispose() {
	platform.GetPlatformViewRegistry().Dispose(a.view.ViewID())
}
