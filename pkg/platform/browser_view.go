package platform

import (
	"sync"

	"github.com/go-cupertino/cupertino/pkg/graphics"
)

// DismissButtonStyle selects the label of the in-app browser's dismiss button.
type DismissButtonStyle int

const (
	DismissButtonStyleDone DismissButtonStyle = iota
	DismissButtonStyleClose
	DismissButtonStyleCancel
)

func (s DismissButtonStyle) String() string {
	switch s {
	case DismissButtonStyleClose:
		return "close"
	case DismissButtonStyleCancel:
		return "cancel"
	default:
		return "done"
	}
}

// BrowserConfiguration holds the construction-time parameters of the native
// in-app browser. The native widget bakes these into its configuration object
// at creation: they cannot change for the lifetime of the view, which is a
// capability limit of the wrapped browser rather than a framework choice.
type BrowserConfiguration struct {
	URL                     string
	EntersReaderIfAvailable bool
	BarCollapsingEnabled    bool
}

// BrowserAppearance holds the live-mutable surface of the native browser.
// A zero color means no tint preference.
type BrowserAppearance struct {
	PreferredBarTintColor     graphics.Color
	PreferredControlTintColor graphics.Color
	DismissButtonStyle        DismissButtonStyle
}

// BrowserView is the platform view for the native in-app web browser.
type BrowserView struct {
	basePlatformView
	config     BrowserConfiguration
	appearance BrowserAppearance
	mu         sync.RWMutex

	// OnInitialLoad is called when the first page load completes, with
	// whether it succeeded. Called on the UI thread via [Dispatch].
	OnInitialLoad func(ok bool)

	// OnFinished is called when the user dismisses the browser.
	// Called on the UI thread via [Dispatch].
	OnFinished func()
}

// NewBrowserView creates a browser platform view with its frozen
// construction snapshot.
func NewBrowserView(viewID int64, config BrowserConfiguration) *BrowserView {
	return &BrowserView{
		basePlatformView: basePlatformView{
			viewID:   viewID,
			viewType: "safari_view",
		},
		config: config,
	}
}

// Create initializes the native view.
func (v *BrowserView) Create(params map[string]any) error {
	return nil
}

// Dispose cleans up the native view.
func (v *BrowserView) Dispose() {}

// Configuration returns the frozen construction snapshot.
func (v *BrowserView) Configuration() BrowserConfiguration {
	return v.config
}

// Appearance returns the last synced appearance.
func (v *BrowserView) Appearance() BrowserAppearance {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.appearance
}

// SetAppearance overwrites the browser's mutable surface. This is the sole
// write path to the native widget's appearance; construction-time fields are
// deliberately absent from the payload.
func (v *BrowserView) SetAppearance(a BrowserAppearance) {
	v.mu.Lock()
	v.appearance = a
	v.mu.Unlock()

	GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "setAppearance", map[string]any{
		"preferredBarTintColor":     uint32(a.PreferredBarTintColor),
		"preferredControlTintColor": uint32(a.PreferredControlTintColor),
		"dismissButtonStyle":        a.DismissButtonStyle.String(),
	})
}

// handleViewEvent routes native browser delegate events.
func (v *BrowserView) handleViewEvent(event string, args map[string]any) {
	switch event {
	case "onInitialLoad":
		ok, _ := args["ok"].(bool)
		v.dispatchInitialLoad(ok)
	case "onFinished":
		v.dispatchFinished()
	}
}

func (v *BrowserView) dispatchInitialLoad(ok bool) {
	v.mu.RLock()
	cb := v.OnInitialLoad
	v.mu.RUnlock()

	if cb != nil {
		Dispatch(func() {
			cb(ok)
		})
	}
}

func (v *BrowserView) dispatchFinished() {
	v.mu.RLock()
	cb := v.OnFinished
	v.mu.RUnlock()

	if cb != nil {
		Dispatch(cb)
	}
}

type browserViewFactory struct{}

func (browserViewFactory) ViewType() string {
	return "safari_view"
}

func (browserViewFactory) Create(viewID int64, params map[string]any) (PlatformView, error) {
	config := BrowserConfiguration{}
	if v, ok := params["url"].(string); ok {
		config.URL = v
	}
	if v, ok := params["entersReaderIfAvailable"].(bool); ok {
		config.EntersReaderIfAvailable = v
	}
	if v, ok := params["barCollapsingEnabled"].(bool); ok {
		config.BarCollapsingEnabled = v
	}
	return NewBrowserView(viewID, config), nil
}

func init() {
	GetPlatformViewRegistry().RegisterFactory(browserViewFactory{})
}
