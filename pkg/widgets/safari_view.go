package widgets

import (
	"fmt"
	"net/url"

	"github.com/go-cupertino/cupertino/pkg/core"
	"github.com/go-cupertino/cupertino/pkg/graphics"
	"github.com/go-cupertino/cupertino/pkg/platform"
)

// SafariView presents the native in-app browser for a single URL.
//
// The URL, reader mode, and bar collapsing flags are construction
// parameters: the native browser bakes them in at creation and they cannot
// change for the lifetime of the view. Everything else is appearance and is
// re-applied on every sync:
//
//	view := widgets.NewSafariView(u).
//	    BarCollapsingEnabled(true).
//	    PreferredControlTintColor(graphics.RGB(0x33, 0x66, 0xFF)).
//	    OnFinished(func() { ... })
type SafariView struct {
	url                     *url.URL
	entersReaderIfAvailable bool
	barCollapsingEnabled    bool

	preferredBarTintColor     graphics.Color
	preferredControlTintColor graphics.Color
	dismissButtonStyle        platform.DismissButtonStyle

	onInitialLoad func(ok bool)
	onFinished    func()

	key any
}

// NewSafariView creates a SafariView for the given URL.
func NewSafariView(u *url.URL) SafariView {
	return SafariView{url: u}
}

// Key implements core.Widget.
func (v SafariView) Key() any { return v.key }

// WithKey sets the widget's reconciliation key.
func (v SafariView) WithKey(key any) SafariView {
	v.key = key
	return v
}

// EntersReaderIfAvailable asks the browser to enter reader mode when the
// page supports it. Construction parameter: ignored after the first mount.
func (v SafariView) EntersReaderIfAvailable(enabled bool) SafariView {
	v.entersReaderIfAvailable = enabled
	return v
}

// BarCollapsingEnabled lets the browser collapse its bars on scroll.
// Construction parameter: ignored after the first mount.
func (v SafariView) BarCollapsingEnabled(enabled bool) SafariView {
	v.barCollapsingEnabled = enabled
	return v
}

// PreferredBarTintColor tints the browser's bar background. The zero color
// keeps the platform default.
func (v SafariView) PreferredBarTintColor(color graphics.Color) SafariView {
	v.preferredBarTintColor = color
	return v
}

// PreferredControlTintColor tints the browser's buttons. The zero color
// keeps the platform default.
func (v SafariView) PreferredControlTintColor(color graphics.Color) SafariView {
	v.preferredControlTintColor = color
	return v
}

// DismissButtonStyle selects the dismiss button label.
func (v SafariView) DismissButtonStyle(style platform.DismissButtonStyle) SafariView {
	v.dismissButtonStyle = style
	return v
}

// OnInitialLoad registers a callback for the first page load completing,
// with whether it succeeded.
func (v SafariView) OnInitialLoad(fn func(ok bool)) SafariView {
	v.onInitialLoad = fn
	return v
}

// OnFinished registers a callback for the user dismissing the browser.
func (v SafariView) OnFinished(fn func()) SafariView {
	v.onFinished = fn
	return v
}

// URL returns the construction-time URL.
func (v SafariView) URL() *url.URL { return v.url }

// CreateAdapter implements core.AdapterWidget. The construction parameters
// are consumed here; later setter values for them never reach native.
func (v SafariView) CreateAdapter(ctx core.BuildContext) (core.Adapter, error) {
	if v.url == nil {
		return nil, fmt.Errorf("SafariView: nil URL")
	}
	view, err := platform.GetPlatformViewRegistry().Create("safari_view", map[string]any{
		"url":                     v.url.String(),
		"entersReaderIfAvailable": v.entersReaderIfAvailable,
		"barCollapsingEnabled":    v.barCollapsingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("SafariView: %w", err)
	}
	browser, ok := view.(*platform.BrowserView)
	if !ok {
		platform.GetPlatformViewRegistry().Dispose(view.ViewID())
		return nil, fmt.Errorf("SafariView: unexpected platform view %T", view)
	}
	return &safariAdapter{view: browser}, nil
}

// UpdateAdapter implements core.AdapterWidget: callbacks and the full
// appearance surface are overwritten from the widget's current values.
func (v SafariView) UpdateAdapter(adapter core.Adapter) error {
	a, ok := adapter.(*safariAdapter)
	if !ok {
		return fmt.Errorf("SafariView: unexpected adapter %T", adapter)
	}
	a.view.OnInitialLoad = v.onInitialLoad
	a.view.OnFinished = v.onFinished
	a.view.SetAppearance(platform.BrowserAppearance{
		PreferredBarTintColor:     v.preferredBarTintColor,
		PreferredControlTintColor: v.preferredControlTintColor,
		DismissButtonStyle:        v.dismissButtonStyle,
	})
	return nil
}

type safariAdapter struct {
	view *platform.BrowserView
}

// View returns the underlying browser platform view.
func (a *safariAdapter) View() *platform.BrowserView { return a.view }

func (a *safariAdapter) Dispose() {
	platform.GetPlatformViewRegistry().Dispose(a.view.ViewID())
}
