// Package widgets provides declarative wrappers around native platform
// controls.
//
// Each widget is an immutable value: constructors set the parameters the
// native control can only receive at creation, and chained setters configure
// everything else, each returning a modified copy. Repeating a setter is
// allowed; the last write wins when the widget is synced:
//
//	view := widgets.NewSafariView(u).
//	    DismissButtonStyle(platform.DismissButtonStyleClose).
//	    DismissButtonStyle(platform.DismissButtonStyleCancel) // cancel wins
//
// # Construction vs. sync
//
// A widget's adapter is constructed once, when the widget is first mounted;
// the constructor parameters are frozen into the native control at that
// point. Every later sync overwrites the control's entire mutable surface
// from the widget's current values, so stale widget fields never linger on
// the native side.
//
// # Bindings
//
// Widgets that edit host state take a [core.Binding]. The widget reads the
// binding on every sync and writes native-originated edits back through it:
//
//	text := core.NewState("").Attach(owner)
//	bar := widgets.NewSearchBar("Search", text.Binding())
package widgets
