// Package core provides the widget and adapter framework interfaces and lifecycle.
//
// This package defines the foundational types for describing native UI
// declaratively: Widget, AdapterWidget, Adapter, and BuildOwner. Widgets are
// immutable value descriptions of what the UI should look like; adapters own
// the live native resources and are kept in sync with the current widget
// value on every frame.
//
// # Widgets and Adapters
//
// A Widget is a lightweight configuration value. Widgets that wrap a native
// control implement AdapterWidget: CreateAdapter runs exactly once, when the
// widget is first mounted, and receives the construction-time parameters;
// UpdateAdapter runs on every subsequent sync and overwrites the adapter's
// entire mutable surface with the widget's current values. There is no
// diffing: the widget value is the source of truth and the adapter is
// written through wholesale.
//
// # Bindings
//
// Binding connects a widget field to host-owned state in both directions.
// State is a convenience owner for such a value that schedules a frame when
// written:
//
//	text := core.NewState("")
//	bar := widgets.NewSearchBar("Search", text.Binding())
//
// # Constructor Conventions
//
// Long-lived mutable objects (BuildOwner, State) use NewX() constructors
// returning pointers. Widgets are plain values built with constructors and
// chained setters, each setter returning a modified copy.
package core
