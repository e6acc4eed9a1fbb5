package core

// Widget is an immutable description of part of the UI. Widgets are value
// types: configuring one returns a modified copy, never mutates in place.
type Widget interface {
	// Key identifies the widget across rebuilds. Nil means identity is
	// positional.
	Key() any
}

// Adapter owns the live native resources behind a mounted AdapterWidget.
type Adapter interface {
	// Dispose releases the native resources. Called exactly once, when the
	// element unmounts.
	Dispose()
}

// AdapterWidget is a widget backed by a native control.
//
// CreateAdapter runs once per mount and receives the construction-time
// parameters; whatever it snapshots there is frozen for the adapter's
// lifetime. UpdateAdapter runs on every sync and must overwrite the
// adapter's entire mutable surface from the widget's current values.
type AdapterWidget interface {
	Widget

	// CreateAdapter constructs the native control for this widget.
	CreateAdapter(ctx BuildContext) (Adapter, error)

	// UpdateAdapter pushes this widget's mutable configuration onto an
	// adapter previously created by a widget of the same type.
	UpdateAdapter(adapter Adapter) error
}

// BuildContext carries the framework services available while a widget is
// being mounted or synced.
type BuildContext interface {
	// Owner returns the BuildOwner managing this part of the tree.
	Owner() *BuildOwner
}

// Disposable is anything holding resources that must be released explicitly.
type Disposable interface {
	Dispose()
}
