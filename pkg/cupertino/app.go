// Package cupertino ties the widget framework to a connected native bridge.
//
// A host embeds the framework by connecting its bridge and starting an App:
//
//	app := cupertino.NewApp(rootWidget)
//	if err := app.Start(bridge); err != nil {
//	    log.Fatal(err)
//	}
//
// Frames are rendered on demand: widgets schedule one when their state
// changes, and the app drains the dirty list on the UI thread.
package cupertino

import (
	"fmt"

	"github.com/go-cupertino/cupertino/pkg/core"
	"github.com/go-cupertino/cupertino/pkg/platform"
)

// App runs a root widget against a native bridge.
type App struct {
	// Root is mounted when the app starts.
	Root core.AdapterWidget

	owner   *core.BuildOwner
	element *core.AdapterElement
	info    platform.BridgeInfo
}

// NewApp creates an app with the given root widget.
func NewApp(root core.AdapterWidget) *App {
	return &App{Root: root}
}

// Owner returns the app's BuildOwner. Valid after Start.
func (a *App) Owner() *core.BuildOwner {
	return a.owner
}

// BridgeInfo returns the connected scaffold's identity. Valid after Start.
func (a *App) BridgeInfo() platform.BridgeInfo {
	return a.info
}

// Start connects the bridge, performs the version handshake, and mounts the
// root widget. Frame renders are scheduled on the UI thread through the
// host's registered dispatch function.
func (a *App) Start(bridge platform.NativeBridge) error {
	if a.Root == nil {
		return fmt.Errorf("cupertino: app has no root widget")
	}

	info, err := platform.ConnectBridge(bridge)
	if err != nil {
		return err
	}
	a.info = info

	owner := core.NewBuildOwner()
	owner.OnNeedsFrame = func() {
		platform.Dispatch(owner.RenderFrame)
	}

	element, err := owner.Mount(a.Root)
	if err != nil {
		platform.SetNativeBridge(nil)
		return err
	}
	a.owner = owner
	a.element = element
	return nil
}

// Update replaces the root widget value and syncs its adapter.
func (a *App) Update(root core.AdapterWidget) error {
	if a.element == nil {
		return fmt.Errorf("cupertino: app not started")
	}
	a.Root = root
	return a.element.Update(root)
}

// Stop unmounts the root widget and disconnects the bridge.
func (a *App) Stop() {
	if a.element != nil {
		a.owner.Unmount(a.element)
		a.element = nil
	}
	platform.SetNativeBridge(nil)
}

// Dispatch schedules a callback on the UI thread. Use it to touch widget
// state from background goroutines.
func Dispatch(callback func()) bool {
	return platform.Dispatch(callback)
}
