package core

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-cupertino/cupertino/pkg/errors"
)

// AdapterElement is the live instantiation of an AdapterWidget. It owns the
// adapter and keeps it in sync with the element's current widget value.
type AdapterElement struct {
	widget  AdapterWidget
	adapter Adapter
	owner   *BuildOwner
	mounted bool
	dirty   bool
}

// Widget returns the element's current widget value.
func (e *AdapterElement) Widget() AdapterWidget {
	return e.widget
}

// Adapter returns the element's adapter, or nil before mount / after unmount.
func (e *AdapterElement) Adapter() Adapter {
	return e.adapter
}

// Owner returns the BuildOwner managing this element.
func (e *AdapterElement) Owner() *BuildOwner {
	return e.owner
}

// IsMounted reports whether the element currently holds a live adapter.
func (e *AdapterElement) IsMounted() bool {
	return e.mounted
}

// MarkNeedsBuild schedules a re-sync of the adapter on the next frame.
func (e *AdapterElement) MarkNeedsBuild() {
	if e.dirty || !e.mounted {
		return
	}
	e.dirty = true
	if e.owner != nil {
		e.owner.scheduleSync(e)
	}
}

// mount constructs the adapter and runs the first sync. Construction
// parameters are consumed here; every later sync only touches the mutable
// surface.
func (e *AdapterElement) mount() error {
	adapter, err := e.widget.CreateAdapter(e)
	if err != nil {
		return fmt.Errorf("mount %s: %w", widgetName(e.widget), err)
	}
	e.adapter = adapter
	e.mounted = true

	if err := e.sync(); err != nil {
		e.unmount()
		return err
	}
	return nil
}

// Update replaces the element's widget value and syncs the adapter. The new
// widget must be the same adapter type as the old one; reconciling across
// types is the owner's job (unmount and remount).
func (e *AdapterElement) Update(widget AdapterWidget) error {
	if !e.mounted {
		return fmt.Errorf("update %s: element not mounted", widgetName(widget))
	}
	e.widget = widget
	return e.sync()
}

// sync overwrites the adapter's mutable surface from the current widget.
func (e *AdapterElement) sync() error {
	e.dirty = false

	var err error
	func() {
		defer errors.Recover(fmt.Sprintf("core.sync(%s)", widgetName(e.widget)))
		err = e.widget.UpdateAdapter(e.adapter)
	}()
	if err != nil {
		return fmt.Errorf("sync %s: %w", widgetName(e.widget), err)
	}
	return nil
}

func (e *AdapterElement) unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.dirty = false
	if e.adapter != nil {
		e.adapter.Dispose()
		e.adapter = nil
	}
}

func widgetName(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	return reflect.TypeOf(w).String()
}

// BuildOwner tracks mounted elements and the ones needing a re-sync.
type BuildOwner struct {
	roots []*AdapterElement
	dirty []*AdapterElement
	mu    sync.Mutex

	// OnNeedsFrame is called when an element is scheduled for re-sync,
	// signalling the platform that a frame should be rendered. Display
	// links stay paused until a frame is requested.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{}
}

// Mount constructs the adapter for a widget and registers the resulting
// element with this owner.
func (b *BuildOwner) Mount(widget AdapterWidget) (*AdapterElement, error) {
	element := &AdapterElement{widget: widget, owner: b}
	if err := element.mount(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.roots = append(b.roots, element)
	b.mu.Unlock()
	return element, nil
}

// Unmount disposes an element's adapter and forgets the element.
func (b *BuildOwner) Unmount(element *AdapterElement) {
	b.mu.Lock()
	for i, e := range b.roots {
		if e == element {
			b.roots = append(b.roots[:i], b.roots[i+1:]...)
			break
		}
	}
	for i, e := range b.dirty {
		if e == element {
			b.dirty = append(b.dirty[:i], b.dirty[i+1:]...)
			break
		}
	}
	b.mu.Unlock()

	element.unmount()
}

// scheduleSync marks an element as needing re-sync.
func (b *BuildOwner) scheduleSync(element *AdapterElement) {
	b.mu.Lock()
	already := false
	for _, e := range b.dirty {
		if e == element {
			already = true
			break
		}
	}
	if !already {
		b.dirty = append(b.dirty, element)
	}
	b.mu.Unlock()

	if !already && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// NeedsFrame reports whether any element is waiting for a re-sync.
func (b *BuildOwner) NeedsFrame() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.dirty) > 0
}

// RenderFrame re-syncs every dirty element. Sync errors are reported to the
// global error handler; one element failing does not starve the others.
func (b *BuildOwner) RenderFrame() {
	for {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			return
		}
		dirty := b.dirty
		b.dirty = nil
		b.mu.Unlock()

		for _, element := range dirty {
			if !element.mounted {
				continue
			}
			if err := element.sync(); err != nil {
				errors.Report(&errors.Error{
					Op:   "core.RenderFrame",
					Kind: errors.KindPlatform,
					Err:  err,
				})
			}
		}
	}
}
