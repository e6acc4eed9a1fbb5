package widgets

import (
	"sync"

	"github.com/go-cupertino/cupertino/pkg/platform"
)

// searchBarBridge forwards native delegate callbacks to the widget's
// handlers. It holds no state of its own beyond the current widget
// snapshot: every callback reads the snapshot, writes the relevant binding,
// and invokes the matching handler. The snapshot is replaced wholesale on
// every sync.
type searchBarBridge struct {
	mu     sync.RWMutex
	widget SearchBar
}

var _ platform.SearchBarViewClient = (*searchBarBridge)(nil)

func (b *searchBarBridge) setWidget(w SearchBar) {
	b.mu.Lock()
	b.widget = w
	b.mu.Unlock()
}

func (b *searchBarBridge) snapshot() SearchBar {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.widget
}

func (b *searchBarBridge) ShouldBeginEditing() bool {
	w := b.snapshot()
	if w.shouldBeginEditing == nil {
		return true
	}
	return w.shouldBeginEditing()
}

func (b *searchBarBridge) OnEditingBegan() {
	w := b.snapshot()
	if w.onEditingBegan != nil {
		w.onEditingBegan()
	}
	if w.onEditingChanged != nil {
		w.onEditingChanged(true)
	}
}

func (b *searchBarBridge) ShouldEndEditing() bool {
	w := b.snapshot()
	if w.shouldEndEditing == nil {
		return true
	}
	return w.shouldEndEditing()
}

func (b *searchBarBridge) OnEditingEnded() {
	w := b.snapshot()
	if w.onEditingEnded != nil {
		w.onEditingEnded()
	}
	if w.onEditingChanged != nil {
		w.onEditingChanged(false)
	}
}

func (b *searchBarBridge) OnTextChanged(text string) {
	w := b.snapshot()
	w.text.Write(text)
	if w.onTextChanged != nil {
		w.onTextChanged(text)
	}
}

func (b *searchBarBridge) ShouldChangeText(r platform.TextRange, replacement string) bool {
	w := b.snapshot()
	if w.shouldChangeText == nil {
		return true
	}
	return w.shouldChangeText(r, replacement)
}

func (b *searchBarBridge) OnSearchButtonClicked() {
	if fn := b.snapshot().onSearchButtonClicked; fn != nil {
		fn()
	}
}

func (b *searchBarBridge) OnBookmarkButtonClicked() {
	if fn := b.snapshot().onBookmarkButtonClicked; fn != nil {
		fn()
	}
}

func (b *searchBarBridge) OnCancelButtonClicked() {
	if fn := b.snapshot().onCancelButtonClicked; fn != nil {
		fn()
	}
}

func (b *searchBarBridge) OnResultsListButtonClicked() {
	if fn := b.snapshot().onResultsListButtonClicked; fn != nil {
		fn()
	}
}

func (b *searchBarBridge) OnScopeChanged(index int) {
	w := b.snapshot()
	w.selectedScope.Write(index)
	if w.onScopeChanged != nil {
		w.onScopeChanged(index)
	}
}
