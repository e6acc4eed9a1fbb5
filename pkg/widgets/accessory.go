package widgets

// AccessoryItemKind enumerates the items an input accessory bar can carry.
type AccessoryItemKind int

const (
	// AccessoryFlexibleSpace pushes the following items to the trailing edge.
	AccessoryFlexibleSpace AccessoryItemKind = iota

	// AccessoryLabel shows a static text label.
	AccessoryLabel

	// AccessoryDismissButton dismisses the keyboard when tapped. The native
	// side handles the tap; no event crosses the bridge.
	AccessoryDismissButton
)

func (k AccessoryItemKind) String() string {
	switch k {
	case AccessoryLabel:
		return "label"
	case AccessoryDismissButton:
		return "dismiss"
	default:
		return "flexibleSpace"
	}
}

// AccessoryItem is one entry in an input accessory bar.
type AccessoryItem struct {
	Kind  AccessoryItemKind
	Title string // used by label and dismiss items
}

// Accessory describes a toolbar shown above the keyboard while a wrapped
// input is editing. It is serialized wholesale to the native side on every
// sync.
type Accessory struct {
	items []AccessoryItem
}

// AccessoryOf builds an accessory bar from items:
//
//	widgets.AccessoryOf(
//	    widgets.AccessoryItem{Kind: widgets.AccessoryFlexibleSpace},
//	    widgets.AccessoryItem{Kind: widgets.AccessoryDismissButton, Title: "Done"},
//	)
func AccessoryOf(items ...AccessoryItem) *Accessory {
	return &Accessory{items: items}
}

// Items returns the accessory's items.
func (a *Accessory) Items() []AccessoryItem {
	if a == nil {
		return nil
	}
	return a.items
}

// payload serializes the accessory for transport.
func (a *Accessory) payload() map[string]any {
	if a == nil {
		return nil
	}
	items := make([]any, 0, len(a.items))
	for _, item := range a.items {
		items = append(items, map[string]any{
			"kind":  item.Kind.String(),
			"title": item.Title,
		})
	}
	return map[string]any{"items": items}
}
