package main

import (
	"log"

	"github.com/go-cupertino/cupertino/pkg/core"
	"github.com/go-cupertino/cupertino/pkg/style"
	"github.com/go-cupertino/cupertino/pkg/widgets"
)

// demoStyles is the preset sheet shared by the demo pages.
const demoStyles = `
safariViews:
  article:
    entersReaderIfAvailable: true
    barCollapsingEnabled: true
    preferredControlTintColor: "#3366FF"
    dismissButtonStyle: close
searchBars:
  library:
    prompt: Search the library
    searchBarStyle: minimal
    showsCancelButton: true
    scopeButtonTitles: [All, Titles, Authors]
    showsScopeBar: true
`

var searchText = core.NewState("")
var searchScope = core.NewState(0)

// buildSearchDemo wires a search bar whose search button opens the typed
// URL in the in-app browser.
func buildSearchDemo() widgets.SearchBar {
	sheet, err := style.Parse([]byte(demoStyles))
	if err != nil {
		log.Fatalf("demo styles: %v", err)
	}
	preset, err := sheet.SearchBar("library")
	if err != nil {
		log.Fatalf("demo styles: %v", err)
	}

	return preset.Apply(widgets.NewSearchBar("Search", searchText.Binding())).
		SelectedScope(searchScope.Binding()).
		InputAccessory(widgets.AccessoryOf(
			widgets.AccessoryItem{Kind: widgets.AccessoryFlexibleSpace},
			widgets.AccessoryItem{Kind: widgets.AccessoryDismissButton, Title: "Done"},
		)).
		OnSearchButtonClicked(func() {
			openArticle(searchText.Get())
		}).
		OnScopeChanged(func(index int) {
			log.Printf("scope changed to %d", index)
		})
}
