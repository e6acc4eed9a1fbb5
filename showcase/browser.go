package main

import (
	"log"
	"net/url"

	"github.com/go-cupertino/cupertino/pkg/core"
	"github.com/go-cupertino/cupertino/pkg/platform"
	"github.com/go-cupertino/cupertino/pkg/style"
	"github.com/go-cupertino/cupertino/pkg/widgets"
)

var browserOwner = core.NewBuildOwner()

// openArticle mounts an in-app browser for the query. The browser is a
// modal native surface: it dismisses itself and we unmount on the
// finish callback.
func openArticle(query string) {
	u, err := url.Parse("https://example.com/search")
	if err != nil {
		log.Printf("open article: %v", err)
		return
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	sheet, err := style.Parse([]byte(demoStyles))
	if err != nil {
		log.Printf("open article: %v", err)
		return
	}
	preset, err := sheet.SafariView("article")
	if err != nil {
		log.Printf("open article: %v", err)
		return
	}

	var element *core.AdapterElement
	view := preset.Apply(widgets.NewSafariView(u)).
		DismissButtonStyle(platform.DismissButtonStyleDone).
		OnInitialLoad(func(ok bool) {
			if !ok {
				log.Printf("article failed to load: %s", u)
			}
		}).
		OnFinished(func() {
			if element != nil {
				browserOwner.Unmount(element)
				element = nil
			}
		})

	element, err = browserOwner.Mount(view)
	if err != nil {
		log.Printf("open article: %v", err)
	}
}
