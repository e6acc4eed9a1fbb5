// Package main provides the Cupertino demo application.
// It demonstrates idiomatic patterns for wrapping native platform controls.
package main

import (
	"log"

	"github.com/go-cupertino/cupertino/pkg/cupertino"
	"github.com/go-cupertino/cupertino/pkg/platform"
)

// App returns the demo application. A native scaffold embeds it by
// registering its dispatch function and passing its bridge:
//
//	platform.RegisterDispatch(hostDispatch)
//	app := App()
//	if err := app.Start(hostBridge); err != nil { ... }
func App() *cupertino.App {
	return cupertino.NewApp(buildSearchDemo())
}

func main() {
	// The showcase has no native scaffold of its own; it exists to be
	// embedded. Running it directly just reports the requirement.
	log.Printf("cupertino showcase: embed App() in a native scaffold (min bridge %s)", platform.MinNativeVersion)
}
