//go:build js || wasm
// +build js wasm

package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/vcrobe/cafelist/api"
	"github.com/vcrobe/cafelist/cafelist"
	"github.com/vcrobe/cafelist/config"
	"github.com/vcrobe/cafelist/console"
	"github.com/vcrobe/cafelist/dialogs"
	"github.com/vcrobe/cafelist/dom"
)

func main() {
	// 1. Embedded defaults; the page has no config file or environment
	cfg := config.Default()

	level, err := cfg.Logging.ZapLevel()
	if err != nil {
		console.Warn("Invalid log level, using info: ", err.Error())
	}
	logger := console.NewLogger(level)

	// 2. Backend client over the browser's fetch (net/http in WASM)
	cafes := api.New(cfg.API.BaseURL, http.DefaultClient, api.WithLogger(logger))

	// 3. The page itself and window.alert
	doc := dom.NewBrowser()

	client := cafelist.New(doc, dialogs.Browser{}, cafes,
		cafelist.WithConfig(cfg),
		cafelist.WithLogger(logger),
	)

	// 4. Bind once the markup is parsed; the loader may run us earlier
	doc.OnReady(func() {
		if err := client.Initialize(context.Background()); err != nil {
			logger.Error("cafe list failed to start", zap.Error(err))
			panic("Error starting cafe list: " + err.Error())
		}
	})

	// Keep the Go program running
	select {}
}
