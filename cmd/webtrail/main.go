// webtrail is the browser build of the bike trail. It runs the graphical
// front end alone, so it also works as a plain desktop binary:
//
//	GOOS=js GOARCH=wasm go build -o web/biketrail.wasm ./cmd/webtrail
//	go run ./cmd/webtrail
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/biketrail/internal/core"
	"github.com/vovakirdan/biketrail/internal/platform/gfx"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "webtrail",
	})

	cfg := core.DefaultConfig()
	cfg.Seed = time.Now().UnixNano()

	if err := gfx.Run(gfx.Options{Runtime: cfg, Logger: logger}); err != nil {
		logger.Error("window closed with error", "error", err)
		os.Exit(1)
	}
}
