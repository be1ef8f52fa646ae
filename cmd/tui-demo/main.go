// Package main runs the journal shell against in-memory preferences and sample entries.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Veraticus/lumen/internal/mode"
	"github.com/Veraticus/lumen/internal/storage"
	"github.com/Veraticus/lumen/internal/tui"
	"github.com/Veraticus/lumen/internal/tui/themes"
)

func main() {
	ctx := context.Background()

	doc := themes.NewDocument()
	store := mode.NewStore(ctx, storage.NewMemoryStorage(), doc)

	err := tui.Run(mode.WithStore(ctx, store),
		tui.WithDocument(doc),
		tui.WithEntries(tui.DemoEntries(time.Now())),
		tui.WithLocations(tui.DemoLocation(time.Now)),
		tui.WithSize(120, 40),
		tui.WithHelp(true),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
