// Command sitesmith runs the site generation and hosting service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dalemusser/waffle/app"

	"github.com/sitesmith/sitesmith/internal/app/bootstrap"
)

func main() {
	// app.Run drives the full lifecycle: config loading, MongoDB
	// connection, index/seed setup, HTTP serving, and graceful shutdown.
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		fmt.Fprintln(os.Stderr, "sitesmith:", err)
		os.Exit(1)
	}
}
