package main

import (
	"os"

	"github.com/arthur-debert/dotman/cmd/dotman"
	"github.com/arthur-debert/dotman/pkg/ui"
)

func main() {
	rootCmd := dotman.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		r, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr == nil {
			_ = r.RenderError(err)
		}
		os.Exit(1)
	}
}
