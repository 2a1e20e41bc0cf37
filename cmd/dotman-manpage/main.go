// Command dotman-manpage generates man pages. With a directory argument it
// writes one page per command, otherwise the root page goes to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotman/cmd/dotman"
	"github.com/arthur-debert/dotman/internal/version"
	"github.com/spf13/cobra/doc"
)

func main() {
	rootCmd := dotman.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTMAN",
		Section: "1",
		Source:  "dotman " + version.Version,
		Manual:  "dotman manual",
	}

	var err error
	if len(os.Args) > 1 {
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
