// Command dotman-completions writes the shell completion scripts shipped
// with release archives into a directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotman/cmd/dotman"
	"github.com/spf13/cobra"
)

var scripts = []struct {
	file string
	gen  func(*cobra.Command, io.Writer) error
}{
	{"dotman.bash", func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) }},
	{"_dotman", func(c *cobra.Command, w io.Writer) error { return c.GenZshCompletion(w) }},
	{"dotman.fish", func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) }},
	{"dotman.ps1", func(c *cobra.Command, w io.Writer) error { return c.GenPowerShellCompletionWithDesc(w) }},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}
	dir := os.Args[1]

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	rootCmd := dotman.NewRootCmd()
	for _, s := range scripts {
		if err := write(filepath.Join(dir, s.file), rootCmd, s.gen); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", s.file, err)
			os.Exit(1)
		}
	}
}

func write(path string, rootCmd *cobra.Command, gen func(*cobra.Command, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gen(rootCmd, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
