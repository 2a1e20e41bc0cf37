package dotman

import (
	"github.com/arthur-debert/dotman/internal/version"
	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/git"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// skipSetup marks commands that run without a record
const skipSetup = "dotman/skip-setup"

// app carries the state shared by all commands of one invocation
type app struct {
	verbosity int
	format    string

	paths  paths.Paths
	runner git.Runner
}

// NewRootCmd creates the dotman command tree, running git through the
// binary found on PATH
func NewRootCmd() *cobra.Command {
	return newRootCmd(git.NewExecRunner())
}

func newRootCmd(runner git.Runner) *cobra.Command {
	initTemplateFormatting()

	a := &app{runner: runner}

	rootCmd := &cobra.Command{
		Use:     "dotman",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.CommandPath()).Msg("Command started")
			if skipsSetup(cmd) {
				return nil
			}
			return a.setup()
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "auto", MsgFlagFormat)

	rootCmd.AddGroup(
		&cobra.Group{ID: "files", Title: "Files:"},
		&cobra.Group{ID: "git", Title: "Repository:"},
		&cobra.Group{ID: "misc", Title: "Misc:"},
	)

	rootCmd.AddCommand(newSetHomeCmd(a))
	rootCmd.AddCommand(newSourceCmd(a))
	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newGitCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := setupTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics are unavailable")
	}

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// skipsSetup reports whether cmd runs without a record. Help and shell
// completion requests never touch it.
func skipsSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.Annotations[skipSetup] == "true"
}

// setup resolves the directories and makes sure a record exists
func (a *app) setup() error {
	logger := logging.GetLogger("cli")

	p, err := paths.New()
	if err != nil {
		return err
	}
	a.paths = p

	store := config.NewStore(p)
	if _, err := store.EnsureExists(); err != nil {
		return err
	}
	record, err := store.Load()
	if err != nil {
		return err
	}
	if !paths.IsDir(record.HomePath) {
		logger.Warn().Str("home", record.HomePath).Msg(MsgHomeMissing)
	}
	return nil
}

// renderer returns the renderer for the --format flag, writing to the
// command's output
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, ui.Format, error) {
	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return nil, format, err
	}
	r, err := ui.NewRenderer(format, cmd.OutOrStdout())
	return r, format, err
}

// output renders result followed by msg. Machine formats get the result
// only.
func (a *app) output(cmd *cobra.Command, result interface{}, msg string) error {
	r, format, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	if result != nil {
		if err := r.RenderResult(result); err != nil {
			return err
		}
	}
	if msg == "" || format.IsMachine() {
		return nil
	}
	return r.RenderMessage(msg)
}
