package dotman

import (
	"fmt"

	"github.com/arthur-debert/dotman/internal/version"
	"github.com/arthur-debert/dotman/pkg/commands"
	"github.com/arthur-debert/dotman/pkg/types"
	"github.com/spf13/cobra"
)

func newSetHomeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "set-home <path>",
		Short:   MsgSetHomeShort,
		Long:    MsgSetHomeLong,
		GroupID: "files",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.SetHome(commands.SetHomeOptions{
				Paths: a.paths,
				Path:  args[0],
			})
			if err != nil {
				return err
			}
			return a.output(cmd, result, fmt.Sprintf(MsgSetHomeSuccess, result.Paths[0]))
		},
	}
}

func newSourceCmd(a *app) *cobra.Command {
	sourceCmd := &cobra.Command{
		Use:     "source",
		Short:   MsgSourceShort,
		Long:    MsgSourceLong,
		GroupID: "files",
	}

	sourceCmd.AddCommand(&cobra.Command{
		Use:     "add <path>",
		Short:   MsgSourceAddShort,
		Example: MsgSourceAddExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.AddSource(commands.AddSourceOptions{
				Paths: a.paths,
				Path:  args[0],
			})
			if err != nil {
				return err
			}
			msg := ""
			if result.Changed {
				msg = fmt.Sprintf(MsgSourceAdded, len(result.Paths))
			}
			return a.output(cmd, result, msg)
		},
	})

	sourceCmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgSourceListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.ListSources(commands.ListSourcesOptions{Paths: a.paths})
			if err != nil {
				return err
			}
			msg := ""
			if len(result.Sources) == 0 {
				msg = MsgSourceListEmpty
			}
			return a.output(cmd, result, msg)
		},
	})

	sourceCmd.AddCommand(&cobra.Command{
		Use:     "remove <path>",
		Aliases: []string{"rm"},
		Short:   MsgSourceRemoveShort,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.RemoveSource(commands.RemoveSourceOptions{
				Paths: a.paths,
				Path:  args[0],
			})
			if err != nil {
				return err
			}
			msg := ""
			if result.Changed {
				msg = fmt.Sprintf(MsgSourceRemoved, result.Paths[0])
			}
			return a.output(cmd, result, msg)
		},
	})

	sourceCmd.AddCommand(&cobra.Command{
		Use:     "link <source> <destination>",
		Short:   MsgSourceLinkShort,
		Example: MsgSourceLinkExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.LinkSource(commands.LinkSourceOptions{
				Paths:       a.paths,
				Source:      args[0],
				Destination: args[1],
			})
			if err != nil {
				return err
			}
			msg := ""
			if result.Changed {
				msg = fmt.Sprintf(MsgSourceLinked, result.Paths[0], result.Paths[1])
			}
			return a.output(cmd, result, msg)
		},
	})

	sourceCmd.AddCommand(&cobra.Command{
		Use:   "unlink <path>",
		Short: MsgSourceUnlinkShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.UnlinkSource(commands.UnlinkSourceOptions{
				Paths: a.paths,
				Path:  args[0],
			})
			if err != nil {
				return err
			}
			msg := ""
			if result.Changed {
				msg = fmt.Sprintf(MsgSourceUnlinked, result.Paths[0])
			}
			return a.output(cmd, result, msg)
		},
	})

	return sourceCmd
}

func newApplyCmd(a *app) *cobra.Command {
	var dryRun bool

	applyCmd := &cobra.Command{
		Use:     "apply",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "files",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Apply(cmd.Context(), commands.ApplyOptions{
				Paths:  a.paths,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}
			msg := MsgApplySuccess
			if result.DryRun {
				msg = fmt.Sprintf(MsgApplyDryRun, result.Count(types.FilePlanned))
			}
			return a.output(cmd, result, msg)
		},
	}
	applyCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	return applyCmd
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		source bool
		with   []string
	)

	renderCmd := &cobra.Command{
		Use:     "render <file>",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "files",
		Args:    cobra.ExactArgs(1),
		Annotations: map[string]string{
			skipSetup: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Render(commands.RenderOptions{
				Path:   args[0],
				Source: source,
				With:   with,
			})
			if err != nil {
				return err
			}
			r, format, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if format.IsMachine() {
				return r.RenderResult(result)
			}
			// the rendered file goes out untouched so it can be redirected
			_, err = fmt.Fprint(cmd.OutOrStdout(), result.Content)
			return err
		},
	}
	renderCmd.Flags().BoolVarP(&source, "source", "s", false, MsgFlagSource)
	renderCmd.Flags().StringSliceVarP(&with, "with", "w", nil, MsgFlagWith)
	return renderCmd
}

func newGitCmd(a *app) *cobra.Command {
	gitCmd := &cobra.Command{
		Use:     "git",
		Short:   MsgGitShort,
		Long:    MsgGitLong,
		GroupID: "git",
	}

	opts := func() commands.GitOptions {
		return commands.GitOptions{Paths: a.paths, Runner: a.runner}
	}

	gitCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: MsgGitInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GitInit(cmd.Context(), opts())
			if err != nil {
				return err
			}
			return a.output(cmd, result, fmt.Sprintf(MsgGitInitialized, result.Dir))
		},
	})

	gitCmd.AddCommand(&cobra.Command{
		Use:   "clone <url>",
		Short: MsgGitCloneShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GitClone(cmd.Context(), commands.GitCloneOptions{
				Options: opts(),
				URL:     args[0],
			})
			if err != nil {
				return err
			}
			return a.output(cmd, result, fmt.Sprintf(MsgGitCloned, args[0], result.Dir))
		},
	})

	var all bool
	commitCmd := &cobra.Command{
		Use:   "commit <message>",
		Short: MsgGitCommitShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GitCommit(cmd.Context(), commands.GitCommitOptions{
				Options: opts(),
				Message: args[0],
				All:     all,
			})
			if err != nil {
				return err
			}
			return a.output(cmd, result, MsgGitCommitted)
		},
	}
	commitCmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	gitCmd.AddCommand(commitCmd)

	gitCmd.AddCommand(&cobra.Command{
		Use:   "set-remote-url <url>",
		Short: MsgGitRemoteShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GitSetRemoteURL(cmd.Context(), commands.GitRemoteOptions{
				Options: opts(),
				URL:     args[0],
			})
			if err != nil {
				return err
			}
			return a.output(cmd, result, fmt.Sprintf(MsgGitRemoteSet, args[0]))
		},
	})

	gitCmd.AddCommand(&cobra.Command{
		Use:   "push",
		Short: MsgGitPushShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GitPush(cmd.Context(), opts())
			if err != nil {
				return err
			}
			return a.output(cmd, result, MsgGitPushed)
		},
	})

	gitCmd.AddCommand(&cobra.Command{
		Use:   "pull",
		Short: MsgGitPullShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GitPull(cmd.Context(), opts())
			if err != nil {
				return err
			}
			return a.output(cmd, result, MsgGitPulled)
		},
	})

	gitCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: MsgGitStatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := commands.GitStatus(opts())
			if err != nil {
				return err
			}
			return a.output(cmd, status, "")
		},
	})

	return gitCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Annotations: map[string]string{
			skipSetup: "true",
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dotman version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations: map[string]string{
			skipSetup: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
