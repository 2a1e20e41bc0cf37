package dotman

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Manage dotfiles as templates"
	MsgSetHomeShort      = "Change the dotfile home directory"
	MsgSourceShort       = "Manage the files dotman knows about"
	MsgSourceAddShort    = "Add a file, or every file below a directory"
	MsgSourceListShort   = "List managed files and their destinations"
	MsgSourceRemoveShort = "Stop managing a file"
	MsgSourceLinkShort   = "Set where a managed file is written"
	MsgSourceUnlinkShort = "Clear the destination of a managed file"
	MsgApplyShort        = "Render managed files and write them to their destinations"
	MsgRenderShort       = "Render a single file to stdout"
	MsgGitShort          = "Run git in the dotfile home"
	MsgGitInitShort      = "Create a repository in the dotfile home"
	MsgGitCloneShort     = "Clone a repository into the dotfile home"
	MsgGitCommitShort    = "Commit staged changes"
	MsgGitRemoteShort    = "Add the remote used by push and pull"
	MsgGitPushShort      = "Push the configured branch"
	MsgGitPullShort      = "Pull the configured branch"
	MsgGitStatusShort    = "Show branch, head and remotes of the dotfile home"
	MsgTopicsShort       = "Display available documentation topics"
	MsgVersionShort      = "Print version information"
	MsgCompletionShort   = "Generate shell completion script"

	// Status messages
	MsgHomeMissing     = "Configured home location does not exist"
	MsgSetHomeSuccess  = "[success]Home directory set to[/success] [path]%s[/path]"
	MsgSourceAdded     = "[success]Added %d file(s) to dotman[/success]"
	MsgSourceListEmpty = "There are currently no configs managed by DotMan. You can add a config by using the `source add` command"
	MsgSourceRemoved   = "[success]Removed[/success] [path]%s[/path]"
	MsgSourceLinked    = "[success]Linked[/success] [path]%s[/path] -> [path]%s[/path]"
	MsgSourceUnlinked  = "[success]Unlinked[/success] [path]%s[/path]"
	MsgApplySuccess    = "[success]Successfully applied your configs[/success]"
	MsgApplyDryRun     = "[info]Dry run complete, %d file(s) would be written[/info]"
	MsgGitInitialized  = "[success]Initialized a git repository in[/success] [path]%s[/path]"
	MsgGitCloned       = "[success]Cloned[/success] %s [success]into[/success] [path]%s[/path]"
	MsgGitCommitted    = "[success]Changes committed[/success]"
	MsgGitRemoteSet    = "[success]Remote set to[/success] %s"
	MsgGitPushed       = "[success]Pushed[/success]"
	MsgGitPulled       = "[success]Pulled[/success]"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format (auto, term, text, json, yaml)"
	MsgFlagDryRun  = "Preview changes without writing anything"
	MsgFlagSource  = "Render the file as a source file, keeping only its output lines"
	MsgFlagWith    = "Source files evaluated before the rendered file (repeatable)"
	MsgFlagAll     = "Stage modified tracked files before committing"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/set-home-long.txt
	msgSetHomeLongRaw string
	MsgSetHomeLong    = strings.TrimSpace(msgSetHomeLongRaw)

	//go:embed msgs/source-long.txt
	msgSourceLongRaw string
	MsgSourceLong    = strings.TrimSpace(msgSourceLongRaw)

	//go:embed msgs/source-add-example.txt
	msgSourceAddExampleRaw string
	MsgSourceAddExample    = strings.TrimRight(msgSourceAddExampleRaw, "\n")

	//go:embed msgs/source-link-example.txt
	msgSourceLinkExampleRaw string
	MsgSourceLinkExample    = strings.TrimRight(msgSourceLinkExampleRaw, "\n")

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/git-long.txt
	msgGitLongRaw string
	MsgGitLong    = strings.TrimSpace(msgGitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
