package dotman

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/dotman/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// setupTopics installs the topic-aware help command and the topics command
func setupTopics(rootCmd *cobra.Command) error {
	fsys, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}

	tm, err := topics.InitializeWithOptions(rootCmd, fsys, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		return err
	}

	topicsCmd := tm.Command()
	topicsCmd.Short = MsgTopicsShort
	topicsCmd.GroupID = "misc"
	topicsCmd.Annotations = map[string]string{skipSetup: "true"}
	rootCmd.AddCommand(topicsCmd)
	rootCmd.SetHelpCommandGroupID("misc")

	return nil
}
