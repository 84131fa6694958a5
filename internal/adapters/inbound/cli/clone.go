package cli

import (
	"fmt"

	"github.com/rtighilt/MARS/internal/adapters/outbound/gitrepo"
	"github.com/spf13/cobra"
)

func newCloneCmd() *cobra.Command {
	var (
		dir   string
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "clone <url>",
		Short: "Clone a repository to analyze",
		Long: "Clone the repository at <url> into --dir. Everything already in --dir is removed first, " +
			"so the directory always holds exactly one analyzed system.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cloner := gitrepo.NewCloner(cmd.ErrOrStderr())
			if quiet {
				cloner.Progress = nil
			}
			if err := cloner.Clone(cmd.Context(), args[0], dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cloned %s into %s\n", args[0], dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", gitrepo.DefaultDir, "Working directory to clone into (emptied first)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress clone progress")
	return cmd
}
