package cli

import (
	"fmt"

	"github.com/rtighilt/MARS/internal/adapters/outbound/tui"
	"github.com/rtighilt/MARS/internal/domain"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List every antipattern rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return renderJSON(cmd, domain.RuleCatalog)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(domain.RuleCatalog))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the rule catalog as JSON")
	return cmd
}
