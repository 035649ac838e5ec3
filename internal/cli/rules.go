package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xab-mack/inklint/internal/plugins"
)

func newRulesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{Use: "rules", Short: "List available rules"}
	list := &cobra.Command{
		Use:   "list",
		Short: "List built-in rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := plugins.NewRegistry()
			reg.RegisterBuiltin()
			if asJSON {
				var metas []any
				for _, d := range reg.Detectors() {
					metas = append(metas, d.Meta())
				}
				data, _ := json.MarshalIndent(metas, "", "  ")
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			for _, d := range reg.Detectors() {
				m := d.Meta()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.ID, m.Severity, m.Title)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "Emit rule metadata as JSON")
	cmd.AddCommand(list)
	return cmd
}
