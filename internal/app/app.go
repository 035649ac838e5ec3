package app

import (
	"github.com/spf13/cobra"
	"github.com/xab-mack/inklint/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "inklint", Short: "Structural linter for expanded ink! contract modules"}
	cli.AddCommands(root)
	return root
}
