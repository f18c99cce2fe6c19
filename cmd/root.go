package cmd

import (
	"github.com/spf13/cobra"
)

var Root = &cobra.Command{
	Use:   "envitrans",
	Short: "English-Vietnamese translation service backed by the envit5 model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	Root.AddCommand(Serve)
	Root.AddCommand(Translate)
}
