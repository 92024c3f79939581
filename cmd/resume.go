package cmd

import (
	"errors"

	"github.com/reelctl/reelctl/history"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resumeCmd)
}

var resumeCmd = &cobra.Command{
	Use:   "resume [query]",
	Short: "Continue the most recent saved media, optionally filtered by query",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var query string
		if len(args) == 1 {
			query = args[0]
		}

		entries, err := history.Search(query)
		handleErr(err)

		if len(entries) == 0 {
			handleErr(errors.New("nothing to resume"))
		}

		handleErr(play(entries[0].Target, true))
	},
}
