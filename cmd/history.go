package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reelctl/reelctl/color"
	"github.com/reelctl/reelctl/history"
	"github.com/reelctl/reelctl/icon"
	"github.com/reelctl/reelctl/position"
	"github.com/reelctl/reelctl/style"
	"github.com/reelctl/reelctl/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().String("remove", "", "Forget the saved position of the given target")

	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history [query]",
	Short: "List saved playback positions",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if target := lo.Must(cmd.Flags().GetString("remove")); target != "" {
			handleErr(history.Remove(target))
			fmt.Printf("%s forgot %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), target)
			return
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		}

		entries, err := history.Search(query)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("No saved positions"))
			return
		}

		for i, entry := range entries {
			cmd.Println(style.New().Bold(true).Foreground(color.Purple).Render(entry.Title))
			cmd.Println(style.Faint(entry.Target))
			cmd.Printf(
				"%s / %s %s  %s\n",
				style.Fg(color.Yellow)(position.FormatDuration(entry.Position)),
				position.FormatDuration(entry.Duration),
				style.Fg(color.Green)(fmt.Sprintf("%.0f%%", entry.Progress())),
				style.Faint(entry.UpdatedAt.Format("2006-01-02 15:04")),
			)

			if i < len(entries)-1 {
				cmd.Println()
			}
		}

		cmd.Println(style.Faint("\n" + util.Quantify(len(entries), "entry", "entries")))
	},
}
