package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reelctl/reelctl/color"
	"github.com/reelctl/reelctl/style"
	"github.com/reelctl/reelctl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type location struct {
	name string
	path func() string
	// internal locations are only printed when asked for by name.
	internal bool
}

var locations = []location{
	{"config", where.Config, false},
	{"history", where.History, false},
	{"logs", where.Logs, false},
	{"cache", where.Cache, true},
	{"sockets", where.Sockets, true},
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.Flags().BoolP("json", "j", false, "Print every location as a JSON object")
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where [location]",
	Short: "Display the paths reelctl reads and writes",
	Example: "  reelctl where\n" +
		"  reelctl where history\n" +
		"  cd \"$(reelctl where config)\"",
	Args: cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: lo.Map(locations, func(l location, _ int) string {
		return l.name
	}),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			l, _ := lo.Find(locations, func(l location) bool { return l.name == args[0] })
			cmd.Println(l.path())
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(locations, func(l location) (string, string) {
				return l.name, l.path()
			})
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(paths))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for _, l := range lo.Reject(locations, func(l location, _ int) bool { return l.internal }) {
			cmd.Printf("%s %s\n", header(fmt.Sprintf("%-8s", l.name)), l.path())
		}
	},
}
