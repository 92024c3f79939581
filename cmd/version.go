package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reelctl/reelctl/color"
	"github.com/reelctl/reelctl/constant"
	"github.com/reelctl/reelctl/style"
	"github.com/reelctl/reelctl/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version string")
	versionCmd.Flags().BoolP("json", "j", false, "Print build information as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		build := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(build.Version)
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(build))
			return
		}

		rows := [][2]string{
			{"Version", build.Version},
			{"Revision", build.Revision},
			{"Built at", build.BuiltAt},
			{"Built by", build.BuiltBy},
			{"Platform", build.Platform},
		}

		label := style.New().Faint(true).Width(10).Render
		lines := lo.Map(rows, func(row [2]string, _ int) string {
			return "  " + label(row[0]) + style.Bold(row[1])
		})

		cmd.Println(style.Fg(color.Purple)("▇▇▇ " + constant.Reelctl))
		cmd.Println()
		cmd.Println(lipgloss.JoinVertical(lipgloss.Left, lines...))

		version.Notify()
	},
}
