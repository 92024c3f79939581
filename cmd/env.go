package cmd

import (
	"os"

	"github.com/reelctl/reelctl/color"
	"github.com/reelctl/reelctl/config"
	"github.com/reelctl/reelctl/style"
	"github.com/reelctl/reelctl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// envVars returns every environment variable reelctl reads, sorted by name.
func envVars() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		field := config.Default[k]
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

func lookupEnv(name string) mo.Option[string] {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return mo.Some(value)
	}
	return mo.None[string]()
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Show only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Show only variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the environment variables reelctl reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, env := range envVars() {
			value := lookupEnv(env)
			if (setOnly && value.IsAbsent()) || (unsetOnly && value.IsPresent()) {
				continue
			}

			rendered := value.
				Map(func(v string) (string, bool) { return style.Fg(color.Green)(v), true }).
				OrElse(style.Fg(color.Red)("unset"))
			cmd.Printf("%s=%s\n", name(env), rendered)
		}
	},
}
