// Package cmd implements the reelctl command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/reelctl/reelctl/color"
	"github.com/reelctl/reelctl/constant"
	"github.com/reelctl/reelctl/history"
	"github.com/reelctl/reelctl/icon"
	"github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/log"
	"github.com/reelctl/reelctl/player"
	"github.com/reelctl/reelctl/style"
	"github.com/reelctl/reelctl/tui"
	"github.com/reelctl/reelctl/version"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// attachSocket is the IPC socket of an mpv started outside reelctl.
var attachSocket string

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().BoolP("resume", "r", false, "Resume from the saved position of the target")
	rootCmd.PersistentFlags().StringVar(&attachSocket, "attach", "", "Control an mpv already running with --input-ipc-server=`socket`")

	rootCmd.Flags().Int("volume", 100, "Initial volume in percent")
	lo.Must0(viper.BindPFlag(key.PlayerVolume, rootCmd.Flags().Lookup("volume")))

	rootCmd.Flags().Float64("rate", 1, "Initial playback rate")
	lo.Must0(viper.BindPFlag(key.PlayerRate, rootCmd.Flags().Lookup("rate")))

	rootCmd.Flags().Bool("live-seek", false, "Seek while dragging the seek bar")
	lo.Must0(viper.BindPFlag(key.PlayerLiveSeek, rootCmd.Flags().Lookup("live-seek")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Reelctl + " [file or url]",
	Short: "A terminal control bar for mpv",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - A terminal control bar for mpv"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 && attachSocket == "" {
			handleErr(cmd.Help())
			return
		}

		var target string
		if len(args) == 1 {
			target = args[0]
		}
		handleErr(play(target, lo.Must(cmd.Flags().GetBool("resume"))))
	},
	Example: rootExample,
}

const rootExample = `  reelctl movie.mkv
  reelctl --resume https://example.com/talk.webm
  reelctl --attach /tmp/mpv.sock`

// newEngine launches mpv, or attaches to a running one when --attach is set.
func newEngine() player.Engine {
	if attachSocket != "" {
		return player.Attach(attachSocket)
	}

	CheckDependencies()
	return player.NewMPV(viper.GetStringSlice(key.PlayerMPVArgs))
}

// play runs a control bar session for target. An empty target keeps whatever an attached mpv is playing.
func play(target string, resume bool) error {
	options := &tui.Options{
		Target:   target,
		Engine:   newEngine(),
		Volume:   mo.Some(viper.GetFloat64(key.PlayerVolume) / 100),
		Rate:     mo.Some(viper.GetFloat64(key.PlayerRate)),
		LiveSeek: viper.GetBool(key.PlayerLiveSeek),
	}

	if resume && target != "" {
		found, err := history.Find(target)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}

		if entry, ok := found.Get(); ok && entry.Resumable() {
			options.ResumeAt = mo.Some(entry.Position)
		}
	}

	log.WithField("target", target).Infof("playing (resume=%t)", resume)
	return tui.Run(options)
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
