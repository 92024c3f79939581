package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/reelctl/reelctl/color"
	"github.com/reelctl/reelctl/constant"
	"github.com/reelctl/reelctl/icon"
	"github.com/reelctl/reelctl/style"
)

// CheckDependencies exits with an install hint when mpv is not in PATH.
func CheckDependencies() {
	if _, err := exec.LookPath(constant.MPV); err != nil {
		printMissingDependencyError(constant.MPV)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(color.White).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if hint, ok := constant.InstallMPV[runtime.GOOS]; ok {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.Orange).Bold(true).Render(hint))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
