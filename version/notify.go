package version

import (
	"fmt"

	"github.com/reelctl/reelctl/color"
	"github.com/reelctl/reelctl/constant"
	"github.com/reelctl/reelctl/icon"
	"github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/log"
	"github.com/reelctl/reelctl/style"
	"github.com/reelctl/reelctl/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Newer returns the latest release when it is ahead of current.
func Newer(current string) mo.Option[string] {
	latest, err := Latest()
	if err != nil {
		log.Debugf("version check: %v", err)
		return mo.None[string]()
	}

	if cmp, err := Compare(latest, current); err != nil || cmp <= 0 {
		return mo.None[string]()
	}
	return mo.Some(latest)
}

// Notify prints a banner when a newer release exists and version checks are enabled.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Looking for a newer reelctl...")
	latest, ok := Newer(constant.Version).Get()
	erase()
	if !ok {
		return
	}

	fmt.Printf("\n%s reelctl %s is out %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint("(installed "+constant.Version+")"),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", Repository, latest)),
	)
}
