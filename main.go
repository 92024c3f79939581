// Package main is the entry point for reelctl.
package main

import (
	"github.com/reelctl/reelctl/cmd"
	"github.com/reelctl/reelctl/config"
	"github.com/reelctl/reelctl/internal/sweep"
	"github.com/reelctl/reelctl/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	sweep.CollectGarbage()

	cmd.Execute()
}
