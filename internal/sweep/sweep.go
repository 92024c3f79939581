// Package sweep removes mpv control sockets left behind by sessions that did not exit cleanly.
package sweep

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reelctl/reelctl/log"
	"github.com/reelctl/reelctl/where"
)

// StaleAfter is the minimum age of a socket before it is considered abandoned.
const StaleAfter = time.Minute

const dialTimeout = 200 * time.Millisecond

var now = time.Now

// Sockets removes *.sock files in dir that are older than StaleAfter and refuse connections.
// Sockets with a live mpv behind them are kept.
func Sockets(dir string) (removed int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sock") {
			continue
		}

		info, err := entry.Info()
		if err != nil || now().Sub(info.ModTime()) < StaleAfter {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if conn, err := net.DialTimeout("unix", path, dialTimeout); err == nil {
			_ = conn.Close()
			continue
		}

		if err := os.Remove(path); err == nil {
			removed++
		}
	}

	return removed
}

// CollectGarbage sweeps the socket directory in the background.
func CollectGarbage() {
	go func() {
		if n := Sockets(where.Sockets()); n > 0 {
			log.Infof("removed %d stale sockets", n)
		}
	}()
}
