package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/reelctl/reelctl/filesystem"
	"github.com/reelctl/reelctl/key"
	"github.com/reelctl/reelctl/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("Entries are discarded without panicking", func() {
			WithField("target", "a.mkv").Info("ignored")
			Infof("ignored %d", 1)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("Messages land in today's log file", func() {
			Infof("seek to %.1f", 12.5)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(strings.Contains(string(data), "seek to 12.5"), ShouldBeTrue)
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			_ = Setup()
		})
	})
}
