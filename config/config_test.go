package config

import (
	"path/filepath"
	"testing"

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
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetInt(key.PlayerSkipSmall), ShouldEqual, 5)
			So(viper.GetBool(key.PlayerLiveSeek), ShouldBeFalse)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("player.live_seek"), ShouldEqual, "player_live_seek")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the rate field", t, func() {
		field := Default[key.PlayerRate]

		Convey("It is a float", func() {
			So(field.TypeName(), ShouldEqual, "float")
		})

		Convey("It parses floats", func() {
			v, err := field.Parse([]string{"1.5"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1.5)
		})

		Convey("It rejects garbage", func() {
			_, err := field.Parse([]string{"fast"})
			So(err, ShouldNotBeNil)
		})

		Convey("Its environment variable is prefixed", func() {
			So(field.Env(), ShouldEqual, "REELCTL_PLAYER_RATE")
		})
	})

	Convey("Given the live seek field", t, func() {
		field := Default[key.PlayerLiveSeek]

		Convey("It parses booleans", func() {
			v, err := field.Parse([]string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("It requires a value", func() {
			_, err := field.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPersist(t *testing.T) {
	Convey("Given no config file", t, func() {
		So(Setup(), ShouldBeNil)
		path := filepath.Join(where.Config(), "reelctl.toml")
		_ = filesystem.API().Remove(path)

		Convey("When a value is persisted", func() {
			So(Persist(key.TUITheme, "light"), ShouldBeNil)

			Convey("Then the file is created with the value", func() {
				contents, err := filesystem.API().ReadFile(path)
				So(err, ShouldBeNil)
				So(string(contents), ShouldContainSubstring, "light")
				So(viper.GetString(key.TUITheme), ShouldEqual, "light")
			})
		})

		Reset(func() {
			viper.Set(key.TUITheme, Default[key.TUITheme].Value)
		})
	})
}

func TestOptions(t *testing.T) {
	Convey("Given the theme field", t, func() {
		field := Default[key.TUITheme]

		Convey("Listed options are accepted", func() {
			v, err := field.Parse([]string{"light"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "light")
		})

		Convey("Anything else is rejected", func() {
			_, err := field.Parse([]string{"sepia"})
			So(err, ShouldNotBeNil)
		})

		Convey("Pretty output lists them", func() {
			So(field.Pretty(), ShouldContainSubstring, "dark, light")
		})
	})
}
