package util

import (
	"math"
	"testing"

	"github.com/reelctl/reelctl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "entry", "entries"), ShouldEqual, "1 entry")
		So(Quantify(2, "entry", "entries"), ShouldEqual, "2 entries")
		So(Quantify(0, "entry", "entries"), ShouldEqual, "0 entries")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history"), ShouldEqual, "History")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMediaTitle(t *testing.T) {
	Convey("MediaTitle", t, func() {
		So(MediaTitle("/videos/big_buck_bunny.mp4"), ShouldEqual, "big_buck_bunny")
		So(MediaTitle("https://cdn.example.com/media/trailer.webm?t=1"), ShouldEqual, "trailer")
		So(MediaTitle("https://example.com/"), ShouldEqual, "example.com")
		So(MediaTitle("clip"), ShouldEqual, "clip")
		So(MediaTitle(""), ShouldEqual, "mpv")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 0, 10), ShouldEqual, 5)
		So(Clamp(-3, 0, 10), ShouldEqual, 0)
		So(Clamp(42.0, 0, 1), ShouldEqual, 1.0)
	})
}

func TestIsFinite(t *testing.T) {
	Convey("IsFinite", t, func() {
		So(IsFinite(1.5), ShouldBeTrue)
		So(IsFinite(math.NaN()), ShouldBeFalse)
		So(IsFinite(math.Inf(1)), ShouldBeFalse)
		So(IsFinite(math.Inf(-1)), ShouldBeFalse)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/reelctl/logs", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/reelctl/logs/a.log", []byte("x"), 0o644), ShouldBeNil)

		Convey("Delete removes a single file", func() {
			So(Delete("/tmp/reelctl/logs/a.log"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/reelctl/logs/a.log")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete removes the whole directory", func() {
			So(Delete("/tmp/reelctl"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/reelctl")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
