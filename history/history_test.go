package history

import (
	"testing"
	"time"

	"github.com/reelctl/reelctl/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func wipe() {
	saved, _ := Get()
	for target := range saved {
		_ = Remove(target)
	}
}

func TestSave(t *testing.T) {
	Convey("Given an empty history", t, func() {
		wipe()
		Reset(wipe)

		Convey("When saving a position", func() {
			err := Save("/videos/big_buck_bunny.mp4", 65, 125)

			Convey("Then the entry is stored with its title", func() {
				So(err, ShouldBeNil)

				found, err := Find("/videos/big_buck_bunny.mp4")
				So(err, ShouldBeNil)

				entry, ok := found.Get()
				So(ok, ShouldBeTrue)
				So(entry.Title, ShouldEqual, "big_buck_bunny")
				So(entry.Position, ShouldEqual, 65)
				So(entry.Duration, ShouldEqual, 125)
				So(entry.Resumable(), ShouldBeTrue)
				So(entry.Progress(), ShouldEqual, 52)
				So(entry.String(), ShouldEqual, "big_buck_bunny  01:05 / 02:05")
			})
		})

		Convey("When saving a position near the end", func() {
			So(Save("https://example.com/clip.mp4", 122, 125), ShouldBeNil)

			Convey("Then it is stored as finished", func() {
				found, _ := Find("https://example.com/clip.mp4")
				So(found.MustGet().Position, ShouldEqual, 0)
				So(found.MustGet().Resumable(), ShouldBeFalse)
			})
		})

		Convey("When saving garbage values", func() {
			So(Save("live.ts", -4, 0), ShouldBeNil)

			Convey("Then they are sanitized", func() {
				found, _ := Find("live.ts")
				So(found.MustGet().Position, ShouldEqual, 0)
				So(found.MustGet().Progress(), ShouldEqual, 0)
			})
		})

		Convey("When saving the same target twice", func() {
			So(Save("a.mkv", 10, 100), ShouldBeNil)
			So(Save("a.mkv", 20, 100), ShouldBeNil)

			Convey("Then only the latest position is kept", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldHaveLength, 1)
				So(saved["a.mkv"].Position, ShouldEqual, 20)
			})
		})

		Convey("When removing an entry", func() {
			So(Save("a.mkv", 10, 100), ShouldBeNil)
			So(Remove("a.mkv"), ShouldBeNil)

			Convey("Then it is gone", func() {
				found, err := Find("a.mkv")
				So(err, ShouldBeNil)
				So(found.IsAbsent(), ShouldBeTrue)
			})
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given several entries saved over time", t, func() {
		wipe()
		Reset(func() {
			now = time.Now
			wipe()
		})

		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		for i, target := range []string{"/films/Nosferatu.mkv", "/films/Metropolis.mkv", "https://example.com/talks/gophercon.mp4"} {
			at := base.Add(time.Duration(i) * time.Hour)
			now = func() time.Time { return at }
			So(Save(target, 30, 3600), ShouldBeNil)
		}

		Convey("An empty query lists everything, most recent first", func() {
			entries, err := Search("")
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 3)
			So(entries[0].Title, ShouldEqual, "gophercon")
			So(entries[2].Title, ShouldEqual, "Nosferatu")
		})

		Convey("A fuzzy query matches titles case-insensitively", func() {
			entries, err := Search("mtrpl")
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
			So(entries[0].Title, ShouldEqual, "Metropolis")
		})

		Convey("A query can match the target", func() {
			entries, err := Search("example.com")
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
		})

		Convey("A query without matches is empty", func() {
			entries, err := Search("zzz")
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})
	})
}
