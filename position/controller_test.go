package position

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestController(t *testing.T) {
	Convey("Given a fresh controller", t, func() {
		engine := &fakeEngine{}
		view := &fakeView{}
		c := New(engine, view)

		Convey("It renders the unknown state", func() {
			So(view.percent, ShouldEqual, 0)
			So(view.current, ShouldEqual, "00:00")
			So(view.total, ShouldEqual, "00:00")
			So(view.buffered, ShouldEqual, 0)
			So(c.Duration().IsAbsent(), ShouldBeTrue)
			So(c.Seeking(), ShouldBeFalse)
		})

		Convey("When the engine reports a position", func() {
			c.OnMediaTimeChanged(50, 200)

			Convey("The percent and labels follow", func() {
				So(view.percent, ShouldEqual, 25)
				So(view.current, ShouldEqual, "00:50")
				So(view.total, ShouldEqual, "03:20")
			})
		})

		Convey("When the duration is zero or unknown", func() {
			for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
				c.OnMediaTimeChanged(30, d)
				So(view.percent, ShouldEqual, 0)
				So(math.IsNaN(view.percent), ShouldBeFalse)
				So(view.total, ShouldEqual, "00:00")
			}
		})

		Convey("When the position is NaN", func() {
			c.OnMediaTimeChanged(math.NaN(), 100)
			So(view.percent, ShouldEqual, 0)
			So(view.current, ShouldEqual, "00:00")
			So(c.Position(), ShouldEqual, 0)
		})

		Convey("When the position overshoots the duration", func() {
			c.OnMediaTimeChanged(130, 120)
			So(view.percent, ShouldEqual, 100)
			So(c.Position(), ShouldEqual, 120)
		})

		Convey("Percent stays within bounds for positions inside the media", func() {
			for p := 0.0; p <= 90; p += 4.5 {
				c.OnMediaTimeChanged(p, 90)
				So(view.percent, ShouldBeBetweenOrEqual, 0, 100)
			}
		})
	})
}

func TestBuffered(t *testing.T) {
	Convey("Given a controller", t, func() {
		view := &fakeView{}
		c := New(&fakeEngine{}, view)

		Convey("The width is the buffered share of the duration", func() {
			c.OnMediaBufferChanged(50, 200)
			So(view.buffered, ShouldEqual, 25)
			So(c.BufferedWidth(), ShouldEqual, 25)
		})

		Convey("The width is clamped to 100", func() {
			c.OnMediaBufferChanged(250, 200)
			So(view.buffered, ShouldEqual, 100)
		})

		Convey("Unknown or zero duration renders zero width", func() {
			c.OnMediaBufferChanged(20, 0)
			So(view.buffered, ShouldEqual, 0)
			c.OnMediaBufferChanged(20, math.NaN())
			So(view.buffered, ShouldEqual, 0)
		})

		Convey("No buffered range renders zero width", func() {
			c.OnMediaBufferChanged(math.NaN(), 200)
			So(view.buffered, ShouldEqual, 0)
			c.OnMediaBufferChanged(-1, 200)
			So(view.buffered, ShouldEqual, 0)
		})
	})
}

func TestSeeking(t *testing.T) {
	Convey("Given a controller with known duration", t, func() {
		engine := &fakeEngine{}
		view := &fakeView{}
		c := New(engine, view)
		c.OnMediaTimeChanged(20, 200)

		Convey("Dragging does not command the engine", func() {
			c.OnUserSeekDrag(40)
			c.OnUserSeekDrag(45)
			So(engine.seeks, ShouldBeEmpty)
			So(c.Seeking(), ShouldBeTrue)
			So(view.percent, ShouldEqual, 45)
			So(view.current, ShouldEqual, "01:30")
		})

		Convey("Engine updates during a drag leave the shown percent alone", func() {
			c.OnUserSeekDrag(60)
			for i := 0; i < 10; i++ {
				c.OnMediaTimeChanged(21+float64(i), 200)
			}
			So(view.percent, ShouldEqual, 60)
			So(c.Percent(), ShouldEqual, 60)

			Convey("And resume after the commit", func() {
				So(c.OnUserSeekCommit(60), ShouldBeNil)
				So(c.Seeking(), ShouldBeFalse)
				c.OnMediaTimeChanged(120, 200)
				So(view.percent, ShouldEqual, 60)
				c.OnMediaTimeChanged(130, 200)
				So(view.percent, ShouldEqual, 65)
			})
		})

		Convey("Cancelling a drag shows the engine position without seeking", func() {
			c.OnUserSeekDrag(80)
			c.OnMediaTimeChanged(30, 200)
			So(view.percent, ShouldEqual, 80)

			c.CancelDrag()
			So(c.Seeking(), ShouldBeFalse)
			So(engine.seeks, ShouldBeEmpty)
			So(view.percent, ShouldEqual, 15)
			So(view.current, ShouldEqual, "00:30")

			c.OnMediaTimeChanged(40, 200)
			So(view.percent, ShouldEqual, 20)
		})

		Convey("Cancelling without a drag changes nothing", func() {
			c.CancelDrag()
			So(c.Seeking(), ShouldBeFalse)
			So(view.percent, ShouldEqual, 10)
		})

		Convey("Committing issues exactly one seek", func() {
			So(c.OnUserSeekCommit(50), ShouldBeNil)
			So(engine.seeks, ShouldResemble, []float64{100})
		})

		Convey("Drag and commit percents are clamped", func() {
			c.OnUserSeekDrag(140)
			So(view.percent, ShouldEqual, 100)
			So(c.OnUserSeekCommit(-20), ShouldBeNil)
			So(engine.seeks, ShouldResemble, []float64{0})
		})

		Convey("A rejected seek is reported once and clears the drag", func() {
			engine.fail = true
			c.OnUserSeekDrag(10)
			So(c.OnUserSeekCommit(10), ShouldNotBeNil)
			So(len(engine.seeks), ShouldEqual, 1)
			So(c.Seeking(), ShouldBeFalse)
		})
	})

	Convey("Given a controller with unknown duration", t, func() {
		engine := &fakeEngine{}
		c := New(engine, &fakeView{})

		Convey("Committing seeks to zero", func() {
			So(c.OnUserSeekCommit(75), ShouldBeNil)
			So(engine.seeks, ShouldResemble, []float64{0})
		})
	})
}

func TestSkip(t *testing.T) {
	Convey("Given a controller at 5s of 100s", t, func() {
		engine := &fakeEngine{}
		c := New(engine, &fakeView{})
		c.OnMediaTimeChanged(5, 100)

		Convey("Skipping back past the start lands on zero", func() {
			So(c.SkipBy(-10), ShouldBeNil)
			So(engine.seeks, ShouldResemble, []float64{0})
		})

		Convey("Skipping forward adds the delta", func() {
			So(c.SkipBy(10), ShouldBeNil)
			So(engine.seeks, ShouldResemble, []float64{15})
		})

		Convey("Skipping past the end lands on the duration", func() {
			c.OnMediaTimeChanged(95, 100)
			So(c.SkipBy(10), ShouldBeNil)
			So(engine.seeks, ShouldResemble, []float64{100})
		})

		Convey("Stepping a frame moves 40ms", func() {
			So(c.StepFrame(), ShouldBeNil)
			So(engine.seeks[0], ShouldAlmostEqual, 5.04, 1e-9)
		})
	})

	Convey("Given an unknown duration", t, func() {
		engine := &fakeEngine{}
		c := New(engine, &fakeView{})
		c.OnMediaTimeChanged(30, 0)

		Convey("Forward skips are unconstrained", func() {
			So(c.SkipBy(10), ShouldBeNil)
			So(engine.seeks, ShouldResemble, []float64{40})
		})
	})
}

func TestReset(t *testing.T) {
	Convey("Given a controller mid-playback", t, func() {
		view := &fakeView{}
		c := New(&fakeEngine{}, view)
		c.OnMediaTimeChanged(60, 120)

		Convey("Reset shows the start again", func() {
			c.Reset()
			So(view.percent, ShouldEqual, 0)
			So(view.current, ShouldEqual, "00:00")
			So(view.total, ShouldEqual, "02:00")
		})
	})
}

func TestScenario(t *testing.T) {
	Convey("Metadata, playback, scrub and commit", t, func() {
		engine := &fakeEngine{}
		view := &fakeView{}
		c := New(engine, view)

		c.OnMediaTimeChanged(0, 125)
		So(view.current, ShouldEqual, "00:00")
		So(view.total, ShouldEqual, "02:05")
		So(view.percent, ShouldEqual, 0)

		c.OnMediaTimeChanged(65, 125)
		So(view.percent, ShouldEqual, 52)
		So(view.current, ShouldEqual, "01:05")

		c.OnUserSeekDrag(80)
		So(c.Seeking(), ShouldBeTrue)
		label := view.current
		c.OnMediaTimeChanged(66, 125)
		So(view.current, ShouldEqual, label)
		So(view.percent, ShouldEqual, 80)

		So(c.OnUserSeekCommit(80), ShouldBeNil)
		So(engine.seeks, ShouldResemble, []float64{100})
		So(c.Seeking(), ShouldBeFalse)
	})
}
