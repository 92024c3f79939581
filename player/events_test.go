package player

import (
	"context"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTranslate(t *testing.T) {
	Convey("Given property-change lines", t, func() {
		Convey("Time is translated to seconds", func() {
			ev, ok := translate([]byte(`{"event":"property-change","id":1,"name":"time-pos","data":65.5}`))
			So(ok, ShouldBeTrue)
			So(ev.Kind, ShouldEqual, TimeChanged)
			So(ev.Value, ShouldEqual, 65.5)
		})

		Convey("A missing duration becomes NaN", func() {
			ev, ok := translate([]byte(`{"event":"property-change","id":2,"name":"duration"}`))
			So(ok, ShouldBeTrue)
			So(ev.Kind, ShouldEqual, DurationKnown)
			So(math.IsNaN(ev.Value), ShouldBeTrue)
		})

		Convey("The demuxer cache end is the buffered end", func() {
			ev, ok := translate([]byte(`{"event":"property-change","id":3,"name":"demuxer-cache-time","data":30}`))
			So(ok, ShouldBeTrue)
			So(ev.Kind, ShouldEqual, BufferChanged)
			So(ev.Value, ShouldEqual, 30)
		})

		Convey("Volume is normalized", func() {
			ev, ok := translate([]byte(`{"event":"property-change","id":5,"name":"volume","data":50}`))
			So(ok, ShouldBeTrue)
			So(ev.Kind, ShouldEqual, VolumeChanged)
			So(ev.Value, ShouldEqual, 0.5)
		})

		Convey("Pause and mute carry a flag", func() {
			ev, ok := translate([]byte(`{"event":"property-change","id":4,"name":"pause","data":true}`))
			So(ok, ShouldBeTrue)
			So(ev.Kind, ShouldEqual, PlayStateChanged)
			So(ev.Flag, ShouldBeTrue)

			ev, ok = translate([]byte(`{"event":"property-change","id":6,"name":"mute","data":false}`))
			So(ok, ShouldBeTrue)
			So(ev.Kind, ShouldEqual, MuteChanged)
			So(ev.Flag, ShouldBeFalse)
		})

		Convey("Only a reached end of file is reported", func() {
			ev, ok := translate([]byte(`{"event":"property-change","id":7,"name":"eof-reached","data":true}`))
			So(ok, ShouldBeTrue)
			So(ev.Kind, ShouldEqual, Ended)

			_, ok = translate([]byte(`{"event":"property-change","id":7,"name":"eof-reached","data":false}`))
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given other lines", t, func() {
		for _, line := range []string{
			`{"request_id":1,"error":"success"}`,
			`{"event":"playback-restart"}`,
			`{"event":"property-change","id":9,"name":"chapter","data":1}`,
			`not json`,
		} {
			_, ok := translate([]byte(line))
			So(ok, ShouldBeFalse)
		}
	})
}

func TestEventListener(t *testing.T) {
	Convey("Given an attached engine", t, func() {
		fake := newFakeMPV()
		Reset(fake.Close)

		m := Attach(fake.path)
		So(m.Start(context.Background(), ""), ShouldBeNil)
		Reset(func() { _ = m.Close() })

		So(waitFor(func() bool { return fake.observing() == len(observed) }), ShouldBeTrue)

		Convey("When mpv pushes a time change", func() {
			fake.push(`{"event":"property-change","id":1,"name":"time-pos","data":12.5}`)

			Convey("Then it is published as an event", func() {
				ev, ok := nextEvent(m.Events(), TimeChanged)
				So(ok, ShouldBeTrue)
				So(ev.Value, ShouldEqual, 12.5)
			})
		})

		Convey("When mpv closes the connection", func() {
			fake.dropObservers()

			Convey("Then the session exits", func() {
				_, ok := nextEvent(m.Events(), Exited)
				So(ok, ShouldBeTrue)

				closed := false
				select {
				case <-m.Wait():
					closed = true
				default:
				}
				So(closed, ShouldBeTrue)
			})
		})
	})
}

func TestEventKind(t *testing.T) {
	Convey("Event kinds have readable names", t, func() {
		So(TimeChanged.String(), ShouldEqual, "time-changed")
		So(Exited.String(), ShouldEqual, "exited")
		So(EventKind(99).String(), ShouldEqual, "event(99)")
	})
}
