package sweep

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSockets(t *testing.T) {
	Convey("Given a socket directory", t, func() {
		dir, err := os.MkdirTemp("", "rs")
		So(err, ShouldBeNil)
		Reset(func() { _ = os.RemoveAll(dir) })

		old := time.Now().Add(-2 * StaleAfter)
		touch := func(name string, at time.Time) string {
			path := filepath.Join(dir, name)
			So(os.WriteFile(path, nil, 0o600), ShouldBeNil)
			So(os.Chtimes(path, at, at), ShouldBeNil)
			return path
		}

		Convey("Old dead sockets are removed", func() {
			path := touch("dead.sock", old)
			So(Sockets(dir), ShouldEqual, 1)
			_, err := os.Stat(path)
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("Fresh sockets are kept", func() {
			path := touch("fresh.sock", time.Now())
			So(Sockets(dir), ShouldEqual, 0)
			_, err := os.Stat(path)
			So(err, ShouldBeNil)
		})

		Convey("Other files are ignored", func() {
			touch("notes.txt", old)
			So(Sockets(dir), ShouldEqual, 0)
		})

		Convey("Sockets that accept connections are kept", func() {
			path := filepath.Join(dir, "live.sock")
			listener, err := net.Listen("unix", path)
			So(err, ShouldBeNil)
			defer listener.Close()

			So(os.Chtimes(path, old, old), ShouldBeNil)
			So(Sockets(dir), ShouldEqual, 0)
		})

		Convey("A missing directory removes nothing", func() {
			So(Sockets(filepath.Join(dir, "missing")), ShouldEqual, 0)
		})
	})
}
