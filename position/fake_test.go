package position

import "errors"

type fakeEngine struct {
	seeks []float64
	fail  bool
}

func (f *fakeEngine) SeekTo(seconds float64) error {
	f.seeks = append(f.seeks, seconds)
	if f.fail {
		return errors.New("no media loaded")
	}
	return nil
}

type fakeView struct {
	percent  float64
	current  string
	total    string
	buffered float64
	renders  int
}

func (f *fakeView) SetProgress(percent float64) {
	f.percent = percent
	f.renders++
}

func (f *fakeView) SetTimes(current, total string) {
	f.current = current
	f.total = total
}

func (f *fakeView) SetBuffered(width float64) {
	f.buffered = width
}
