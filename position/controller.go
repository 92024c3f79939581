// Package position keeps the engine's playback position, the seek bar value, the time labels
// and the buffered indicator consistent under both engine notifications and user scrubbing.
//
// A Controller is not safe for concurrent use; it is driven from a single event loop.
package position

import (
	"math"

	"github.com/reelctl/reelctl/log"
	"github.com/reelctl/reelctl/util"
	"github.com/samber/mo"
)

// frameStep is the seek distance of a single frame step.
const frameStep = 0.04

// Seeker is the part of the media engine the controller commands.
type Seeker interface {
	SeekTo(seconds float64) error
}

// View receives every derived value the controller computes.
type View interface {
	SetProgress(percent float64)
	SetTimes(current, total string)
	SetBuffered(width float64)
}

// Controller owns the playback state of one player session.
type Controller struct {
	engine Seeker
	view   View

	position float64
	duration mo.Option[float64]
	buffered float64
	percent  float64
	seeking  bool
}

// New creates a controller at position zero with an unknown duration and renders that state once.
func New(engine Seeker, view View) *Controller {
	c := &Controller{
		engine:   engine,
		view:     view,
		duration: mo.None[float64](),
	}
	c.render()
	c.view.SetBuffered(0)
	return c
}

// OnMediaTimeChanged handles engine position and duration reports.
// While the user is scrubbing the reported values are recorded but nothing shown is touched.
func (c *Controller) OnMediaTimeChanged(position, duration float64) {
	c.duration = sanitizeDuration(duration)
	c.position = c.clampTarget(sanitizePosition(position))

	if c.seeking {
		return
	}

	c.render()
}

// OnMediaBufferChanged updates the buffered indicator from the end of the last buffered range.
// A NaN or negative end means the engine reports no range.
func (c *Controller) OnMediaBufferChanged(bufferedEnd, duration float64) {
	c.duration = sanitizeDuration(duration)
	c.buffered = bufferedWidth(bufferedEnd, c.duration)
	c.view.SetBuffered(c.buffered)
}

// OnUserSeekDrag shows the scrub position without commanding the engine.
func (c *Controller) OnUserSeekDrag(percent float64) {
	percent = sanitizePercent(percent)
	c.seeking = true
	c.percent = percent

	c.view.SetProgress(percent)
	c.view.SetTimes(FormatDuration(c.targetFor(percent)), c.totalLabel())
}

// OnUserSeekCommit issues a single seek for percent and resumes engine-driven updates.
// The engine result is not retried; the next engine notification reflects the truth.
func (c *Controller) OnUserSeekCommit(percent float64) error {
	percent = sanitizePercent(percent)
	target := c.targetFor(percent)

	c.percent = percent
	c.seeking = false

	return c.seek(target)
}

// CancelDrag abandons an uncommitted scrub without seeking and shows the engine position again.
func (c *Controller) CancelDrag() {
	if !c.seeking {
		return
	}
	c.seeking = false
	c.render()
}

// SkipBy seeks delta seconds from the current position, never before zero and never past a known duration.
func (c *Controller) SkipBy(delta float64) error {
	if !util.IsFinite(delta) {
		delta = 0
	}
	return c.seek(c.clampTarget(c.position + delta))
}

// StepFrame advances by roughly one frame.
func (c *Controller) StepFrame() error {
	return c.seek(c.clampTarget(c.position + frameStep))
}

// Reset returns the shown position to zero, as after a stop.
func (c *Controller) Reset() {
	c.position = 0
	if !c.seeking {
		c.render()
	}
}

// Percent is the seek bar value currently shown.
func (c *Controller) Percent() float64 {
	return c.percent
}

// Seeking reports whether a user scrub is in progress.
func (c *Controller) Seeking() bool {
	return c.seeking
}

// Position is the last position reported by the engine.
func (c *Controller) Position() float64 {
	return c.position
}

// Duration is the media length, None while unknown.
func (c *Controller) Duration() mo.Option[float64] {
	return c.duration
}

// BufferedWidth is the buffered indicator width in percent.
func (c *Controller) BufferedWidth() float64 {
	return c.buffered
}

func (c *Controller) render() {
	c.percent = percentOf(c.position, c.duration)
	c.view.SetProgress(c.percent)
	c.view.SetTimes(FormatDuration(c.position), c.totalLabel())
}

func (c *Controller) seek(target float64) error {
	log.Debugf("seek to %.3f", target)
	if err := c.engine.SeekTo(target); err != nil {
		log.Warnf("seek to %.3f rejected: %v", target, err)
		return err
	}
	return nil
}

func (c *Controller) totalLabel() string {
	return FormatDuration(c.duration.OrElse(0))
}

func (c *Controller) targetFor(percent float64) float64 {
	return percent * c.duration.OrElse(0) / 100
}

func (c *Controller) clampTarget(target float64) float64 {
	return util.Clamp(target, 0, c.duration.OrElse(math.Inf(1)))
}

func percentOf(position float64, duration mo.Option[float64]) float64 {
	d, ok := duration.Get()
	if !ok {
		return 0
	}
	return util.Clamp(position*100/d, 0, 100)
}

func bufferedWidth(end float64, duration mo.Option[float64]) float64 {
	d, ok := duration.Get()
	if !ok || !util.IsFinite(end) || end <= 0 {
		return 0
	}
	return math.Min(100, end*100/d)
}

func sanitizePosition(p float64) float64 {
	if !util.IsFinite(p) || p < 0 {
		return 0
	}
	return p
}

// sanitizeDuration maps zero, negative, NaN and infinite lengths to unknown.
func sanitizeDuration(d float64) mo.Option[float64] {
	if !util.IsFinite(d) || d <= 0 {
		return mo.None[float64]()
	}
	return mo.Some(d)
}

func sanitizePercent(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return util.Clamp(p, 0, 100)
}
