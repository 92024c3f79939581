// Package history persists the last playback position of every media target so it can be resumed.
package history

import (
	"sort"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/reelctl/reelctl/filesystem"
	"github.com/reelctl/reelctl/util"
	"github.com/reelctl/reelctl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// finishedThreshold is how close to the end a position counts as watched to completion.
const finishedThreshold = 5.0

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var now = time.Now

// Get returns every saved entry keyed by target.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Save records position for target. A position within a few seconds of the end is stored as 0
// so the next launch starts from the beginning.
func Save(target string, position, duration float64) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if !util.IsFinite(position) || position < 0 {
		position = 0
	}
	if !util.IsFinite(duration) || duration < 0 {
		duration = 0
	}
	if duration > 0 && position >= duration-finishedThreshold {
		position = 0
	}

	saved[target] = &Entry{
		Target:    target,
		Title:     util.MediaTitle(target),
		Position:  position,
		Duration:  duration,
		UpdatedAt: now(),
	}

	return cacher.Set(saved)
}

// Find returns the entry for target.
func Find(target string) (mo.Option[*Entry], error) {
	saved, err := Get()
	if err != nil {
		return mo.None[*Entry](), err
	}

	if entry, ok := saved[target]; ok {
		return mo.Some(entry), nil
	}
	return mo.None[*Entry](), nil
}

func Remove(target string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, target)
	return cacher.Set(saved)
}

// Search returns entries whose title or target fuzzy-matches query, most recent first.
// An empty query matches everything.
func Search(query string) ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Filter(lo.Values(saved), func(e *Entry, _ int) bool {
		return query == "" || fuzzy.MatchFold(query, e.Title) || fuzzy.MatchFold(query, e.Target)
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
	})

	return entries, nil
}
