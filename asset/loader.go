package asset

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/status"
)

type entry struct {
	path   string
	state  atomic.Int32
	sprite *Sprite
	err    error
}

// Loader decodes sprites from a filesystem in background goroutines
// Callers poll Status; nothing in the loader blocks the simulation
type Loader struct {
	fsys fs.FS

	mu      sync.RWMutex
	entries []*entry // index = Handle-1
	byPath  map[string]Handle

	wg sync.WaitGroup

	statLoaded *atomic.Int64
	statFailed *atomic.Int64
}

// NewLoader creates a loader reading from fsys, reporting counts into reg when non-nil
func NewLoader(fsys fs.FS, reg *status.Registry) *Loader {
	l := &Loader{
		fsys:   fsys,
		byPath: make(map[string]Handle),
	}
	if reg != nil {
		l.statLoaded = reg.Ints.Get(status.KeyAssetLoaded)
		l.statFailed = reg.Ints.Get(status.KeyAssetFailed)
	}
	return l
}

// Load requests a sprite and returns its handle immediately
// Repeated requests for the same path share one handle and one decode
func (l *Loader) Load(p string) Handle {
	l.mu.Lock()
	if h, ok := l.byPath[p]; ok {
		l.mu.Unlock()
		return h
	}
	e := &entry{path: p}
	l.entries = append(l.entries, e)
	h := Handle(len(l.entries))
	l.byPath[p] = h
	l.mu.Unlock()

	l.wg.Add(1)
	core.Go(func() {
		defer l.wg.Done()
		l.decode(e)
	})
	return h
}

func (l *Loader) decode(e *entry) {
	sprite, err := l.readSprite(e.path)
	if err != nil {
		e.err = err
		e.state.Store(int32(StatusFailed))
		if l.statFailed != nil {
			l.statFailed.Add(1)
		}
		log.Printf("asset: %v", err)
		return
	}
	e.sprite = sprite
	// Publish after the sprite is written; readers check state first
	e.state.Store(int32(StatusLoaded))
	if l.statLoaded != nil {
		l.statLoaded.Add(1)
	}
	log.Printf("asset: loaded %s (%dx%d)", e.path, sprite.Width, sprite.Height)
}

func (l *Loader) readSprite(p string) (*Sprite, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	switch path.Ext(p) {
	case ".txt":
		s, err := DecodeText(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return s, nil
	case ".png":
		s, err := DecodePNG(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("decode %s: unsupported sprite format %q", p, path.Ext(p))
	}
}

func (l *Loader) lookup(h Handle) *entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if h == 0 || int(h) > len(l.entries) {
		return nil
	}
	return l.entries[h-1]
}

// Status reports the load state; unknown handles read as failed
func (l *Loader) Status(h Handle) Status {
	e := l.lookup(h)
	if e == nil {
		return StatusFailed
	}
	return Status(e.state.Load())
}

// Sprite returns the decoded sprite once the handle is loaded
func (l *Loader) Sprite(h Handle) (*Sprite, bool) {
	e := l.lookup(h)
	if e == nil || Status(e.state.Load()) != StatusLoaded {
		return nil, false
	}
	return e.sprite, true
}

// Err returns the decode error of a failed handle
func (l *Loader) Err(h Handle) error {
	e := l.lookup(h)
	if e == nil {
		return fmt.Errorf("unknown handle %d", h)
	}
	if Status(e.state.Load()) != StatusFailed {
		return nil
	}
	return e.err
}

// Wait blocks until every requested decode has finished
// Host and test code only; the simulation never calls it
func (l *Loader) Wait() {
	l.wg.Wait()
}
