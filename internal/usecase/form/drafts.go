package form

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errors.New("draft not found")

const (
	DefaultDraftTTL  = 2 * time.Hour
	DefaultMaxDrafts = 256
)

// DraftsOptions bounds the open form sessions. Zero values take the defaults.
type DraftsOptions struct {
	// TTL is how long a draft may sit unused before it is canceled.
	TTL time.Duration
	// Max caps the open drafts; opening one more cancels the least recently used.
	Max int
	Now func() time.Time
}

type draftEntry struct {
	ctrl     *Controller
	lastUsed time.Time
}

// Drafts keeps the open form sessions by id. A draft is removed once it is
// submitted, canceled, idle for longer than the TTL or evicted by the cap.
type Drafts struct {
	ttl   time.Duration
	max   int
	now   func() time.Time
	newID func() string

	mu    sync.Mutex
	items map[string]*draftEntry
}

func NewDrafts(opts DraftsOptions) *Drafts {
	if opts.TTL <= 0 {
		opts.TTL = DefaultDraftTTL
	}
	if opts.Max <= 0 {
		opts.Max = DefaultMaxDrafts
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Drafts{
		ttl:   opts.TTL,
		max:   opts.Max,
		now:   opts.Now,
		newID: uuid.NewString,
		items: make(map[string]*draftEntry),
	}
}

// Open registers c and returns its draft id.
func (d *Drafts) Open(c *Controller) string {
	d.mu.Lock()
	now := d.now()
	evicted := d.sweepLocked(now)
	for len(d.items) >= d.max {
		evicted = append(evicted, d.evictOldestLocked())
	}
	id := d.newID()
	for _, exists := d.items[id]; exists; _, exists = d.items[id] {
		id = d.newID()
	}
	d.items[id] = &draftEntry{ctrl: c, lastUsed: now}
	d.mu.Unlock()

	cancelAll(evicted)
	return id
}

// Get returns the draft and marks it as used. An expired draft is canceled and
// reported as not found.
func (d *Drafts) Get(id string) (*Controller, error) {
	d.mu.Lock()
	e, ok := d.items[id]
	if !ok {
		d.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	now := d.now()
	if d.expired(e, now) {
		delete(d.items, id)
		d.mu.Unlock()
		e.ctrl.Cancel()
		return nil, ErrDraftNotFound
	}
	e.lastUsed = now
	d.mu.Unlock()
	return e.ctrl, nil
}

// Close cancels the draft and forgets it. Closing an unknown id is an error.
func (d *Drafts) Close(id string) error {
	d.mu.Lock()
	e, ok := d.items[id]
	delete(d.items, id)
	d.mu.Unlock()
	if !ok {
		return ErrDraftNotFound
	}
	e.ctrl.Cancel()
	return nil
}

// Forget drops the draft without canceling it, used after a successful submit.
func (d *Drafts) Forget(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.items, id)
}

func (d *Drafts) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

func (d *Drafts) expired(e *draftEntry, now time.Time) bool {
	return now.Sub(e.lastUsed) > d.ttl
}

func (d *Drafts) sweepLocked(now time.Time) []*Controller {
	var out []*Controller
	for id, e := range d.items {
		if d.expired(e, now) {
			delete(d.items, id)
			out = append(out, e.ctrl)
		}
	}
	return out
}

func (d *Drafts) evictOldestLocked() *Controller {
	var (
		oldestID string
		oldest   *draftEntry
	)
	for id, e := range d.items {
		if oldest == nil || e.lastUsed.Before(oldest.lastUsed) {
			oldestID, oldest = id, e
		}
	}
	delete(d.items, oldestID)
	return oldest.ctrl
}

// cancelAll runs outside the registry lock: Cancel waits for a submit in progress.
func cancelAll(ctrls []*Controller) {
	for _, c := range ctrls {
		c.Cancel()
	}
}
