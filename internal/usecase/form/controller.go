package form

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"ponto_eletronica/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRequiredField    = errors.New("required field missing")
	ErrControllerClosed = errors.New("form already submitted or canceled")
	ErrImageIndex       = errors.New("image index out of range")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Mode tells whether submit creates a record or replaces an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Committer receives the working copy on submit.
type Committer interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Replace(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
}

type Options struct {
	MaxImageBytes   int64
	ReadConcurrency int
	Now             func() time.Time
	Log             logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.MaxImageBytes <= 0 {
		o.MaxImageBytes = DefaultMaxImageBytes
	}
	if o.ReadConcurrency <= 0 {
		o.ReadConcurrency = 4
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	return o
}

// Controller holds the working copy of one create or edit session.
//
// Once Submit succeeds or Cancel is called the controller is closed: further edits
// fail with ErrControllerClosed and image reads still in flight are discarded.
type Controller struct {
	opts Options
	log  logrus.FieldLogger

	mu      sync.Mutex
	mode    Mode
	working entities.ServiceOrder
	closed  bool
	batches int
	pending sync.WaitGroup
}

// NewCreate starts a blank working copy. status is the hint of the entry point
// (Pending for a new order, Quote for the quote shortcut).
func NewCreate(status entities.ServiceStatus, opts Options) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		opts:    opts,
		log:     opts.Log.WithField("component", "form"),
		mode:    ModeCreate,
		working: entities.NewServiceOrderDefaults(status, opts.Now()),
	}
}

// NewEdit starts a working copy from an existing record. Fields missing from the
// record (empty type, status or images) fall back to the defaults.
func NewEdit(existing entities.ServiceOrder, opts Options) *Controller {
	opts = opts.withDefaults()
	working := existing.Clone()
	defaults := entities.NewServiceOrderDefaults(entities.StatusPending, opts.Now())
	if working.EquipmentType == "" {
		working.EquipmentType = defaults.EquipmentType
	}
	if working.Status == "" {
		working.Status = defaults.Status
	}
	if working.Images == nil {
		working.Images = []string{}
	}
	return &Controller{
		opts:    opts,
		log:     opts.Log.WithFields(logrus.Fields{"component": "form", "order_id": existing.ID}),
		mode:    ModeEdit,
		working: working,
	}
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// Snapshot returns a copy of the working copy.
func (c *Controller) Snapshot() entities.ServiceOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.working.Clone()
}

func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Apply updates the working copy with the provided fields.
func (c *Controller) Apply(in Input) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}
	return in.apply(&c.working)
}

// RemoveImage drops the image at index from the working copy.
func (c *Controller) RemoveImage(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrControllerClosed
	}
	if index < 0 || index >= len(c.working.Images) {
		return ErrImageIndex
	}
	images := make([]string, 0, len(c.working.Images)-1)
	images = append(images, c.working.Images[:index]...)
	c.working.Images = append(images, c.working.Images[index+1:]...)
	return nil
}

// Batch is one selection of image files being read.
type Batch struct {
	done     chan struct{}
	mu       sync.Mutex
	accepted int
	warnings []Warning
}

// AttachResult summarizes a finished batch.
type AttachResult struct {
	Accepted int       `json:"accepted"`
	Warnings []Warning `json:"warnings"`
}

// Wait blocks until every file of the batch has been read and appended (or skipped).
func (b *Batch) Wait() AttachResult {
	<-b.done
	b.mu.Lock()
	defer b.mu.Unlock()
	return AttachResult{Accepted: b.accepted, Warnings: append([]Warning{}, b.warnings...)}
}

// Attach reads the files concurrently and appends the accepted ones to the working
// copy. Files over the cap, or that are not images, are skipped with a warning
// while the rest of the batch continues.
//
// Every file gets a token (its position in the selection). Completions are
// appended in token order, so the resulting images follow the selection order
// no matter which read finishes first.
func (c *Controller) Attach(files []ImageFile) (*Batch, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrControllerClosed
	}
	c.batches++
	batchID := c.batches
	c.pending.Add(1)
	c.mu.Unlock()

	b := &Batch{done: make(chan struct{})}
	results := make([]string, len(files))
	ready := make([]bool, len(files))
	next := 0

	// commit appends every consecutive finished token starting at next.
	commit := func(token int, dataURL string) {
		b.mu.Lock()
		defer b.mu.Unlock()
		results[token] = dataURL
		ready[token] = true
		var flush []string
		for next < len(files) && ready[next] {
			if results[next] != "" {
				flush = append(flush, results[next])
			}
			next++
		}
		if len(flush) > 0 {
			c.appendImages(batchID, flush)
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(c.opts.ReadConcurrency)
	for i, f := range files {
		g.Go(func() error {
			dataURL, warn := readDataURL(f, c.opts.MaxImageBytes)
			if warn != nil {
				c.log.WithFields(logrus.Fields{"file": warn.File, "code": warn.Code}).Info("image rejected")
				b.mu.Lock()
				b.warnings = append(b.warnings, *warn)
				b.mu.Unlock()
			} else {
				b.mu.Lock()
				b.accepted++
				b.mu.Unlock()
			}
			commit(i, dataURL)
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(b.done)
		c.pending.Done()
	}()
	return b, nil
}

// AttachAndWait is Attach followed by Wait.
func (c *Controller) AttachAndWait(files []ImageFile) (AttachResult, error) {
	b, err := c.Attach(files)
	if err != nil {
		return AttachResult{}, err
	}
	return b.Wait(), nil
}

// WaitPending blocks until every in-flight image batch has finished.
func (c *Controller) WaitPending() {
	c.pending.Wait()
}

func (c *Controller) appendImages(batchID int, images []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		c.log.WithField("batch", batchID).Debug("discarding image read after form was closed")
		return
	}
	c.working.Images = append(c.working.Images, images...)
}

type submission struct {
	CustomerName   string `validate:"required"`
	EquipmentBrand string `validate:"required"`
	ArrivalDate    string `validate:"omitempty,datetime=2006-01-02"`
	DeliveryDate   string `validate:"omitempty,datetime=2006-01-02"`
}

// ValidationError lists the fields that block a submit.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid form: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrRequiredField
}

// Validate checks the fields required at submit.
func (c *Controller) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return validateWorking(c.working)
}

func validateWorking(o entities.ServiceOrder) error {
	err := validate.Struct(submission{
		CustomerName:   strings.TrimSpace(o.CustomerName),
		EquipmentBrand: strings.TrimSpace(o.EquipmentBrand),
		ArrivalDate:    o.ArrivalDate,
		DeliveryDate:   o.DeliveryDate,
	})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, lowerFirst(fe.Field()))
	}
	return &ValidationError{Fields: fields}
}

// Submit commits the working copy: create mode appends a new record, edit mode
// replaces the record with the same id. The controller is closed on success and
// stays open on failure so the user can fix the form.
func (c *Controller) Submit(ctx context.Context, store Committer) (entities.ServiceOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return entities.ServiceOrder{}, ErrControllerClosed
	}
	if err := validateWorking(c.working); err != nil {
		return entities.ServiceOrder{}, err
	}

	var (
		saved entities.ServiceOrder
		err   error
	)
	if c.mode == ModeEdit {
		saved, err = store.Replace(ctx, c.working.Clone())
	} else {
		saved, err = store.Create(ctx, c.working.Clone())
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	c.closed = true
	return saved, nil
}

// Cancel discards the working copy without touching the collection.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
