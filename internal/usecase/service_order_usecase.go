package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"ponto_eletronica/internal/domain/entities"
	"ponto_eletronica/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrServiceOrderNotFound  = errors.New("service order not found")
	ErrInvalidServiceOrderID = errors.New("invalid service order id")
	ErrDeleteNotConfirmed    = errors.New("delete requires confirmation")
)

//go:generate mockgen -source=service_order_usecase.go -destination=../adapter/http/handlers/mocks/mock_service_order_usecase.go -package=mocks

// IServiceOrderUseCase exposes the collection held by the shop.
//
// Reads project views from the in-memory collection; every mutation replaces
// the collection and mirrors it to the storage slot.
type IServiceOrderUseCase interface {
	List(ctx context.Context, q Query) []entities.ServiceOrder
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Dashboard(ctx context.Context) Dashboard
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Replace(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	LastSaveError() error
}

// ServiceOrderUseCase owns the collection. A single lock serializes mutations,
// which keeps the single-owner, last-write-wins model of the shop.
type ServiceOrderUseCase struct {
	slot interfaces.IServiceOrderSlot
	log  logrus.FieldLogger

	now   func() time.Time
	newID func() string

	mu      sync.RWMutex
	orders  []entities.ServiceOrder
	saveErr error
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(slot interfaces.IServiceOrderSlot, log logrus.FieldLogger) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		slot:  slot,
		log:   log.WithField("component", "store"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load replaces the in-memory collection with the stored one. A corrupt or
// unreadable slot degrades to an empty collection.
func (u *ServiceOrderUseCase) Load(ctx context.Context) {
	orders, err := u.slot.Load(ctx)
	if err != nil {
		u.log.WithError(err).Error("failed to load service orders, starting with an empty collection")
		orders = nil
	}

	u.mu.Lock()
	u.orders = orders
	u.mu.Unlock()

	u.log.WithField("count", len(orders)).Info("service orders loaded")
}

// LastSaveError reports the outcome of the most recent write to the slot.
func (u *ServiceOrderUseCase) LastSaveError() error {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.saveErr
}

func (u *ServiceOrderUseCase) List(_ context.Context, q Query) []entities.ServiceOrder {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return Filter(u.orders, q)
}

func (u *ServiceOrderUseCase) Dashboard(_ context.Context) Dashboard {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return BuildDashboard(u.orders)
}

func (u *ServiceOrderUseCase) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	u.mu.RLock()
	defer u.mu.RUnlock()
	idx := indexOf(u.orders, id)
	if idx < 0 {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return u.orders[idx].Clone(), nil
}

// Create assigns a fresh id and creation timestamp and appends the record.
func (u *ServiceOrderUseCase) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	var created entities.ServiceOrder
	err := u.mutate(ctx, func(current []entities.ServiceOrder) ([]entities.ServiceOrder, error) {
		created = o.Clone()
		created.ID = u.uniqueID(current)
		created.CreatedAt = u.now()
		if created.Images == nil {
			created.Images = []string{}
		}
		return append(current, created), nil
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.log.WithField("order_id", created.ID).Info("service order created")
	return created.Clone(), nil
}

// Replace overwrites every field of the record with the same id, except ID and
// CreatedAt which keep their original values.
func (u *ServiceOrderUseCase) Replace(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	id := strings.TrimSpace(o.ID)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	var updated entities.ServiceOrder
	err := u.mutate(ctx, func(current []entities.ServiceOrder) ([]entities.ServiceOrder, error) {
		idx := indexOf(current, id)
		if idx < 0 {
			return nil, ErrServiceOrderNotFound
		}
		updated = o.Clone()
		updated.ID = current[idx].ID
		updated.CreatedAt = current[idx].CreatedAt
		if updated.Images == nil {
			updated.Images = []string{}
		}
		current[idx] = updated
		return current, nil
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.log.WithField("order_id", updated.ID).Info("service order updated")
	return updated.Clone(), nil
}

// Delete removes the record. Without confirmation the collection is left untouched.
func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceOrderID
	}
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	err := u.mutate(ctx, func(current []entities.ServiceOrder) ([]entities.ServiceOrder, error) {
		if indexOf(current, id) < 0 {
			return nil, ErrServiceOrderNotFound
		}
		return slices.DeleteFunc(current, func(o entities.ServiceOrder) bool { return o.ID == id }), nil
	})
	if err != nil {
		return err
	}
	u.log.WithField("order_id", id).Info("service order deleted")
	return nil
}

// mutate applies fn to a copy of the collection. The copy is committed only when
// fn succeeds, then the whole collection is written to the slot. A failed write is
// logged; the committed mutation stays in memory.
func (u *ServiceOrderUseCase) mutate(ctx context.Context, fn func([]entities.ServiceOrder) ([]entities.ServiceOrder, error)) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	next, err := fn(slices.Clone(u.orders))
	if err != nil {
		return err
	}
	u.orders = next

	u.saveErr = u.slot.Save(ctx, slices.Clone(next))
	if u.saveErr != nil {
		u.log.WithError(u.saveErr).WithField("count", len(next)).Warn("failed to persist service orders")
	}
	return nil
}

func (u *ServiceOrderUseCase) uniqueID(current []entities.ServiceOrder) string {
	for {
		id := u.newID()
		if id != "" && indexOf(current, id) < 0 {
			return id
		}
	}
}

func indexOf(orders []entities.ServiceOrder, id string) int {
	return slices.IndexFunc(orders, func(o entities.ServiceOrder) bool { return o.ID == id })
}
