package interfaces

import (
	"context"
	"ponto_eletronica/internal/domain/entities"
)

//go:generate mockgen -source=service_order_slot_interface.go -destination=mocks/mock_service_order_slot.go -package=mock_interfaces

// IServiceOrderSlot abstracts the single storage slot holding the whole collection.
//
// Granularity is the full collection:
//   - Load returns (nil, nil) when the slot was never written
//   - Save overwrites the slot with the given collection (last write wins)
type IServiceOrderSlot interface {
	Load(ctx context.Context) ([]entities.ServiceOrder, error)
	Save(ctx context.Context, orders []entities.ServiceOrder) error
}
