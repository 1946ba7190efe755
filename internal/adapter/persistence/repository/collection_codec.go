package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ponto_eletronica/internal/domain/entities"
)

// EncodeCollection serializes the collection as the JSON array stored in the slot.
// An empty collection is written as [] rather than null.
func EncodeCollection(orders []entities.ServiceOrder) ([]byte, error) {
	if orders == nil {
		orders = []entities.ServiceOrder{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return data, nil
}

// DecodeCollection parses a stored collection. Empty payloads and null decode as an
// empty collection. Records with fields of the wrong type are kept (see
// entities.ServiceOrder.UnmarshalJSON); only malformed JSON, or an element that
// is not an object, fails the whole collection.
func DecodeCollection(data []byte) ([]entities.ServiceOrder, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	var orders []entities.ServiceOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	return orders, nil
}
