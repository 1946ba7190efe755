package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ponto_eletronica/internal/domain/entities"
	"ponto_eletronica/internal/usecase/interfaces"
)

// ServiceOrderFileSlot keeps the collection in one JSON file named after the slot key.
//
// Writes go to a temporary file first and are renamed over the slot, so a crash
// mid-write leaves the previous collection intact.
type ServiceOrderFileSlot struct {
	path string
}

var _ interfaces.IServiceOrderSlot = (*ServiceOrderFileSlot)(nil)

func NewServiceOrderFileSlot(dir, key string) (*ServiceOrderFileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file slot: create dir %s: %w", dir, err)
	}
	return &ServiceOrderFileSlot{path: filepath.Join(dir, sanitizeSlotKey(key)+".json")}, nil
}

func (s *ServiceOrderFileSlot) Path() string {
	return s.path
}

func (s *ServiceOrderFileSlot) Load(ctx context.Context) ([]entities.ServiceOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file slot: read: %w", err)
	}
	return DecodeCollection(data)
}

func (s *ServiceOrderFileSlot) Save(ctx context.Context, orders []entities.ServiceOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := EncodeCollection(orders)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("file slot: create temp: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("file slot: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("file slot: close: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("file slot: rename: %w", err)
	}
	return nil
}

func sanitizeSlotKey(key string) string {
	key = filepath.Base(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "..", "")
	if key == "" || key == "." || key == string(filepath.Separator) {
		key = "slot"
	}
	return key
}
