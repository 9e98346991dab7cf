// Package inventory provides the application layer for inventory
// reconciliation: turning loosely-specified item descriptions into
// canonical, deduplicated rows.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/askahmah/v1/internal/domain/inventory"
	"github.com/askahmah/v1/internal/ports/inbound"
	"github.com/askahmah/v1/internal/ports/outbound"
	"github.com/askahmah/v1/pkg/errors"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

// Service implements the inventory reconciliation use cases
type Service struct {
	repo   outbound.InventoryRepository
	cache  outbound.CacheRepository
	logger *zap.Logger
}

// NewService creates a new inventory service
func NewService(repo outbound.InventoryRepository, cache outbound.CacheRepository, logger *zap.Logger) inbound.InventoryService {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger.Named("inventory-service"),
	}
}

// AddItems normalizes and merges a batch of items into the user's inventory.
// Each item is reconciled independently in input order: a later duplicate in
// the same batch overwrites the effect of an earlier one. There is no batch
// atomicity; a storage failure on item k leaves items 1..k-1 committed.
func (s *Service) AddItems(ctx context.Context, userID string, items []inbound.AddItemCommand) error {
	for _, cmd := range items {
		item, err := inventory.NewItem(userID, cmd.Name, inventory.ItemType(cmd.Type), cmd.Quantity, cmd.Unit)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		existing, err := s.repo.FindByName(ctx, userID, item.Type, item.Name)
		if err != nil {
			return errors.NewDatabaseError("find inventory item", err)
		}

		if existing != nil {
			existing.MergeFrom(item)
			if err := s.repo.Update(ctx, existing); err != nil {
				return errors.NewDatabaseError("update inventory item", err)
			}
			s.logger.Debug("Inventory item updated",
				zap.String("user_id", userID),
				zap.String("name", existing.Name),
				zap.String("type", string(existing.Type)),
			)
			continue
		}

		if err := s.repo.Create(ctx, item); err != nil {
			return errors.NewDatabaseError("create inventory item", err)
		}
		s.logger.Debug("Inventory item added",
			zap.String("user_id", userID),
			zap.String("name", item.Name),
			zap.String("type", string(item.Type)),
		)
	}

	s.invalidate(ctx, userID)
	return nil
}

// RemoveItems deletes rows by name across both item types. Names are
// canonicalized the same way as on add, and absent names are silent no-ops.
func (s *Service) RemoveItems(ctx context.Context, userID string, names []string) error {
	for _, raw := range names {
		name := inventory.CanonicalName(raw)
		if name == "" {
			continue
		}
		if err := s.repo.DeleteByName(ctx, userID, name); err != nil {
			return errors.NewDatabaseError("delete inventory item", err)
		}
	}

	s.invalidate(ctx, userID)
	return nil
}

// GetInventory returns the user's full inventory partitioned by type.
// Reads are cache-first; mutations invalidate the snapshot.
func (s *Service) GetInventory(ctx context.Context, userID string) (*inbound.InventoryDTO, error) {
	key := cacheKey(userID)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var dto inbound.InventoryDTO
		if err := json.Unmarshal(cached, &dto); err == nil {
			return &dto, nil
		}
		// Unreadable snapshot; fall through to the store.
		_ = s.cache.Delete(ctx, key)
	}

	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list inventory", err)
	}

	dto := &inbound.InventoryDTO{
		IngredientInventory:  make([]inbound.ItemDTO, 0),
		KitchenwareInventory: make([]inbound.ItemDTO, 0),
	}
	for _, item := range items {
		out := itemToDTO(item)
		switch item.Type {
		case inventory.ItemTypeKitchenware:
			dto.KitchenwareInventory = append(dto.KitchenwareInventory, out)
		default:
			dto.IngredientInventory = append(dto.IngredientInventory, out)
		}
	}

	if payload, err := json.Marshal(dto); err == nil {
		if err := s.cache.Set(ctx, key, payload, cacheTTL); err != nil {
			s.logger.Debug("Inventory cache set failed", zap.Error(err))
		}
	}

	return dto, nil
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, cacheKey(userID)); err != nil {
		s.logger.Debug("Inventory cache invalidation failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func cacheKey(userID string) string {
	return fmt.Sprintf("inventory:%s", userID)
}

func itemToDTO(item inventory.Item) inbound.ItemDTO {
	return inbound.ItemDTO{
		ID:          item.ID.String(),
		Name:        item.Name,
		Type:        string(item.Type),
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		DateAdded:   item.DateAdded,
		LastUpdated: item.LastUpdated,
	}
}
