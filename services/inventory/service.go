package inventory

import (
	"errors"
	"fmt"

	"warehouse-booking/apperror"
	"warehouse-booking/logger"
	bookingModel "warehouse-booking/models/booking"
	inventoryModel "warehouse-booking/models/inventory"
	"warehouse-booking/types"
	inventoryTypes "warehouse-booking/types/inventory"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service manages the goods a renter declares against a booking.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// BuildItem turns a request into an unsaved item owned by renterID.
func BuildItem(bookingID, renterID string, req inventoryTypes.InventoryItemRequest) inventoryModel.InventoryItem {
	itemType := inventoryModel.ItemType(req.Type)
	if itemType == "" {
		itemType = inventoryModel.ItemTypeItem
	}
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return inventoryModel.InventoryItem{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		RenterID:   renterID,
		Name:       req.Name,
		Type:       itemType,
		SKU:        req.SKU,
		Quantity:   quantity,
		Category:   req.Category,
		Dimensions: req.Dimensions,
		WeightKg:   req.WeightKg,
		Notes:      req.Notes,
	}
}

// ForBooking lists a booking's items in declaration order.
func ForBooking(db *gorm.DB, bookingID string) ([]inventoryModel.InventoryItem, error) {
	var items []inventoryModel.InventoryItem
	err := db.Where("booking_id = ?", bookingID).Order("created_at ASC").Order("id ASC").Find(&items).Error
	return items, err
}

// List returns the inventory of a booking to either participant.
func (s *Service) List(actor types.Actor, bookingID string) ([]inventoryModel.InventoryItem, error) {
	b, err := s.findBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsParticipant(actor.ID) && !actor.IsAdmin() {
		return nil, apperror.Forbidden("You do not have access to this booking")
	}
	items, err := ForBooking(s.DB, bookingID)
	if err != nil {
		return nil, apperror.Internal("failed to list inventory", err)
	}
	return items, nil
}

// Add declares a new item on an active booking of the renter.
func (s *Service) Add(actor types.Actor, bookingID string, req inventoryTypes.InventoryItemRequest) (*inventoryModel.InventoryItem, error) {
	if req.Name == "" {
		return nil, apperror.Validation("Missing required field: name")
	}
	b, err := s.findBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.RenterID != actor.ID {
		return nil, apperror.Forbidden("Only the renter can perform this action")
	}
	if b.Status.IsTerminal() {
		return nil, apperror.NotFound("Booking not found or is no longer active")
	}

	item := BuildItem(bookingID, actor.ID, req)
	if err := s.DB.Create(&item).Error; err != nil {
		logger.Error("Failed to create inventory item", err)
		return nil, apperror.Internal("failed to create inventory item", err)
	}
	logger.Success(fmt.Sprintf("Inventory item %s added to booking %s", item.ID, bookingID))
	return &item, nil
}

// Update changes the supplied fields of an item owned by the actor.
func (s *Service) Update(actor types.Actor, itemID string, req inventoryTypes.InventoryItemUpdateRequest) (*inventoryModel.InventoryItem, error) {
	item, err := s.findOwned(actor, itemID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		updates["type"] = inventoryModel.ItemType(*req.Type)
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Dimensions != nil {
		updates["dimensions"] = *req.Dimensions
	}
	if req.WeightKg != nil {
		updates["weight_kg"] = *req.WeightKg
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return nil, apperror.Validation("No valid fields to update")
	}

	if err := s.DB.Model(item).Updates(updates).Error; err != nil {
		return nil, apperror.Internal("failed to update inventory item", err)
	}
	if err := s.DB.First(item, "id = ?", itemID).Error; err != nil {
		return nil, apperror.Internal("failed to reload inventory item", err)
	}
	return item, nil
}

// Delete removes an item owned by the actor.
func (s *Service) Delete(actor types.Actor, itemID string) error {
	item, err := s.findOwned(actor, itemID)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(item).Error; err != nil {
		return apperror.Internal("failed to delete inventory item", err)
	}
	logger.Success(fmt.Sprintf("Inventory item %s deleted", itemID))
	return nil
}

func (s *Service) findBooking(bookingID string) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	if err := s.DB.First(&b, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Booking not found")
		}
		return nil, apperror.Internal("failed to load booking", err)
	}
	return &b, nil
}

func (s *Service) findOwned(actor types.Actor, itemID string) (*inventoryModel.InventoryItem, error) {
	var item inventoryModel.InventoryItem
	if err := s.DB.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Inventory item not found")
		}
		return nil, apperror.Internal("failed to load inventory item", err)
	}
	if item.RenterID != actor.ID {
		return nil, apperror.Forbidden("You do not have permission to modify this item")
	}
	return &item, nil
}
