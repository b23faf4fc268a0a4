package inventory

// InventoryItemRequest declares one good to store.
type InventoryItemRequest struct {
	Name       string   `json:"name" validate:"required,max=255"`
	Type       string   `json:"type" validate:"omitempty,oneof=pallet box item"`
	SKU        *string  `json:"sku" validate:"omitempty,max=120"`
	Quantity   int      `json:"quantity" validate:"omitempty,gte=1"`
	Category   *string  `json:"category" validate:"omitempty,max=120"`
	Dimensions *string  `json:"dimensions" validate:"omitempty,max=120"`
	WeightKg   *float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	Notes      *string  `json:"notes"`
}

// InventoryItemUpdateRequest changes only the supplied fields.
type InventoryItemUpdateRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Type       *string  `json:"type" validate:"omitempty,oneof=pallet box item"`
	SKU        *string  `json:"sku" validate:"omitempty,max=120"`
	Quantity   *int     `json:"quantity" validate:"omitempty,gte=1"`
	Category   *string  `json:"category" validate:"omitempty,max=120"`
	Dimensions *string  `json:"dimensions" validate:"omitempty,max=120"`
	WeightKg   *float64 `json:"weight_kg" validate:"omitempty,gte=0"`
	Notes      *string  `json:"notes"`
}
