package booking

import (
	agreementModel "warehouse-booking/models/agreement"
	inventoryTypes "warehouse-booking/types/inventory"
)

// BookingCreateRequest represents the request payload for creating a booking
type BookingCreateRequest struct {
	ListingID          string                                `json:"listing_id" validate:"required,max=36"`
	StartDate          string                                `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            string                                `json:"end_date" validate:"required,datetime=2006-01-02"`
	SpaceRequestedSqft *int                                  `json:"space_requested_sqft" validate:"omitempty,gt=0"`
	Inventory          []inventoryTypes.InventoryItemRequest `json:"inventory" validate:"omitempty,dive"`
}

// AgreementEditRequest carries any combination of the three host edit variants.
type AgreementEditRequest struct {
	Sections          *[]agreementModel.Section `json:"sections" validate:"omitempty,dive"`
	SpecialConditions *[]string                 `json:"special_conditions" validate:"omitempty,dive,required,max=1000"`
	Notes             *string                   `json:"notes" validate:"omitempty,max=10000"`
}

type RejectRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=2000"`
}

type ListQuery struct {
	Status  string `query:"status"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}
