package listing

import (
	"errors"
	"fmt"

	listingModel "warehouse-booking/models/listing"
	userModel "warehouse-booking/models/user"

	"gorm.io/gorm"
)

// ErrListingNotFound is returned when no listing has the requested id.
var ErrListingNotFound = errors.New("listing not found")

// Snapshot is what booking creation needs to know about a listing.
type Snapshot struct {
	Listing      listingModel.Listing
	HostApproved bool
}

func (s *Snapshot) IsAvailable() bool {
	return s.Listing.AvailabilityStatus == listingModel.AvailabilityAvailable
}

// Lookup reads listings for booking creation.
type Lookup interface {
	Find(tx *gorm.DB, listingID string) (*Snapshot, error)
}

// Repository is the GORM backed Lookup.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Find(tx *gorm.DB, listingID string) (*Snapshot, error) {
	var l listingModel.Listing
	if err := tx.Preload("Host").First(&l, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to load listing %s: %w", listingID, err)
	}
	return &Snapshot{
		Listing:      l,
		HostApproved: l.Host.ApprovalStatus == userModel.ApprovalApproved,
	}, nil
}
