package seeders

import (
	"errors"
	"log"

	listingModel "warehouse-booking/models/listing"
	userModel "warehouse-booking/models/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Marketplace is the demo data set: one approved account per role and one
// available listing owned by the host.
type Marketplace struct {
	Renter  userModel.User
	Host    userModel.User
	Admin   userModel.User
	Listing listingModel.Listing
}

var demoUsers = []userModel.User{
	{Email: "renter@wareshare.test", FullName: "Riley Renter", Role: userModel.RoleRenter},
	{Email: "host@wareshare.test", FullName: "Harper Host", Role: userModel.RoleHost},
	{Email: "admin@wareshare.test", FullName: "Avery Admin", Role: userModel.RoleAdmin},
}

// SeedDemoMarketplace inserts whatever part of the demo data set is missing
// and returns the full set.
func SeedDemoMarketplace(db *gorm.DB) (*Marketplace, error) {
	log.Printf("🔍 Checking demo marketplace data...")

	users := make([]userModel.User, 0, len(demoUsers))
	for _, demo := range demoUsers {
		u, err := firstOrCreateUser(db, demo)
		if err != nil {
			log.Printf("❌ Failed to seed user %s: %v", demo.Email, err)
			return nil, err
		}
		users = append(users, *u)
	}
	m := &Marketplace{Renter: users[0], Host: users[1], Admin: users[2]}

	description := "Pallet racking, dock level loading and 24/7 access."
	fulfillment := "Pick, pack and ship from our on-site team."
	listing := listingModel.Listing{
		HostID:                 m.Host.ID,
		Title:                  "Downtown Toronto Warehouse",
		Description:            &description,
		Address:                "100 Front St W",
		City:                   "Toronto",
		Province:               "ON",
		SizeSqft:               10000,
		PricePerMonth:          600,
		Currency:               "CAD",
		AvailabilityStatus:     listingModel.AvailabilityAvailable,
		FulfillmentAvailable:   true,
		FulfillmentDescription: &fulfillment,
	}
	err := db.Where("host_id = ? AND title = ?", listing.HostID, listing.Title).First(&m.Listing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		listing.ID = uuid.NewString()
		if err := db.Create(&listing).Error; err != nil {
			log.Printf("❌ Failed to seed listing %q: %v", listing.Title, err)
			return nil, err
		}
		m.Listing = listing
		log.Printf("✅ Added listing: %s", listing.Title)
	case err != nil:
		return nil, err
	}

	log.Printf("🎉 Demo marketplace ready: %d users, listing %s", len(users), m.Listing.ID)
	return m, nil
}

func firstOrCreateUser(db *gorm.DB, demo userModel.User) (*userModel.User, error) {
	var existing userModel.User
	err := db.Where("email = ?", demo.Email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	demo.ID = uuid.NewString()
	demo.Uuid = uuid.NewString()
	demo.ApprovalStatus = userModel.ApprovalApproved
	if err := db.Create(&demo).Error; err != nil {
		return nil, err
	}
	log.Printf("✅ Added %s: %s", demo.Role, demo.Email)
	return &demo, nil
}
