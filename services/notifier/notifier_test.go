package notifier

import (
	"testing"

	"warehouse-booking/database"
	notificationModel "warehouse-booking/models/notification"
	userModel "warehouse-booking/models/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func notice(userID string, kind notificationModel.Type) Notice {
	return Notice{
		RecipientID:       userID,
		Type:              kind,
		Title:             "Booking Cancelled",
		Message:           "The booking has been cancelled.",
		RelatedEntityType: notificationModel.EntityBooking,
		RelatedEntityID:   uuid.NewString(),
	}
}

func TestNotify_CommitsWithTransaction(t *testing.T) {
	db := openDB(t)
	n := NewInboxNotifier()
	userID := uuid.NewString()

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		n.Notify(tx, notice(userID, notificationModel.TypeBookingCancelled))
		return nil
	}))

	var rows []notificationModel.Notification
	require.NoError(t, db.Where("user_id = ?", userID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsRead)
	require.NotNil(t, rows[0].RelatedEntityType)
	assert.Equal(t, notificationModel.EntityBooking, *rows[0].RelatedEntityType)
}

func TestNotify_DiscardedWithRolledBackTransaction(t *testing.T) {
	db := openDB(t)
	n := NewInboxNotifier()
	userID := uuid.NewString()

	err := db.Transaction(func(tx *gorm.DB) error {
		n.Notify(tx, notice(userID, notificationModel.TypeBookingCancelled))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	var count int64
	require.NoError(t, db.Model(&notificationModel.Notification{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNotify_FailureLeavesTransactionUsable(t *testing.T) {
	db := openDB(t)
	n := NewInboxNotifier()

	user := userModel.User{
		ID:       uuid.NewString(),
		Uuid:     uuid.NewString(),
		Email:    "someone@wareshare.test",
		FullName: "Someone",
		Role:     userModel.RoleRenter,
	}
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		// the insert has nowhere to go
		if err := tx.Migrator().DropTable(&notificationModel.Notification{}); err != nil {
			return err
		}
		n.Notify(tx, notice(user.ID, notificationModel.TypeBookingApproved))
		return tx.Create(&user).Error
	}))

	var found userModel.User
	require.NoError(t, db.First(&found, "id = ?", user.ID).Error)
	assert.Equal(t, user.Email, found.Email)
}
