package notifier

import (
	"fmt"

	"warehouse-booking/logger"
	notificationModel "warehouse-booking/models/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notice is one event addressed to a user's inbox.
type Notice struct {
	RecipientID       string
	Type              notificationModel.Type
	Title             string
	Message           string
	RelatedEntityType string
	RelatedEntityID   string
}

// Notifier enqueues notices. Delivery failures never fail the caller.
type Notifier interface {
	Notify(tx *gorm.DB, notice Notice)
}

// InboxNotifier writes notices into the notifications table on the caller's
// transaction, so a notice exists if and only if its transition committed.
type InboxNotifier struct{}

func NewInboxNotifier() *InboxNotifier {
	return &InboxNotifier{}
}

// Notify inserts the notice behind a savepoint; a failed insert is rolled back
// to the savepoint and logged, leaving the surrounding transaction usable.
func (n *InboxNotifier) Notify(tx *gorm.DB, notice Notice) {
	row := notificationModel.Notification{
		ID:      uuid.NewString(),
		UserID:  notice.RecipientID,
		Type:    notice.Type,
		Title:   notice.Title,
		Message: notice.Message,
	}
	if notice.RelatedEntityType != "" {
		row.RelatedEntityType = &notice.RelatedEntityType
	}
	if notice.RelatedEntityID != "" {
		row.RelatedEntityID = &notice.RelatedEntityID
	}

	savepoint := "notify_" + uuid.NewString()[:8]
	if err := tx.SavePoint(savepoint).Error; err != nil {
		logger.Error("Failed to open notification savepoint", err)
		return
	}
	if err := tx.Create(&row).Error; err != nil {
		logger.Error(fmt.Sprintf("Failed to enqueue %s notification for user %s", notice.Type, notice.RecipientID), err)
		if rbErr := tx.RollbackTo(savepoint).Error; rbErr != nil {
			logger.Error("Failed to roll back notification savepoint", rbErr)
		}
		return
	}
	logger.Debug(fmt.Sprintf("Queued %s notification for user %s", notice.Type, notice.RecipientID))
}
