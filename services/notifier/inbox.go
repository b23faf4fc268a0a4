package notifier

import (
	"warehouse-booking/apperror"
	notificationModel "warehouse-booking/models/notification"
	"warehouse-booking/types"

	"gorm.io/gorm"
)

// Inbox serves a user's notification feed.
type Inbox struct {
	DB *gorm.DB
}

func NewInbox(db *gorm.DB) *Inbox {
	return &Inbox{DB: db}
}

// List returns the newest notifications of userID first.
func (i *Inbox) List(userID string, unreadOnly bool, page, perPage int) ([]notificationModel.Notification, types.Pagination, error) {
	page, perPage = types.NormalizePage(page, perPage)

	feed := func() *gorm.DB {
		query := i.DB.Model(&notificationModel.Notification{}).Where("user_id = ?", userID)
		if unreadOnly {
			query = query.Where("is_read = ?", false)
		}
		return query
	}

	var total int64
	if err := feed().Count(&total).Error; err != nil {
		return nil, types.Pagination{}, apperror.Internal("failed to count notifications", err)
	}

	var rows []notificationModel.Notification
	err := feed().Order("created_at DESC").Order("id DESC").
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&rows).Error
	if err != nil {
		return nil, types.Pagination{}, apperror.Internal("failed to list notifications", err)
	}
	return rows, types.NewPagination(page, perPage, total), nil
}

// MarkRead flags the given notifications, or all of them, as read. Ids owned
// by other users are ignored.
func (i *Inbox) MarkRead(userID string, ids []string, all bool) (int64, error) {
	query := i.DB.Model(&notificationModel.Notification{}).Where("user_id = ?", userID)
	switch {
	case len(ids) > 0:
		query = query.Where("id IN ?", ids)
	case all:
	default:
		return 0, apperror.Validation("Provide either notification_ids array or read_all: true")
	}

	result := query.Update("is_read", true)
	if result.Error != nil {
		return 0, apperror.Internal("failed to mark notifications read", result.Error)
	}
	return result.RowsAffected, nil
}

// UnreadCount returns how many notifications userID has not read.
func (i *Inbox) UnreadCount(userID string) (int64, error) {
	var count int64
	err := i.DB.Model(&notificationModel.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, apperror.Internal("failed to count unread notifications", err)
	}
	return count, nil
}
