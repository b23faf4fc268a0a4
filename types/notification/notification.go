package notification

type MarkReadRequest struct {
	NotificationIDs []string `json:"notification_ids" validate:"omitempty,dive,required"`
	ReadAll         bool     `json:"read_all"`
}

type ListQuery struct {
	UnreadOnly bool `query:"unread_only"`
	Page       int  `query:"page"`
	PerPage    int  `query:"per_page"`
}
