package booking

type BookingStatus string

const (
	BookingStatusPendingReview  BookingStatus = "pending_review"
	BookingStatusAgreementDraft BookingStatus = "agreement_draft"
	BookingStatusHostEdited     BookingStatus = "host_edited"
	BookingStatusRenterAccepted BookingStatus = "renter_accepted"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusRejected       BookingStatus = "rejected"
	BookingStatusCancelled      BookingStatus = "cancelled"
)

// Statuses each lifecycle action may start from.
var (
	EditableStatuses   = []BookingStatus{BookingStatusAgreementDraft, BookingStatusHostEdited}
	AcceptableStatuses = []BookingStatus{BookingStatusHostEdited, BookingStatusRenterAccepted}
	RejectableStatuses = []BookingStatus{BookingStatusPendingReview, BookingStatusAgreementDraft, BookingStatusHostEdited}
	CancelableStatuses = []BookingStatus{BookingStatusAgreementDraft, BookingStatusHostEdited, BookingStatusRenterAccepted, BookingStatusConfirmed}
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	for _, s := range GetAllBookingStatuses() {
		if s == bs {
			return true
		}
	}
	return false
}

// IsTerminal returns true once no further transition is possible.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusRejected || bs == BookingStatusCancelled
}

// In reports whether bs is one of statuses.
func (bs BookingStatus) In(statuses []BookingStatus) bool {
	for _, s := range statuses {
		if s == bs {
			return true
		}
	}
	return false
}

func (bs BookingStatus) CanEditAgreement() bool {
	return bs.In(EditableStatuses)
}

func (bs BookingStatus) CanAcceptAgreement() bool {
	return bs.In(AcceptableStatuses)
}

func (bs BookingStatus) CanBeRejected() bool {
	return bs.In(RejectableStatuses)
}

func (bs BookingStatus) CanBeCancelled() bool {
	return bs.In(CancelableStatuses)
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPendingReview,
		BookingStatusAgreementDraft,
		BookingStatusHostEdited,
		BookingStatusRenterAccepted,
		BookingStatusConfirmed,
		BookingStatusRejected,
		BookingStatusCancelled,
	}
}
