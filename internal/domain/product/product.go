package product

import "time"

type Product struct {
	ID        int64
	URL       string
	Type      *string
	IsNotify  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotificationEnabled reports whether notifications are switched on.
func (p *Product) NotificationEnabled() bool {
	return p.IsNotify == 1
}

// ToggleNotification flips the notify flag between 0 and 1.
func (p *Product) ToggleNotification() {
	if p.IsNotify == 1 {
		p.IsNotify = 0
	} else {
		p.IsNotify = 1
	}
}

// ListFilter holds the optional equality filters of the paginated
// listing. A nil field matches every record.
type ListFilter struct {
	Type     *string
	IsNotify *int
}

// SearchFilter extends ListFilter with a case-insensitive substring
// match on the URL.
type SearchFilter struct {
	URL      *string
	Type     *string
	IsNotify *int
}

// Statistics holds the notification counts. The three values come from
// independent queries, so they may disagree briefly under concurrent
// writes.
type Statistics struct {
	TotalProducts         int64
	ActiveNotifications   int64
	InactiveNotifications int64
}
