package user

import "time"

const (
	StatusActive = 1
)

type User struct {
	ID           int64
	Username     string
	FullName     string
	RegisterDate time.Time
	ExpiredDate  time.Time
	Status       int
}

// Expired reports whether the account expiry lies strictly before now.
// It is derived at read time and never persisted.
func (u *User) Expired(now time.Time) bool {
	return u.ExpiredDate.Before(truncateToDate(now))
}

// AddOneMonth returns the same day of the following calendar month,
// clamped to that month's last day (Jan 31 -> Feb 28/29). Plain
// AddDate would normalize the overflow into March instead.
func AddOneMonth(d time.Time) time.Time {
	firstOfNext := time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, d.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, d.Location())
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SearchFilter holds the six independently optional search filters.
// Nil fields match every record; date bounds are inclusive.
type SearchFilter struct {
	Username         *string
	FullName         *string
	RegisterDateFrom *time.Time
	RegisterDateTo   *time.Time
	ExpiredDateFrom  *time.Time
	ExpiredDateTo    *time.Time
	Status           *int
}
