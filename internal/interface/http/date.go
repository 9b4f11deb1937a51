package http

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// dateOnly renders and parses dates as plain YYYY-MM-DD strings.
type dateOnly time.Time

func (d dateOnly) Time() time.Time {
	return time.Time(d)
}

func (d dateOnly) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d dateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateLayout))
}

func (d *dateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = dateOnly(time.Time{})
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	*d = dateOnly(t)
	return nil
}
