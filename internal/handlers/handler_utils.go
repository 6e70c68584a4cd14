package handlers

import "time"

// displayDateLayout is the DD/MM/YYYY shape the dashboard renders and
// submits. The store keeps real dates; conversion happens here, at the API
// boundary.
const displayDateLayout = "02/01/2006"

func parseDisplayDate(s string) (time.Time, error) {
	if t, err := time.Parse(displayDateLayout, s); err == nil {
		return t, nil
	}
	// ISO calendar date, as stored.
	return time.Parse("2006-01-02", s)
}

func formatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayDateLayout)
}
