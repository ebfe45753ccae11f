package ui

import (
	"fmt"
	"time"
)

// formatDateSeparator renders a date for the in-chat separator line.
func formatDateSeparator(t time.Time) string {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(yesterday):
		return "Yesterday"
	case day.Year() == now.Year():
		return t.Format("January 2")
	default:
		return t.Format("January 2, 2006")
	}
}

// formatPrice renders a plan price for display.
func formatPrice(price float64) string {
	if price == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f/mo", price)
}

// formatExpiry renders a subscription expiry, "—" when absent.
func formatExpiry(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("Jan 2, 2006")
}
