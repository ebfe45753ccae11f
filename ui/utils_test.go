package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateSeparator(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Today", formatDateSeparator(now))
	assert.Equal(t, "Yesterday", formatDateSeparator(now.AddDate(0, 0, -1)))

	old := time.Date(2019, time.March, 8, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "March 8, 2019", formatDateSeparator(old))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "Free", formatPrice(0))
	assert.Equal(t, "$9.99/mo", formatPrice(9.99))
	assert.Equal(t, "$49.99/mo", formatPrice(49.99))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "—", formatExpiry(nil))

	ts := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 30, 2026", formatExpiry(&ts))
}
