// Package util holds presentation helpers shared by the HTTP and terminal front ends.
package util

import (
	"fmt"
	"time"
)

const (
	notAvailable = "N/A"

	addressHead = 6
	addressTail = 4

	dateLayout = "2006-01-02"
)

// FormatAddress shortens an address to its first 6 and last 4 characters, e.g. "0x1234...abcd".
func FormatAddress(address string) string {
	if address == "" {
		return notAvailable
	}

	runes := []rune(address)
	head := runes[:min(addressHead, len(runes))]
	tail := runes[max(0, len(runes)-addressTail):]

	return string(head) + "..." + string(tail)
}

// FormatDate renders an RFC 3339 timestamp as a calendar date. Unparseable input is returned as is.
func FormatDate(value string) string {
	if value == "" {
		return notAvailable
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}

	return t.Format(dateLayout)
}

// FormatOptional dereferences an optional provider field.
func FormatOptional(value *string) string {
	if value == nil || *value == "" {
		return notAvailable
	}

	return *value
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
