// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package csp

import "time"

const (
	// dateTimeLayout is the portal's date format. Lexicographic order on
	// strings in this layout matches chronological order.
	dateTimeLayout = "2006-01-02 15:04:05"

	// enabledExpirationDate is the far-future sentinel written on enable.
	enabledExpirationDate = "2199-12-31 00:00:00"

	// disableOffset shifts the disable date seven hours back before the
	// clock is zeroed. Parity with the portal's observed timezone handling
	// of expiration dates; do not change without confirming against the
	// portal.
	disableOffset = 7 * time.Hour
)

// formatDateTime renders t in the portal's date format.
func formatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// formatDateZeroClock renders t's date with the clock zeroed.
func formatDateZeroClock(t time.Time) string {
	return t.Format("2006-01-02") + " 00:00:00"
}

// isDisabled reports whether the expiration date has passed. The portal has
// no enabled flag; an expiration before now means the membership is disabled.
// An empty expiration means the membership never expires.
func isDisabled(expirationDate string, now time.Time) bool {
	if expirationDate == "" {
		return false
	}
	return expirationDate < formatDateTime(now)
}

// disableExpirationDate computes the expiration written on disable: now minus
// the disable offset, truncated to midnight.
func disableExpirationDate(now time.Time) string {
	return formatDateZeroClock(now.Add(-disableOffset))
}
