package entity

import "time"

// LaunchRecord stores one activation of a dock item.
type LaunchRecord struct {
	ID         int64
	ItemID     DockItemID
	Name       string
	Target     string
	LaunchedAt time.Time
	Success    bool
	// Error holds the launcher failure message, empty on success.
	Error string
}

// LaunchCount aggregates successful launches per item.
type LaunchCount struct {
	ItemID       DockItemID
	Name         string
	Count        int64
	LastLaunched time.Time
}
