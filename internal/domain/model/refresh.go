package model

// Notification texts for the refresh and calendar triggers.
const (
	MsgRefreshSucceeded = "Data refreshed successfully."
	MsgRefreshFailed    = "Refresh failed. Try again"
	MsgCalendarFailed   = "Could not load calendar. Try again"
	MsgNoAssignments    = "No assignments"
)
