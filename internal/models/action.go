package models

import "time"

// ActionType enumerates the follow-up behavior to run when a deferred
// interaction (e.g. a modal submission) comes back. Adding a flow means
// adding a constant here, a value to the action_type enum, and a dispatch
// arm in the interactivity handler.
type ActionType string

const (
	// ActionCreateModal: an open "create to-do" modal whose submission
	// inserts a todo.
	ActionCreateModal ActionType = "create_modal"
)

// Action correlates an opened Slack view with the command that opened it.
// SlackID is the platform-assigned view id echoed back on submission;
// SlackUser and SlackChannel restore the original request context.
type Action struct {
	ID           string     `json:"id"`
	Type         ActionType `json:"type"`
	SlackID      string     `json:"slack_id"`
	SlackUser    string     `json:"slack_user"`
	SlackChannel string     `json:"slack_channel"`
	CreatedAt    time.Time  `json:"created_at"`
}
