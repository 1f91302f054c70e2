package models

// Todo represents one to-do item owned by a Slack user.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	SlackUser   string `json:"slack_user"`
}
