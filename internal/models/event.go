package models

// UserRegisteredEvent is published after a user has been created.
type UserRegisteredEvent struct {
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"`
}
