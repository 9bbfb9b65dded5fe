package models

import "time"

// Encouragement is a directed peer message from one member to another.
type Encouragement struct {
	ID           string    `json:"id"`
	FromMemberID string    `json:"from_member_id"`
	ToMemberID   string    `json:"to_member_id"`
	Message      string    `json:"message"`
	Likes        int       `json:"likes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
