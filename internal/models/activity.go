package models

import "time"

// Activity is one immutable entry of the audit trail. Entries are never
// updated after insertion.
type Activity struct {
	ID          int       `json:"id"`
	ActorID     int       `json:"actor_id"`
	ActorLabel  string    `json:"actor_label"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    int       `json:"entity_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
