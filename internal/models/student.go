package models

// Student is the role-specific profile linked to a user account.
type Student struct {
	ID        int    `json:"id"`
	UserID    *int   `json:"user_id,omitempty"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	College   string `json:"college"`
	Program   string `json:"program"`
}
