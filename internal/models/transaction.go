package models

import "time"

// Transaction links an order to the student who placed it.
type Transaction struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"order_id"`
	StudentID int       `json:"student_id"`
	CreatedAt time.Time `json:"created_at"`
}
