// Package audit appends an immutable trail entry for every committed
// mutation of a product or order. Appends are best effort: a failed write is
// logged and never fails or rolls back the mutation that triggered it.
package audit

import (
	"log"
	"time"

	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/repo"
)

// Actor is the authenticated identity performing a mutating request,
// resolved by the session layer before the core is invoked.
type Actor struct {
	ID    int
	Email string
	Role  string
}

type Recorder struct {
	activities repo.ActivityRepository
}

func NewRecorder(activities repo.ActivityRepository) *Recorder {
	return &Recorder{activities: activities}
}

// Record appends one trail entry. It never returns an error; failures are
// only visible in the server log.
func (r *Recorder) Record(actor Actor, action, entityType string, entityID int, description string) {
	entry := models.Activity{
		ActorID:     actor.ID,
		ActorLabel:  actor.Email,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.activities.Append(entry); err != nil {
		log.Printf("audit append failed (%s %s %d): %v", action, entityType, entityID, err)
	}
}

// Recent returns the newest entries first, capped at limit.
func (r *Recorder) Recent(limit int) ([]models.Activity, error) {
	return r.activities.Recent(limit)
}
