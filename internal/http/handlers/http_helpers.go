package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gittydia/IMS-BAO/internal/audit"
	"github.com/gittydia/IMS-BAO/internal/auth"
)

// actorFromRequest resolves the authenticated actor from the Authorization
// header. The second return value is the student profile id, zero for
// admins.
func actorFromRequest(r *http.Request) (audit.Actor, int, error) {
	_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
	if err != nil {
		return audit.Actor{}, 0, err
	}

	actor := audit.Actor{}
	if sub, ok := claims["sub"].(float64); ok {
		actor.ID = int(sub)
	}
	if email, ok := claims["email"].(string); ok {
		actor.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		actor.Role = role
	}

	entityID := 0
	if v, ok := claims["entity_id"].(float64); ok {
		entityID = int(v)
	}
	return actor, entityID, nil
}

func requireAdmin(w http.ResponseWriter, r *http.Request) (audit.Actor, bool) {
	actor, _, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return audit.Actor{}, false
	}
	if actor.Role != "admin" {
		http.Error(w, "admin access required", http.StatusForbidden)
		return audit.Actor{}, false
	}
	return actor, true
}

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}
