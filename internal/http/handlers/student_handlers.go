package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/repo"
)

// GetStudentsHandler godoc
// @Summary List all students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Student
// @Failure 403 {string} string "Forbidden"
// @Router /students [get]
func GetStudentsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	students, err := studentRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch students", http.StatusInternalServerError)
		return
	}
	if students == nil {
		students = []models.Student{}
	}
	writeJSON(w, http.StatusOK, students)
}

// GetStudentByIDHandler godoc
// @Summary Get a student profile
// @Description Students can only view their own profile; admins any
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /students/{id} [get]
func GetStudentByIDHandler(w http.ResponseWriter, r *http.Request) {
	actor, entityID, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid student ID", http.StatusBadRequest)
		return
	}

	if actor.Role != "admin" && entityID != id {
		http.Error(w, "can only view your own profile", http.StatusForbidden)
		return
	}

	student, err := studentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrStudentNotFound) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch student", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

// CreateStudentHandler godoc
// @Summary Create a student profile without an account
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student body StudentRequest true "Student to add"
// @Success 201 {object} models.Student
// @Failure 400 {string} string "Invalid input"
// @Router /students [post]
func CreateStudentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var req StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Firstname) == "" || strings.TrimSpace(req.Lastname) == "" {
		http.Error(w, "firstname and lastname are required", http.StatusBadRequest)
		return
	}

	student, err := studentRepo.Create(models.Student{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		College:   req.College,
		Program:   req.Program,
	})
	if err != nil {
		http.Error(w, "could not create student", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, student)
}

// UpdateStudentHandler godoc
// @Summary Update a student profile
// @Description Students can only update themselves; admins any. Only supplied fields change
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param student body StudentUpdateRequest true "Fields to update"
// @Success 200 {object} models.Student
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /students/{id} [put]
func UpdateStudentHandler(w http.ResponseWriter, r *http.Request) {
	actor, entityID, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid student ID", http.StatusBadRequest)
		return
	}

	if actor.Role != "admin" && entityID != id {
		http.Error(w, "can only update your own profile", http.StatusForbidden)
		return
	}

	var req StudentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	student, err := studentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrStudentNotFound) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch student", http.StatusInternalServerError)
		return
	}

	if req.Firstname != nil {
		student.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		student.Lastname = *req.Lastname
	}
	if req.College != nil {
		student.College = *req.College
	}
	if req.Program != nil {
		student.Program = *req.Program
	}

	updated, err := studentRepo.Update(student)
	if err != nil {
		http.Error(w, "could not update student", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteStudentHandler godoc
// @Summary Delete a student profile
// @Tags students
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 204 "Deleted successfully"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /students/{id} [delete]
func DeleteStudentHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid student ID", http.StatusBadRequest)
		return
	}

	if err := studentRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrStudentNotFound) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete student", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
