package domain

import (
	"time"

	"github.com/google/uuid"
)

// Selection is the filter state of one dashboard viewer.
type Selection struct {
	// Patient IDs clicked on the timeline, in click order
	SelectedPatientIDs []string `json:"selected_patient_ids" example:"001,004"`
	// Active meal tag, "all" for none
	Tag TagFilter `json:"tag" swaggertype:"string" example:"breakfast"`
}

// IsSelected reports whether id is among the selected patients.
func (s Selection) IsSelected(id string) bool {
	for _, p := range s.SelectedPatientIDs {
		if p == id {
			return true
		}
	}
	return false
}

// DashboardContext pairs the loaded datasets with one viewer's selection.
type DashboardContext struct {
	Datasets  *Datasets
	Selection Selection
}

// FilterChange is a single user interaction on the dashboard.
type FilterChange struct {
	// New tag filter; omitted keeps the current tag
	Tag *string `json:"tag,omitempty" validate:"omitempty,max=64" example:"snack"`
	// Patient ID to add to or remove from the selection
	TogglePatientID *string `json:"toggle_patient_id,omitempty" validate:"omitempty,notblank,max=64" example:"001"`
	// Clear the patient selection before applying the toggle
	ClearPatients bool `json:"clear_patients,omitempty" example:"false"`
}

// Session holds the selection of one dashboard viewer.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Selection Selection `json:"selection"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a copy that shares no slices with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Selection.SelectedPatientIDs = append([]string(nil), s.Selection.SelectedPatientIDs...)
	return &c
}

// CreateSessionRequest is the request body for creating a session.
// @Description Initial selection for a new dashboard session.
type CreateSessionRequest struct {
	// Initial tag filter (defaults to all meals)
	Tag string `json:"tag" validate:"omitempty,max=64" example:"breakfast"`
	// Initially selected patients
	PatientIDs []string `json:"patient_ids" validate:"omitempty,max=100,dive,required,notblank,max=64" example:"001"`
}

// SessionResponse is the response body for session endpoints.
type SessionResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Selection Selection `json:"selection"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Session) ToResponse() SessionResponse {
	ids := s.Selection.SelectedPatientIDs
	if ids == nil {
		ids = []string{}
	}
	return SessionResponse{
		ID:        s.ID,
		Selection: Selection{SelectedPatientIDs: ids, Tag: s.Selection.Tag},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
