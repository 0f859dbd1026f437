package handler

import (
	"net/http"

	"github.com/gatherly/api/internal/middleware"
	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

// RSVPHandler handles attendance endpoints
type RSVPHandler struct {
	rsvpService *service.RSVPService
}

// NewRSVPHandler creates a new RSVP handler
func NewRSVPHandler(rsvpService *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{
		rsvpService: rsvpService,
	}
}

// CancelRequest represents the optional cancel request body. Admins may name
// another user; plain callers leave it empty and cancel their own.
type CancelRequest struct {
	UserID string `json:"user_id,omitempty"`
}

// Add handles POST /v1/events/{eventId}/rsvp
func (h *RSVPHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		WriteError(w, model.NewUnauthorizedError("missing authentication"))
		return
	}

	eventID := r.PathValue("eventId")

	if err := h.rsvpService.Add(r.Context(), claims, eventID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"status": "attending"}, map[string]string{
		"event":     "/v1/events/" + eventID,
		"attendees": "/v1/events/" + eventID + "/attendees",
	})
}

// Cancel handles DELETE /v1/events/{eventId}/rsvp
func (h *RSVPHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		WriteError(w, model.NewUnauthorizedError("missing authentication"))
		return
	}

	eventID := r.PathValue("eventId")

	// The body is optional; an empty or absent body cancels the caller's own
	// attendance.
	var req CancelRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := DecodeJSON(r, &req); err != nil {
			WriteError(w, model.NewBadRequestError("invalid request body"))
			return
		}
	}

	if err := h.rsvpService.Remove(r.Context(), claims, eventID, req.UserID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Attendees handles GET /v1/events/{eventId}/attendees
func (h *RSVPHandler) Attendees(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")

	attendees, err := h.rsvpService.ListAttendees(r.Context(), eventID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, attendees, map[string]string{
		"event": "/v1/events/" + eventID,
	})
}
