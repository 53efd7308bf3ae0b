package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/deptboard/board-service/internal/application/board"
	"github.com/deptboard/board-service/internal/domain"
	"github.com/deptboard/board-service/internal/transport/http/dto"
	"github.com/deptboard/board-service/internal/transport/http/response"
)

// BoardHandler serves the public, read-only board endpoints.
type BoardHandler struct {
	svc *board.Service
}

func NewBoardHandler(svc *board.Service) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// ListAnnouncements handles GET /api/announcements with optional
// ?search=&category=&featured=&urgent= filters.
func (h *BoardHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.AnnouncementFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if v := q.Get("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			response.WriteError(w, r, domain.ErrInvalidField("featured", "must be true or false"))
			return
		}
		filter.Featured = &b
	}
	if v := q.Get("urgent"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			response.WriteError(w, r, domain.ErrInvalidField("urgent", "must be true or false"))
			return
		}
		filter.Urgent = &b
	}

	list, err := h.svc.ListAnnouncements(r.Context(), filter)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewAnnouncementViews(list))
}

// FeaturedAnnouncements handles GET /api/announcements/featured.
func (h *BoardHandler) FeaturedAnnouncements(w http.ResponseWriter, r *http.Request) {
	featured := true
	list, err := h.svc.ListAnnouncements(r.Context(), domain.AnnouncementFilter{Featured: &featured})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewAnnouncementViews(list))
}

// GetAnnouncement handles GET /api/announcements/{id}.
func (h *BoardHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetAnnouncement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewAnnouncementView(a))
}

// TimetablesByLevel handles GET /api/timetables/{level}.
func (h *BoardHandler) TimetablesByLevel(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil {
		response.WriteError(w, r, domain.ErrInvalidField("level", "must be a number"))
		return
	}

	list, svcErr := h.svc.TimetablesForLevel(r.Context(), level)
	if svcErr != nil {
		response.WriteError(w, r, svcErr)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewTimetableViews(list))
}

// ListEvents handles GET /api/events.
func (h *BoardHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListEvents(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewEventViews(list))
}
