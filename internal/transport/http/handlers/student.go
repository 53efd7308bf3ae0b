package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/deptboard/board-service/internal/application/board"
	"github.com/deptboard/board-service/internal/domain"
	"github.com/deptboard/board-service/internal/transport/http/dto"
	"github.com/deptboard/board-service/internal/transport/http/middleware"
	"github.com/deptboard/board-service/internal/transport/http/response"
)

// profile pictures stay small
const maxProfilePictureBytes = 5 << 20

// StudentHandler serves the authenticated student endpoints: own profile,
// own results, own archives.
type StudentHandler struct {
	svc      *board.Service
	validate *validator.Validate
}

func NewStudentHandler(svc *board.Service, validate *validator.Validate) *StudentHandler {
	return &StudentHandler{svc: svc, validate: validate}
}

// Profile handles GET /api/students/profile.
func (h *StudentHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFrom(r.Context())

	current, err := h.svc.Profile(r.Context(), u.ID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewUserView(current))
}

// UpdateProfile handles PUT /api/students/profile.
func (h *StudentHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.WriteError(w, r, domainValidationError(err))
		return
	}

	u := middleware.UserFrom(r.Context())
	updated, err := h.svc.UpdateProfile(r.Context(), u.ID, board.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewUserView(updated))
}

// UpdateProfilePicture handles PUT (and legacy POST) /api/students/profile/picture.
func (h *StudentHandler) UpdateProfilePicture(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxProfilePictureBytes); err != nil {
		response.WriteError(w, r, domain.ErrInvalidField("profilePicture", "invalid multipart form"))
		return
	}

	f, hdr, err := r.FormFile("profilePicture")
	if err != nil {
		response.WriteError(w, r, domain.ErrMissingField("profilePicture"))
		return
	}
	defer f.Close()

	u := middleware.UserFrom(r.Context())
	updated, svcErr := h.svc.UpdateProfilePicture(r.Context(), u.ID, hdr.Filename, hdr.Header.Get("Content-Type"), f)
	if svcErr != nil {
		response.WriteError(w, r, svcErr)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewUserView(updated))
}

// Timetable handles GET /api/students/timetable. The level comes from the
// authenticated student, not from the request.
func (h *StudentHandler) Timetable(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFrom(r.Context())

	list, err := h.svc.TimetablesForLevel(r.Context(), u.Level)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewTimetableViews(list))
}

// Results handles GET /api/students/results.
func (h *StudentHandler) Results(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFrom(r.Context())

	list, err := h.svc.ResultsForStudent(r.Context(), u.ID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewResultViews(list))
}

// Archives handles GET /api/students/archives.
func (h *StudentHandler) Archives(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFrom(r.Context())

	list, err := h.svc.ArchivesForStudent(r.Context(), u.ID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewArchiveViews(list))
}

// Archive handles POST /api/students/archives.
func (h *StudentHandler) Archive(w http.ResponseWriter, r *http.Request) {
	var req dto.ArchiveRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.WriteError(w, r, domainValidationError(err))
		return
	}

	u := middleware.UserFrom(r.Context())
	arc, err := h.svc.ArchiveAnnouncement(r.Context(), u.ID, req.AnnouncementID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"archiveId": arc.ID,
	})
}

// Unarchive handles DELETE /api/students/archives/{id}.
func (h *StudentHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFrom(r.Context())

	if err := h.svc.UnarchiveAnnouncement(r.Context(), u.ID, chi.URLParam(r, "id")); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
