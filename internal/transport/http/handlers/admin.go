package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/deptboard/board-service/internal/application/board"
	"github.com/deptboard/board-service/internal/domain"
	"github.com/deptboard/board-service/internal/transport/http/dto"
	"github.com/deptboard/board-service/internal/transport/http/middleware"
	"github.com/deptboard/board-service/internal/transport/http/response"
)

// AdminHandler serves the admin-only write endpoints. Announcement,
// timetable and event creation accept multipart forms so an attachment can
// ride along; plain JSON works too.
type AdminHandler struct {
	svc            *board.Service
	validate       *validator.Validate
	maxUploadBytes int64
}

func NewAdminHandler(svc *board.Service, validate *validator.Validate, maxUploadBytes int64) *AdminHandler {
	return &AdminHandler{svc: svc, validate: validate, maxUploadBytes: maxUploadBytes}
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formFile returns the named upload, or nil when the field is absent.
func (h *AdminHandler) formFile(r *http.Request, field string) (multipart.File, string, error) {
	f, hdr, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", domain.ErrInvalidField(field, "unreadable upload")
	}
	return f, hdr.Filename, nil
}

// CreateAnnouncement handles POST /api/admin/announcements.
func (h *AdminHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAnnouncementRequest
	in := board.CreateAnnouncementInput{}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			response.WriteError(w, r, domain.ErrInvalidField("body", "invalid multipart form"))
			return
		}
		req.Title = r.FormValue("title")
		req.Content = r.FormValue("content")
		req.Category = r.FormValue("category")
		req.IsFeatured, _ = strconv.ParseBool(r.FormValue("isFeatured"))
		req.IsUrgent, _ = strconv.ParseBool(r.FormValue("isUrgent"))

		f, name, err := h.formFile(r, "file")
		if err != nil {
			response.WriteError(w, r, err)
			return
		}
		if f != nil {
			defer f.Close()
			in.Attachment = f
			in.AttachmentName = name
		}
	} else {
		if err := response.DecodeJSON(r, &req); err != nil {
			response.WriteError(w, r, err)
			return
		}
	}

	if err := h.validate.Struct(req); err != nil {
		response.WriteError(w, r, domainValidationError(err))
		return
	}

	in.Title = req.Title
	in.Content = req.Content
	in.Category = req.Category
	in.IsFeatured = req.IsFeatured
	in.IsUrgent = req.IsUrgent
	if u := middleware.UserFrom(r.Context()); u != nil {
		in.AuthorID = u.ID
	}

	created, err := h.svc.CreateAnnouncement(r.Context(), in)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, dto.NewAnnouncementView(created))
}

// UpdateAnnouncement handles PUT /api/admin/announcements/{id}.
func (h *AdminHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAnnouncementRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	updated, err := h.svc.UpdateAnnouncement(r.Context(), chi.URLParam(r, "id"), board.UpdateAnnouncementInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		IsFeatured: req.IsFeatured,
		IsUrgent:   req.IsUrgent,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewAnnouncementView(updated))
}

// DeleteAnnouncement handles DELETE /api/admin/announcements/{id}.
func (h *AdminHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAnnouncement(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// CreateTimetable handles POST /api/admin/timetables.
func (h *AdminHandler) CreateTimetable(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTimetableRequest
	in := board.CreateTimetableInput{}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			response.WriteError(w, r, domain.ErrInvalidField("body", "invalid multipart form"))
			return
		}
		req.Title = r.FormValue("title")
		req.Level, _ = strconv.Atoi(r.FormValue("level"))
		req.Semester = r.FormValue("semester")

		f, name, err := h.formFile(r, "file")
		if err != nil {
			response.WriteError(w, r, err)
			return
		}
		if f != nil {
			defer f.Close()
			in.Attachment = f
			in.AttachmentName = name
		}
	} else {
		if err := response.DecodeJSON(r, &req); err != nil {
			response.WriteError(w, r, err)
			return
		}
	}

	if err := h.validate.Struct(req); err != nil {
		response.WriteError(w, r, domainValidationError(err))
		return
	}

	in.Title = req.Title
	in.Level = req.Level
	in.Semester = req.Semester

	created, err := h.svc.CreateTimetable(r.Context(), in)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, dto.NewTimetableViews([]domain.Timetable{*created})[0])
}

// DeleteTimetable handles DELETE /api/admin/timetables/{id}.
func (h *AdminHandler) DeleteTimetable(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTimetable(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// CreateEvent handles POST /api/admin/events.
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventRequest
	in := board.CreateEventInput{}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			response.WriteError(w, r, domain.ErrInvalidField("body", "invalid multipart form"))
			return
		}
		req.Title = r.FormValue("title")
		req.Description = r.FormValue("description")
		req.Venue = r.FormValue("venue")
		if d, err := time.Parse(time.RFC3339, r.FormValue("date")); err == nil {
			req.Date = d
		}

		f, name, err := h.formFile(r, "image")
		if err != nil {
			response.WriteError(w, r, err)
			return
		}
		if f != nil {
			defer f.Close()
			in.Attachment = f
			in.AttachmentName = name
		}
	} else {
		if err := response.DecodeJSON(r, &req); err != nil {
			response.WriteError(w, r, err)
			return
		}
	}

	if err := h.validate.Struct(req); err != nil {
		response.WriteError(w, r, domainValidationError(err))
		return
	}

	in.Title = req.Title
	in.Description = req.Description
	in.Date = req.Date
	in.Venue = req.Venue

	created, err := h.svc.CreateEvent(r.Context(), in)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, dto.NewEventViews([]domain.Event{*created})[0])
}

// DeleteEvent handles DELETE /api/admin/events/{id}.
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// CreateResult handles POST /api/admin/results.
func (h *AdminHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateResultRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.WriteError(w, r, domainValidationError(err))
		return
	}

	created, err := h.svc.CreateResult(r.Context(), board.CreateResultInput{
		StudentID:   req.StudentID,
		CourseCode:  req.CourseCode,
		CourseTitle: req.CourseTitle,
		Grade:       req.Grade,
		Semester:    req.Semester,
		Session:     req.Session,
		Level:       req.Level,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, dto.NewResultViews([]domain.Result{*created})[0])
}

// ListTimetables handles GET /api/admin/timetables.
func (h *AdminHandler) ListTimetables(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListTimetables(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, dto.NewTimetableViews(list))
}
