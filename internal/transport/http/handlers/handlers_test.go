package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptboard/board-service/internal/application/auth"
	"github.com/deptboard/board-service/internal/application/board"
	"github.com/deptboard/board-service/internal/domain"
	"github.com/deptboard/board-service/internal/infrastructure/memory"
	"github.com/deptboard/board-service/internal/infrastructure/redis"
	"github.com/deptboard/board-service/internal/transport/http/dto"
	"github.com/deptboard/board-service/internal/transport/http/handlers"
	"github.com/deptboard/board-service/internal/transport/http/router"
)

// ---- in-memory port implementations ----

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*domain.User{}} }

func (m *memUserRepo) GetByEmailOrMatric(_ context.Context, email, matric string) (*domain.User, error) {
	for _, u := range m.users {
		if (email != "" && strings.EqualFold(u.Email, email)) || (matric != "" && u.MatricNumber == matric) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, ex := range m.users {
		if strings.EqualFold(ex.Email, u.Email) || ex.MatricNumber == u.MatricNumber {
			return nil, domain.ErrDuplicateUser()
		}
	}
	m.nextID++
	cp := *u
	cp.ID = fmt.Sprintf("user-%d", m.nextID)
	cp.CreatedAt = time.Now()
	m.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memUserRepo) UpdateProfile(_ context.Context, id string, name, email, phone string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound()
	}
	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = email
	}
	if phone != "" {
		u.Phone = phone
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) UpdateProfileImage(_ context.Context, id string, imageURL string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound()
	}
	u.ProfileImage = imageURL
	cp := *u
	return &cp, nil
}

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }
func (plainHasher) Compare(hash, plain string) error {
	if hash != "h:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

type plainSigner struct{}

func (plainSigner) Sign(userID string, _ time.Duration) (string, error) { return "tok:" + userID, nil }
func (plainSigner) Verify(token string) (*auth.TokenClaims, error) {
	id, ok := strings.CutPrefix(token, "tok:")
	if !ok {
		return nil, errors.New("bad token")
	}
	return &auth.TokenClaims{UserID: id, Exp: time.Now().Add(time.Hour)}, nil
}

type memAnnouncementRepo struct {
	items  map[string]*domain.Announcement
	nextID int
}

func (m *memAnnouncementRepo) List(_ context.Context, f domain.AnnouncementFilter) ([]domain.Announcement, error) {
	var out []domain.Announcement
	for _, a := range m.items {
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Featured != nil && a.IsFeatured != *f.Featured {
			continue
		}
		if f.Urgent != nil && a.IsUrgent != *f.Urgent {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (m *memAnnouncementRepo) GetByID(_ context.Context, id string) (*domain.Announcement, error) {
	if a, ok := m.items[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (m *memAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	m.nextID++
	cp := *a
	cp.ID = fmt.Sprintf("ann-%d", m.nextID)
	cp.CreatedAt = time.Now()
	m.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memAnnouncementRepo) Update(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	cp := *a
	m.items[a.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memAnnouncementRepo) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

type memTimetableRepo struct{ items []domain.Timetable }

func (m *memTimetableRepo) ListByLevel(_ context.Context, level int) ([]domain.Timetable, error) {
	var out []domain.Timetable
	for _, tt := range m.items {
		if tt.Level == level {
			out = append(out, tt)
		}
	}
	return out, nil
}
func (m *memTimetableRepo) ListAll(_ context.Context) ([]domain.Timetable, error) {
	return m.items, nil
}
func (m *memTimetableRepo) Create(_ context.Context, tt *domain.Timetable) (*domain.Timetable, error) {
	cp := *tt
	cp.ID = fmt.Sprintf("tt-%d", len(m.items)+1)
	m.items = append(m.items, cp)
	return &cp, nil
}
func (m *memTimetableRepo) Delete(_ context.Context, id string) error { return nil }

type memResultRepo struct{ items []domain.Result }

func (m *memResultRepo) ListByStudent(_ context.Context, studentID string) ([]domain.Result, error) {
	var out []domain.Result
	for _, r := range m.items {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *memResultRepo) Create(_ context.Context, r *domain.Result) (*domain.Result, error) {
	cp := *r
	cp.ID = fmt.Sprintf("res-%d", len(m.items)+1)
	m.items = append(m.items, cp)
	return &cp, nil
}

type memEventRepo struct{ items []domain.Event }

func (m *memEventRepo) List(_ context.Context) ([]domain.Event, error) { return m.items, nil }
func (m *memEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	cp := *e
	cp.ID = fmt.Sprintf("evt-%d", len(m.items)+1)
	m.items = append(m.items, cp)
	return &cp, nil
}
func (m *memEventRepo) Delete(_ context.Context, id string) error { return nil }

type memArchiveRepo struct {
	items         map[string]*domain.Archive
	announcements *memAnnouncementRepo
}

func (m *memArchiveRepo) ListByStudent(_ context.Context, studentID string) ([]domain.Archive, error) {
	var out []domain.Archive
	for _, a := range m.items {
		if a.StudentID == studentID {
			cp := *a
			if ann, ok := m.announcements.items[a.AnnouncementID]; ok {
				cp.Announcement = *ann
			}
			out = append(out, cp)
		}
	}
	return out, nil
}
func (m *memArchiveRepo) Create(_ context.Context, studentID, announcementID string) (*domain.Archive, error) {
	for _, a := range m.items {
		if a.StudentID == studentID && a.AnnouncementID == announcementID {
			return nil, domain.ErrAlreadyArchived()
		}
	}
	a := &domain.Archive{
		ID:             fmt.Sprintf("arc-%d", len(m.items)+1),
		StudentID:      studentID,
		AnnouncementID: announcementID,
		ArchivedAt:     time.Now(),
	}
	m.items[a.ID] = a
	cp := *a
	return &cp, nil
}
func (m *memArchiveRepo) Delete(_ context.Context, studentID, archiveID string) error {
	a, ok := m.items[archiveID]
	if !ok || a.StudentID != studentID {
		return domain.ErrNotFound("archive")
	}
	delete(m.items, archiveID)
	return nil
}

type memFileStore struct{}

func (memFileStore) Save(_ context.Context, dir, filename string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	return "/uploads/" + dir + "/" + filename, nil
}

// ---- fixture ----

type fixture struct {
	server *httptest.Server
	users  *memUserRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := newMemUserRepo()
	announcements := &memAnnouncementRepo{items: map[string]*domain.Announcement{}}
	authSvc := auth.NewService(users, plainHasher{}, plainSigner{}, 7*24*time.Hour, "Computer Science")
	boardSvc := board.NewService(
		announcements,
		&memTimetableRepo{},
		&memResultRepo{},
		&memEventRepo{},
		&memArchiveRepo{items: map[string]*domain.Archive{}, announcements: announcements},
		users,
		memFileStore{},
		memory.NewPublisher(),
	)

	validate := dto.NewValidator()

	h := router.New(router.Deps{
		Auth:    handlers.NewAuthHandler(authSvc, validate),
		Board:   handlers.NewBoardHandler(boardSvc),
		Admin:   handlers.NewAdminHandler(boardSvc, validate, 10<<20),
		Student: handlers.NewStudentHandler(boardSvc, validate),
		Health:  handlers.NewHealthHandler(nopPinger{}),

		Verifier:       authSvc,
		RateLimiter:    redis.NewFixedWindowLimiter(nil),
		MaxUploadBytes: 10 << 20,
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &fixture{server: srv, users: users}
}

type nopPinger struct{}

func (nopPinger) PingContext(context.Context) error { return nil }

func (f *fixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, f.server.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (f *fixture) signup(t *testing.T, email, matric string) dto.AuthResponse {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name": "Ada Obi", "email": email, "matricNumber": matric,
		"level": 200, "password": "secret123", "studentType": "regular",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[dto.AuthResponse](t, resp)
}

func (f *fixture) adminToken(t *testing.T) string {
	t.Helper()
	f.users.nextID++
	id := fmt.Sprintf("user-%d", f.users.nextID)
	f.users.users[id] = &domain.User{
		ID: id, Name: "HOD", Email: "hod@dept.edu", PasswordHash: "h:admin123",
		Role: string(domain.RoleAdmin), Department: "Computer Science", CreatedAt: time.Now(),
	}
	return "tok:" + id
}

// ---- tests ----

func TestSignupLoginVerifyFlow(t *testing.T) {
	fx := newFixture(t)

	created := fx.signup(t, "ada@example.com", "CSC/2021/001")
	assert.True(t, created.Success)
	assert.Equal(t, "student", created.User.Role)
	assert.NotEmpty(t, created.Token)

	// login via legacy root alias
	resp := fx.do(t, http.MethodPost, "/login", "", map[string]any{
		"identifier": "CSC/2021/001", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decodeBody[dto.AuthResponse](t, resp)
	assert.Equal(t, created.User.ID, login.User.ID)

	resp = fx.do(t, http.MethodPost, "/api/auth/verify", "", map[string]any{"token": login.Token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	verify := decodeBody[dto.VerifyResponse](t, resp)
	assert.True(t, verify.Valid)
	require.NotNil(t, verify.User)
	assert.Equal(t, created.User.ID, verify.User.ID)
}

func TestSignupValidationAndDuplicates(t *testing.T) {
	fx := newFixture(t)

	resp := fx.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email": "ada@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	assert.NotEmpty(t, body["error"])

	fx.signup(t, "ada@example.com", "CSC/2021/001")

	resp = fx.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name": "Other", "email": "ADA@example.com", "matricNumber": "CSC/2021/999",
		"level": 200, "password": "secret123", "studentType": "regular",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "duplicate signup is 400, not 409")
	body = decodeBody[map[string]any](t, resp)
	assert.Equal(t, "User already exists with this email or matric number", body["error"])
}

func TestSignupAcceptsAnyMatricAndStudentType(t *testing.T) {
	fx := newFixture(t)

	// the API imposes no format on either field
	resp := fx.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name": "Ngozi Eze", "email": "ngozi@example.com", "matricNumber": "M1",
		"level": 100, "password": "secret123", "studentType": "Undergraduate",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.AuthResponse](t, resp)
	assert.Equal(t, "M1", created.User.MatricNumber)
	assert.Equal(t, "Undergraduate", created.User.StudentType)

	resp = fx.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"name": "Bola Ade", "email": "bola@example.com", "matricNumber": "20221314455",
		"level": 400, "password": "secret123", "studentType": "Undergraduate",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// and logging in with the short matric still works
	resp = fx.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"matricNumber": "M1", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginFailuresAreUniform401(t *testing.T) {
	fx := newFixture(t)
	fx.signup(t, "ada@example.com", "CSC/2021/001")

	unknown := fx.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"identifier": "ghost@example.com", "password": "secret123",
	})
	wrongPw := fx.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"identifier": "ada@example.com", "password": "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.StatusCode)

	b1 := decodeBody[map[string]any](t, unknown)
	b2 := decodeBody[map[string]any](t, wrongPw)
	assert.Equal(t, b1["error"], b2["error"], "no enumeration via error text")
	assert.Equal(t, "Invalid credentials", b1["error"])
}

func TestVerifyInvalidToken(t *testing.T) {
	fx := newFixture(t)

	resp := fx.do(t, http.MethodPost, "/api/auth/verify", "", map[string]any{"token": "garbage"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	verify := decodeBody[dto.VerifyResponse](t, resp)
	assert.False(t, verify.Valid)
	assert.Equal(t, "Invalid or expired token", verify.Error)
}

func TestRBAC(t *testing.T) {
	fx := newFixture(t)

	student := fx.signup(t, "ada@example.com", "CSC/2021/001")
	admin := fx.adminToken(t)

	// no token
	resp := fx.do(t, http.MethodPost, "/api/admin/announcements", "", map[string]any{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// student token on admin route
	resp = fx.do(t, http.MethodPost, "/api/admin/announcements", student.Token, map[string]any{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// admin token on student route: roles are disjoint, not hierarchical
	resp = fx.do(t, http.MethodGet, "/api/students/profile", admin, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// admin token on admin route
	resp = fx.do(t, http.MethodPost, "/api/admin/announcements", admin, map[string]any{"title": "Notice", "content": "c"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestAnnouncementLifecycleOverHTTP(t *testing.T) {
	fx := newFixture(t)
	admin := fx.adminToken(t)

	resp := fx.do(t, http.MethodPost, "/api/admin/announcements", admin, map[string]any{
		"title": "Exam schedule", "content": "Week 12", "category": "academics", "isUrgent": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.AnnouncementView](t, resp)

	resp = fx.do(t, http.MethodGet, "/api/announcements?category=academics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.AnnouncementView](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	resp = fx.do(t, http.MethodGet, "/api/announcements/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = fx.do(t, http.MethodPut, "/api/admin/announcements/"+created.ID, admin, map[string]any{"title": "Updated"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[dto.AnnouncementView](t, resp)
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, "Week 12", updated.Content)

	resp = fx.do(t, http.MethodDelete, "/api/admin/announcements/"+created.ID, admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = fx.do(t, http.MethodGet, "/api/announcements/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestMultipartAnnouncementUpload(t *testing.T) {
	fx := newFixture(t)
	admin := fx.adminToken(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "With attachment"))
	require.NoError(t, mw.WriteField("content", "see file"))
	fw, err := mw.CreateFormFile("file", "notes.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("pdf bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, fx.server.URL+"/api/admin/announcements", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+admin)

	resp, err := fx.server.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.AnnouncementView](t, resp)
	assert.Equal(t, "/uploads/announcements/notes.pdf", created.FileURL)
}

func TestTimetablesByLevel(t *testing.T) {
	fx := newFixture(t)
	admin := fx.adminToken(t)

	resp := fx.do(t, http.MethodPost, "/api/admin/timetables", admin, map[string]any{
		"title": "200L First", "level": 200, "semester": "first",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = fx.do(t, http.MethodGet, "/api/timetables/200", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.TimetableView](t, resp)
	require.Len(t, list, 1)

	// a level with no timetable is empty, not an error
	resp = fx.do(t, http.MethodGet, "/api/timetables/250", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = decodeBody[[]dto.TimetableView](t, resp)
	assert.Empty(t, list)

	resp = fx.do(t, http.MethodGet, "/api/timetables/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestStudentTimetable(t *testing.T) {
	fx := newFixture(t)
	admin := fx.adminToken(t)
	student := fx.signup(t, "ada@example.com", "CSC/2021/001") // level 200

	for _, tt := range []map[string]any{
		{"title": "200L First", "level": 200, "semester": "first"},
		{"title": "300L First", "level": 300, "semester": "first"},
	} {
		resp := fx.do(t, http.MethodPost, "/api/admin/timetables", admin, tt)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// the student's own level drives the lookup, no level in the request
	resp := fx.do(t, http.MethodGet, "/api/students/timetable", student.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.TimetableView](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "200L First", list[0].Title)

	resp = fx.do(t, http.MethodGet, "/api/students/timetable", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestFeaturedAnnouncements(t *testing.T) {
	fx := newFixture(t)
	admin := fx.adminToken(t)

	resp := fx.do(t, http.MethodPost, "/api/admin/announcements", admin, map[string]any{
		"title": "Pinned", "content": "c", "isFeatured": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = fx.do(t, http.MethodPost, "/api/admin/announcements", admin, map[string]any{
		"title": "Ordinary", "content": "c",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = fx.do(t, http.MethodGet, "/api/announcements/featured", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.AnnouncementView](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Pinned", list[0].Title)
}

func TestStudentResultsAndArchives(t *testing.T) {
	fx := newFixture(t)
	admin := fx.adminToken(t)
	student := fx.signup(t, "ada@example.com", "CSC/2021/001")

	resp := fx.do(t, http.MethodPost, "/api/admin/results", admin, map[string]any{
		"studentId":  "00000000-0000-4000-8000-000000000001",
		"courseCode": "CSC201", "grade": "A", "session": "2023/2024", "level": 200,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// student sees only their own rows (none yet)
	resp = fx.do(t, http.MethodGet, "/api/students/results", student.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mine := decodeBody[[]dto.ResultView](t, resp)
	assert.Empty(t, mine)

	// archive flow
	resp = fx.do(t, http.MethodPost, "/api/admin/announcements", admin, map[string]any{"title": "Keep", "content": "c"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ann := decodeBody[dto.AnnouncementView](t, resp)

	resp = fx.do(t, http.MethodPost, "/api/students/archives", student.Token, map[string]any{"announcementId": ann.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	arc := decodeBody[map[string]any](t, resp)
	archiveID, _ := arc["archiveId"].(string)
	require.NotEmpty(t, archiveID)

	// archiving twice conflicts, mapped to 400
	resp = fx.do(t, http.MethodPost, "/api/students/archives", student.Token, map[string]any{"announcementId": ann.ID})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = fx.do(t, http.MethodGet, "/api/students/archives", student.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	archives := decodeBody[[]dto.ArchiveView](t, resp)
	require.Len(t, archives, 1)
	assert.Equal(t, "Keep", archives[0].Announcement.Title)

	resp = fx.do(t, http.MethodDelete, "/api/students/archives/"+archiveID, student.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestProfilePictureUpload(t *testing.T) {
	fx := newFixture(t)
	student := fx.signup(t, "ada@example.com", "CSC/2021/001")

	upload := func(method string) *http.Response {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="profilePicture"; filename="me.png"`)
		hdr.Set("Content-Type", "image/png")
		fw, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = fw.Write([]byte("png bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req, err := http.NewRequest(method, fx.server.URL+"/api/students/profile/picture", &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+student.Token)

		resp, err := fx.server.Client().Do(req)
		require.NoError(t, err)
		return resp
	}

	resp := upload(http.MethodPut)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[dto.UserView](t, resp)
	assert.Equal(t, "/uploads/profiles/me.png", updated.ProfileImage)

	// older clients still POST to the same path
	resp = upload(http.MethodPost)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthEndpoints(t *testing.T) {
	fx := newFixture(t)

	for _, path := range []string{"/health", "/api/health"} {
		resp := fx.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		body := decodeBody[map[string]string](t, resp)
		assert.Equal(t, "Department Board API is running!", body["message"])
	}

	resp := fx.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRequestIDEchoed(t *testing.T) {
	fx := newFixture(t)

	resp := fx.do(t, http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	resp.Body.Close()
}

func TestMalformedJSON(t *testing.T) {
	fx := newFixture(t)

	req, err := http.NewRequest(http.MethodPost, fx.server.URL+"/api/auth/login", strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := fx.server.Client().Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
