package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/deptboard/board-service/internal/domain"
)

type fakeAnnouncementRepo struct {
	items  map[string]*domain.Announcement
	nextID int
	fail   bool
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{items: map[string]*domain.Announcement{}}
}

func (f *fakeAnnouncementRepo) List(_ context.Context, fl domain.AnnouncementFilter) ([]domain.Announcement, error) {
	if f.fail {
		return nil, domain.ErrStoreUnavailable(errors.New("down"))
	}
	var out []domain.Announcement
	for _, a := range f.items {
		if fl.Search != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(fl.Search)) &&
			!strings.Contains(strings.ToLower(a.Content), strings.ToLower(fl.Search)) {
			continue
		}
		if fl.Category != "" && a.Category != fl.Category {
			continue
		}
		if fl.Featured != nil && a.IsFeatured != *fl.Featured {
			continue
		}
		if fl.Urgent != nil && a.IsUrgent != *fl.Urgent {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeAnnouncementRepo) GetByID(_ context.Context, id string) (*domain.Announcement, error) {
	if f.fail {
		return nil, domain.ErrStoreUnavailable(errors.New("down"))
	}
	if a, ok := f.items[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	if f.fail {
		return nil, domain.ErrStoreUnavailable(errors.New("down"))
	}
	f.nextID++
	cp := *a
	cp.ID = fmt.Sprintf("ann-%d", f.nextID)
	cp.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Millisecond)
	f.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeAnnouncementRepo) Update(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	if _, ok := f.items[a.ID]; !ok {
		return nil, domain.ErrNotFound("announcement")
	}
	cp := *a
	f.items[a.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeAnnouncementRepo) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakeTimetableRepo struct {
	items  []domain.Timetable
	nextID int
}

func (f *fakeTimetableRepo) ListByLevel(_ context.Context, level int) ([]domain.Timetable, error) {
	var out []domain.Timetable
	for _, tt := range f.items {
		if tt.Level == level {
			out = append(out, tt)
		}
	}
	return out, nil
}

func (f *fakeTimetableRepo) ListAll(_ context.Context) ([]domain.Timetable, error) {
	return append([]domain.Timetable(nil), f.items...), nil
}

func (f *fakeTimetableRepo) Create(_ context.Context, tt *domain.Timetable) (*domain.Timetable, error) {
	f.nextID++
	cp := *tt
	cp.ID = fmt.Sprintf("tt-%d", f.nextID)
	f.items = append(f.items, cp)
	return &cp, nil
}

func (f *fakeTimetableRepo) Delete(_ context.Context, id string) error {
	for i, tt := range f.items {
		if tt.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeResultRepo struct {
	items  []domain.Result
	nextID int
}

func (f *fakeResultRepo) ListByStudent(_ context.Context, studentID string) ([]domain.Result, error) {
	var out []domain.Result
	for _, r := range f.items {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) Create(_ context.Context, r *domain.Result) (*domain.Result, error) {
	f.nextID++
	cp := *r
	cp.ID = fmt.Sprintf("res-%d", f.nextID)
	f.items = append(f.items, cp)
	return &cp, nil
}

type fakeEventRepo struct {
	items  []domain.Event
	nextID int
}

func (f *fakeEventRepo) List(_ context.Context) ([]domain.Event, error) {
	return append([]domain.Event(nil), f.items...), nil
}

func (f *fakeEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	f.nextID++
	cp := *e
	cp.ID = fmt.Sprintf("evt-%d", f.nextID)
	f.items = append(f.items, cp)
	return &cp, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id string) error {
	for i, e := range f.items {
		if e.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeArchiveRepo struct {
	items  map[string]*domain.Archive
	nextID int
}

func newFakeArchiveRepo() *fakeArchiveRepo {
	return &fakeArchiveRepo{items: map[string]*domain.Archive{}}
}

func (f *fakeArchiveRepo) ListByStudent(_ context.Context, studentID string) ([]domain.Archive, error) {
	var out []domain.Archive
	for _, a := range f.items {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeArchiveRepo) Create(_ context.Context, studentID, announcementID string) (*domain.Archive, error) {
	for _, a := range f.items {
		if a.StudentID == studentID && a.AnnouncementID == announcementID {
			return nil, domain.ErrAlreadyArchived()
		}
	}
	f.nextID++
	a := &domain.Archive{
		ID:             fmt.Sprintf("arc-%d", f.nextID),
		StudentID:      studentID,
		AnnouncementID: announcementID,
		ArchivedAt:     time.Now(),
	}
	f.items[a.ID] = a
	cp := *a
	return &cp, nil
}

func (f *fakeArchiveRepo) Delete(_ context.Context, studentID, archiveID string) error {
	a, ok := f.items[archiveID]
	if !ok || a.StudentID != studentID {
		return domain.ErrNotFound("archive")
	}
	delete(f.items, archiveID)
	return nil
}

type fakeBoardUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeBoardUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBoardUserRepo) UpdateProfile(_ context.Context, id string, name, email, phone string) (*domain.User, error) {
	u, ok := f.users[id]
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

func (f *fakeBoardUserRepo) UpdateProfileImage(_ context.Context, id string, imageURL string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound()
	}
	u.ProfileImage = imageURL
	cp := *u
	return &cp, nil
}

// fakeFileStore remembers saved names and hands back predictable URLs.
type fakeFileStore struct {
	saved []string
	fail  bool
}

func (f *fakeFileStore) Save(_ context.Context, dir, filename string, r io.Reader) (string, error) {
	if f.fail {
		return "", errors.New("disk full")
	}
	_, _ = io.Copy(io.Discard, r)
	name := dir + "/" + filename
	f.saved = append(f.saved, name)
	return "/uploads/" + name, nil
}

// fakePublisher records published announcements; can simulate broker loss.
type fakePublisher struct {
	published []string
	fail      bool
}

func (f *fakePublisher) PublishAnnouncementCreated(_ context.Context, a *domain.Announcement) error {
	if f.fail {
		return errors.New("broker unreachable")
	}
	f.published = append(f.published, a.ID)
	return nil
}

type boardFixture struct {
	svc           *Service
	announcements *fakeAnnouncementRepo
	timetables    *fakeTimetableRepo
	results       *fakeResultRepo
	events        *fakeEventRepo
	archives      *fakeArchiveRepo
	users         *fakeBoardUserRepo
	files         *fakeFileStore
	publisher     *fakePublisher
}

func newBoardFixture() *boardFixture {
	f := &boardFixture{
		announcements: newFakeAnnouncementRepo(),
		timetables:    &fakeTimetableRepo{},
		results:       &fakeResultRepo{},
		events:        &fakeEventRepo{},
		archives:      newFakeArchiveRepo(),
		users:         &fakeBoardUserRepo{users: map[string]*domain.User{}},
		files:         &fakeFileStore{},
		publisher:     &fakePublisher{},
	}
	f.svc = NewService(f.announcements, f.timetables, f.results, f.events, f.archives, f.users, f.files, f.publisher)
	return f
}
