package board

import (
	"context"

	"github.com/deptboard/board-service/internal/domain"
)

// ArchivesForStudent lists the announcements a student has bookmarked.
func (s *Service) ArchivesForStudent(ctx context.Context, studentID string) ([]domain.Archive, error) {
	return s.archives.ListByStudent(ctx, studentID)
}

// ArchiveAnnouncement bookmarks an announcement for a student. Archiving the
// same announcement twice is a conflict, enforced by a unique pair constraint
// in the repo.
func (s *Service) ArchiveAnnouncement(ctx context.Context, studentID, announcementID string) (*domain.Archive, error) {
	if announcementID == "" {
		return nil, domain.ErrMissingField("announcementId")
	}

	a, err := s.announcements.GetByID(ctx, announcementID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound("announcement")
	}

	return s.archives.Create(ctx, studentID, announcementID)
}

// UnarchiveAnnouncement removes a bookmark. Students can only remove their
// own; the repo scopes the delete by student ID.
func (s *Service) UnarchiveAnnouncement(ctx context.Context, studentID, archiveID string) error {
	return s.archives.Delete(ctx, studentID, archiveID)
}
