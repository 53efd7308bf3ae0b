package board

// Service carries the board content use cases: announcements, timetables,
// events, results, per-student archives and profile management.
type Service struct {
	announcements AnnouncementRepo
	timetables    TimetableRepo
	results       ResultRepo
	events        EventRepo
	archives      ArchiveRepo
	users         UserRepo
	files         FileStore
	publisher     EventPublisher
}

func NewService(
	announcements AnnouncementRepo,
	timetables TimetableRepo,
	results ResultRepo,
	events EventRepo,
	archives ArchiveRepo,
	users UserRepo,
	files FileStore,
	publisher EventPublisher,
) *Service {
	return &Service{
		announcements: announcements,
		timetables:    timetables,
		results:       results,
		events:        events,
		archives:      archives,
		users:         users,
		files:         files,
		publisher:     publisher,
	}
}
