package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/repositories"
	"github.com/bandroom/backend/internal/config"
	"github.com/bandroom/backend/internal/pkg/auth"
	"github.com/bandroom/backend/internal/pkg/logger"
)

// Seeder fills a fresh database with a demo roster: an admin teacher
// account, per-instrument teachers, students, bands with seasonal setlists
// and a few song comments with mentions
type Seeder struct {
	repos *repositories.Repositories
	cfg   *config.Config
}

// NewSeeder creates a new Seeder
func NewSeeder(repos *repositories.Repositories, cfg *config.Config) *Seeder {
	return &Seeder{repos: repos, cfg: cfg}
}

// Run seeds demo data unless user accounts already exist
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Seed.Enabled {
		return nil
	}

	count, err := s.repos.User.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug().Msg("Database already has accounts, skipping seed")
		return nil
	}

	logger.Info().Msg("Seeding demo data")

	admin, err := s.createAdmin(ctx)
	if err != nil {
		return err
	}

	teachers, err := s.createTeachers(ctx, admin)
	if err != nil {
		return err
	}

	students, err := s.createStudents(ctx)
	if err != nil {
		return err
	}

	songs, err := s.createSongs(ctx, students)
	if err != nil {
		return err
	}

	bands, err := s.createBands(ctx, students, teachers)
	if err != nil {
		return err
	}

	if err := s.createSetlists(ctx, bands, songs); err != nil {
		return err
	}

	return s.createComments(ctx, teachers, students, songs)
}

func (s *Seeder) createAdmin(ctx context.Context) (*models.User, error) {
	hash, err := auth.HashPassword(s.cfg.Seed.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &models.User{
		Email:        s.cfg.Seed.AdminEmail,
		Username:     "admin",
		PasswordHash: hash,
	}
	if err := s.repos.User.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *Seeder) createTeachers(ctx context.Context, admin *models.User) ([]*models.Teacher, error) {
	specs := []struct {
		name        string
		instruments []models.Instrument
	}{
		{"Laura Finch", []models.Instrument{models.InstrumentVocals, models.InstrumentKeys}},
		{"Dan Kowalski", []models.Instrument{models.InstrumentGuitar}},
		{"Mia Torres", []models.Instrument{models.InstrumentBass, models.InstrumentGuitar}},
		{"Sam Okafor", []models.Instrument{models.InstrumentDrums}},
		{"Nina Berg", []models.Instrument{models.InstrumentKeys}},
	}

	teachers := make([]*models.Teacher, 0, len(specs))
	for i, spec := range specs {
		teacher := &models.Teacher{
			Name:        spec.name,
			Instruments: spec.instruments,
		}
		if i == 0 {
			teacher.UserID = &admin.ID
		}
		if err := s.repos.Teacher.Create(ctx, teacher); err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}
	return teachers, nil
}

func (s *Seeder) createStudents(ctx context.Context) ([]*models.Student, error) {
	specs := []struct {
		name       string
		username   string
		birthYear  int
		instrument models.Instrument
	}{
		{"Alice Martin", "alice", 2013, models.InstrumentVocals},
		{"Bob Chen", "bob", 2012, models.InstrumentGuitar},
		{"Cleo Wright", "cleo", 2011, models.InstrumentDrums},
		{"Dre Palmer", "dre", 2010, models.InstrumentBass},
		{"Elif Demir", "elif", 2009, models.InstrumentKeys},
		{"Finn Hughes", "finn", 2008, models.InstrumentGuitar},
		{"Gia Romano", "gia", 2007, models.InstrumentVocals},
		{"Hana Sato", "hana", 1990, models.InstrumentDrums},
		{"Ivan Petrov", "ivan", 1985, models.InstrumentBass},
		{"June Park", "june", 1979, models.InstrumentKeys},
	}

	students := make([]*models.Student, 0, len(specs))
	for _, spec := range specs {
		student := &models.Student{
			Name:       spec.name,
			Username:   spec.username,
			DOB:        time.Date(spec.birthYear, time.June, 15, 0, 0, 0, 0, time.UTC),
			Instrument: spec.instrument,
		}
		if err := s.repos.Student.Create(ctx, student); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, nil
}

func (s *Seeder) createSongs(ctx context.Context, students []*models.Student) ([]*models.Song, error) {
	specs := []struct {
		title, artist, key string
		bpm                int
		performers         []int
	}{
		{"Seven Nation Army", "The White Stripes", "E", 124, []int{0, 1, 2}},
		{"Smells Like Teen Spirit", "Nirvana", "Fm", 117, []int{3, 4, 5}},
		{"Dreams", "Fleetwood Mac", "F", 120, []int{6, 7}},
		{"Superstition", "Stevie Wonder", "Ebm", 101, []int{8, 9}},
	}

	songs := make([]*models.Song, 0, len(specs))
	for _, spec := range specs {
		ids := make([]int64, 0, len(spec.performers))
		for _, idx := range spec.performers {
			ids = append(ids, students[idx].ID)
		}
		song := &models.Song{
			Title:  spec.title,
			Artist: spec.artist,
			Key:    spec.key,
			BPM:    spec.bpm,
		}
		if err := s.repos.Song.Create(ctx, song, ids); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}

func (s *Seeder) createBands(ctx context.Context, students []*models.Student, teachers []*models.Teacher) ([]*models.Band, error) {
	specs := []struct {
		name     string
		ageGroup models.AgeGroup
		schedule string
		members  []int
		coaches  []int
	}{
		{"The Tiny Amps", models.AgeGroupRookie, "Mon 16:00", []int{0, 1, 2}, []int{0}},
		{"Volume Ctrl", models.AgeGroupRock101, "Tue 17:00", []int{3, 4, 5}, []int{1, 2}},
		{"Feedback Loop", models.AgeGroupPerformance, "Thu 18:00", []int{6, 7}, []int{3}},
		{"The Day Jobs", models.AgeGroupAdults, "Wed 20:00", []int{8, 9}, []int{4}},
	}

	bands := make([]*models.Band, 0, len(specs))
	for _, spec := range specs {
		memberIDs := make([]int64, 0, len(spec.members))
		for _, idx := range spec.members {
			memberIDs = append(memberIDs, students[idx].ID)
		}
		coachIDs := make([]int64, 0, len(spec.coaches))
		for _, idx := range spec.coaches {
			coachIDs = append(coachIDs, teachers[idx].ID)
		}
		band := &models.Band{
			Name:     spec.name,
			AgeGroup: spec.ageGroup,
			Schedule: spec.schedule,
		}
		if err := s.repos.Band.Create(ctx, band, memberIDs, coachIDs); err != nil {
			return nil, err
		}
		bands = append(bands, band)
	}
	return bands, nil
}

func (s *Seeder) createSetlists(ctx context.Context, bands []*models.Band, songs []*models.Song) error {
	season := &models.Season{
		StartDate: time.Now().AddDate(0, -1, 0),
	}
	if err := s.repos.Setlist.CreateSeason(ctx, season); err != nil {
		return err
	}

	specs := []struct {
		theme   string
		program []int
	}{
		{"Garage Rock", []int{0}},
		{"Grunge", []int{1, 0}},
		{"Classic Rock", []int{2}},
		{"Funk", []int{3, 2}},
	}

	for i, band := range bands {
		spec := specs[i%len(specs)]
		songIDs := make([]int64, 0, len(spec.program))
		for _, idx := range spec.program {
			songIDs = append(songIDs, songs[idx].ID)
		}
		setlist := &models.Setlist{
			BandID:   band.ID,
			SeasonID: season.ID,
			Theme:    spec.theme,
		}
		if err := s.repos.Setlist.Create(ctx, setlist, songIDs); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createComments(ctx context.Context, teachers []*models.Teacher, students []*models.Student, songs []*models.Song) error {
	studentComment := &models.Comment{
		Scope:    models.ScopeStudent,
		ScopeID:  students[0].ID,
		Content:  "Solid pitch control this week, keep working on breath support.",
		AuthorID: teachers[0].ID,
	}
	if err := s.repos.Comment.Create(ctx, studentComment, nil); err != nil {
		return err
	}

	songComment := &models.Comment{
		Scope:    models.ScopeSong,
		ScopeID:  songs[0].ID,
		Content:  "Tight groove on the chorus, nice lock between bass and drums.",
		AuthorID: teachers[1].ID,
	}
	return s.repos.Comment.Create(ctx, songComment, []int64{students[1].ID, students[2].ID})
}
