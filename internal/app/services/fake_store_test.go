package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bandroom/backend/internal/app/models"
)

// fakeStore is an in-memory CommentStore + DirectoryStore used by the
// service tests. Each write advances an internal clock by one second so
// timestamps are distinct and deterministic.
type fakeStore struct {
	comments map[int64]*models.Comment
	nextID   int64
	clock    time.Time

	teachers map[int64]string
	students map[int64]*models.Student
	songs    map[int64]struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		comments: make(map[int64]*models.Comment),
		nextID:   1,
		clock:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		teachers: make(map[int64]string),
		students: make(map[int64]*models.Student),
		songs:    make(map[int64]struct{}),
	}
}

func (f *fakeStore) addTeacher(id int64, name string) {
	f.teachers[id] = name
}

func (f *fakeStore) addStudent(id int64, name, username string) {
	f.students[id] = &models.Student{ID: id, Name: name, Username: username}
}

func (f *fakeStore) addSong(id int64) {
	f.songs[id] = struct{}{}
}

func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeStore) FindByIDAndAuthor(_ context.Context, scope models.CommentScope, id, authorID int64) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok || c.Scope != scope || c.AuthorID != authorID {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeStore) Create(_ context.Context, comment *models.Comment, mentionIDs []int64) error {
	now := f.tick()
	comment.ID = f.nextID
	f.nextID++
	comment.CreatedAt = now
	comment.UpdatedAt = now

	stored := *comment
	stored.Mentions = f.resolveMentions(mentionIDs)
	stored.Author = &models.Teacher{ID: comment.AuthorID, Name: f.teachers[comment.AuthorID]}
	f.comments[comment.ID] = &stored
	return nil
}

func (f *fakeStore) Update(_ context.Context, comment *models.Comment, mentionIDs []int64) error {
	stored, ok := f.comments[comment.ID]
	if !ok {
		return fmt.Errorf("comment not found with ID %d", comment.ID)
	}
	stored.Content = comment.Content
	stored.UpdatedAt = f.tick()
	if stored.Scope == models.ScopeSong {
		stored.Mentions = f.resolveMentions(mentionIDs)
	}
	comment.UpdatedAt = stored.UpdatedAt
	return nil
}

func (f *fakeStore) Delete(_ context.Context, scope models.CommentScope, id int64) error {
	c, ok := f.comments[id]
	if !ok || c.Scope != scope {
		return fmt.Errorf("comment not found with ID %d", id)
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeStore) ListForScope(_ context.Context, scope models.CommentScope, scopeID int64, _ int) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, c := range f.comments {
		if c.Scope == scope && c.ScopeID == scopeID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeStore) ListMentioning(_ context.Context, studentID int64) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, c := range f.comments {
		for _, m := range c.Mentions {
			if m.ID == studentID {
				copied := *c
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) TeacherExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.teachers[id]
	return ok, nil
}

func (f *fakeStore) StudentExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.students[id]
	return ok, nil
}

func (f *fakeStore) SongExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.songs[id]
	return ok, nil
}

func (f *fakeStore) MissingStudents(_ context.Context, ids []int64) ([]int64, error) {
	var missing []int64
	for _, id := range ids {
		if _, ok := f.students[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (f *fakeStore) resolveMentions(ids []int64) []*models.Student {
	var out []*models.Student
	for _, id := range ids {
		if s, ok := f.students[id]; ok {
			copied := *s
			out = append(out, &copied)
		} else {
			out = append(out, &models.Student{ID: id})
		}
	}
	return out
}
