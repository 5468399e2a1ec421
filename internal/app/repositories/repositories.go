package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every repository over one connection pool
type Repositories struct {
	User      *UserRepository
	Token     *TokenRepository
	Teacher   *TeacherRepository
	Student   *StudentRepository
	Song      *SongRepository
	Band      *BandRepository
	Setlist   *SetlistRepository
	Comment   *CommentRepository
	Directory *DirectoryRepository
}

// NewRepositories creates the full repository set
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      NewUserRepository(pool),
		Token:     NewTokenRepository(pool),
		Teacher:   NewTeacherRepository(pool),
		Student:   NewStudentRepository(pool),
		Song:      NewSongRepository(pool),
		Band:      NewBandRepository(pool),
		Setlist:   NewSetlistRepository(pool),
		Comment:   NewCommentRepository(pool),
		Directory: NewDirectoryRepository(pool),
	}
}
