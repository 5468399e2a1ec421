package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bandroom/backend/internal/app/controllers"
	"github.com/bandroom/backend/internal/app/migrations"
	"github.com/bandroom/backend/internal/app/repositories"
	"github.com/bandroom/backend/internal/app/routes"
	"github.com/bandroom/backend/internal/app/services"
	"github.com/bandroom/backend/internal/config"
	"github.com/bandroom/backend/internal/db"
	"github.com/bandroom/backend/internal/middleware"
	"github.com/bandroom/backend/internal/pkg/auth"
	"github.com/bandroom/backend/internal/pkg/helpers"
	"github.com/bandroom/backend/internal/pkg/logger"
	"github.com/bandroom/backend/internal/seed"
)

// Dependencies holds the wired application graph
type Dependencies struct {
	Repos          *repositories.Repositories
	JWTService     *auth.JWTService
	AuthService    services.AuthService
	TeacherService services.TeacherService
	StudentService services.StudentService
	SongService    services.SongService
	BandService    services.BandService
	SetlistService services.SetlistService
	CommentService services.CommentService
	FeedService    services.FeedService
	Controllers    routes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects the pool, applies migrations and seeds demo data
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	pool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	lgr.Info().Msg("Database connection established")

	if err := migrations.NewMigrator(pool).Migrate(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	repos := repositories.NewRepositories(pool)
	seeder := seed.NewSeeder(repos, cfg)
	if err := seeder.Run(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database seeding failed: %w", err)
	}

	if deleted, err := repos.Token.DeleteExpired(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Refresh token cleanup failed")
	} else if deleted > 0 {
		lgr.Info().Int64("deleted", deleted).Msg("Removed stale refresh tokens")
	}

	return pool, nil
}

// BuildDependencies wires repositories, services and controllers
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	repos := repositories.NewRepositories(pool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	validator := services.NewCommentValidator(repos.Comment, repos.Directory)
	feedService := services.NewFeedService(repos.Comment)
	commentService := services.NewCommentService(repos.Comment, validator, feedService)

	authService := services.NewAuthService(repos.User, repos.Teacher, repos.Token, jwtService)
	teacherService := services.NewTeacherService(repos.Teacher)
	studentService := services.NewStudentService(repos.Student)
	songService := services.NewSongService(repos.Song)
	bandService := services.NewBandService(repos.Band)
	setlistService := services.NewSetlistService(repos.Setlist)

	deps := &Dependencies{
		Repos:          repos,
		JWTService:     jwtService,
		AuthService:    authService,
		TeacherService: teacherService,
		StudentService: studentService,
		SongService:    songService,
		BandService:    bandService,
		SetlistService: setlistService,
		CommentService: commentService,
		FeedService:    feedService,
		Controllers: routes.Controllers{
			Auth:    controllers.NewAuthController(authService),
			Teacher: controllers.NewTeacherController(teacherService),
			Student: controllers.NewStudentController(studentService, songService),
			Song:    controllers.NewSongController(songService),
			Band:    controllers.NewBandController(bandService),
			Setlist: controllers.NewSetlistController(setlistService),
			Comment: controllers.NewCommentController(commentService, feedService),
		},
		Logger: lgr,
	}
	return deps, nil
}

// SetupRouter builds the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.SetupRoutes(router, deps.Controllers, deps.JWTService)
	return router
}
