package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hanwat12/Ats-Slrd/internal/applications"
	googleauth "github.com/hanwat12/Ats-Slrd/internal/auth"
	"github.com/hanwat12/Ats-Slrd/internal/feedback"
	"github.com/hanwat12/Ats-Slrd/internal/interviews"
	"github.com/hanwat12/Ats-Slrd/internal/jobs"
	"github.com/hanwat12/Ats-Slrd/internal/notifications"
	"github.com/hanwat12/Ats-Slrd/internal/queries"
	"github.com/hanwat12/Ats-Slrd/internal/resumes"
	"github.com/hanwat12/Ats-Slrd/internal/shared/config"
	"github.com/hanwat12/Ats-Slrd/internal/shared/server"
	"github.com/hanwat12/Ats-Slrd/internal/shared/storage/db"
	"github.com/hanwat12/Ats-Slrd/internal/shared/storage/object"
	localstore "github.com/hanwat12/Ats-Slrd/internal/shared/storage/object/local"
	"github.com/hanwat12/Ats-Slrd/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	UsersRepo         users.Repo
	JobsRepo          jobs.Repo
	ApplicationsRepo  applications.Repo
	InterviewsRepo    interviews.Repo
	FeedbackRepo      feedback.Repo
	NotificationsRepo notifications.Repo
	QueriesRepo       queries.Repo
	ResumesRepo       resumes.Repo

	UsersService         *users.Service
	ApplicationsService  *applications.Service
	InterviewsService    *interviews.Service
	FeedbackService      *feedback.Service
	NotificationsService *notifications.Service
	QueriesService       *queries.Service
	ResumesService       *resumes.Service
	GoogleAuth           *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:               cfg,
		UsersHandler:         users.NewHandler(app.UsersService),
		ApplicationsHandler:  applications.NewHandler(app.ApplicationsService),
		InterviewsHandler:    interviews.NewHandler(app.InterviewsService),
		FeedbackHandler:      feedback.NewHandler(app.FeedbackService),
		NotificationsHandler: notifications.NewHandler(app.NotificationsService),
		QueriesHandler:       queries.NewHandler(app.QueriesService),
		ResumesHandler:       resumes.NewHandler(app.ResumesService),
		GoogleAuth:           app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.JobsRepo = &jobs.PGRepo{DB: app.DB}
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
		app.InterviewsRepo = &interviews.PGRepo{DB: app.DB}
		app.FeedbackRepo = &feedback.PGRepo{DB: app.DB}
		app.NotificationsRepo = &notifications.PGRepo{DB: app.DB}
		app.QueriesRepo = &queries.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.JobsRepo = jobs.NewMemoryRepo()
		app.ApplicationsRepo = applications.NewMemoryRepo()
		app.InterviewsRepo = interviews.NewMemoryRepo()
		app.FeedbackRepo = feedback.NewMemoryRepo()
		app.NotificationsRepo = notifications.NewMemoryRepo()
		app.QueriesRepo = queries.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.ApplicationsService = applications.NewService(app.ApplicationsRepo)
	app.InterviewsService = &interviews.Service{
		Repo:         app.InterviewsRepo,
		Users:        app.UsersRepo,
		Jobs:         app.JobsRepo,
		Applications: app.ApplicationsRepo,
	}
	app.NotificationsService = notifications.NewService(app.NotificationsRepo)
	app.QueriesService = queries.NewService(app.QueriesRepo)
	app.ResumesService = &resumes.Service{Store: app.Store, Repo: app.ResumesRepo}

	app.FeedbackService = &feedback.Service{
		Repo:          app.FeedbackRepo,
		Interviews:    interviewAdapter{svc: app.InterviewsService},
		Applications:  applicationAdapter{svc: app.ApplicationsService},
		Notifications: notifierAdapter{svc: app.NotificationsService},
	}

	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
}

type interviewAdapter struct {
	svc *interviews.Service
}

func (a interviewAdapter) GetDetail(ctx context.Context, interviewID string) (feedback.InterviewDetail, error) {
	detail, err := a.svc.GetWithDetails(ctx, interviewID)
	if err != nil {
		return feedback.InterviewDetail{}, err
	}
	return feedback.InterviewDetail{
		InterviewID:     detail.ID,
		ApplicationID:   detail.ApplicationID,
		CandidateID:     detail.CandidateID,
		JobID:           detail.JobID,
		JobTitle:        detail.Job.Title,
		InterviewerName: detail.InterviewerName,
	}, nil
}

func (a interviewAdapter) UpdateStatus(ctx context.Context, interviewID, status, notes string) error {
	return a.svc.UpdateStatus(ctx, interviewID, status, notes)
}

type applicationAdapter struct {
	svc *applications.Service
}

func (a applicationAdapter) UpdateStatus(ctx context.Context, applicationID, status, notes string) error {
	return a.svc.UpdateStatus(ctx, applicationID, status, notes)
}

type notifierAdapter struct {
	svc *notifications.Service
}

func (a notifierAdapter) Notify(ctx context.Context, userID, title, message, notifType, relatedID string) error {
	_, err := a.svc.Create(ctx, userID, title, message, notifType, relatedID)
	return err
}
