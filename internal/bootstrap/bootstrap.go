package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	alertsinadapter "missionctl/internal/modules/alerts/adapter/in"
	alertsoutadapter "missionctl/internal/modules/alerts/adapter/out"
	alertsin "missionctl/internal/modules/alerts/port/in"
	alertsservice "missionctl/internal/modules/alerts/service"
	alertsusecase "missionctl/internal/modules/alerts/usecase"
	contentinadapter "missionctl/internal/modules/content/adapter/in"
	contentoutadapter "missionctl/internal/modules/content/adapter/out"
	contentout "missionctl/internal/modules/content/port/out"
	contentservice "missionctl/internal/modules/content/service"
	contentusecase "missionctl/internal/modules/content/usecase"
	goalsinadapter "missionctl/internal/modules/goals/adapter/in"
	goalsoutadapter "missionctl/internal/modules/goals/adapter/out"
	goalsin "missionctl/internal/modules/goals/port/in"
	goalsout "missionctl/internal/modules/goals/port/out"
	goalsservice "missionctl/internal/modules/goals/service"
	goalsusecase "missionctl/internal/modules/goals/usecase"
	jobsinadapter "missionctl/internal/modules/jobs/adapter/in"
	jobsoutadapter "missionctl/internal/modules/jobs/adapter/out"
	jobsin "missionctl/internal/modules/jobs/port/in"
	jobsout "missionctl/internal/modules/jobs/port/out"
	jobsservice "missionctl/internal/modules/jobs/service"
	jobsusecase "missionctl/internal/modules/jobs/usecase"
	lessonsinadapter "missionctl/internal/modules/lessons/adapter/in"
	lessonsoutadapter "missionctl/internal/modules/lessons/adapter/out"
	lessonsout "missionctl/internal/modules/lessons/port/out"
	lessonsservice "missionctl/internal/modules/lessons/service"
	lessonsusecase "missionctl/internal/modules/lessons/usecase"
	memoryinadapter "missionctl/internal/modules/memory/adapter/in"
	memoryoutadapter "missionctl/internal/modules/memory/adapter/out"
	memorydomain "missionctl/internal/modules/memory/domain"
	memoryin "missionctl/internal/modules/memory/port/in"
	memoryout "missionctl/internal/modules/memory/port/out"
	memoryservice "missionctl/internal/modules/memory/service"
	memoryusecase "missionctl/internal/modules/memory/usecase"
	overviewinadapter "missionctl/internal/modules/overview/adapter/in"
	overviewin "missionctl/internal/modules/overview/port/in"
	overviewusecase "missionctl/internal/modules/overview/usecase"
	tasksinadapter "missionctl/internal/modules/tasks/adapter/in"
	tasksoutadapter "missionctl/internal/modules/tasks/adapter/out"
	tasksin "missionctl/internal/modules/tasks/port/in"
	tasksout "missionctl/internal/modules/tasks/port/out"
	tasksservice "missionctl/internal/modules/tasks/service"
	tasksusecase "missionctl/internal/modules/tasks/usecase"
	"missionctl/internal/platform/clock"
	"missionctl/internal/platform/config"
	"missionctl/internal/platform/httpx"
	"missionctl/internal/platform/logger"
	"missionctl/internal/platform/metrics"
	"missionctl/internal/platform/sqlitedb"
	"missionctl/internal/platform/workspace"
	uiapp "missionctl/internal/ui/app"
)

type App struct {
	Config    config.Config
	Log       *logger.Logger
	DB        *sqlitedb.DB
	Workspace *workspace.Workspace

	Goals    goalsin.Usecase
	Jobs     jobsin.Usecase
	Tasks    tasksin.Usecase
	Alerts   alertsin.Usecase
	Memory   memoryin.Usecase
	Overview overviewin.Usecase

	Router *gin.Engine
}

func New(ctx context.Context, cfg config.Config, log *logger.Logger) (*App, error) {
	loc := cfg.Location()
	clk := clock.Zoned{Location: loc}
	ws := workspace.New(cfg.Workspace.Root)
	if !ws.Exists() {
		log.Warn("workspace root does not exist, markdown reads will be empty", "root", ws.Root())
	}

	repos := openRepositories(ctx, cfg.Database.Path, log)

	goalsUC := goalsusecase.NewInteractor(goalsservice.NewGoalService(
		log.With("module", "goals"),
		repos.goals,
		goalsoutadapter.NewWorkspaceGoalDocument(ws),
	))
	jobsUC := jobsusecase.NewInteractor(jobsservice.NewJobService(
		log.With("module", "jobs"),
		repos.jobs,
		jobsoutadapter.NewWorkspaceJobDocument(ws),
	))
	contentUC := contentusecase.NewInteractor(contentservice.NewContentService(
		log.With("module", "content"),
		repos.content,
		contentoutadapter.NewWorkspaceContentDocument(ws),
	))
	tasksUC := tasksusecase.NewInteractor(tasksservice.NewTaskService(
		log.With("module", "tasks"),
		repos.tasks,
		tasksoutadapter.NewWorkspaceTaskDocument(ws),
	))
	alertsUC := alertsusecase.NewInteractor(alertsservice.NewAlertService(
		log.With("module", "alerts"),
		clk,
		loc,
		alertsoutadapter.NewWorkspaceDocumentReader(ws),
	))
	lessonsUC := lessonsusecase.NewInteractor(lessonsservice.NewLessonService(
		log.With("module", "lessons"),
		repos.highlights,
		lessonsoutadapter.NewWorkspaceLessonDocument(ws),
	))
	memoryLog := log.With("module", "memory")
	memoryUC := memoryusecase.NewInteractor(memoryservice.NewMemoryService(
		memoryLog,
		repos.notes,
		memoryoutadapter.NewWorkspaceMemoryDocument(ws, memoryLog),
		memoryservice.Options{
			RecentDays: cfg.Notes.RecentDays,
			Search: memorydomain.SearchOptions{
				MaxPerFile:   cfg.Search.MaxPerFile,
				MaxTotal:     cfg.Search.MaxTotal,
				ContextLines: cfg.Search.ContextLines,
			},
		},
	))
	overviewUC := overviewusecase.NewInteractor(clk, goalsUC, jobsUC, contentUC, tasksUC, alertsUC)

	app := &App{
		Config:    cfg,
		Log:       log,
		DB:        repos.db,
		Workspace: ws,
		Goals:     goalsUC,
		Jobs:      jobsUC,
		Tasks:     tasksUC,
		Alerts:    alertsUC,
		Memory:    memoryUC,
		Overview:  overviewUC,
	}
	app.Router = app.newRouter(
		goalsinadapter.NewHTTPHandler(goalsUC),
		jobsinadapter.NewHTTPHandler(jobsUC),
		contentinadapter.NewHTTPHandler(contentUC),
		tasksinadapter.NewHTTPHandler(tasksUC),
		alertsinadapter.NewHTTPHandler(alertsUC),
		lessonsinadapter.NewHTTPHandler(lessonsUC),
		memoryinadapter.NewHTTPHandler(memoryUC),
		overviewinadapter.NewHTTPHandler(overviewUC),
	)
	return app, nil
}

// repositories holds the database-backed readers. Every field is nil when
// the database could not be opened; services then read markdown only.
type repositories struct {
	db         *sqlitedb.DB
	goals      goalsout.GoalRepository
	jobs       jobsout.JobRepository
	content    contentout.ContentRepository
	tasks      tasksout.TaskRepository
	highlights lessonsout.HighlightRepository
	notes      memoryout.NoteRepository
}

func openRepositories(ctx context.Context, path string, log *logger.Logger) repositories {
	db, err := sqlitedb.Open(ctx, path)
	if err != nil {
		log.Warn("database unavailable, serving markdown only", "path", path, "error", err)
		return repositories{}
	}
	return repositories{
		db:         db,
		goals:      goalsoutadapter.NewSQLiteGoalRepository(db, log.With("module", "goals")),
		jobs:       jobsoutadapter.NewSQLiteJobRepository(db, log.With("module", "jobs")),
		content:    contentoutadapter.NewSQLiteContentRepository(db, log.With("module", "content")),
		tasks:      tasksoutadapter.NewSQLiteTaskRepository(db, log.With("module", "tasks")),
		highlights: lessonsoutadapter.NewSQLiteHighlightRepository(db, log.With("module", "lessons")),
		notes:      memoryoutadapter.NewSQLiteNoteRepository(db, log.With("module", "memory")),
	}
}

type routeRegistrar interface {
	Register(rg *gin.RouterGroup)
}

func (a *App) newRouter(handlers ...routeRegistrar) *gin.Engine {
	if a.Config.Server.Mode != "" {
		gin.SetMode(a.Config.Server.Mode)
	}
	metrics.Init()

	router := gin.New()
	router.Use(
		httpx.Recovery(a.Log),
		httpx.RequestID(),
		httpx.AccessLog(a.Log),
		metrics.Middleware(),
	)
	// cors.New panics on an empty origin list.
	if len(a.Config.Server.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  a.Config.Server.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", httpx.RequestIDHeader},
			ExposeHeaders: []string{httpx.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.GET("/metrics", metrics.Handler())
	api := router.Group("/api")
	api.GET("/health", a.health)
	for _, h := range handlers {
		h.Register(api)
	}
	return router
}

type healthOutput struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Workspace string `json:"workspace"`
}

// health reports degraded rather than failing: markdown fallback keeps every
// read endpoint usable without the database.
func (a *App) health(c *gin.Context) {
	out := healthOutput{Status: "ok", Database: "ok", Workspace: "ok"}
	if err := a.DB.Ping(c.Request.Context()); err != nil {
		out.Status, out.Database = "degraded", "unavailable"
	}
	if !a.Workspace.Exists() {
		out.Status, out.Workspace = "degraded", "missing"
	}
	httpx.OK(c, out)
}

// Sync copies the markdown goals and pipeline into the database.
func (a *App) Sync(ctx context.Context) error {
	goals, err := a.Goals.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync goals: %w", err)
	}
	jobs, err := a.Jobs.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync jobs: %w", err)
	}
	a.Log.Info("sync complete", "goals", goals.Goals, "jobs", jobs.Jobs)
	return nil
}

func (a *App) Close() error {
	a.Log.Sync()
	return a.DB.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Workspace.Root(), app.Overview, app.Goals, app.Jobs, app.Tasks, app.Alerts)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
