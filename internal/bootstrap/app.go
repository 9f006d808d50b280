package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/ZertGraf/pachca-tags/internal/cli"
	"github.com/ZertGraf/pachca-tags/internal/pkg/config"
	"github.com/ZertGraf/pachca-tags/internal/pkg/logger"
	"github.com/ZertGraf/pachca-tags/internal/pkg/pachca"
	"github.com/ZertGraf/pachca-tags/internal/repository"
	"github.com/ZertGraf/pachca-tags/internal/service"
)

type Application struct {
	Config *config.Config
	Logger *logger.Logger
	API    *pachca.Client

	TagRepo  repository.TagRepository
	UserRepo repository.UserRepository

	TagService    *service.TagService
	UserService   *service.UserService
	ExportService *service.ExportService
	AssignService *service.AssignService

	Menu *cli.Menu
}

func New() (*Application, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: cfg.LogAddSource,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	api, err := pachca.New(log, &pachca.Config{
		BaseURL:         cfg.APIURL,
		Token:           cfg.AdminToken,
		Timeout:         cfg.HTTPTimeout,
		RequestIDHeader: cfg.RequestIDHeader,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	return &Application{
		Config: cfg,
		Logger: log,
		API:    api,
	}, nil
}

// Init wires repositories, services and the menu reading in and writing out.
func (app *Application) Init(in io.Reader, out io.Writer) {
	app.Logger.Info("initializing application", "api_url", app.Config.APIURL)

	app.TagRepo = repository.NewTagRepo(app.API, app.Logger)
	app.UserRepo = repository.NewUserRepo(app.API, app.Logger)

	app.TagService = service.NewTagService(app.TagRepo, app.Logger)
	app.UserService = service.NewUserService(app.UserRepo, app.Logger)
	app.ExportService = service.NewExportService(app.TagService, app.UserService, app.Logger)
	app.AssignService = service.NewAssignService(app.TagService, app.UserService, app.UserRepo, app.Logger)

	app.Menu = cli.NewMenu(in, out, app.ExportService, app.AssignService, cli.Paths{
		TagsExport:  app.Config.TagsExportFile,
		UsersExport: app.Config.UsersExportFile,
		UsersTags:   app.Config.UsersTagsFile,
	}, app.Logger)
}

func (app *Application) Run(ctx context.Context) error {
	if app.Menu == nil {
		return fmt.Errorf("application not initialized, call Init() first")
	}
	return app.Menu.Run(ctx)
}
