// Package app wires repositories, services and controllers together. The
// HTTP server and the mycolabctl CLI share it.
package app

import (
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"mycolab/config"
	"mycolab/pkg/ai"
	"mycolab/pkg/lifecycle"
	"mycolab/pkg/mailer"
	"mycolab/pkg/middleware"
	"mycolab/pkg/storage"
	"mycolab/router"

	authCtrlImp "mycolab/pkg/auth/controllerImp"
	healthCtrlImp "mycolab/pkg/health/controllerImp"

	chatCtrlImp "mycolab/pkg/chat/controllerImp"
	chatRepoImp "mycolab/pkg/chat/repositoryImp"
	chatSvcImp "mycolab/pkg/chat/serviceImp"

	cultureCtrlImp "mycolab/pkg/culture/controllerImp"
	cultureRepoImp "mycolab/pkg/culture/repositoryImp"
	cultureSvcImp "mycolab/pkg/culture/serviceImp"

	exportCtrlImp "mycolab/pkg/export/controllerImp"
	exportsvc "mycolab/pkg/export/service"
	exportSvcImp "mycolab/pkg/export/serviceImp"

	focusCtrlImp "mycolab/pkg/focus/controllerImp"
	focussvc "mycolab/pkg/focus/service"
	focusSvcImp "mycolab/pkg/focus/serviceImp"

	growCtrlImp "mycolab/pkg/grow/controllerImp"
	growRepoImp "mycolab/pkg/grow/repositoryImp"
	growSvcImp "mycolab/pkg/grow/serviceImp"

	inventoryCtrlImp "mycolab/pkg/inventory/controllerImp"
	inventoryRepoImp "mycolab/pkg/inventory/repositoryImp"
	inventorySvcImp "mycolab/pkg/inventory/serviceImp"

	libraryCtrlImp "mycolab/pkg/library/controllerImp"
	"mycolab/pkg/library/importer"
	libraryRepoImp "mycolab/pkg/library/repositoryImp"
	librarySvcImp "mycolab/pkg/library/serviceImp"

	notificationCtrlImp "mycolab/pkg/notification/controllerImp"
	notificationRepoImp "mycolab/pkg/notification/repositoryImp"
	notificationSvcImp "mycolab/pkg/notification/serviceImp"

	observationCtrlImp "mycolab/pkg/observation/controllerImp"
	observationRepoImp "mycolab/pkg/observation/repositoryImp"
	observationSvcImp "mycolab/pkg/observation/serviceImp"

	profileCtrlImp "mycolab/pkg/profile/controllerImp"
	profilesvc "mycolab/pkg/profile/service"
	profileRepoImp "mycolab/pkg/profile/repositoryImp"
	profileSvcImp "mycolab/pkg/profile/serviceImp"

	suggestionCtrlImp "mycolab/pkg/suggestion/controllerImp"
	suggestionRepoImp "mycolab/pkg/suggestion/repositoryImp"
	suggestionSvcImp "mycolab/pkg/suggestion/serviceImp"
)

const mailTimeout = 20 * time.Second

type App struct {
	Cfg  config.AppConfig
	DB   *gorm.DB
	Mail *mailer.Dispatcher

	Profiles profilesvc.ProfileService
	Focus    focussvc.FocusService
	Export   exportsvc.ExportService

	ctrls router.Controllers
}

// Build constructs every component. d may be nil for the default stage table.
func Build(cfg config.AppConfig, db *gorm.DB, d *lifecycle.Durations) *App {
	if d == nil {
		d = lifecycle.DefaultDurations()
	}
	// LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	var bucket storage.Bucket
	if cfg.StorageEndpoint != "" {
		bucket = storage.NewHTTP(cfg.StorageEndpoint, cfg.StorageAPIKey, cfg.StorageBucket)
	} else {
		bucket = storage.NewLocal(cfg.UploadDir, cfg.PublicBaseURL)
	}
	mail := mailer.NewDispatcher(mailer.New(cfg.MailEndpoint, cfg.MailAPIKey, cfg.MailFrom), mailTimeout)

	// repositories
	growRepo := growRepoImp.New(db)
	cultureRepo := cultureRepoImp.New(db)
	inventoryRepo := inventoryRepoImp.New(db)
	observationRepo := observationRepoImp.New(db)

	// services
	profiles := profileSvcImp.NewProfileService(profileRepoImp.New(db), cfg.Timezone)
	library := librarySvcImp.NewLibraryService(libraryRepoImp.New(db), importer.New(cfg.LibraryAllowedDomains, cfg.LibraryMaxBytes))
	notifications := notificationSvcImp.NewNotificationService(notificationRepoImp.New(db))
	cultures := cultureSvcImp.NewCultureService(cultureRepo, library, profiles)
	grows := growSvcImp.NewGrowService(growRepo, library, cultures, profiles)
	observations := observationSvcImp.NewObservationService(observationRepo, grows, cultures, notifications, bucket, profiles)
	inventory := inventorySvcImp.NewInventoryService(inventoryRepo, profiles)
	suggestions := suggestionSvcImp.NewSuggestionService(suggestionRepoImp.New(db), library, notifications, profiles, mail)
	chat := chatSvcImp.NewChatService(chatRepoImp.New(db), llm, grows, observations, library, profiles, cfg.ChatRatePerMin)
	focus := focusSvcImp.NewFocusService(focusSvcImp.Sources{
		Grows:        growRepo,
		Cultures:     cultureRepo,
		Inventory:    inventoryRepo,
		Observations: observationRepo,
		Settings:     profiles,
		Strains:      library,
	}, d)
	export := exportSvcImp.NewExportService(growRepo, library, profiles)

	checks := []healthCtrlImp.Check{healthCtrlImp.DBCheck(db)}
	if cfg.StorageEndpoint == "" {
		checks = append(checks, healthCtrlImp.DirCheck("uploads", cfg.UploadDir))
	}

	return &App{
		Cfg:      cfg,
		DB:       db,
		Mail:     mail,
		Profiles: profiles,
		Focus:    focus,
		Export:   export,
		ctrls: router.Controllers{
			Auth:         authCtrlImp.New(profiles, cfg.AuthMode == "dev"),
			Health:       healthCtrlImp.NewHealthCtrl(checks...),
			Profile:      profileCtrlImp.New(profiles),
			Culture:      cultureCtrlImp.New(cultures),
			Grow:         growCtrlImp.New(grows),
			Observation:  observationCtrlImp.New(observations),
			Inventory:    inventoryCtrlImp.New(inventory),
			Library:      libraryCtrlImp.New(library),
			Suggestion:   suggestionCtrlImp.New(suggestions),
			Notification: notificationCtrlImp.New(notifications),
			Focus:        focusCtrlImp.New(focus),
			Chat:         chatCtrlImp.New(chat),
			Export:       exportCtrlImp.New(export),
		},
	}
}

// Echo returns the configured HTTP server.
func (a *App) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(echoMiddleware.BodyLimit("12M"))

	opt := router.Options{
		Identity: middleware.Identity(a.Cfg.AuthMode),
		Admin:    middleware.RequireAdmin(a.Profiles),
	}
	if a.Cfg.StorageEndpoint == "" {
		opt.UploadDir = a.Cfg.UploadDir
	}
	return router.New(e, opt, a.ctrls)
}
