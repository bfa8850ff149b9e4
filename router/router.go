package router

import (
	"github.com/labstack/echo/v4"

	authctl "mycolab/pkg/auth/controller"
	chatctl "mycolab/pkg/chat/controller"
	culturectl "mycolab/pkg/culture/controller"
	exportctl "mycolab/pkg/export/controller"
	focusctl "mycolab/pkg/focus/controller"
	growctl "mycolab/pkg/grow/controller"
	inventoryctl "mycolab/pkg/inventory/controller"
	libraryctl "mycolab/pkg/library/controller"
	notificationctl "mycolab/pkg/notification/controller"
	observationctl "mycolab/pkg/observation/controller"
	profilectl "mycolab/pkg/profile/controller"
	suggestionctl "mycolab/pkg/suggestion/controller"
)

type Controllers struct {
	Auth         authctl.AuthController
	Health       interface{ Health(echo.Context) error }
	Profile      profilectl.ProfileController
	Culture      culturectl.CultureController
	Grow         growctl.GrowController
	Observation  observationctl.ObservationController
	Inventory    inventoryctl.InventoryController
	Library      libraryctl.LibraryController
	Suggestion   suggestionctl.SuggestionController
	Notification notificationctl.NotificationController
	Focus        focusctl.FocusController
	Chat         chatctl.ChatController
	Export       exportctl.ExportController
}

type Options struct {
	Identity  echo.MiddlewareFunc
	Admin     echo.MiddlewareFunc
	UploadDir string // served at /uploads when set
}

const Prefix = "/api/v1"

func New(e *echo.Echo, opt Options, c Controllers) *echo.Echo {
	if opt.UploadDir != "" {
		e.Static("/uploads", opt.UploadDir)
	}
	e.GET(Prefix+"/health", c.Health.Health)

	api := e.Group(Prefix, use(opt.Identity)...)
	api.GET("/whoami", c.Auth.WhoAmI)
	api.GET("/devlogin", c.Auth.DevLogin)

	api.GET("/me/profile", c.Profile.GetProfile)
	api.PUT("/me/profile", c.Profile.UpdateProfile)
	api.GET("/me/settings", c.Profile.GetSettings)
	api.PUT("/me/settings", c.Profile.UpdateSettings)

	api.GET("/cultures", c.Culture.List)
	api.POST("/cultures", c.Culture.Create)
	api.GET("/cultures/:id", c.Culture.Get)
	api.PUT("/cultures/:id", c.Culture.Update)
	api.DELETE("/cultures/:id", c.Culture.Delete)
	api.POST("/cultures/:id/archive", c.Culture.Archive)
	api.POST("/cultures/:id/unarchive", c.Culture.Unarchive)
	api.POST("/cultures/:id/transfer", c.Culture.Transfer)

	// static segments before :id
	api.GET("/grows/board", c.Grow.Board)
	api.GET("/grows", c.Grow.List)
	api.POST("/grows", c.Grow.Create)
	api.GET("/grows/:id", c.Grow.Get)
	api.PUT("/grows/:id", c.Grow.Update)
	api.DELETE("/grows/:id", c.Grow.Delete)
	api.POST("/grows/:id/stage", c.Grow.ChangeStage)
	api.POST("/grows/:id/advance", c.Grow.Advance)
	api.POST("/grows/:id/archive", c.Grow.Archive)
	api.POST("/grows/:id/unarchive", c.Grow.Unarchive)
	api.GET("/grows/:id/history", c.Grow.History)
	api.GET("/grows/:id/stats", c.Grow.Stats)
	api.GET("/grows/:id/summary", c.Chat.GrowSummary)
	api.GET("/grows/:id/flushes", c.Grow.ListFlushes)
	api.POST("/grows/:id/flushes", c.Grow.AddFlush)
	api.DELETE("/flushes/:id", c.Grow.DeleteFlush)

	api.GET("/observations", c.Observation.List)
	api.POST("/observations", c.Observation.Create)
	api.PUT("/observations/:id", c.Observation.Update)
	api.DELETE("/observations/:id", c.Observation.Delete)
	api.POST("/observations/:id/photo", c.Observation.UploadPhoto)

	api.GET("/inventory/low-stock", c.Inventory.LowStock)
	api.GET("/inventory", c.Inventory.List)
	api.POST("/inventory", c.Inventory.Create)
	api.GET("/inventory/:id", c.Inventory.Get)
	api.PUT("/inventory/:id", c.Inventory.Update)
	api.DELETE("/inventory/:id", c.Inventory.Delete)
	api.POST("/inventory/:id/adjust", c.Inventory.Adjust)
	api.POST("/inventory/:id/archive", c.Inventory.Archive)

	api.GET("/library/species", c.Library.ListSpecies)
	api.GET("/library/species/:id", c.Library.GetSpecies)
	api.GET("/library/strains", c.Library.ListStrains)

	api.GET("/suggestions", c.Suggestion.Mine)
	api.POST("/suggestions", c.Suggestion.Submit)
	api.DELETE("/suggestions/:id", c.Suggestion.Withdraw)

	api.GET("/notifications", c.Notification.List)
	api.GET("/notifications/unread-count", c.Notification.UnreadCount)
	api.POST("/notifications/read-all", c.Notification.MarkAllRead)
	api.POST("/notifications/:id/read", c.Notification.MarkRead)
	api.DELETE("/notifications/:id", c.Notification.Delete)

	api.GET("/focus/today", c.Focus.Today)

	api.POST("/chat", c.Chat.Send)
	api.GET("/chat/history", c.Chat.History)
	api.DELETE("/chat/history", c.Chat.ClearHistory)

	api.GET("/export/grows.xlsx", c.Export.Grows)

	admin := api.Group("/admin", use(opt.Admin)...)
	admin.POST("/library/species", c.Library.CreateSpecies)
	admin.PUT("/library/species/:id", c.Library.UpdateSpecies)
	admin.DELETE("/library/species/:id", c.Library.DeleteSpecies)
	admin.POST("/library/strains", c.Library.CreateStrain)
	admin.PUT("/library/strains/:id", c.Library.UpdateStrain)
	admin.DELETE("/library/strains/:id", c.Library.DeleteStrain)
	admin.POST("/library/import", c.Library.Import)
	admin.GET("/suggestions", c.Suggestion.Queue)
	admin.POST("/suggestions/:id/approve", c.Suggestion.Approve)
	admin.POST("/suggestions/:id/reject", c.Suggestion.Reject)

	return e
}

func use(m echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if m == nil {
		return nil
	}
	return []echo.MiddlewareFunc{m}
}
