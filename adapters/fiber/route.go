package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/KapilPandit0408/gibots"
)

type Adapter struct {
	app *fiber.App
}

var _ gibots.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(handler gibots.DirectoryHandler, basePath string) error {
	api := a.app.Group(basePath)

	// Public routes
	api.Post("/register", handleRegister(handler))
	api.Post("/login", handleLogin(handler))

	// Protected routes: the guard must run before the handler
	guard := RequireAuth(handler)
	api.Put("/edit/:id", guard, handleUpdate(handler))
	api.Get("/list/:page", guard, handleList(handler))
	api.Get("/find/:page", guard, handleSearch(handler))

	return nil
}
