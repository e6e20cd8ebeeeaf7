package fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/KapilPandit0408/gibots"
)

type registerResponse struct {
	Token     string          `json:"token"`
	SavedUser *gibots.Account `json:"savedUser"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  *gibots.Account `json:"user"`
}

type updateResponse struct {
	User *gibots.Account `json:"user"`
}

// handleRegister returns a handler for the register endpoint
func handleRegister(handler gibots.DirectoryHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input gibots.RegisterInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		result, err := handler.Register(c.Context(), input)
		if err != nil {
			return handleDirectoryError(c, err)
		}

		return c.Status(http.StatusOK).JSON(registerResponse{
			Token:     result.Token,
			SavedUser: result.Account,
		})
	}
}

// handleLogin returns a handler for the login endpoint
func handleLogin(handler gibots.DirectoryHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input gibots.LoginInput
		if err := c.Bind().Body(&input); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		result, err := handler.Login(c.Context(), input)
		if err != nil {
			return handleDirectoryError(c, err)
		}

		return c.Status(http.StatusOK).JSON(loginResponse{
			Token: result.Token,
			User:  result.Account,
		})
	}
}

// handleUpdate returns a handler for the profile update endpoint
func handleUpdate(handler gibots.DirectoryHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		var fields gibots.UpdateInput
		if err := c.Bind().Body(&fields); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		account, err := handler.Update(c.Context(), c.Params("id"), fields)
		if err != nil {
			return handleDirectoryError(c, err)
		}

		return c.Status(http.StatusOK).JSON(updateResponse{User: account})
	}
}

// handleList returns a handler for the paginated listing endpoint
func handleList(handler gibots.DirectoryHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		page, err := handler.List(c.Context(), pageParam(c))
		if err != nil {
			return handleDirectoryError(c, err)
		}

		return c.Status(http.StatusOK).JSON(page)
	}
}

// handleSearch returns a handler for the search endpoint
func handleSearch(handler gibots.DirectoryHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		page, err := handler.Search(c.Context(), pageParam(c), c.Query("search"))
		if err != nil {
			return handleDirectoryError(c, err)
		}

		return c.Status(http.StatusOK).JSON(page)
	}
}

// pageParam reads the 1-based page number from the route path. Absent or
// malformed values fall back to 0, which the directory treats as page 1.
func pageParam(c fiber.Ctx) int {
	page, err := strconv.Atoi(c.Params("page"))
	if err != nil {
		return 0
	}
	return page
}

// handleDirectoryError maps directory errors to appropriate HTTP responses
func handleDirectoryError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps gibots error types to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, gibots.ErrEmailRequired),
		errors.Is(err, gibots.ErrPasswordRequired),
		errors.Is(err, gibots.ErrPasswordTooShort),
		errors.Is(err, gibots.ErrEmailTaken),
		errors.Is(err, gibots.ErrNoSuchAccount),
		errors.Is(err, gibots.ErrBadCredentials):
		return http.StatusBadRequest

	case errors.Is(err, gibots.ErrMissingToken),
		errors.Is(err, gibots.ErrInvalidToken),
		errors.Is(err, gibots.ErrTokenExpired):
		return http.StatusUnauthorized

	case errors.Is(err, gibots.ErrAccountNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
