// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"goveggie/internal/delivery/http/middleware"
	"goveggie/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	RestaurantHandler   *handler.RestaurantHandler
	FavoriteHandler     *handler.FavoriteHandler
	NotificationHandler *handler.NotificationHandler
	AdminHandler        *handler.AdminHandler
	DirectoryHandler    *handler.DirectoryHandler
	MediaHandler        *handler.MediaHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Social login needs the static API key; the rest of the account
	// endpoints require the issued token.
	api.POST("/auth/social-login", r.params.AuthHandler.SocialLogin, auth.Public)

	authGroup := api.Group("/auth", auth.Authenticate)
	{
		authGroup.GET("/me", r.params.AuthHandler.GetProfile)
		authGroup.PUT("/me", r.params.AuthHandler.UpdateProfile)
		authGroup.POST("/bind-phone", r.params.AuthHandler.BindPhone)
	}

	// Public read endpoints: token, API key, or anonymous GET as guest.
	publicGroup := api.Group("", auth.Public)
	{
		publicGroup.GET("/restaurants", r.params.RestaurantHandler.Search)
		publicGroup.GET("/restaurants/:id", r.params.RestaurantHandler.GetByID)
		publicGroup.GET("/restaurants/:id/qr", r.params.RestaurantHandler.ShareQR)
		publicGroup.GET("/search/suggestions", r.params.RestaurantHandler.Suggest)
		publicGroup.GET("/search/filters", r.params.RestaurantHandler.Filters)

		publicGroup.GET("/states", r.params.DirectoryHandler.ListStates)
		publicGroup.GET("/states/:id/areas", r.params.DirectoryHandler.ListAreas)
		publicGroup.GET("/tags", r.params.DirectoryHandler.ListTags)
		publicGroup.GET("/notices", r.params.DirectoryHandler.ListNotices)

		publicGroup.GET("/photos/:legacy_id/:filename", r.params.MediaHandler.GetPhoto)
	}

	authedGroup := api.Group("", auth.Authenticate)
	{
		authedGroup.GET("/favorites", r.params.FavoriteHandler.List)
		authedGroup.POST("/favorites/:restaurant_id", r.params.FavoriteHandler.Toggle)

		authedGroup.GET("/notifications", r.params.NotificationHandler.List)
		authedGroup.GET("/notifications/unread-count", r.params.NotificationHandler.UnreadCount)
		authedGroup.POST("/notifications/read-all", r.params.NotificationHandler.MarkAllRead)
		authedGroup.POST("/notifications/:id/read", r.params.NotificationHandler.MarkRead)
		authedGroup.POST("/notifications/register-device", r.params.NotificationHandler.RegisterDevice)

		authedGroup.POST("/upload", r.params.MediaHandler.Upload)
	}

	adminGroup := api.Group("/admin", auth.Authenticate, auth.RequireAdmin)
	{
		adminGroup.GET("/restaurants", r.params.AdminHandler.ListRestaurants)
		adminGroup.POST("/restaurants", r.params.AdminHandler.CreateRestaurant)
		adminGroup.PUT("/restaurants/:id", r.params.AdminHandler.UpdateRestaurant)
		adminGroup.PUT("/restaurants/:id/status", r.params.AdminHandler.UpdateRestaurantStatus)
		adminGroup.POST("/notifications/send", r.params.AdminHandler.Broadcast)
		adminGroup.POST("/notifications/new-restaurant/:id", r.params.AdminHandler.NotifyNewRestaurant)
		adminGroup.GET("/stats", r.params.AdminHandler.Stats)
	}
}
