package api

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/masjidsuite/donations-service/framework/connection"
	"github.com/masjidsuite/donations-service/framework/mid"
	"github.com/masjidsuite/donations-service/framework/web"
	"github.com/masjidsuite/donations-service/logger"
	stripeHandlers "github.com/masjidsuite/donations-service/stripe/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build(ctx context.Context) (http.Handler, error) {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	stripe, err := stripeHandlers.NewStripe(ctx, loggerProvider, a.conn)
	if err != nil {
		return nil, err
	}

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	webhooks := web.NewGroup(app, "/webhooks")
	webhooks.Post("/stripe", stripe.HandleWebhookEvent)

	return app, nil
}
