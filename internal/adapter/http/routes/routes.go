package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "ponto_eletronica/docs"
	"ponto_eletronica/internal/adapter/http/handlers"
	"ponto_eletronica/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router serves.
type Handlers struct {
	Ping          *handlers.PingHandler
	ServiceOrders *handlers.ServiceOrderHandler
	Drafts        *handlers.DraftHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addPingRoutes(&router.RouterGroup, h.Ping)

	v1 := router.Group("/v1")
	addPingRoutes(v1, h.Ping)
	addServiceOrderRoutes(v1, h.ServiceOrders)
	addDraftRoutes(v1, h.Drafts)
	return router
}

// Run serves router on addr until ctx is canceled, then drains in-flight requests.
func Run(ctx context.Context, addr string, router http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithField("addr", addr).Info("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Log.Info("http server stopped")
	return nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.WithField("path", c.Request.URL.Path).Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
