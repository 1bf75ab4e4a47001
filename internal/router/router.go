package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/jobname/recommender/internal/handler"    // import the handlers that implement the lookup logic
	"github.com/jobname/recommender/internal/middleware" // import the request logging middleware
)

// RegisterRoutes wires the two read-only endpoints of the service onto the
// provided Echo instance.  GET / is the liveness probe and GET /predict/
// is the label lookup.  Both handlers are constructed by the caller so the
// routes can be registered against any table, including the ones tests
// build in memory.
func RegisterRoutes(e *echo.Echo, log *zap.Logger, health *handler.HealthHandler, predict *handler.PredictHandler) {
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))

	e.GET("/", health.Health)
	e.GET("/predict/", predict.Predict)
}
