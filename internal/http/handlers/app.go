package handlers

import (
	"sync"

	"guzo/internal/demo"
	"guzo/internal/http/middleware"
	"guzo/internal/remote"
	"guzo/internal/services"
	"guzo/internal/session"

	"github.com/gin-gonic/gin"
)

// App bundles the shared facade dependencies. Handlers build per-request
// service values around it so every log line carries the request id.
type App struct {
	Remote  *remote.Client
	Demo    *demo.Store
	Session *session.Session
}

var (
	appMu sync.RWMutex
	app   *App
)

// SetApp stores the active dependency set; called once from main.
func SetApp(a *App) {
	appMu.Lock()
	defer appMu.Unlock()
	app = a
}

func deps() *App {
	appMu.RLock()
	defer appMu.RUnlock()
	return app
}

func authService(c *gin.Context) *services.AuthService {
	a := deps()
	return &services.AuthService{Remote: a.Remote, Demo: a.Demo, Session: a.Session, RequestID: middleware.GetRequestID(c)}
}

func routeService(c *gin.Context) *services.RouteService {
	a := deps()
	return &services.RouteService{Remote: a.Remote, Demo: a.Demo, RequestID: middleware.GetRequestID(c)}
}

func seatService(c *gin.Context) *services.SeatService {
	a := deps()
	return &services.SeatService{Remote: a.Remote, Demo: a.Demo, RequestID: middleware.GetRequestID(c)}
}

func bookingService(c *gin.Context) *services.BookingService {
	a := deps()
	return &services.BookingService{Remote: a.Remote, Demo: a.Demo, RequestID: middleware.GetRequestID(c)}
}

func paymentService(c *gin.Context) *services.PaymentService {
	a := deps()
	return &services.PaymentService{Remote: a.Remote, Demo: a.Demo, RequestID: middleware.GetRequestID(c)}
}

func userService(c *gin.Context) *services.UserService {
	a := deps()
	return &services.UserService{Remote: a.Remote, Demo: a.Demo, Session: a.Session, RequestID: middleware.GetRequestID(c)}
}

func trackingService(c *gin.Context) *services.TrackingService {
	a := deps()
	return &services.TrackingService{Remote: a.Remote, Demo: a.Demo, RequestID: middleware.GetRequestID(c)}
}

func cityService(c *gin.Context) *services.CityService {
	a := deps()
	return &services.CityService{Remote: a.Remote, Demo: a.Demo, RequestID: middleware.GetRequestID(c)}
}

func feedbackService(c *gin.Context) *services.FeedbackService {
	a := deps()
	return &services.FeedbackService{Remote: a.Remote, RequestID: middleware.GetRequestID(c)}
}

func docsService(c *gin.Context) *services.DocsService {
	return &services.DocsService{Bookings: bookingService(c), RequestID: middleware.GetRequestID(c)}
}
