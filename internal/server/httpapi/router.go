package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitprogress/internal/logging"
	"fitprogress/internal/server/config"
	"fitprogress/internal/server/models"
)

// Handlers bundles the services behind the HTTP endpoints.
type Handlers struct {
	users          UserService
	measurements   MeasurementService
	photos         PhotoService
	maxUploadBytes int64
}

// NewHandlers constructs the handler set.
func NewHandlers(users UserService, measurements MeasurementService, photos PhotoService, maxUploadBytes int64) *Handlers {
	return &Handlers{
		users:          users,
		measurements:   measurements,
		photos:         photos,
		maxUploadBytes: maxUploadBytes,
	}
}

// NewRouter wires all routes, middleware included.
func NewRouter(h *Handlers, cfg *config.Config, logger logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(CORS(cfg.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	secret := []byte(cfg.SecretKey)
	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register/professor", h.registerProfessor)
		authGroup.POST("/login", h.login)
		authGroup.POST("/refresh", h.refresh)
		authGroup.POST("/register/student",
			RequireAuth(secret), RequireRole(models.RoleProfessor), h.registerStudent)
		authGroup.GET("/me", RequireAuth(secret), h.me)
	}

	measurements := api.Group("/measurements", RequireAuth(secret))
	{
		measurements.GET("", h.listMeasurements)
		measurements.POST("", h.submitMeasurement)
		measurements.GET("/:id", h.getMeasurement)
		measurements.PATCH("/:id", h.updateMeasurement)
		measurements.DELETE("/:id", h.deleteMeasurement)
	}

	photos := api.Group("/photos", RequireAuth(secret))
	{
		photos.GET("", h.listPhotos)
		photos.POST("", h.uploadPhoto)
		photos.GET("/grid", h.photoGrid)
		photos.GET("/compare", h.comparePhotos)
		photos.DELETE("/date/:date", h.deletePhotosByDate)
		photos.DELETE("/:id", h.deletePhoto)
	}

	students := api.Group("/students", RequireAuth(secret), RequireRole(models.RoleProfessor))
	{
		students.GET("", h.listStudents)
		students.GET("/:id/measurements", h.studentMeasurements)
		students.GET("/:id/photos", h.studentPhotos)
	}

	user := api.Group("/user", RequireAuth(secret))
	{
		user.POST("/fcm-token", h.updateFCMToken)
		user.GET("/notification-settings", h.getNotificationSettings)
		user.PATCH("/notification-settings", h.updateNotificationSettings)
	}

	return router
}
