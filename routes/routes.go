package routes

import (
	"github.com/Varun6712/smart-calories/controllers"
	"github.com/Varun6712/smart-calories/metrics"
	"github.com/Varun6712/smart-calories/middlewares"
	"github.com/Varun6712/smart-calories/services"
	"github.com/Varun6712/smart-calories/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the collaborators built in main. A nil Reasoner selects the
// mock estimator.
type Deps struct {
	DB       *gorm.DB
	Reasoner services.Reasoner
	Archive  utils.PhotoArchive
	Hub      *services.RealtimeHub
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

func SetupRouter(d Deps) *gin.Engine {
	m := metrics.New(d.Registry)

	profiles := services.NewProfileService(d.DB)
	foods := services.NewFoodService(d.DB)
	logs := services.NewLogService(d.DB, d.Hub)
	estimator := services.NewEstimator(d.Reasoner, profiles, d.Logger)

	profileCtl := controllers.NewProfileController(profiles, d.Logger)
	foodCtl := controllers.NewFoodController(foods, d.Logger)
	logCtl := controllers.NewLogController(logs, m, d.Logger)
	estimateCtl := controllers.NewEstimateController(estimator, d.Archive, m, d.Logger)
	realtimeCtl := controllers.NewRealtimeController(d.Hub, d.Logger)
	healthCtl := &controllers.HealthController{Mode: estimator.Mode()}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestID(), middlewares.RequestLogger(d.Logger, m))

	r.GET("/health", healthCtl.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	r.GET("/ws/logs", realtimeCtl.LogsWS)

	api := r.Group("/api")
	{
		api.GET("/profile", profileCtl.GetProfile)
		api.POST("/profile", profileCtl.SaveProfile)
		api.GET("/profile/summary", profileCtl.GetSummary)
		// paths used by the first mobile client
		api.GET("/user", profileCtl.GetProfile)
		api.POST("/user", profileCtl.SaveProfile)

		api.GET("/foods", foodCtl.SearchFoods)

		api.GET("/logs", logCtl.ListLogs)
		api.POST("/logs", logCtl.CreateLog)

		api.POST("/estimate-image", estimateCtl.EstimateImage)
		api.POST("/estimate-text", estimateCtl.EstimateText)
		api.POST("/analyze-image", estimateCtl.EstimateImage)
		api.POST("/analyze-text", estimateCtl.EstimateText)
	}

	return r
}
