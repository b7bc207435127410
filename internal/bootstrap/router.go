package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpapi "github.com/creatorpro/backend/internal/api/http"
	assistanthttp "github.com/creatorpro/backend/internal/assistant/http"
	"github.com/creatorpro/backend/internal/assistant/llm"
	authhttp "github.com/creatorpro/backend/internal/auth/http"
	authmw "github.com/creatorpro/backend/internal/auth/middleware"
	authrepo "github.com/creatorpro/backend/internal/auth/repository"
	"github.com/creatorpro/backend/internal/auth/service"
	"github.com/creatorpro/backend/internal/auth/session"
	clientshttp "github.com/creatorpro/backend/internal/clients/http"
	clientsrepo "github.com/creatorpro/backend/internal/clients/repository"
	dashboardhttp "github.com/creatorpro/backend/internal/dashboard/http"
	dashboardrepo "github.com/creatorpro/backend/internal/dashboard/repository"
	fileshttp "github.com/creatorpro/backend/internal/files/http"
	filesrepo "github.com/creatorpro/backend/internal/files/repository"
	financehttp "github.com/creatorpro/backend/internal/finance/http"
	financerepo "github.com/creatorpro/backend/internal/finance/repository"
	goalshttp "github.com/creatorpro/backend/internal/goals/http"
	goalsrepo "github.com/creatorpro/backend/internal/goals/repository"
	messageshttp "github.com/creatorpro/backend/internal/messages/http"
	messagesrepo "github.com/creatorpro/backend/internal/messages/repository"
	"github.com/creatorpro/backend/internal/metrics"
	paymentshttp "github.com/creatorpro/backend/internal/payments/http"
	"github.com/creatorpro/backend/internal/payments/paypal"
	projectshttp "github.com/creatorpro/backend/internal/projects/http"
	projectsrepo "github.com/creatorpro/backend/internal/projects/repository"
	timehttp "github.com/creatorpro/backend/internal/timetracking/http"
	timerepo "github.com/creatorpro/backend/internal/timetracking/repository"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	Environment  string
	CORSOrigins  []string
	DB           *pgxpool.Pool
	Sessions     session.Store
	LLM          *llm.Client
	PayPal       *paypal.Client
	Log          *zap.Logger
	SecureCookie bool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.CORSOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	var pinger httpapi.SessionPinger
	if p, ok := dep.Sessions.(httpapi.SessionPinger); ok {
		pinger = p
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, pinger)
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	protected := r.Group("/api")
	protected.Use(authmw.RequireSession(dep.Sessions))

	userRepo := authrepo.NewUserRepository(dep.DB)
	authSvc := service.NewAuthService(userRepo)
	authhttp.New(authSvc, dep.Sessions, dep.SecureCookie).Register(api, protected)

	projectshttp.New(projectsrepo.NewProjectRepository(dep.DB), dep.Log).
		Register(protected.Group("/projects"))
	clientshttp.New(clientsrepo.NewClientRepository(dep.DB), dep.Log).
		Register(protected.Group("/clients"))
	timehttp.New(timerepo.NewTimeEntryRepository(dep.DB), dep.Log).
		Register(protected.Group("/time-entries"))
	goalshttp.New(goalsrepo.NewGoalRepository(dep.DB), goalsrepo.NewMilestoneRepository(dep.DB), dep.Log).
		Register(protected.Group("/goals"), protected.Group("/milestones"))
	financehttp.New(financerepo.NewTransactionRepository(dep.DB), financerepo.NewInvoiceRepository(dep.DB), dep.Log).
		Register(protected.Group("/transactions"), protected.Group("/invoices"))
	messageshttp.New(messagesrepo.NewMessageRepository(dep.DB), dep.Log).
		Register(protected.Group("/messages"))
	fileshttp.New(filesrepo.NewFileRepository(dep.DB), dep.Log).
		Register(protected.Group("/files"))

	dashboardhttp.New(dashboardrepo.NewStatsRepository(dep.DB), dep.Log).
		Register(protected.Group("/dashboard"))
	assistanthttp.New(dep.LLM, dep.Log).
		Register(protected.Group("/ai"))
	paymentshttp.New(dep.PayPal, dep.Log).
		Register(protected.Group("/paypal"))

	return r
}
