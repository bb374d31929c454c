package infra

import (
	"errors"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/syemed/intake/docs"
	"github.com/syemed/intake/internal/cache"
	"github.com/syemed/intake/internal/config"
	"github.com/syemed/intake/internal/domain/auth"
	apperrors "github.com/syemed/intake/internal/errors"
	"github.com/syemed/intake/internal/handlers"
	"github.com/syemed/intake/internal/mail"
	"github.com/syemed/intake/internal/middleware"
	"github.com/syemed/intake/internal/repository"
	"github.com/syemed/intake/internal/security"
	"github.com/syemed/intake/internal/service"
	"github.com/syemed/intake/internal/storage"
	"github.com/syemed/intake/internal/validation"
	"github.com/syemed/intake/pkg/db/transactor"
)

func Router(
	pgPool *pgxpool.Pool,
	mongoClient *mongo.Client,
	redisClient *redis.Client,
	objectStore storage.ObjectStore,
	mailer mail.Mailer,
	cfg config.Config,
	logger *logrus.Logger,
) (*echo.Echo, error) {
	e := echo.New()

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build echo validator because of missing en translations")
	}
	e.Validator = validation.Echo(validator.New(), trans)

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			if jsonErr := c.JSON(http.StatusUnprocessableEntity, pldErr); jsonErr != nil {
				logger.Errorf("failed to write validation error response - %v", jsonErr)
			}
			return
		}

		var bizErr *apperrors.BusinessErr
		if errors.As(err, &bizErr) {
			if jsonErr := c.JSON(http.StatusConflict, bizErr); jsonErr != nil {
				logger.Errorf("failed to write business error response - %v", jsonErr)
			}
			return
		}

		logger.Error(err.Error())
		e.DefaultHTTPErrorHandler(err, c)
	}

	// Transactors
	trx := transactor.NewPgxTransactor(pgPool)

	// Configs
	jwtCfg := cfg.AuthCfg.JwtCfg
	rfrTokenCfg := cfg.AuthCfg.RefreshTokenCfg

	// Extra functionality
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)
	submitLimiter := security.NewLimiter(cfg.RateLimitCfg.MaxSubmissions, cfg.RateLimitCfg.Window)

	// Middleware
	authorizeMw := middleware.Authorize(jwtValidator)
	rateLimitMw := middleware.RateLimit(submitLimiter)

	// Repositories
	agentRepo := repository.NewPostgresAgentRepository(trx)
	rfrTokenRepo := repository.NewPostgresRefreshTokenRepository(trx)
	pgCustRepo := repository.NewPostgresCustomerRepository(trx)
	mongoCustRepo := repository.NewMongoCustomerRepository(mongoClient)
	requestRepo := repository.NewPostgresRequestRepository(trx)
	custCache := cache.NewRedisCustomerCacheRepository(redisClient)

	// Services
	authSvc := service.NewAuthService(jwtIssuer, &rfrTokenCfg, trx, agentRepo, rfrTokenRepo)
	custSvcV1 := service.NewCustomerService(pgCustRepo, custCache)
	custSvcV2 := service.NewCustomerService(mongoCustRepo, custCache)
	requestSvc := service.NewRequestService(trx, requestRepo, objectStore, mailer, cfg.SMTPCfg.CopyTo, logger)

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(authSvc)
	custHandlerV1 := handlers.NewCustomerHTTPHandler(custSvcV1)
	custHandlerV2 := handlers.NewCustomerHTTPHandler(custSvcV2)
	requestHandler := handlers.NewRequestHTTPHandler(requestSvc)

	// API routes
	api := e.Group("/api")

	// auth
	authApi := api.Group("/auth")
	authApi.POST("/signup", authHandler.Signup)
	authApi.POST("/login", authHandler.Login)
	authApi.POST("/logout", authHandler.Logout)
	authApi.POST("/refresh", authHandler.Refresh)

	// customers v1, the form flow needs search, exists and create without a session
	customersApiV1 := api.Group("/v1/customers")
	customersApiV1.GET("", custHandlerV1.Search)
	customersApiV1.GET("/exists", custHandlerV1.Exists)
	customersApiV1.POST("", custHandlerV1.Post)
	customersApiV1.GET("/:id", custHandlerV1.Get, authorizeMw)

	// customers v2
	customersApiV2 := api.Group("/v2/customers")
	customersApiV2.GET("", custHandlerV2.Search)
	customersApiV2.GET("/exists", custHandlerV2.Exists)
	customersApiV2.POST("", custHandlerV2.Post)
	customersApiV2.GET("/:id", custHandlerV2.Get, authorizeMw)

	// requests
	requestsApi := api.Group("/v1/requests")
	requestsApi.POST("", requestHandler.Submit, rateLimitMw)
	requestsApi.GET("/catalog", requestHandler.Catalog)
	requestsApi.GET("/export", requestHandler.Export, authorizeMw)
	requestsApi.GET("/:id", requestHandler.Get, authorizeMw)

	// operational endpoints
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e, nil
}
