package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sellandashawn/fignite/docs"
	v1 "github.com/sellandashawn/fignite/internal/api/handler/v1"
	"github.com/sellandashawn/fignite/internal/api/middleware"
	"github.com/sellandashawn/fignite/internal/config"
	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/draft"
	"github.com/sellandashawn/fignite/internal/email"
	"github.com/sellandashawn/fignite/internal/payment"
	"github.com/sellandashawn/fignite/internal/repository"
	"github.com/sellandashawn/fignite/internal/repository/dao"
	"github.com/sellandashawn/fignite/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userSvc := s.initUserService(db)
	activitySvc := s.initActivityService(db)

	authHandler := s.initAuthHandler(db)
	userHandler := v1.NewUserHandler(userSvc)
	categoryHandler := s.initCategoryHandler(db, userSvc)
	sportHandler := v1.NewActivityHandler(domain.KindSport, activitySvc, userSvc, conf.API.UploadDir)
	eventHandler := v1.NewActivityHandler(domain.KindEvent, activitySvc, userSvc, conf.API.UploadDir)
	checkoutHandler := s.initCheckoutHandler(db, activitySvc)
	participantHandler := s.initParticipantHandler(db, userSvc)

	s.MountHandlers(authHandler, userHandler, categoryHandler, sportHandler, eventHandler, checkoutHandler, participantHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserService(db *gorm.DB) *service.UserService {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)

	return service.NewUserService(repo)
}

func (s *Server) initActivityService(db *gorm.DB) *service.ActivityService {
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	categoryRepo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))

	return service.NewActivityService(activityRepo, categoryRepo)
}

func (s *Server) initCategoryHandler(db *gorm.DB, userSvc *service.UserService) *v1.CategoryHandler {
	repo := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	svc := service.NewCategoryService(repo)
	handler := v1.NewCategoryHandler(svc, userSvc)

	return handler
}

func (s *Server) initParticipantService(db *gorm.DB) *service.ParticipantService {
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))

	return service.NewParticipantService(participantRepo, activityRepo)
}

func (s *Server) initParticipantHandler(db *gorm.DB, userSvc *service.UserService) *v1.ParticipantHandler {
	return v1.NewParticipantHandler(s.initParticipantService(db), userSvc)
}

func (s *Server) initCheckoutHandler(db *gorm.DB, activitySvc *service.ActivityService) *v1.CheckoutHandler {
	svc := service.NewCheckoutService(
		s.initDraftStore(),
		payment.NewProvider(s.Config.Stripe, s.Config.API.BaseURL),
		s.initParticipantService(db),
		s.initEmailSender(),
	)

	return v1.NewCheckoutHandler(svc, activitySvc)
}

func (s *Server) initDraftStore() service.DraftStore {
	if s.Config.Redis == nil || s.Config.Redis.Addr == "" {
		zap.L().Warn("redis not configured, using in-memory draft store")
		return draft.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     s.Config.Redis.Addr,
		Password: s.Config.Redis.Password,
		DB:       s.Config.Redis.DB,
	})

	return draft.NewRedisStore(client)
}

func (s *Server) initEmailSender() email.Sender {
	if s.Config.Email != nil && s.Config.Email.Provider == "resend" {
		return email.NewResendSender(s.Config.Email.APIKey, s.Config.Email.From)
	}

	return email.NewNoopSender()
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	categoryHandler *v1.CategoryHandler,
	sportHandler *v1.ActivityHandler,
	eventHandler *v1.ActivityHandler,
	checkoutHandler *v1.CheckoutHandler,
	participantHandler *v1.ParticipantHandler,
) {
	const basePath = "/api/v1"

	authenticated := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, authenticated)
	{
		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	categories := s.Router.Group(basePath)
	{
		categories.GET("/categories", categoryHandler.HandleListCategories)
		categories.GET("/categories/:categoryID", categoryHandler.HandleGetCategory)
		categories.POST("/categories", authenticated, categoryHandler.HandleCreateCategory)
		categories.DELETE("/categories/:categoryID", authenticated, categoryHandler.HandleDeleteCategory)
	}

	for prefix, handler := range map[string]*v1.ActivityHandler{
		"/sports": sportHandler,
		"/events": eventHandler,
	} {
		group := s.Router.Group(basePath + prefix)
		{
			group.GET("", handler.HandleListActivities)
			group.GET("/category/:categoryName", handler.HandleListByCategory)
			group.GET("/:activityID", handler.HandleGetActivity)
			group.POST("", authenticated, handler.HandleCreateActivity)
			group.PUT("/:activityID", authenticated, handler.HandleUpdateActivity)
			group.DELETE("/:activityID", authenticated, handler.HandleDeleteActivity)
		}
	}

	checkout := s.Router.Group(basePath + "/checkout")
	{
		checkout.POST("/draft", checkoutHandler.HandleSaveDraft)
		checkout.GET("/draft", checkoutHandler.HandleGetDraft)
		checkout.DELETE("/draft", checkoutHandler.HandleCancelDraft)
		checkout.POST("/session", checkoutHandler.HandleCreateSession)
		checkout.POST("/complete", checkoutHandler.HandleCompleteCheckout)
	}

	orders := s.Router.Group(basePath)
	{
		orders.GET("/orders", participantHandler.HandleListMyOrders)
		orders.GET("/orders/:orderID", participantHandler.HandleGetOrder)
		orders.GET("/activities/:activityID/participants", authenticated, participantHandler.HandleListParticipants)
	}

	if s.Config.API.UploadDir != "" {
		s.Router.Static("/uploads", s.Config.API.UploadDir)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Fignite API"
	docs.SwaggerInfo.Description = "Sports and events storefront API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
