package routes

import (
	"fmt"
	"time"

	"studybuddy-backend/internal/api/handlers"
	"studybuddy-backend/internal/api/middleware"
	"studybuddy-backend/internal/auth"
	"studybuddy-backend/internal/config"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/repository"
	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the long lived resources the router is built on.
// Publisher and Redis are optional.
type Dependencies struct {
	DB        *gorm.DB
	Config    *config.Config
	Publisher events.Publisher
	Redis     *redis.Client
	Clock     service.Clock
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RateLimiter(deps.Redis, cfg.RateLimitPerMinute))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	repos := repository.NewRepositories(deps.DB)
	transactor := repository.NewTransactor(deps.DB)

	// Initialize services
	membershipService := service.NewMembershipService(transactor, publisher)
	groupService := service.NewGroupService(transactor, repos, publisher, validator, clock)
	joinRequestService := service.NewJoinRequestService(transactor, repos, membershipService, publisher)
	inviteService := service.NewInviteService(transactor, membershipService, publisher,
		time.Duration(cfg.InviteCodeTTLMinutes)*time.Minute, clock)
	quizService := service.NewQuizService(transactor, repos, publisher, validator)
	flashcardService := service.NewFlashcardService(transactor, repos, publisher, validator)
	courseService := service.NewCourseService(repos.Courses)
	catalogService := service.NewCatalogService(repos.Catalog)
	accountService := service.NewAccountService(repos.Users, validator)
	resourceService := service.NewResourceService(repos.Resources, publisher, validator)
	chatService := service.NewChatService(repos, publisher, validator)
	dmService := service.NewDirectMessageService(transactor, repos, publisher, validator, clock)

	// Initialize auth
	authConfig := auth.NewAuthConfig(cfg.JWTSecret, cfg.JWTTTLMinutes)
	authService, err := auth.NewAuthService(authConfig, repos.Users, validator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)
	courseHandler := handlers.NewCourseHandler(courseService)
	groupHandler := handlers.NewGroupHandler(groupService)
	joinRequestHandler := handlers.NewJoinRequestHandler(joinRequestService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	quizHandler := handlers.NewQuizHandler(quizService)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	accountHandler := handlers.NewAccountHandler(accountService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	chatHandler := handlers.NewChatHandler(chatService)
	dmHandler := handlers.NewDirectMessageHandler(dmService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/validate", authHandler.ValidateToken)
		authRoutes.GET("/colleges", catalogHandler.ListColleges)
		authRoutes.GET("/majors", catalogHandler.ListMajors)
	}

	user := router.Group("/user", authMiddleware.RequireAuth())
	{
		user.GET("/account", accountHandler.GetAccount)
		user.PUT("/account", accountHandler.UpdateAccount)
	}

	router.GET("/courses", courseHandler.ListCourses)
	router.GET("/courses/search", courseHandler.SearchCourses)

	router.GET("/resources", resourceHandler.ListResources)
	router.POST("/resources", authMiddleware.RequireAuth(), resourceHandler.CreateResource)

	// Group routes name the acting user in the body; a bearer token is used when it is absent
	groups := router.Group("/groups", authMiddleware.OptionalAuth())
	{
		groups.POST("", groupHandler.CreateGroup)
		groups.GET("/public", groupHandler.ListPublic)
		groups.GET("/mine", groupHandler.ListMine)
		groups.GET("/sessions/upcoming", groupHandler.UpcomingSessions)
		groups.POST("/join-with-code", inviteHandler.JoinWithCode)

		groups.GET("/:id/members", groupHandler.ListMembers)
		groups.DELETE("/:id/members/:uid", groupHandler.Kick)
		groups.POST("/:id/members/:uid/kick", groupHandler.Kick)
		groups.POST("/:id/leave", groupHandler.Leave)
		groups.POST("/:id/sessions", groupHandler.CreateSession)
		groups.POST("/:id/invite-code", inviteHandler.GenerateCode)

		groups.POST("/:id/join", joinRequestHandler.RequestJoin)
		groups.GET("/:id/requests", joinRequestHandler.ListPending)
		groups.POST("/:id/requests/:uid/approve", joinRequestHandler.Approve)
		groups.POST("/:id/requests/:uid/reject", joinRequestHandler.Reject)

		groups.GET("/:id/chat", chatHandler.ListChat)
		groups.POST("/:id/chat", chatHandler.PostChat)
	}

	dm := router.Group("/dm", authMiddleware.OptionalAuth())
	{
		dm.POST("/start", dmHandler.Start)
		dm.GET("/inbox", dmHandler.Inbox)
		dm.GET("/requests", dmHandler.Requests)
		dm.POST("/requests/:id/:action", dmHandler.Respond)
		dm.GET("/:id/messages", dmHandler.ListMessages)
		dm.POST("/:id/messages", dmHandler.Send)
	}

	quiz := router.Group("/quiz", authMiddleware.RequireAuth())
	{
		quiz.GET("", quizHandler.ListQuizzes)
		quiz.GET("/quizzes", quizHandler.ListQuizzes)
		quiz.POST("/create", quizHandler.CreateQuiz)
		quiz.POST("/submit", quizHandler.Submit)
		quiz.GET("/:id", quizHandler.GetQuiz)
		quiz.GET("/:id/attempts", quizHandler.ListAttempts)
	}

	flashcards := router.Group("/flashcards", authMiddleware.RequireAuth())
	{
		flashcards.GET("", flashcardHandler.ListSets)
		flashcards.GET("/sets", flashcardHandler.ListSets)
		flashcards.PUT("/cards/:id", flashcardHandler.UpdateCard)
		flashcards.DELETE("/cards/:id", flashcardHandler.DeleteCard)
		flashcards.POST("/create", flashcardHandler.CreateSet)
		flashcards.GET("/:id", flashcardHandler.GetSet)
		flashcards.PUT("/:id", flashcardHandler.UpdateSet)
		flashcards.DELETE("/:id", flashcardHandler.DeleteSet)
	}

	return router, nil
}
