package main

import (
	"context"
	"os"

	"studyboard/internal/domain/policy"
	"studyboard/internal/domain/sqlite"
	"studyboard/internal/domain/sqlite/repository"
	handler2 "studyboard/internal/http/handler"
	authmw "studyboard/internal/http/middleware"
	"studyboard/internal/service"
	"studyboard/internal/service/jobs"
	"studyboard/internal/utils/uid"
	"studyboard/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/studyboard/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		if err := godotenv.Load(); err != nil {
			log.Warnf("no .env file loaded: %v", err)
		}
	}

	uid.Init(1)

	// Init SQLite
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./database.db"
	}
	db, err := sqlite.Init(dbPath)
	if err != nil {
		panic(err)
	}

	// Gettings repos
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	contentPolicy := policy.NewContentPolicy()

	// Getting services
	authService := service.NewAuthService(userRepo, sessionRepo, validate)
	postService := service.NewPostService(postRepo, subjectRepo, contentPolicy, validate)
	replyService := service.NewReplyService(replyRepo, postRepo, contentPolicy, validate)
	subjectService := service.NewSubjectService(subjectRepo)
	adminService := service.NewAdminService(userRepo, contentPolicy, validate)

	// Gettings handlers
	authRoutes := handler2.NewAuthDefault(authService)
	postRoutes := handler2.NewPostDefault(postService)
	replyRoutes := handler2.NewReplyDefault(replyService)
	subjectRoutes := handler2.NewSubjectDefault(subjectService)
	adminRoutes := handler2.NewAdminDefault(adminService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	authRequired := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{Sessions: sessionRepo})

	// Auth
	e.POST("/api/register", authRoutes.Register)
	e.POST("/api/login", authRoutes.Login)
	e.POST("/api/logout", authRoutes.Logout, authRequired)

	// Subjects
	e.GET("/api/subjects", subjectRoutes.GetSubjects)

	// Posts
	e.GET("/api/posts", postRoutes.GetPosts)
	e.GET("/api/posts/:id", postRoutes.GetPost)
	e.POST("/api/posts", postRoutes.CreatePost, authRequired)
	e.DELETE("/api/posts/:id", postRoutes.DeletePost, authRequired)

	// Replies
	e.GET("/api/posts/:id/replies", replyRoutes.GetPostReplies)
	e.POST("/api/posts/:id/replies", replyRoutes.CreateReply, authRequired)
	e.GET("/api/replies", replyRoutes.GetReplies)
	e.DELETE("/api/replies/:id", replyRoutes.DeleteReply, authRequired)

	// Admin
	e.POST("/api/admin/set-admin", adminRoutes.SetAdmin, authRequired)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	cleaner := jobs.NewSessionCleaner(sessionRepo)
	go cleaner.Start(context.Background())

	port := os.Getenv("PORT")
	if port == "" {
		port = "7070"
	}
	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("username", validators.Username)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
