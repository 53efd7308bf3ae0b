package bootstrap

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/deptboard/board-service/internal/application/auth"
	"github.com/deptboard/board-service/internal/application/board"
	"github.com/deptboard/board-service/internal/config"
	"github.com/deptboard/board-service/internal/infrastructure/db/postgres"
	"github.com/deptboard/board-service/internal/infrastructure/memory"
	"github.com/deptboard/board-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/deptboard/board-service/internal/infrastructure/redis"
	"github.com/deptboard/board-service/internal/infrastructure/security"
	"github.com/deptboard/board-service/internal/infrastructure/storage"
	"github.com/deptboard/board-service/internal/logger"
	"github.com/deptboard/board-service/internal/transport/http/dto"
	"github.com/deptboard/board-service/internal/transport/http/handlers"
	"github.com/deptboard/board-service/internal/transport/http/response"
	"github.com/deptboard/board-service/internal/transport/http/router"
)

// App is everything Build wires together. Close tears it down in reverse
// order.
type App struct {
	Config  *config.Config
	DB      *sql.DB
	Handler http.Handler

	cleanups []func()
}

func (a *App) Close() {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
}

// Build loads config and assembles the service. Redis and RabbitMQ are
// optional; everything else is required and fails the build.
func Build(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg}
	response.SetEnvironment(cfg.Env)

	db, err := config.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, err
	}
	app.DB = db
	app.cleanups = append(app.cleanups, func() { _ = db.Close() })

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		app.Close()
		return nil, err
	}

	// optional Redis for rate limiting; absent or unreachable means fail-open
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		c := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, rate limiting disabled")
			_ = c.Close()
		} else {
			redisClient = c
			app.cleanups = append(app.cleanups, func() { _ = c.Close() })
		}
	}
	limiter := redis.NewFixedWindowLimiter(redisClient)

	// optional broker for announcement fan-out
	var publisher board.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("rabbitmq unreachable, announcement events disabled")
			publisher = memory.NewPublisher()
		} else {
			publisher = p
			app.cleanups = append(app.cleanups, func() { _ = p.Close() })
		}
	} else {
		publisher = memory.NewPublisher()
	}

	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		app.Close()
		return nil, err
	}

	userRepo := postgres.NewUserRepo(db)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret)

	authSvc := auth.NewService(userRepo, hasher, signer, cfg.TokenTTL, cfg.Department)
	boardSvc := board.NewService(
		postgres.NewAnnouncementRepo(db),
		postgres.NewTimetableRepo(db),
		postgres.NewResultRepo(db),
		postgres.NewEventRepo(db),
		postgres.NewArchiveRepo(db),
		userRepo,
		files,
		publisher,
	)

	validate := dto.NewValidator()

	app.Handler = router.New(router.Deps{
		Auth:    handlers.NewAuthHandler(authSvc, validate),
		Board:   handlers.NewBoardHandler(boardSvc),
		Admin:   handlers.NewAdminHandler(boardSvc, validate, cfg.MaxUploadBytes),
		Student: handlers.NewStudentHandler(boardSvc, validate),
		Health:  handlers.NewHealthHandler(db),

		Verifier:    authSvc,
		RateLimiter: limiter,

		CORSOrigins:    cfg.CORSOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
		UploadDir:      files.Root(),
	})

	return app, nil
}
