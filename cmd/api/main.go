package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/sanayicim/sanayicim-api/internal/config"
	dbpkg "github.com/sanayicim/sanayicim-api/internal/db"
	"github.com/sanayicim/sanayicim-api/internal/infra/lock"
	"github.com/sanayicim/sanayicim-api/internal/middleware"
	"github.com/sanayicim/sanayicim-api/internal/routes"
	"github.com/sanayicim/sanayicim-api/internal/token"
)

func main() {

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db := dbpkg.NewDB(cfg)

	tokens, err := token.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build token service")
	}

	var locks lock.Locker = lock.NewMemoryLocker()
	if cfg.RedisAddr != "" {
		redisLocks, err := lock.NewRedisLocker(cfg.RedisAddr, cfg.RedisPass)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		locks = redisLocks
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, tokens, locks)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
