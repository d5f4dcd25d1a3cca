package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/answerbox/answerbox/internal/answerer"
	"github.com/answerbox/answerbox/internal/config"
	"github.com/answerbox/answerbox/internal/handler"
	"github.com/answerbox/answerbox/internal/knowledge"
	appmw "github.com/answerbox/answerbox/internal/middleware"
	"github.com/answerbox/answerbox/internal/router"
)

func main() {
	cfg := config.Load()
	cacheCfg := config.LoadCacheConfig()
	queueCfg := config.LoadQueueConfig()

	// The baseline store rereads the knowledge file on every question.
	// KB_WATCH swaps in the cached store invalidated by file change events;
	// if the watcher cannot start we fall back to per-request reads.
	var store knowledge.Store = knowledge.NewFileStore(cfg.KBPath)
	if cfg.KBWatch {
		ws, err := knowledge.NewWatchStore(cfg.KBPath)
		if err != nil {
			log.Printf("kb watch unavailable, reloading per request: %v", err)
		} else {
			defer ws.Close()
			store = ws
		}
	}

	ask := handler.NewAskHandler(answerer.New(store), queueCfg)

	var rdb *redis.Client
	if cacheCfg.Enabled {
		if rdb = config.NewRedisClient(); rdb == nil {
			log.Printf("answer cache unavailable: redis not reachable")
		}
	}

	e := echo.New()
	router.RegisterRoutes(e, ask, appmw.NewAnswerCache(cacheCfg, rdb))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, kb=%s)", addr, cfg.Env, cfg.KBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
