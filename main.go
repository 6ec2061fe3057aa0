package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "guzo/internal/config"
	"guzo/internal/demo"
	router "guzo/internal/http"
	"guzo/internal/http/handlers"
	"guzo/internal/remote"
	"guzo/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	store, err := openSessionStore(env)
	if err != nil {
		log.Fatalf("session store init failed: %v", err)
	}
	defer intconfig.CloseDB()

	sess := session.New(store)
	demoStore := demo.NewStore(sess, env.DemoLatency)
	client := remote.NewClient(env.APIBaseURL, env.APITimeout, sess)

	handlers.SetApp(&handlers.App{
		Remote:  client,
		Demo:    demoStore,
		Session: sess,
	})

	ctx, stopTracking := context.WithCancel(context.Background())
	demoStore.StartTracking(ctx, 30*time.Second)
	defer stopTracking()

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Gateway listening on http://localhost%s (upstream %s)", env.AppAddr, env.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

func openSessionStore(env intconfig.Env) (session.Store, error) {
	switch env.SessionBackend {
	case "mysql":
		db, err := intconfig.ConnectDB(env.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return session.NewSQLStore(db)
	case "redis":
		return session.NewRedisStore(env.RedisAddr, env.RedisPassword, env.RedisDB)
	default:
		return session.NewFileStore(env.SessionFile)
	}
}
