package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	// Upstream booking API.
	APIBaseURL string
	APITimeout time.Duration

	// Session store backend: "file" (default), "mysql" or "redis".
	SessionBackend string
	SessionFile    string
	MySQLDSN       string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// Artificial latency applied to demo responses (0 disables).
	DemoLatency time.Duration
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	baseURL := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://150.40.245.251:8000/api"
	}

	sessionFile := strings.TrimSpace(os.Getenv("SESSION_FILE"))
	if sessionFile == "" {
		sessionFile = "session.json"
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("SESSION_BACKEND")))
	if backend == "" {
		backend = "file"
	}

	redisDB := 0
	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	demoLatency := time.Duration(0)
	if v := strings.TrimSpace(os.Getenv("DEMO_LATENCY_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			demoLatency = time.Duration(n) * time.Millisecond
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		APIBaseURL:     strings.TrimRight(baseURL, "/"),
		APITimeout:     5 * time.Second,
		SessionBackend: backend,
		SessionFile:    sessionFile,
		MySQLDSN:       strings.TrimSpace(os.Getenv("MYSQL_DSN")),
		RedisAddr:      strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		DemoLatency:    demoLatency,
	}
}
