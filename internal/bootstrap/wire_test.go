package bootstrap

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/finadvise/auth-service/internal/config"
	"github.com/finadvise/auth-service/internal/logger"
	"github.com/finadvise/auth-service/internal/transport/http/router"
)

func init() {
	logger.InitWithWriter(&strings.Builder{})
}

func testConfig() *config.Config {
	return &config.Config{
		Env:              "test",
		HTTPAddr:         ":0",
		JWTSecret:        "wire-test-secret",
		JWTIssuer:        "auth-service",
		AccessTokenTTL:   time.Minute,
		BcryptCost:       4,
		HTTPReadTimeout:  10 * time.Second,
		HTTPWriteTimeout: 30 * time.Second,
		HTTPIdleTimeout:  time.Minute,
	}
}

func memoryDeps(cfg *config.Config) Deps {
	return Deps{
		LoadConfig: func() (*config.Config, error) { return cfg, nil },
		NewRouter:  router.New,
	}
}

func TestNewServer_MemoryStore(t *testing.T) {
	srv, cleanup, err := NewServerWithDeps(memoryDeps(testConfig()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()

	if srv.Handler == nil {
		t.Fatalf("expected a wired handler")
	}
	if srv.Addr != ":0" {
		t.Fatalf("unexpected addr %q", srv.Addr)
	}
	if srv.ReadTimeout != 10*time.Second || srv.WriteTimeout != 30*time.Second {
		t.Fatalf("timeouts not applied: %v / %v", srv.ReadTimeout, srv.WriteTimeout)
	}
}

func TestNewServer_ConfigError(t *testing.T) {
	deps := Deps{
		LoadConfig: func() (*config.Config, error) { return nil, errors.New("bad env") },
	}

	if _, _, err := NewServerWithDeps(deps); err == nil {
		t.Fatalf("expected config error")
	}
}

func TestNewServer_DBConnectError(t *testing.T) {
	cfg := testConfig()
	cfg.DBAddr = "postgres://nowhere/db"

	deps := memoryDeps(cfg)
	deps.NewDB = func(dsn string) (*sql.DB, error) { return nil, errors.New("refused") }

	if _, _, err := NewServerWithDeps(deps); err == nil {
		t.Fatalf("expected db error")
	}
}

func TestNewServer_RouterError(t *testing.T) {
	deps := memoryDeps(testConfig())
	deps.NewRouter = func(router.Deps) (http.Handler, error) {
		return nil, errors.New("router broken")
	}

	if _, _, err := NewServerWithDeps(deps); err == nil {
		t.Fatalf("expected router error")
	}
}
