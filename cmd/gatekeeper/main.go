package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/agentics/gatekeeper/internal/api"
	"github.com/agentics/gatekeeper/internal/biz"
	"github.com/agentics/gatekeeper/internal/biz/usecase"
	"github.com/agentics/gatekeeper/internal/conf"
	"github.com/agentics/gatekeeper/internal/data"
	"github.com/agentics/gatekeeper/internal/infra/lark"
	"github.com/agentics/gatekeeper/internal/infra/openai"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := conf.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if cfg.Debug {
		fmt.Printf("[Gatekeeper] Config: port=%d model=%s policy=%s logs=%s\n",
			cfg.Server.Port, cfg.OpenAI.Model, cfg.Policy.Path, cfg.Audit.Dir)
	}

	// Initialize clients
	judgeClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)

	var larkClient *lark.Client
	if cfg.Lark.AppID != "" && cfg.Lark.AppSecret != "" {
		larkClient = lark.NewClient(cfg.Lark.AppID, cfg.Lark.AppSecret)
		fmt.Println("[Gatekeeper] Moderator alerts enabled")
	}

	// Initialize repository layer
	repos, err := data.NewRepositories(judgeClient, larkClient, cfg.Policy.Path, cfg.Audit.Dir, cfg.Lark.AlertChatID)
	if err != nil {
		log.Fatalf("Failed to create repositories: %v", err)
	}

	fmt.Printf("[Gatekeeper] Audit log dir: %s\n", cfg.Audit.Dir)

	// Initialize usecase layer
	ucs := &biz.Usecases{
		Vet: usecase.NewVetUsecase(repos.Judge, repos.Policy, repos.Audit, repos.Notify, cfg.ToVetPrompts()),
	}

	// Initialize HTTP server
	apiServer := api.NewServer(ucs.Vet, cfg.Server.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		apiServer.Stop()
		os.Exit(0)
	}()

	fmt.Printf("[Gatekeeper] Vetting with model %s\n", cfg.OpenAI.Model)
	if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
