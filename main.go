package main

import (
	"log"

	"github.com/joho/godotenv"

	"crisisvision/config"
	"crisisvision/cronjobs"
	"crisisvision/intel"
	"crisisvision/llm"
	"crisisvision/pipeline"
	"crisisvision/routes"
)

func main() {
	// Load .env file if present; deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := config.Load()
	if cfg.APIKey != "" {
		log.Println("NVIDIA_API_KEY loaded")
	} else {
		log.Println("Warning: NVIDIA_API_KEY not set, inference calls will fail")
	}

	intelClient := intel.NewClient(cfg.ProviderURLs)
	llmClient := llm.NewClient(cfg.APIKey, cfg.BaseURL)
	controller := pipeline.New(cfg, intelClient, llmClient)

	// Periodic provider health probes
	cronjobs.InitCronJobs(intelClient)

	r := routes.SetupRouter(cfg, controller)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
