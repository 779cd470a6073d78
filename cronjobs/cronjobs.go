package cronjobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"crisisvision/intel"
)

const probeTimeout = 30 * time.Second

// InitCronJobs schedules the periodic provider health probe so degraded
// providers show up in the logs before a request hits them.
func InitCronJobs(client *intel.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Provider health probe: every 5 minutes
	_, err := c.AddFunc("*/5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()

		for name, healthy := range client.Health(ctx) {
			if !healthy {
				log.Printf("CronJob: provider %s failed health probe", name)
			}
		}
	})
	if err != nil {
		log.Println("Error scheduling provider health probe:", err)
	}

	c.Start()
}
