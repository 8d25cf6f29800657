package jobs

import (
	"context"

	"VisionCare360/services"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

/*
* Runs every day at 00:05
* The 7-day chart window and the today counter shift at midnight even
* when nothing was written, so the snapshot is rebuilt and re-broadcast
 */
func StartDailyScheduler(ctx context.Context, hub *services.DashboardHub) *cron.Cron {
	c := cron.New()

	c.AddFunc("5 0 * * *", func() {
		log.Info().Msg("running daily dashboard rollover")
		hub.RecomputeAndBroadcast(ctx)
	})

	c.Start()
	return c
}
