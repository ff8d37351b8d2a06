package asynqserver

import (
	"github.com/hibiken/asynq"

	"github.com/pharmahub/backend/internal/cache"
	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/queue/processor"
	"github.com/pharmahub/backend/internal/queue/task"
	"github.com/pharmahub/backend/internal/worker"
)

func New(cfg *config.Config, workers *worker.Workers) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(workers)

	concurrency := cfg.Queue.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	srv := asynq.NewServer(
		RedisOptions(cfg.Cache),
		asynq.Config{
			Concurrency: concurrency,
			LogLevel:    asynq.ErrorLevel,
			Queues:      queues,
		},
	)

	return srv, mux
}

func RedisOptions(cfg config.Cache) asynq.RedisConnOpt {
	var opts asynq.RedisConnOpt
	if cfg.Type == cache.RedisTypeCluster {
		opts = asynq.RedisClusterClientOpt{Addrs: cfg.RedisCluster.Addresses, Password: cfg.RedisCluster.Password}
	} else {
		opts = asynq.RedisClientOpt{Addr: cfg.Redis.Address, Password: cfg.Redis.Password}
	}
	return opts
}

// Emails outrank license checks; a user is waiting on the code.
func getQueues(workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(task.SendVerificationEmailTaskName, processor.NewSendVerificationEmailProcessor(workers))
	mux.Handle(task.SendPasswordResetEmailTaskName, processor.NewSendPasswordResetEmailProcessor(workers))
	mux.Handle(task.VerifyLicenseTaskName, processor.NewVerifyLicenseProcessor(workers))
	queues := map[string]int{
		task.SendEmailQueueName:     3,
		task.VerifyLicenseQueueName: 1,
	}
	return mux, queues
}
