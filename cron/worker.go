package cron

import (
	"context"
	"time"

	"cpicareers/config"
	"cpicareers/models"
	"cpicareers/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Reconciler settles a received application.
type Reconciler interface {
	Reconcile(ctx context.Context, applicationID string) (models.ApplicationStatus, error)
}

// RedisOpt returns the asynq connection for the task queue database.
func RedisOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
}

// NewMux registers the background task handlers.
func NewMux(reconciler Reconciler, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReconcileApplication, handleReconcileTask(reconciler, logger))
	return mux
}

// InitReconcileWorker runs the async worker in background until ctx is done.
func InitReconcileWorker(ctx context.Context, cfg config.Config, reconciler Reconciler, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(cfg),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := NewMux(reconciler, logger)

	go monitorRedisConnection(ctx, cfg, logger)

	go func() {
		logger.Info("starting reconcile worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reconcile worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("reconcile worker: max retry attempts reached")
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}
	}()
	return srv
}

func handleReconcileTask(reconciler Reconciler, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReconcilePayload(task)
		if err != nil || p.ApplicationID == "" {
			logger.Error("invalid reconcile payload", zap.ByteString("payload", task.Payload()), zap.Error(err))
			return asynq.SkipRetry
		}

		status, err := reconciler.Reconcile(ctx, p.ApplicationID)
		if err != nil {
			logger.Error("reconcile failed", zap.String("applicationId", p.ApplicationID), zap.Error(err))
			return err
		}
		logger.Debug("reconcile done", zap.String("applicationId", p.ApplicationID), zap.String("status", string(status)))
		return nil
	}
}

// monitorRedisConnection pings the queue database periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context, cfg config.Config, logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("task queue redis connection lost", zap.Error(err))
			}
		}
	}
}
