package cron

import (
	"context"
	"fmt"
	"time"

	"studyplanner/config"
	"studyplanner/services/planner"
	"studyplanner/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReconcileWorker starts the asynq server that replays partially applied homework.
// The returned server should be shut down by the caller.
func InitReconcileWorker(svc planner.PlannerService, logger *zap.Logger) *asynq.Server {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeHomeworkReconcile, handleReconcileTask(svc, logger))

	go func() {
		logger.Info("starting reconcile worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("reconcile worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("reconcile worker gave up; partial homework will not be replayed")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

func handleReconcileTask(svc planner.PlannerService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReconcilePayload(task)
		if err != nil {
			logger.Error("invalid reconcile payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		err = svc.ReconcileHomework(ctx, p.UserID, p.HomeworkID)
		switch planner.KindOf(err) {
		case "":
			return err
		case planner.KindNotFound, planner.KindPreconditionMissing, planner.KindInvalidInput:
			logger.Warn("dropping reconcile task",
				zap.String("homeworkId", p.HomeworkID),
				zap.Error(err),
			)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		default:
			logger.Error("reconcile attempt failed",
				zap.String("homeworkId", p.HomeworkID),
				zap.Error(err),
			)
			return err
		}
	}
}
