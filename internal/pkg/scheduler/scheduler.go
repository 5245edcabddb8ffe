package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"ticketbari/config"
	"ticketbari/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeSetPaymentExpired = "set_payment_expired"

	MonitoringRootPath = "/monitoring"
)

type Scheduler struct {
	Log      log.Logger
	redisOpt asynq.RedisClientOpt
	server   *asynq.Server
}

func New(cfg *config.RedisConfig, logger log.Logger) *Scheduler {
	return &Scheduler{
		Log: logger,
		redisOpt: asynq.RedisClientOpt{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		},
	}
}

// MonitoringHandler serves the asynqmon dashboard under MonitoringRootPath.
func (s *Scheduler) MonitoringHandler() http.Handler {
	return asynqmon.New(asynqmon.Options{
		RootPath:     MonitoringRootPath,
		RedisConnOpt: s.redisOpt,
	})
}

func (s *Scheduler) InitClient() *asynq.Client {
	return asynq.NewClient(s.redisOpt)
}

// StartHandler starts the task server in the background.
func (s *Scheduler) StartHandler(cfg *config.SchedulerConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) error {
	if len(taskTypes) != len(handlerFunc) {
		return fmt.Errorf("scheduler: %d task types for %d handlers", len(taskTypes), len(handlerFunc))
	}

	s.server = asynq.NewServer(
		s.redisOpt,
		asynq.Config{
			Concurrency: cfg.Concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := s.server.Start(mux); err != nil {
		s.Log.Error(context.Background(), "error start handler scheduler", err)
		return err
	}
	return nil
}

func (s *Scheduler) Shutdown() {
	if s.server != nil {
		s.server.Shutdown()
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
