// Package watch is the hand-off boundary to the external availability
// monitor. The monitor itself lives outside this service; we only enqueue and
// cancel watch registrations.
package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rezzy-api/core/constants"
	"rezzy-api/core/logger"
	"rezzy-api/modules/rezzy/entity"

	"github.com/gosimple/slug"
	"github.com/hibiken/asynq"
)

// RegisterPayload is the canonical record handed to the monitor.
type RegisterPayload struct {
	Reference      string  `json:"reference"`
	UserEmail      string  `json:"user_email"`
	RestaurantName *string `json:"restaurant_name"`
	OpentableURL   *string `json:"opentable_url"`
	PartySize      int     `json:"party_size"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`

	Date1      string  `json:"date1"`
	MinTime1   string  `json:"min_time1"`
	IdealTime1 string  `json:"ideal_time1"`
	MaxTime1   string  `json:"max_time1"`
	Date2      *string `json:"date2"`
	MinTime2   *string `json:"min_time2"`
	IdealTime2 *string `json:"ideal_time2"`
	MaxTime2   *string `json:"max_time2"`
	Date3      *string `json:"date3"`
	MinTime3   *string `json:"min_time3"`
	IdealTime3 *string `json:"ideal_time3"`
	MaxTime3   *string `json:"max_time3"`
}

// CancelPayload tells the monitor to stop watching for a user.
type CancelPayload struct {
	UserEmail string `json:"user_email"`
	Reference string `json:"reference"`
}

// DispatcherInterface defines the watch hand-off contract.
type DispatcherInterface interface {
	RegisterWatch(ctx context.Context, rezzy *entity.Rezzy) error
	CancelWatch(ctx context.Context, userEmail, reference string) error
	Close() error
}

type Dispatcher struct {
	client *asynq.Client
}

type DispatcherConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func NewDispatcher(config DispatcherConfig) *Dispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	return &Dispatcher{client: client}
}

// RegisterWatch enqueues a watch registration for the monitor. The task ID is
// derived from the request reference so re-registration is harmless.
func (d *Dispatcher) RegisterWatch(ctx context.Context, rezzy *entity.Rezzy) error {
	payload := RegisterPayload{
		Reference:      rezzy.Reference,
		UserEmail:      rezzy.UserEmail,
		RestaurantName: rezzy.RestaurantName,
		OpentableURL:   rezzy.OpentableURL,
		PartySize:      rezzy.PartySize,
		Latitude:       rezzy.Latitude,
		Longitude:      rezzy.Longitude,
		Date1:          rezzy.Date1,
		MinTime1:       rezzy.MinTime1,
		IdealTime1:     rezzy.IdealTime1,
		MaxTime1:       rezzy.MaxTime1,
		Date2:          rezzy.Date2,
		MinTime2:       rezzy.MinTime2,
		IdealTime2:     rezzy.IdealTime2,
		MaxTime2:       rezzy.MaxTime2,
		Date3:          rezzy.Date3,
		MinTime3:       rezzy.MinTime3,
		IdealTime3:     rezzy.IdealTime3,
		MaxTime3:       rezzy.MaxTime3,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal watch payload: %w", err)
	}

	task := asynq.NewTask(constants.TaskWatchRegister, data)
	info, err := d.client.EnqueueContext(ctx, task,
		asynq.Queue(constants.QueueWatch),
		asynq.TaskID(TaskIDFor(rezzy)),
		asynq.MaxRetry(5),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		logger.Error("WatchDispatcher:RegisterWatch:Enqueue", err)
		return err
	}

	logger.Info("watch registered", "task_id", info.ID, "queue", info.Queue, "reference", rezzy.Reference)
	return nil
}

// CancelWatch tells the monitor to drop the user's registration.
func (d *Dispatcher) CancelWatch(ctx context.Context, userEmail, reference string) error {
	data, err := json.Marshal(CancelPayload{UserEmail: userEmail, Reference: reference})
	if err != nil {
		return fmt.Errorf("marshal cancel payload: %w", err)
	}

	task := asynq.NewTask(constants.TaskWatchCancel, data)
	if _, err := d.client.EnqueueContext(ctx, task,
		asynq.Queue(constants.QueueWatch),
		asynq.MaxRetry(5),
		asynq.Timeout(time.Minute),
	); err != nil {
		logger.Error("WatchDispatcher:CancelWatch:Enqueue", err)
		return err
	}
	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}

// TaskIDFor builds a stable, human-readable task identifier from the
// restaurant identity and the request reference.
func TaskIDFor(rezzy *entity.Rezzy) string {
	name := "rezzy"
	if rezzy.RestaurantName != nil && *rezzy.RestaurantName != "" {
		name = slug.Make(*rezzy.RestaurantName)
	}
	return fmt.Sprintf("%s-%s", name, rezzy.Reference)
}
