package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	bCtx "github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/goroutine"
	"github.com/x-xyz/marketfront/base/log"
	"github.com/x-xyz/marketfront/domain"
)

const (
	defaultCapacity  = 100
	subscriberBuffer = 16
)

type NotificationUseCaseCfg struct {
	// Capacity is the number of notifications kept for Recent
	Capacity int
	Sinks    []domain.NotificationSink
}

type notificationUseCase struct {
	sinks []domain.NotificationSink
	now   func() time.Time

	mu sync.Mutex
	// ring buffer, next is the slot the next notification goes to
	feed []*domain.Notification
	next int
	size int

	subscribers map[int]chan *domain.Notification
	nextSubId   int
}

func NewNotificationUseCase(cfg *NotificationUseCaseCfg) domain.NotificationUseCase {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &notificationUseCase{
		sinks:       cfg.Sinks,
		now:         time.Now,
		feed:        make([]*domain.Notification, capacity),
		subscribers: make(map[int]chan *domain.Notification),
	}
}

func (u *notificationUseCase) Notify(c bCtx.Ctx, level domain.NotificationLevel, source domain.NotificationSource, message string) {
	n := &domain.Notification{
		Id:        uuid.NewString(),
		Level:     level,
		Source:    source,
		Message:   message,
		CreatedAt: u.now(),
	}

	logger := c.WithFields(log.Fields{
		"notificationId": n.Id,
		"source":         source,
		"message":        message,
	})
	if level == domain.NotificationLevelError {
		logger.Warn("notify")
	} else {
		logger.Info("notify")
	}

	u.mu.Lock()
	u.feed[u.next] = n
	u.next = (u.next + 1) % len(u.feed)
	if u.size < len(u.feed) {
		u.size++
	}
	for id, ch := range u.subscribers {
		select {
		case ch <- n:
		default:
			logger.WithField("subscriber", id).Warn("subscriber full, notification dropped")
		}
	}
	u.mu.Unlock()

	if len(u.sinks) == 0 {
		return
	}
	c = bCtx.Detach(c)
	goroutine.RecoverableGo(func() {
		for _, sink := range u.sinks {
			if err := sink.Send(c, n); err != nil {
				c.WithFields(log.Fields{
					"err":            err,
					"notificationId": n.Id,
				}).Error("sink.Send failed")
			}
		}
	}, goroutine.WithName("notification sinks"))
}

// Recent returns up to limit notifications, newest first. limit <= 0 returns all kept.
func (u *notificationUseCase) Recent(limit int) []*domain.Notification {
	u.mu.Lock()
	defer u.mu.Unlock()

	if limit <= 0 || limit > u.size {
		limit = u.size
	}
	res := make([]*domain.Notification, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (u.next - i + len(u.feed)) % len(u.feed)
		res = append(res, u.feed[idx])
	}
	return res
}

func (u *notificationUseCase) Subscribe() (<-chan *domain.Notification, func()) {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := u.nextSubId
	u.nextSubId++
	ch := make(chan *domain.Notification, subscriberBuffer)
	u.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			u.mu.Lock()
			defer u.mu.Unlock()
			delete(u.subscribers, id)
			close(ch)
		})
	}
}
