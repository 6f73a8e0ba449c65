package cart

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Action is one add-to-cart request. Nothing is kept after it is recorded.
type Action struct {
	ID       string
	Username string
	ItemID   any
	Quantity any
	At       time.Time
}

type Recorder interface {
	Record(ctx context.Context, a Action) error
}

// LogRecorder writes actions to the log and counts them.
type LogRecorder struct {
	log   *zap.Logger
	count prometheus.Counter
}

func NewLogRecorder(log *zap.Logger, reg prometheus.Registerer) *LogRecorder {
	count := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_add_total",
		Help: "Add-to-cart actions recorded",
	})
	if reg != nil {
		reg.MustRegister(count)
	}
	return &LogRecorder{log: log, count: count}
}

func (r *LogRecorder) Record(ctx context.Context, a Action) error {
	r.log.Info("item added to cart",
		zap.String("action_id", a.ID),
		zap.String("user", a.Username),
		zap.Any("item_id", a.ItemID),
		zap.Any("quantity", a.Quantity),
		zap.Time("at", a.At),
	)
	r.count.Inc()
	return nil
}
