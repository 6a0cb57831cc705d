package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/authcore/account-service/internal/api/metrics"
	"github.com/authcore/account-service/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans outbound emails across a fixed set of workers, sharded by
// recipient so emails to the same address keep their order. Delivery is
// fire-and-forget: a failed send is logged and counted, never reported back
// to the enqueuer.
//
// Dispatcher implements ports.MailEnqueuer.
type Dispatcher struct {
	workers []chan ports.OutboundEmail
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.OutboundEmail, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.OutboundEmail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an email to the worker responsible for its recipient.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(email ports.OutboundEmail) {
	i := d.shardIndex(email.To)
	d.workers[i] <- email
	metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.OutboundEmail) {
	for {
		select {
		case <-ctx.Done():
			return
		case email, ok := <-ch:
			if !ok {
				return
			}
			metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.mailer.Send(email); err != nil {
				metrics.EmailsSentTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("to", email.To).
					Str("subject", email.Subject).
					Int("worker_id", id).
					Msg("email delivery failed")
				continue
			}
			metrics.EmailsSentTotal.WithLabelValues("ok").Inc()
			d.log.Debug().Str("to", email.To).Str("subject", email.Subject).Msg("email sent")
		}
	}
}
