package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"pet-shelter/internal/platform/logger"
	portnotify "pet-shelter/internal/ports/notify"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultWorkers   = 4
	DefaultQueueSize = 256
	DefaultTimeout   = 10 * time.Second
)

var ErrClosed = errors.New("dispatcher closed")

var tracer = otel.Tracer("pet-shelter/internal/adapters/notify")

type Options struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration // por envío
}

type delivery struct {
	id       uuid.UUID
	userName string
	text     string
	link     trace.Link // span del request que originó el envío
	queuedAt time.Time
}

// Dispatcher entrega notificaciones en background con un pool fijo de workers.
// Notify nunca bloquea: con la cola llena el mensaje se descarta y se loguea.
type Dispatcher struct {
	gw      portnotify.Gateway
	log     logger.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan delivery
	wg     sync.WaitGroup
}

func NewDispatcher(gw portnotify.Gateway, log logger.Logger, opts Options) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.QueueSize < 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	d := &Dispatcher{
		gw:      gw,
		log:     log,
		timeout: opts.Timeout,
		queue:   make(chan delivery, opts.QueueSize),
	}

	d.wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go d.worker()
	}
	return d
}

// Notify encola el mensaje. El contexto del caller solo aporta el trace:
// cancelarlo no cancela la entrega.
func (d *Dispatcher) Notify(ctx context.Context, userName, text string) {
	job := delivery{
		id:       uuid.New(),
		userName: userName,
		text:     text,
		link:     trace.LinkFromContext(ctx),
		queuedAt: time.Now(),
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("notification dropped", map[string]any{
			"delivery_id": job.id.String(),
			"user_name":   userName,
			"reason":      ErrClosed.Error(),
		})
		return
	}

	select {
	case d.queue <- job:
	default:
		d.log.Warn("notification dropped", map[string]any{
			"delivery_id": job.id.String(),
			"user_name":   userName,
			"reason":      "queue full",
		})
	}
}

// Close deja de aceptar mensajes y espera a que se vacíe la cola o venza ctx.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for job := range d.queue {
		d.deliver(job)
	}
}

func (d *Dispatcher) deliver(job delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "notify.deliver",
		trace.WithLinks(job.link),
		trace.WithAttributes(
			attribute.String("notify.delivery_id", job.id.String()),
			attribute.String("notify.user_name", job.userName),
		),
	)
	defer span.End()

	fields := map[string]any{
		"delivery_id": job.id.String(),
		"user_name":   job.userName,
		"queued_ms":   time.Since(job.queuedAt).Milliseconds(),
	}

	if err := d.gw.Send(ctx, job.userName, job.text); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		fields["error"] = err.Error()
		d.log.Warn("notification failed", fields)
		return
	}
	d.log.Debug("notification delivered", fields)
}
