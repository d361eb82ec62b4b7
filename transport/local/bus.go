package local

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/orb/errors"
	"github.com/wippyai/orb/uorb"
)

// MaxInstances is the number of instances a topic can have.
const MaxInstances = 4

// Status codes returned by the bus, as negated errno values.
const (
	statusOK      int32 = 0
	statusError   int32 = -1
	statusInvalid int32 = -22 // EINVAL
	statusNoData  int32 = -61 // ENODATA
)

// ErrClosed is returned by Close when the bus was already closed.
var ErrClosed = errors.InvalidInput(errors.PhaseTransport, "local bus closed")

type topic struct {
	name      string
	fields    string
	size      uint16
	instances [MaxInstances]instance
}

type instance struct {
	data       []byte
	generation uint64
	timestamp  uint64 // microseconds
	priority   int32
	queueSize  uint32
	advertised bool
}

type publication struct {
	topic *topic
	index int
}

type subscription struct {
	topic    *topic
	lastRead time.Time
	lastGen  uint64
	interval uint32 // milliseconds
	index    int
}

// Bus is an in-process message bus. Each topic instance keeps only its
// latest sample. A Bus is safe for concurrent use.
type Bus struct {
	clock      clock.Clock
	logger     *zap.Logger
	metrics    *metrics
	topics     map[string]*topic
	pubs       *handleTable[*publication]
	subs       *handleTable[*subscription]
	observers  []Observer
	start      time.Time
	queueLimit uint32
	mu         sync.Mutex
	closed     bool
}

var _ uorb.Transport = (*Bus)(nil)

// New creates an empty bus.
func New(opts ...Option) *Bus {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Bus{
		clock:      cfg.clock,
		logger:     cfg.logger,
		metrics:    newMetrics(cfg.registerer),
		topics:     make(map[string]*topic),
		pubs:       newHandleTable[*publication](),
		subs:       newHandleTable[*subscription](),
		observers:  cfg.observers,
		start:      cfg.clock.Now(),
		queueLimit: cfg.queueLimit,
	}
}

// now returns the time since the bus was created, in microseconds.
func (b *Bus) now() uint64 {
	return uint64(b.clock.Since(b.start).Microseconds())
}

// topicFor returns the topic named by meta, creating it on first use.
// A topic registered with a different layout is reported as nil.
func (b *Bus) topicFor(meta *uorb.Metadata) *topic {
	t, ok := b.topics[meta.Name()]
	if !ok {
		t = &topic{
			name:   meta.Name(),
			fields: meta.Fields(),
			size:   meta.Size(),
		}
		b.topics[t.name] = t
		return t
	}
	if t.size != meta.Size() || t.fields != meta.Fields() {
		b.logger.Warn("layout mismatch",
			zap.String("topic", t.name),
			zap.String("registered", t.fields),
			zap.String("requested", meta.Fields()))
		return nil
	}
	return t
}

func (b *Bus) notify(e Event) {
	for _, o := range b.observers {
		o.OnBusEvent(e)
	}
}

// Advertise advertises instance 0 of the topic and publishes data.
func (b *Bus) Advertise(meta *uorb.Metadata, data []byte) uintptr {
	h, _ := b.advertise(meta, data, false, uorb.PrioDefault, 1)
	return h
}

// AdvertiseQueue is Advertise with a queue depth.
func (b *Bus) AdvertiseQueue(meta *uorb.Metadata, data []byte, queueSize uint32) uintptr {
	h, _ := b.advertise(meta, data, false, uorb.PrioDefault, queueSize)
	return h
}

// AdvertiseMulti advertises the lowest free instance of the topic.
func (b *Bus) AdvertiseMulti(meta *uorb.Metadata, data []byte, priority int32) (uintptr, int32) {
	return b.advertise(meta, data, true, priority, 1)
}

// AdvertiseMultiQueue is AdvertiseMulti with a queue depth.
func (b *Bus) AdvertiseMultiQueue(meta *uorb.Metadata, data []byte, priority int32, queueSize uint32) (uintptr, int32) {
	return b.advertise(meta, data, true, priority, queueSize)
}

func (b *Bus) advertise(meta *uorb.Metadata, data []byte, multi bool, priority int32, queueSize uint32) (uintptr, int32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || len(data) != int(meta.Size()) {
		return 0, 0
	}
	if queueSize == 0 {
		queueSize = 1
	}
	if queueSize > b.queueLimit {
		b.logger.Debug("queue size over limit",
			zap.String("topic", meta.Name()),
			zap.Uint32("queue_size", queueSize),
			zap.Uint32("limit", b.queueLimit))
		return 0, 0
	}

	t := b.topicFor(meta)
	if t == nil {
		return 0, 0
	}

	index := -1
	if multi {
		for i := range t.instances {
			if !t.instances[i].advertised {
				index = i
				break
			}
		}
	} else if !t.instances[0].advertised {
		index = 0
	}
	if index < 0 {
		b.logger.Debug("no free instance", zap.String("topic", t.name), zap.Bool("multi", multi))
		return 0, 0
	}

	inst := &t.instances[index]
	inst.advertised = true
	inst.priority = priority
	inst.queueSize = queueSize
	b.store(t, inst, data)

	h := b.pubs.insert(&publication{topic: t, index: index})
	b.metrics.advertisements.Inc()
	b.logger.Debug("advertised",
		zap.String("topic", t.name),
		zap.Int("instance", index),
		zap.Int32("priority", priority))
	b.notify(Event{Type: EventAdvertised, Topic: t.name, Handle: uint32(h), Instance: uint32(index)})

	return uintptr(h), int32(index)
}

func (b *Bus) store(t *topic, inst *instance, data []byte) {
	if inst.data == nil {
		inst.data = make([]byte, t.size)
	}
	copy(inst.data, data)
	inst.generation++
	inst.timestamp = b.now()
	b.metrics.publishes.WithLabelValues(t.name).Inc()
}

// Unadvertise releases a publication handle. The last sample stays readable.
func (b *Bus) Unadvertise(h uintptr) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if h > uintptr(^uint32(0)) {
		return statusInvalid
	}
	p, ok := b.pubs.remove(handle(h))
	if !ok {
		return statusInvalid
	}
	p.topic.instances[p.index].advertised = false
	b.metrics.advertisements.Dec()
	b.notify(Event{Type: EventUnadvertised, Topic: p.topic.name, Handle: uint32(h), Instance: uint32(p.index)})
	return statusOK
}

// Publish stores data as the latest sample of the handle's instance.
func (b *Bus) Publish(meta *uorb.Metadata, h uintptr, data []byte) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if h > uintptr(^uint32(0)) {
		return statusInvalid
	}
	p, ok := b.pubs.get(handle(h))
	if !ok || p.topic.name != meta.Name() || len(data) != int(p.topic.size) {
		return statusInvalid
	}
	b.store(p.topic, &p.topic.instances[p.index], data)
	return statusOK
}

// Subscribe subscribes to instance 0 of the topic.
func (b *Bus) Subscribe(meta *uorb.Metadata) int32 {
	return b.SubscribeMulti(meta, 0)
}

// SubscribeMulti subscribes to an instance of the topic. The instance need
// not be advertised yet.
func (b *Bus) SubscribeMulti(meta *uorb.Metadata, index uint32) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || index >= MaxInstances {
		return statusInvalid
	}
	t := b.topicFor(meta)
	if t == nil {
		return statusInvalid
	}

	h := b.subs.insert(&subscription{topic: t, index: int(index)})
	b.metrics.subscriptions.Inc()
	b.notify(Event{Type: EventSubscribed, Topic: t.name, Handle: uint32(h), Instance: index})
	return int32(h)
}

// Unsubscribe releases a subscription handle.
func (b *Bus) Unsubscribe(h int32) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if h < 0 {
		return statusInvalid
	}
	s, ok := b.subs.remove(handle(h))
	if !ok {
		return statusInvalid
	}
	b.metrics.subscriptions.Dec()
	b.notify(Event{Type: EventUnsubscribed, Topic: s.topic.name, Handle: uint32(h), Instance: uint32(s.index)})
	return statusOK
}

func (b *Bus) subscription(h int32) (*subscription, bool) {
	if h < 0 {
		return nil, false
	}
	return b.subs.get(handle(h))
}

// Copy copies the latest sample into buf and marks it as read.
func (b *Bus) Copy(meta *uorb.Metadata, h int32, buf []byte) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.subscription(h)
	if !ok || s.topic.name != meta.Name() || len(buf) != int(s.topic.size) {
		return statusInvalid
	}
	inst := &s.topic.instances[s.index]
	if inst.generation == 0 {
		return statusNoData
	}

	copy(buf, inst.data)
	s.lastGen = inst.generation
	s.lastRead = b.clock.Now()
	b.metrics.copies.WithLabelValues(s.topic.name).Inc()
	return statusOK
}

// Check reports whether a sample newer than the last copied one exists and
// the subscription interval has elapsed since the last copy.
func (b *Bus) Check(h int32) (bool, int32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.subscription(h)
	if !ok {
		return false, statusInvalid
	}
	inst := &s.topic.instances[s.index]
	if inst.generation <= s.lastGen {
		return false, statusOK
	}
	if s.interval > 0 && !s.lastRead.IsZero() {
		if b.clock.Since(s.lastRead) < time.Duration(s.interval)*time.Millisecond {
			return false, statusOK
		}
	}
	return true, statusOK
}

// Stat returns the timestamp of the latest sample, in microseconds since the
// bus was created. It is 0 before the first publication.
func (b *Bus) Stat(h int32) (uint64, int32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.subscription(h)
	if !ok {
		return 0, statusInvalid
	}
	return s.topic.instances[s.index].timestamp, statusOK
}

// Exists returns 0 if the instance is advertised, -1 otherwise.
func (b *Bus) Exists(meta *uorb.Metadata, index int32) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[meta.Name()]
	if !ok || index < 0 || index >= MaxInstances || !t.instances[index].advertised {
		return statusError
	}
	return statusOK
}

// GroupCount returns the number of advertised instances of the topic.
func (b *Bus) GroupCount(meta *uorb.Metadata) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[meta.Name()]
	if !ok {
		return 0
	}
	var n int32
	for i := range t.instances {
		if t.instances[i].advertised {
			n++
		}
	}
	return n
}

// Priority returns the priority of the subscribed instance.
func (b *Bus) Priority(h int32) (int32, int32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.subscription(h)
	if !ok {
		return 0, statusInvalid
	}
	return s.topic.instances[s.index].priority, statusOK
}

// SetInterval sets the minimum time between updates reported by Check,
// in milliseconds.
func (b *Bus) SetInterval(h int32, interval uint32) int32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.subscription(h)
	if !ok {
		return statusInvalid
	}
	s.interval = interval
	return statusOK
}

// GetInterval returns the subscription interval in milliseconds.
func (b *Bus) GetInterval(h int32) (uint32, int32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.subscription(h)
	if !ok {
		return 0, statusInvalid
	}
	return s.interval, statusOK
}

// Close releases every handle. Handles still open at this point are
// reported in the returned error, one entry per handle.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	b.closed = true

	var err error
	b.pubs.each(func(h handle, p *publication) bool {
		p.topic.instances[p.index].advertised = false
		b.metrics.advertisements.Dec()
		err = multierr.Append(err, leaked(p.topic.name, "publication", h))
		return true
	})
	b.subs.each(func(h handle, s *subscription) bool {
		b.metrics.subscriptions.Dec()
		err = multierr.Append(err, leaked(s.topic.name, "subscription", h))
		return true
	})
	if err != nil {
		b.logger.Warn("bus closed with open handles",
			zap.Int("publications", b.pubs.len()),
			zap.Int("subscriptions", b.subs.len()))
	}

	b.pubs.clear()
	b.subs.clear()
	b.topics = make(map[string]*topic)
	return err
}

func leaked(name, kind string, h handle) error {
	return errors.New(errors.PhaseTransport, errors.KindInvalidInput).
		Detail("%s: %s handle %d still open", name, kind, h).
		Build()
}
