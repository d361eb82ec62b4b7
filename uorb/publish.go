package uorb

import (
	"go.uber.org/zap"
)

// DefaultQueueSize is the queue depth requested when none is configured.
const DefaultQueueSize = 1

type publishConfig struct {
	priority  int32
	explicit  bool
	queueSize uint32
}

// PublishOption configures a Publisher.
type PublishOption func(*publishConfig)

// WithPriority requests a multi-instance advertisement at the given priority.
// The instance chosen by the transport is then reported by Instance.
func WithPriority(priority int32) PublishOption {
	return func(c *publishConfig) {
		c.priority = priority
		c.explicit = true
	}
}

// WithQueueSize sets the queue depth requested from the transport.
func WithQueueSize(n uint32) PublishOption {
	return func(c *publishConfig) {
		c.queueSize = n
	}
}

// Publisher publishes messages of type T. It advertises the topic lazily,
// on the first Publish, so that advertisement and first sample are one
// transport call.
//
// A Publisher is owned by a single goroutine. Close releases the
// advertisement and is safe to call more than once.
type Publisher[T Message] struct {
	tr        Transport
	meta      *Metadata
	handle    uintptr
	instance  uint32
	priority  int32
	explicit  bool
	queueSize uint32
	closed    bool
}

// Advertise returns an unadvertised publisher. The transport is not
// touched until the first Publish.
func Advertise[T Message](tr Transport, opts ...PublishOption) *Publisher[T] {
	cfg := publishConfig{queueSize: DefaultQueueSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	return &Publisher[T]{
		tr:        tr,
		meta:      zero.Metadata(),
		priority:  cfg.priority,
		explicit:  cfg.explicit,
		queueSize: cfg.queueSize,
	}
}

// Publish sends v. The first successful call advertises the topic with v as
// its initial sample; later calls publish on the advertised handle.
func (p *Publisher[T]) Publish(v *T) error {
	if p.closed {
		return ErrClosed
	}
	data := bytesOf(p.meta, v, "publish")

	if p.handle != 0 {
		return statusError("publish", p.tr.Publish(p.meta, p.handle, data))
	}
	return p.advertise(data)
}

func (p *Publisher[T]) advertise(data []byte) error {
	var (
		handle   uintptr
		instance int32
		op       string
	)
	switch {
	case !p.explicit && p.queueSize == DefaultQueueSize:
		op = "advertise"
		handle = p.tr.Advertise(p.meta, data)
	case !p.explicit:
		op = "advertise_queue"
		handle = p.tr.AdvertiseQueue(p.meta, data, p.queueSize)
	case p.queueSize == DefaultQueueSize:
		op = "advertise_multi"
		handle, instance = p.tr.AdvertiseMulti(p.meta, data, p.priority)
	default:
		op = "advertise_multi_queue"
		handle, instance = p.tr.AdvertiseMultiQueue(p.meta, data, p.priority, p.queueSize)
	}

	if handle == 0 {
		Logger().Debug("advertise refused",
			zap.String("topic", p.meta.Name()),
			zap.String("op", op))
		return advertiseError(p.meta, op)
	}

	p.handle = handle
	if p.explicit {
		p.instance = uint32(instance)
	}
	Logger().Debug("advertised",
		zap.String("topic", p.meta.Name()),
		zap.String("op", op),
		zap.Uint32("instance", p.instance))
	return nil
}

// IsAdvertised reports whether the topic has been advertised.
func (p *Publisher[T]) IsAdvertised() bool { return p.handle != 0 }

// Instance returns the instance assigned by a multi-instance advertisement.
// It reports false before advertisement and for default-priority publishers.
func (p *Publisher[T]) Instance() (uint32, bool) {
	if p.handle == 0 || !p.explicit {
		return 0, false
	}
	return p.instance, true
}

// Priority returns the requested priority, if one was set.
func (p *Publisher[T]) Priority() (int32, bool) { return p.priority, p.explicit }

// QueueSize returns the requested queue depth.
func (p *Publisher[T]) QueueSize() uint32 { return p.queueSize }

// RawHandle returns the transport handle, 0 while unadvertised.
func (p *Publisher[T]) RawHandle() uintptr { return p.handle }

// Close unadvertises the topic if it was advertised.
func (p *Publisher[T]) Close() {
	if p.closed {
		return
	}
	p.closed = true
	if p.handle == 0 {
		return
	}
	if code := p.tr.Unadvertise(p.handle); code != 0 {
		Logger().Debug("unadvertise failed",
			zap.String("topic", p.meta.Name()),
			zap.Int32("status", code))
	}
	p.handle = 0
}

// AdvertiseNow advertises v immediately with the default priority.
func AdvertiseNow[T Message](tr Transport, v *T) (*Publisher[T], error) {
	p := Advertise[T](tr)
	if err := p.Publish(v); err != nil {
		return nil, err
	}
	return p, nil
}

// AdvertiseQueueNow advertises v immediately with a queue of the given depth.
func AdvertiseQueueNow[T Message](tr Transport, v *T, queueSize uint32) (*Publisher[T], error) {
	p := Advertise[T](tr, WithQueueSize(queueSize))
	if err := p.Publish(v); err != nil {
		return nil, err
	}
	return p, nil
}

// AdvertiseMultiNow advertises v immediately as a new instance and returns
// the instance number.
func AdvertiseMultiNow[T Message](tr Transport, v *T, priority int32) (*Publisher[T], uint32, error) {
	return AdvertiseMultiQueueNow(tr, v, priority, DefaultQueueSize)
}

// AdvertiseMultiQueueNow is AdvertiseMultiNow with a queue of the given depth.
func AdvertiseMultiQueueNow[T Message](tr Transport, v *T, priority int32, queueSize uint32) (*Publisher[T], uint32, error) {
	p := Advertise[T](tr, WithPriority(priority), WithQueueSize(queueSize))
	if err := p.Publish(v); err != nil {
		return nil, 0, err
	}
	return p, p.instance, nil
}
