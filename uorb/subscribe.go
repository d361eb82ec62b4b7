package uorb

import (
	"go.uber.org/zap"
)

// Subscription reads messages of type T from one topic instance.
// It holds exactly one transport handle from creation until Close.
type Subscription[T Message] struct {
	tr     Transport
	meta   *Metadata
	handle int32
	closed bool
}

// Subscribe subscribes to instance 0 of T's topic.
func Subscribe[T Message](tr Transport) (*Subscription[T], error) {
	var zero T
	meta := zero.Metadata()
	return newSubscription[T](tr, meta, "subscribe", tr.Subscribe(meta))
}

// SubscribeMulti subscribes to the given instance of T's topic.
func SubscribeMulti[T Message](tr Transport, instance uint32) (*Subscription[T], error) {
	var zero T
	meta := zero.Metadata()
	return newSubscription[T](tr, meta, "subscribe_multi", tr.SubscribeMulti(meta, instance))
}

func newSubscription[T Message](tr Transport, meta *Metadata, op string, handle int32) (*Subscription[T], error) {
	if handle < 0 {
		return nil, &TransportError{Op: op, Code: handle}
	}
	Logger().Debug("subscribed",
		zap.String("topic", meta.Name()),
		zap.Int32("handle", handle))
	return &Subscription[T]{tr: tr, meta: meta, handle: handle}, nil
}

// Get returns a copy of the latest message.
func (s *Subscription[T]) Get() (T, error) {
	var v T
	err := s.Copy(&v)
	return v, err
}

// Copy copies the latest message into v.
func (s *Subscription[T]) Copy(v *T) error {
	if s.closed {
		return ErrClosed
	}
	return statusError("copy", s.tr.Copy(s.meta, s.handle, bytesOf(s.meta, v, "copy")))
}

// Check reports whether a new message arrived since the last Copy.
func (s *Subscription[T]) Check() (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	updated, code := s.tr.Check(s.handle)
	if err := statusError("check", code); err != nil {
		return false, err
	}
	return updated, nil
}

// Stat returns the publication time of the latest message, in microseconds.
func (s *Subscription[T]) Stat() (uint64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	t, code := s.tr.Stat(s.handle)
	if err := statusError("stat", code); err != nil {
		return 0, err
	}
	return t, nil
}

// Priority returns the priority of the subscribed instance.
func (s *Subscription[T]) Priority() (int32, error) {
	if s.closed {
		return 0, ErrClosed
	}
	prio, code := s.tr.Priority(s.handle)
	if err := statusError("priority", code); err != nil {
		return 0, err
	}
	return prio, nil
}

// SetInterval limits update notifications to one per interval milliseconds.
func (s *Subscription[T]) SetInterval(interval uint32) error {
	if s.closed {
		return ErrClosed
	}
	return statusError("set_interval", s.tr.SetInterval(s.handle, interval))
}

// Interval returns the update interval in milliseconds.
func (s *Subscription[T]) Interval() (uint32, error) {
	if s.closed {
		return 0, ErrClosed
	}
	interval, code := s.tr.GetInterval(s.handle)
	if err := statusError("get_interval", code); err != nil {
		return 0, err
	}
	return interval, nil
}

// RawHandle returns the transport handle.
func (s *Subscription[T]) RawHandle() int32 { return s.handle }

// Close unsubscribes. It is safe to call more than once.
func (s *Subscription[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if code := s.tr.Unsubscribe(s.handle); code != 0 {
		Logger().Debug("unsubscribe failed",
			zap.String("topic", s.meta.Name()),
			zap.Int32("status", code))
	}
}

// Exists reports whether the given instance of T's topic is advertised.
func Exists[T Message](tr Transport, instance uint32) bool {
	var zero T
	return tr.Exists(zero.Metadata(), int32(instance)) == 0
}

// GroupCount returns the number of advertised instances of T's topic.
func GroupCount[T Message](tr Transport) uint32 {
	var zero T
	n := tr.GroupCount(zero.Metadata())
	if n < 0 {
		return 0
	}
	return uint32(n)
}
