package uorb

import (
	"fmt"

	"github.com/wippyai/orb/errors"
)

//go:generate go run go.uber.org/mock/mockgen -destination=uorbtest/mock_transport.go -package=uorbtest . Transport

// Transport is the message bus the handles operate on. Implementations
// follow the uORB C API conventions: publication handles are non-zero on
// success, subscription handles are non-negative, and status codes are zero
// on success.
//
// Data slices passed in are exactly Metadata.Size() bytes long and are only
// valid for the duration of the call.
type Transport interface {
	Advertise(meta *Metadata, data []byte) uintptr
	AdvertiseQueue(meta *Metadata, data []byte, queueSize uint32) uintptr
	AdvertiseMulti(meta *Metadata, data []byte, priority int32) (uintptr, int32)
	AdvertiseMultiQueue(meta *Metadata, data []byte, priority int32, queueSize uint32) (uintptr, int32)
	Unadvertise(handle uintptr) int32
	Publish(meta *Metadata, handle uintptr, data []byte) int32

	Subscribe(meta *Metadata) int32
	SubscribeMulti(meta *Metadata, instance uint32) int32
	Unsubscribe(handle int32) int32
	Copy(meta *Metadata, handle int32, buf []byte) int32
	Check(handle int32) (bool, int32)
	Stat(handle int32) (uint64, int32)
	Exists(meta *Metadata, instance int32) int32
	GroupCount(meta *Metadata) int32
	Priority(handle int32) (int32, int32)
	SetInterval(handle int32, interval uint32) int32
	GetInterval(handle int32) (uint32, int32)
}

// ErrAdvertise is returned when the transport refuses an advertisement.
// Match it with errors.Is.
var ErrAdvertise = errors.New(errors.PhaseTransport, errors.KindAdvertise).
	Detail("advertise failed").
	Build()

// ErrClosed is returned when a closed handle is used.
var ErrClosed = errors.InvalidInput(errors.PhaseTransport, "handle closed")

// TransportError carries the status code of a failed transport call.
type TransportError struct {
	Op   string
	Code int32
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("uorb: %s failed with status %d", e.Op, e.Code)
}

// Unwrap exposes the failure as a transport-phase structured error.
func (e *TransportError) Unwrap() error {
	return errors.New(errors.PhaseTransport, errors.KindTransport).
		Detail("%s: status %d", e.Op, e.Code).
		Value(e.Code).
		Build()
}

func advertiseError(meta *Metadata, op string) error {
	return errors.New(errors.PhaseTransport, errors.KindAdvertise).
		Detail("%s %s returned a null handle", op, meta.name).
		Build()
}

func statusError(op string, code int32) error {
	if code == 0 {
		return nil
	}
	return &TransportError{Op: op, Code: code}
}
