//go:build px4

package px4

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

struct orb_metadata {
	const char *o_name;
	const uint16_t o_size;
	const uint16_t o_size_no_padding;
	const char *o_fields;
};

typedef void *orb_advert_t;

extern orb_advert_t orb_advertise(const struct orb_metadata *meta, const void *data);
extern orb_advert_t orb_advertise_queue(const struct orb_metadata *meta, const void *data, unsigned int queue_size);
extern orb_advert_t orb_advertise_multi(const struct orb_metadata *meta, const void *data, int *instance, int priority);
extern orb_advert_t orb_advertise_multi_queue(const struct orb_metadata *meta, const void *data, int *instance, int priority, unsigned int queue_size);
extern int orb_unadvertise(orb_advert_t handle);
extern int orb_publish(const struct orb_metadata *meta, orb_advert_t handle, const void *data);
extern int orb_subscribe(const struct orb_metadata *meta);
extern int orb_subscribe_multi(const struct orb_metadata *meta, unsigned instance);
extern int orb_unsubscribe(int handle);
extern int orb_copy(const struct orb_metadata *meta, int handle, void *buffer);
extern int orb_check(int handle, bool *updated);
extern int orb_stat(int handle, uint64_t *time);
extern int orb_exists(const struct orb_metadata *meta, int instance);
extern int orb_group_count(const struct orb_metadata *meta);
extern int orb_priority(int handle, int32_t *priority);
extern int orb_set_interval(int handle, unsigned interval);
extern int orb_get_interval(int handle, unsigned *interval);

static struct orb_metadata *orb_metadata_new(const char *name, uint16_t size, uint16_t size_no_padding, const char *fields) {
	struct orb_metadata init = {name, size, size_no_padding, fields};
	struct orb_metadata *m = malloc(sizeof *m);
	if (m != NULL) {
		memcpy(m, &init, sizeof *m);
	}
	return m;
}

static uintptr_t advertise(const struct orb_metadata *meta, const void *data) {
	return (uintptr_t)orb_advertise(meta, data);
}

static uintptr_t advertise_queue(const struct orb_metadata *meta, const void *data, unsigned int queue_size) {
	return (uintptr_t)orb_advertise_queue(meta, data, queue_size);
}

static uintptr_t advertise_multi(const struct orb_metadata *meta, const void *data, int *instance, int priority) {
	return (uintptr_t)orb_advertise_multi(meta, data, instance, priority);
}

static uintptr_t advertise_multi_queue(const struct orb_metadata *meta, const void *data, int *instance, int priority, unsigned int queue_size) {
	return (uintptr_t)orb_advertise_multi_queue(meta, data, instance, priority, queue_size);
}

static int unadvertise(uintptr_t handle) {
	return orb_unadvertise((orb_advert_t)handle);
}

static int publish(const struct orb_metadata *meta, uintptr_t handle, const void *data) {
	return orb_publish(meta, (orb_advert_t)handle, data);
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/wippyai/orb/uorb"
)

// Transport calls the uORB C API of the PX4 firmware the program is linked
// into. The zero value is ready to use.
type Transport struct {
	metas sync.Map // *uorb.Metadata -> *C.struct_orb_metadata
}

var _ uorb.Transport = (*Transport)(nil)

// New returns a Transport.
func New() *Transport {
	return &Transport{}
}

// cmeta returns the C copy of m. Copies are allocated once per message type
// and never freed, like the static metadata PX4 generates.
func (t *Transport) cmeta(m *uorb.Metadata) *C.struct_orb_metadata {
	if v, ok := t.metas.Load(m); ok {
		return v.(*C.struct_orb_metadata)
	}
	name := C.CBytes(m.NameBytes())
	fields := C.CBytes(m.FieldsBytes())
	cm := C.orb_metadata_new((*C.char)(name), C.uint16_t(m.Size()), C.uint16_t(m.SizeNoPadding()), (*C.char)(fields))
	if cm == nil {
		panic("px4: out of memory allocating metadata")
	}
	if v, loaded := t.metas.LoadOrStore(m, cm); loaded {
		C.free(name)
		C.free(fields)
		C.free(unsafe.Pointer(cm))
		return v.(*C.struct_orb_metadata)
	}
	return cm
}

func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func (t *Transport) Advertise(meta *uorb.Metadata, data []byte) uintptr {
	return uintptr(C.advertise(t.cmeta(meta), ptr(data)))
}

func (t *Transport) AdvertiseQueue(meta *uorb.Metadata, data []byte, queueSize uint32) uintptr {
	return uintptr(C.advertise_queue(t.cmeta(meta), ptr(data), C.uint(queueSize)))
}

func (t *Transport) AdvertiseMulti(meta *uorb.Metadata, data []byte, priority int32) (uintptr, int32) {
	var instance C.int
	h := C.advertise_multi(t.cmeta(meta), ptr(data), &instance, C.int(priority))
	return uintptr(h), int32(instance)
}

func (t *Transport) AdvertiseMultiQueue(meta *uorb.Metadata, data []byte, priority int32, queueSize uint32) (uintptr, int32) {
	var instance C.int
	h := C.advertise_multi_queue(t.cmeta(meta), ptr(data), &instance, C.int(priority), C.uint(queueSize))
	return uintptr(h), int32(instance)
}

func (t *Transport) Unadvertise(handle uintptr) int32 {
	return int32(C.unadvertise(C.uintptr_t(handle)))
}

func (t *Transport) Publish(meta *uorb.Metadata, handle uintptr, data []byte) int32 {
	return int32(C.publish(t.cmeta(meta), C.uintptr_t(handle), ptr(data)))
}

func (t *Transport) Subscribe(meta *uorb.Metadata) int32 {
	return int32(C.orb_subscribe(t.cmeta(meta)))
}

func (t *Transport) SubscribeMulti(meta *uorb.Metadata, instance uint32) int32 {
	return int32(C.orb_subscribe_multi(t.cmeta(meta), C.uint(instance)))
}

func (t *Transport) Unsubscribe(handle int32) int32 {
	return int32(C.orb_unsubscribe(C.int(handle)))
}

func (t *Transport) Copy(meta *uorb.Metadata, handle int32, buf []byte) int32 {
	return int32(C.orb_copy(t.cmeta(meta), C.int(handle), ptr(buf)))
}

func (t *Transport) Check(handle int32) (bool, int32) {
	var updated C.bool
	r := C.orb_check(C.int(handle), &updated)
	return bool(updated), int32(r)
}

func (t *Transport) Stat(handle int32) (uint64, int32) {
	var ts C.uint64_t
	r := C.orb_stat(C.int(handle), &ts)
	return uint64(ts), int32(r)
}

func (t *Transport) Exists(meta *uorb.Metadata, instance int32) int32 {
	return int32(C.orb_exists(t.cmeta(meta), C.int(instance)))
}

func (t *Transport) GroupCount(meta *uorb.Metadata) int32 {
	return int32(C.orb_group_count(t.cmeta(meta)))
}

func (t *Transport) Priority(handle int32) (int32, int32) {
	var prio C.int32_t
	r := C.orb_priority(C.int(handle), &prio)
	return int32(prio), int32(r)
}

func (t *Transport) SetInterval(handle int32, interval uint32) int32 {
	return int32(C.orb_set_interval(C.int(handle), C.uint(interval)))
}

func (t *Transport) GetInterval(handle int32) (uint32, int32) {
	var interval C.uint
	r := C.orb_get_interval(C.int(handle), &interval)
	return uint32(interval), int32(r)
}
