// Package local implements uorb.Transport in process.
//
// A Bus keeps, for every topic, up to MaxInstances instances holding only
// their latest sample. Subscribers see a sample as updated until they copy
// it. There is no queuing: the queue depth requested by an advertisement is
// recorded and checked against the configured limit, nothing more.
//
//	bus := local.New(local.WithRegisterer(prometheus.DefaultRegisterer))
//	defer bus.Close()
//
//	pub := uorb.Advertise[msgs.DebugValue](bus)
//	defer pub.Close()
//
// Status codes follow the C API: 0 on success, negated errno values on
// failure (-EINVAL for unknown handles, -ENODATA when nothing was published
// yet).
package local
