// Package uorb provides typed publish and subscribe handles over a uORB-style
// message bus.
//
// Message types are plain Go structs generated by cmd/msgc from .msg schemas.
// Each carries a Metadata describing its topic name and exact memory layout;
// the bytes of the struct are what travels over the bus.
//
// # Publishing
//
// Advertise returns a Publisher without contacting the transport. The topic
// is advertised by the first Publish, carrying that first sample:
//
//	pub := uorb.Advertise[msgs.DebugValue](bus)
//	defer pub.Close()
//	if err := pub.Publish(&msgs.DebugValue{Value: 1}); err != nil {
//		return err
//	}
//
// WithPriority requests a multi-instance advertisement; the instance picked
// by the transport is available from Publisher.Instance afterwards.
//
// # Subscribing
//
//	sub, err := uorb.Subscribe[msgs.DebugValue](bus)
//	if err != nil {
//		return err
//	}
//	defer sub.Close()
//	v, err := sub.Get()
//
// # Transports
//
// Transport abstracts the bus. transport/local is an in-process
// implementation; transport/px4 binds the PX4 C API when built with the
// px4 tag. Handles are not safe for concurrent use; transports are.
package uorb
