// Package orb is a fixed-layout message bus runtime and schema compiler.
//
// Applications exchange binary messages whose memory layout is fixed at
// build time and compatible with the C ABI, so the same bytes can cross
// into a uORB-based flight stack unchanged.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	orb/
//	├── msg/               Schema parser, layout compiler and Go code generator
//	├── uorb/              Message metadata, Transport contract, Publisher, Subscription
//	│   └── uorbtest/      gomock double of the Transport contract
//	├── transport/
//	│   ├── local/         In-process bus
//	│   └── px4/           cgo binding to the PX4 C API (px4 build tag)
//	├── module/            Module entry point: panic boundary, logging, WASM bodies
//	├── errors/            Structured error types
//	└── cmd/msgc/          Schema compiler CLI
//
// # Quick Start
//
// Describe a message in a schema file:
//
//	# msgs/debug_value.msg
//	uint64 timestamp
//	float32 value
//	int8 ind
//
// Generate the Go type:
//
//	//go:generate go run github.com/wippyai/orb/cmd/msgc -pkg msgs msgs/debug_value.msg
//
// Publish and subscribe from a module:
//
//	module.Main("debugvalue", func(ctx *module.Context) int {
//		pub := uorb.Advertise[msgs.DebugValue](ctx.Transport())
//		defer pub.Close()
//		if err := pub.Publish(&msgs.DebugValue{Value: 1}); err != nil {
//			return 1
//		}
//
//		sub, err := uorb.Subscribe[msgs.DebugValue](ctx.Transport())
//		if err != nil {
//			return 1
//		}
//		defer sub.Close()
//		v, _ := sub.Get()
//		ctx.Logger().Info("read", zap.Float32("value", v.Value))
//		return 0
//	})
//
// # Layout Compatibility
//
// Field order, padding and the descriptor string are a wire contract with
// recorded data and with C code compiled from the same schemas. The layout
// rules are documented in package msg and must not change.
package orb
