// Package module is the entry point of a bus module.
//
// Run executes a module body inside a failure boundary: a panic is logged
// with the module name, the goroutine label set through SetThreadName, the
// panic value and the location of the panicking frame, and Run returns
// StatusPanic instead of crashing the host process.
//
//	func main() {
//		module.Main("debug_value", func(ctx *module.Context) int {
//			ctx.Logger().Info("Hello World!")
//			ctx.InfoRaw("raw output\n")
//			return 0
//		})
//	}
//
// # Logging
//
// Unless WithLogger is given, the module logger is built from the
// environment: ORB_LOG_LEVEL selects the level (debug, info, warn, error)
// and ORB_LOG_FORMAT the encoding (console or json). InfoRaw bypasses the
// logger and writes undecorated text.
//
// # Transport
//
// Context.Transport returns the bus given with WithTransport, or a private
// in-process bus that Run closes when the body returns. Handles the body
// leaves open on a private bus are logged as warnings.
//
// # WASM Bodies
//
// WasmBody runs a WASI command module as the body, with the module's
// arguments. A guest trap is reported like a panic.
package module
