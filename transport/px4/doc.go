// Package px4 binds uorb.Transport to the uORB C API of PX4.
//
// The binding is compiled only with the px4 build tag and resolves the
// orb_* symbols at link time, so it is meant for programs built with
// -buildmode=c-archive and linked into a PX4 firmware image:
//
//	go build -tags px4 -buildmode=c-archive -o libmodule.a ./cmd/mymodule
//
// Without the tag the package is empty.
package px4
