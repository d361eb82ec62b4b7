package module

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	"github.com/wippyai/orb/errors"
)

// WasmConfig holds configuration for WASM-hosted module bodies.
type WasmConfig struct {
	// Stderr receives the guest's standard error. Defaults to os.Stderr.
	Stderr io.Writer
	// MemoryLimitPages caps guest memory, in 64KiB pages. 0 keeps the default.
	MemoryLimitPages uint32
}

// WasmBody returns a Body that runs bin, a WASI command module, with the
// module's arguments. Guest output goes to the module's raw writer.
//
// The guest's exit code becomes the module status. A trap is handled like
// a panic in a Go body and yields StatusPanic.
func WasmBody(bin []byte) Body {
	return WasmBodyWithConfig(bin, nil)
}

// WasmBodyWithConfig is WasmBody with custom configuration.
func WasmBodyWithConfig(bin []byte, cfg *WasmConfig) Body {
	return func(c *Context) int {
		ctx := c.Context()

		runtimeCfg := wazero.NewRuntimeConfig().WithCloseOnContextDone(true)
		stderr := io.Writer(os.Stderr)
		if cfg != nil {
			if cfg.MemoryLimitPages > 0 {
				runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
			}
			if cfg.Stderr != nil {
				stderr = cfg.Stderr
			}
		}

		r := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
		defer r.Close(ctx)

		wasi_snapshot_preview1.MustInstantiate(ctx, r)

		modConfig := wazero.NewModuleConfig().
			WithName(c.Name()).
			WithArgs(c.Args()...).
			WithStdout(c.raw).
			WithStderr(stderr)

		c.Logger().Debug("starting wasm guest", zap.Int("size", len(bin)))

		mod, err := r.InstantiateWithConfig(ctx, bin, modConfig)
		if err == nil {
			_ = mod.Close(ctx)
			return 0
		}

		var exitErr *sys.ExitError
		if stderrors.As(err, &exitErr) {
			return int(int32(exitErr.ExitCode()))
		}
		panic(errors.Wrap(errors.PhaseModule, errors.KindPanic, err, "wasm guest failed"))
	}
}
