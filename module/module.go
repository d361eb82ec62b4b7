package module

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/orb/errors"
	"github.com/wippyai/orb/transport/local"
	"github.com/wippyai/orb/uorb"
)

// StatusPanic is the status Run returns when the body panics.
const StatusPanic = -1

// Body is the main function of a module. It returns the module's status.
type Body func(ctx *Context) int

// Context is what a running module body sees.
type Context struct {
	ctx    context.Context
	tr     uorb.Transport
	raw    io.Writer
	logger *zap.Logger
	bus    *local.Bus // set when the module owns its transport
	name   string
	thread string
	args   []string
}

// Name returns the module name.
func (c *Context) Name() string { return c.name }

// Args returns the module arguments, program name first.
func (c *Context) Args() []string { return c.args }

// Logger returns the module logger.
func (c *Context) Logger() *zap.Logger { return c.logger }

// Context returns the context the module runs under.
func (c *Context) Context() context.Context { return c.ctx }

// Transport returns the bus the module publishes and subscribes on.
// Unless one was supplied with WithTransport, it is a private in-process bus
// that is closed when the body returns.
func (c *Context) Transport() uorb.Transport {
	if c.tr == nil {
		c.bus = local.New(local.WithLogger(c.logger.Named("bus")))
		c.tr = c.bus
	}
	return c.tr
}

// SetThreadName labels the running goroutine in panic reports.
func (c *Context) SetThreadName(name string) { c.thread = name }

// InfoRaw writes undecorated output to the module's raw writer.
func (c *Context) InfoRaw(format string, args ...any) {
	InfoRaw(c.raw, format, args...)
}

// InfoRaw writes formatted output to w without any log decoration.
func InfoRaw(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// Option configures Run.
type Option func(*Context)

// WithTransport runs the module against tr instead of a private bus.
func WithTransport(tr uorb.Transport) Option {
	return func(c *Context) {
		c.tr = tr
	}
}

// WithLogger replaces the logger built from the environment.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		c.logger = l
	}
}

// WithRawOutput sets the writer InfoRaw output goes to. Defaults to stdout.
func WithRawOutput(w io.Writer) Option {
	return func(c *Context) {
		c.raw = w
	}
}

// WithContext sets the context the module runs under.
func WithContext(ctx context.Context) Option {
	return func(c *Context) {
		c.ctx = ctx
	}
}

// Run runs body as module name. A panic in body, including one caused by
// arguments that are not valid UTF-8, is logged and turned into StatusPanic.
func Run(name string, args []string, body Body, opts ...Option) int {
	c := &Context{
		ctx:  context.Background(),
		raw:  os.Stdout,
		name: name,
		args: args,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = envLogger(name)
	}
	defer func() { _ = c.logger.Sync() }()
	defer c.release()

	return c.protect(body)
}

// Main runs body with the process arguments and exits with its status.
func Main(name string, body Body, opts ...Option) {
	os.Exit(Run(name, os.Args, body, opts...))
}

func envLogger(name string) *zap.Logger {
	cfg, cfgErr := LoadConfig()
	l, err := cfg.NewLogger(name)
	if err != nil {
		return zap.NewNop()
	}
	if cfgErr != nil {
		l.Warn("invalid logging configuration, using defaults", zap.Error(cfgErr))
	}
	return l
}

func (c *Context) protect(body Body) (status int) {
	defer func() {
		if r := recover(); r != nil {
			c.reportPanic(r, panicLocation())
			status = StatusPanic
		}
	}()

	for _, arg := range c.args {
		if !utf8.ValidString(arg) {
			panic("invalid UTF-8 in arguments")
		}
	}
	return body(c)
}

func (c *Context) reportPanic(r any, location string) {
	var msg strings.Builder
	if c.thread != "" {
		fmt.Fprintf(&msg, "thread '%s' ", c.thread)
	}
	fmt.Fprintf(&msg, "panicked at '%v'", r)
	if location != "" {
		msg.WriteString(", ")
		msg.WriteString(location)
	}

	c.logger.Error(msg.String(),
		zap.Bool("panic", true),
		zap.String("module", c.name),
		zap.String("thread", c.thread),
		zap.String("location", location),
		zap.Error(errors.Panic(c.name, r, location)))
}

// release closes the private bus. Handles the body left open are reported.
func (c *Context) release() {
	if c.bus == nil {
		return
	}
	if err := c.bus.Close(); err != nil {
		c.logger.Warn("module exited with open handles", zap.Error(err))
	}
}

// panicLocation returns file:line of the frame that panicked. It must be
// called from the deferred function that recovered.
func panicLocation() string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	panicking := false
	for {
		f, more := frames.Next()
		if panicking && !strings.HasPrefix(f.Function, "runtime.") {
			return zapcore.EntryCaller{Defined: true, PC: f.PC, File: f.File, Line: f.Line}.TrimmedPath()
		}
		if f.Function == "runtime.gopanic" {
			panicking = true
		}
		if !more {
			return ""
		}
	}
}
