package module

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/orb/transport/local"
	"github.com/wippyai/orb/uorb"
)

type ping struct {
	Seq uint64
}

var pingMetadata = sync.OnceValue(func() *uorb.Metadata {
	return uorb.MustMetadata[ping]("ping", 8, 8, "uint64_t seq;")
})

func (ping) Metadata() *uorb.Metadata { return pingMetadata() }

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestRun_Status(t *testing.T) {
	logger, _ := observed()
	var gotArgs []string
	var gotName string

	status := Run("demo", []string{"demo", "start", "-v"}, func(ctx *Context) int {
		gotArgs = ctx.Args()
		gotName = ctx.Name()
		return 7
	}, WithLogger(logger))

	assert.Equal(t, 7, status)
	assert.Equal(t, "demo", gotName)
	assert.Equal(t, []string{"demo", "start", "-v"}, gotArgs)
}

func TestRun_Panic(t *testing.T) {
	logger, logs := observed()

	status := Run("demo", []string{"demo"}, func(ctx *Context) int {
		ctx.SetThreadName("worker")
		panic("Bye!")
	}, WithLogger(logger))

	require.Equal(t, StatusPanic, status)

	entries := logs.FilterField(zap.Bool("panic", true)).All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, zapcore.ErrorLevel, e.Level)
	assert.Regexp(t, `^thread 'worker' panicked at 'Bye!', `, e.Message)

	fields := e.ContextMap()
	assert.Equal(t, "demo", fields["module"])
	assert.Equal(t, "worker", fields["thread"])
	assert.Contains(t, fields["location"], "module_test.go:", "location should be the panicking test line")
}

func TestRun_RuntimePanic(t *testing.T) {
	logger, logs := observed()

	status := Run("demo", nil, func(ctx *Context) int {
		var m map[string]int
		m["x"] = 1
		return 0
	}, WithLogger(logger))

	require.Equal(t, StatusPanic, status)
	entries := logs.FilterField(zap.Bool("panic", true)).All()
	require.Len(t, entries, 1)
	assert.NotRegexp(t, `^thread`, entries[0].Message, "unnamed goroutine must not be labeled")
	assert.Contains(t, entries[0].Message, "assignment to entry in nil map")
}

func TestRun_InvalidUTF8(t *testing.T) {
	logger, logs := observed()
	called := false

	status := Run("demo", []string{"demo", "\xff\xfe"}, func(ctx *Context) int {
		called = true
		return 0
	}, WithLogger(logger))

	assert.Equal(t, StatusPanic, status)
	assert.False(t, called, "body must not run with invalid arguments")
	assert.Equal(t, 1, logs.FilterMessageSnippet("invalid UTF-8 in arguments").Len())
}

func TestRun_PrivateBus(t *testing.T) {
	logger, logs := observed()
	var stable bool
	var publishErr error

	status := Run("demo", nil, func(ctx *Context) int {
		tr := ctx.Transport()
		stable = tr == ctx.Transport()
		pub := uorb.Advertise[ping](tr)
		publishErr = pub.Publish(&ping{Seq: 1})
		// left open on purpose
		return 0
	}, WithLogger(logger))

	assert.Zero(t, status)
	assert.True(t, stable, "transport must be stable")
	require.NoError(t, publishErr)
	assert.Equal(t, 1, logs.FilterMessage("module exited with open handles").Len(),
		"the leaked publication should be reported")
}

func TestRun_SharedTransport(t *testing.T) {
	bus := local.New()
	logger, _ := observed()

	var advertiseErr error
	Run("producer", nil, func(ctx *Context) int {
		// the publication outlives the module
		_, advertiseErr = uorb.AdvertiseNow(ctx.Transport(), &ping{Seq: 42})
		return 0
	}, WithTransport(bus), WithLogger(logger))
	require.NoError(t, advertiseErr)

	var (
		got    ping
		getErr error
	)
	status := Run("consumer", nil, func(ctx *Context) int {
		sub, err := uorb.Subscribe[ping](ctx.Transport())
		if err != nil {
			getErr = err
			return 1
		}
		defer sub.Close()
		got, getErr = sub.Get()
		return 0
	}, WithTransport(bus), WithLogger(logger))

	require.Zero(t, status)
	require.NoError(t, getErr)
	assert.Equal(t, uint64(42), got.Seq)
	assert.True(t, uorb.Exists[ping](bus, 0), "a supplied transport must not be closed by Run")
}

func TestInfoRaw(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := observed()

	Run("demo", nil, func(ctx *Context) int {
		ctx.InfoRaw("Hello %s!\n", "World")
		ctx.InfoRaw("no args\n")
		return 0
	}, WithRawOutput(&buf), WithLogger(logger))

	assert.Equal(t, "Hello World!\nno args\n", buf.String())

	buf.Reset()
	InfoRaw(&buf, "%d%%", 5)
	assert.Equal(t, "5%", buf.String())
}
