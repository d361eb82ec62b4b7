package uorb_test

import (
	"encoding/binary"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wippyai/orb/uorb"
	"github.com/wippyai/orb/uorb/uorbtest"
)

func TestSubscribeRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := uorbtest.NewMockTransport(ctrl)

	tr.EXPECT().Subscribe(gomock.Any()).Return(int32(-2))
	tr.EXPECT().SubscribeMulti(gomock.Any(), uint32(3)).Return(int32(-22))

	sub, err := uorb.Subscribe[testMessage](tr)
	assert.Nil(t, sub)
	var terr *uorb.TransportError
	require.True(t, stderrors.As(err, &terr))
	assert.Equal(t, "subscribe", terr.Op)
	assert.Equal(t, int32(-2), terr.Code)

	sub, err = uorb.SubscribeMulti[testMessage](tr, 3)
	assert.Nil(t, sub)
	require.True(t, stderrors.As(err, &terr))
	assert.Equal(t, "subscribe_multi", terr.Op)
}

func TestSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := uorbtest.NewMockTransport(ctrl)
	meta := testMessage{}.Metadata()

	tr.EXPECT().SubscribeMulti(meta, uint32(1)).Return(int32(4))
	tr.EXPECT().Copy(meta, int32(4), gomock.Len(40)).DoAndReturn(func(_ *uorb.Metadata, _ int32, buf []byte) int32 {
		binary.NativeEndian.PutUint64(buf, 1234)
		buf[35] = 'x'
		return 0
	})
	tr.EXPECT().Check(int32(4)).Return(true, int32(0))
	tr.EXPECT().Stat(int32(4)).Return(uint64(99), int32(0))
	tr.EXPECT().Priority(int32(4)).Return(uorb.PrioHigh, int32(0))
	tr.EXPECT().SetInterval(int32(4), uint32(20)).Return(int32(0))
	tr.EXPECT().GetInterval(int32(4)).Return(uint32(20), int32(0))
	tr.EXPECT().Unsubscribe(int32(4)).Return(int32(0)).Times(1)

	sub, err := uorb.SubscribeMulti[testMessage](tr, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(4), sub.RawHandle())

	v, err := sub.Get()
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), v.Value)
	assert.Equal(t, byte('x'), v.Ch)

	updated, err := sub.Check()
	require.NoError(t, err)
	assert.True(t, updated)

	ts, err := sub.Stat()
	require.NoError(t, err)
	assert.Equal(t, uint64(99), ts)

	prio, err := sub.Priority()
	require.NoError(t, err)
	assert.Equal(t, uorb.PrioHigh, prio)

	require.NoError(t, sub.SetInterval(20))
	interval, err := sub.Interval()
	require.NoError(t, err)
	assert.Equal(t, uint32(20), interval)

	sub.Close()
	sub.Close()

	_, err = sub.Get()
	assert.ErrorIs(t, err, uorb.ErrClosed)
	_, err = sub.Check()
	assert.ErrorIs(t, err, uorb.ErrClosed)
}

func TestSubscriptionErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := uorbtest.NewMockTransport(ctrl)

	tr.EXPECT().Subscribe(gomock.Any()).Return(int32(0))
	tr.EXPECT().Copy(gomock.Any(), int32(0), gomock.Any()).Return(int32(-61))
	tr.EXPECT().Check(int32(0)).Return(false, int32(-1))
	tr.EXPECT().Stat(int32(0)).Return(uint64(0), int32(-1))
	tr.EXPECT().Priority(int32(0)).Return(int32(0), int32(-1))
	tr.EXPECT().SetInterval(int32(0), uint32(5)).Return(int32(-1))
	tr.EXPECT().GetInterval(int32(0)).Return(uint32(0), int32(-1))
	tr.EXPECT().Unsubscribe(int32(0)).Return(int32(-1))

	sub, err := uorb.Subscribe[testMessage](tr)
	require.NoError(t, err)
	defer sub.Close()

	var v testMessage
	err = sub.Copy(&v)
	var terr *uorb.TransportError
	require.True(t, stderrors.As(err, &terr))
	assert.Equal(t, "copy", terr.Op)
	assert.Equal(t, int32(-61), terr.Code)

	_, err = sub.Check()
	assert.Error(t, err)
	_, err = sub.Stat()
	assert.Error(t, err)
	_, err = sub.Priority()
	assert.Error(t, err)
	assert.Error(t, sub.SetInterval(5))
	_, err = sub.Interval()
	assert.Error(t, err)
}

func TestSubscriptionCopyNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := uorbtest.NewMockTransport(ctrl)

	tr.EXPECT().Subscribe(gomock.Any()).Return(int32(2))
	tr.EXPECT().Unsubscribe(int32(2)).Return(int32(0))

	sub, err := uorb.Subscribe[testMessage](tr)
	require.NoError(t, err)
	defer sub.Close()

	assert.PanicsWithError(t, "[layout] invalid_input: test_message: nil message passed to copy", func() {
		_ = sub.Copy(nil)
	})
}

func TestExistsAndGroupCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := uorbtest.NewMockTransport(ctrl)
	meta := testMessage{}.Metadata()

	tr.EXPECT().Exists(meta, int32(0)).Return(int32(0))
	tr.EXPECT().Exists(meta, int32(1)).Return(int32(-1))
	tr.EXPECT().GroupCount(meta).Return(int32(2))

	assert.True(t, uorb.Exists[testMessage](tr, 0))
	assert.False(t, uorb.Exists[testMessage](tr, 1))
	assert.Equal(t, uint32(2), uorb.GroupCount[testMessage](tr))

	tr.EXPECT().GroupCount(meta).Return(int32(-1))
	assert.Zero(t, uorb.GroupCount[testMessage](tr))
}
