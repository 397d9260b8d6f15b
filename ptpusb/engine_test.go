package ptpusb

import (
	"testing"
	"time"

	"github.com/cuair/go-ptp/ptp"
	"github.com/cuair/go-ptp/ptpcode"
	"github.com/cuair/go-ptp/ptpusb/mocktransport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildResponse(tid uint32, code ptpcode.StandardResponse) []byte {
	return ptp.EmitContainer(ptp.KindResponse, uint16(code), tid, nil)
}

func TestEngineCommandGetDeviceInfoEmitsLiteralContainer(t *testing.T) {
	tr := mocktransport.New(64)
	tr.QueueRead(buildResponse(0, ptpcode.RespOk), nil)

	eng := NewEngine(tr, DefaultConfig())
	_, err := eng.Command(ptpcode.OperationStandard(ptpcode.GetDeviceInfo), []uint32{0, 0, 0}, nil, time.Second)
	require.NoError(t, err)

	require.Len(t, tr.Writes, 1)
	want := []byte{
		0x18, 0x00, 0x00, 0x00, // length 24
		0x01, 0x00, // kind = Command
		0x01, 0x10, // code = GetDeviceInfo
		0x00, 0x00, 0x00, 0x00, // tid = 0
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, tr.Writes[0])
}

func TestEngineCommandReturnsDataPayload(t *testing.T) {
	tr := mocktransport.New(64)
	tr.QueueRead(ptp.EmitContainer(ptp.KindData, uint16(ptpcode.GetDeviceInfo), 0, []byte("hello")), nil)
	tr.QueueRead(buildResponse(0, ptpcode.RespOk), nil)

	eng := NewEngine(tr, DefaultConfig())
	data, err := eng.Command(ptpcode.OperationStandard(ptpcode.GetDeviceInfo), nil, nil, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestEngineCommandNonOkResponseFails(t *testing.T) {
	tr := mocktransport.New(64)
	tr.QueueRead(buildResponse(0, ptpcode.RespGeneralError), nil)

	eng := NewEngine(tr, DefaultConfig())
	_, err := eng.Command(ptpcode.OperationStandard(ptpcode.GetDeviceInfo), nil, nil, time.Second)
	require.Error(t, err)
	code, ok := IsResponse(err)
	require.True(t, ok)
	assert.False(t, code.IsOk())
}

func TestEngineCommandMismatchedTIDFails(t *testing.T) {
	tr := mocktransport.New(64)
	tr.QueueRead(buildResponse(6, ptpcode.RespOk), nil) // tid=6, engine issued tid=0

	eng := NewEngine(tr, DefaultConfig())
	_, err := eng.Command(ptpcode.OperationStandard(ptpcode.GetDeviceInfo), nil, nil, time.Second)
	require.Error(t, err)
	assert.True(t, ptp.IsMalformed(err))
}

func TestEngineWriteChunking(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChunkSize = 64 // small, so CHUNK_SIZE-12 = 52

	t.Run("fits in one chunk", func(t *testing.T) {
		tr := mocktransport.New(64)
		tr.QueueRead(buildResponse(0, ptpcode.RespOk), nil)
		eng := NewEngine(tr, cfg)
		payload := make([]byte, 52) // CHUNK_SIZE - HeaderSize
		err := eng.writeTxnPhase(ptp.KindData, uint16(ptpcode.SendObject), 0, payload, time.Second)
		require.NoError(t, err)
		assert.Len(t, tr.Writes, 1)
	})

	t.Run("spans two chunks", func(t *testing.T) {
		tr := mocktransport.New(64)
		eng := NewEngine(tr, cfg)
		payload := make([]byte, 53) // CHUNK_SIZE - HeaderSize + 1
		err := eng.writeTxnPhase(ptp.KindData, uint16(ptpcode.SendObject), 0, payload, time.Second)
		require.NoError(t, err)
		assert.Len(t, tr.Writes, 2)
		assert.Len(t, tr.Writes[0], 64) // header + 52 bytes payload
		assert.Len(t, tr.Writes[1], 1)  // trailing byte
	})
}

func TestEngineReadDrainsTrailingZLP(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialReadBufferSize = 16 // header(12) + 4 bytes payload exactly fills it

	tr := mocktransport.New(64)
	container := ptp.EmitContainer(ptp.KindData, uint16(ptpcode.GetDeviceInfo), 0, []byte{1, 2, 3, 4})
	require.Len(t, container, 16)
	tr.QueueRead(container, nil)
	tr.QueueRead(nil, nil) // the drained ZLP: zero-length read

	eng := NewEngine(tr, cfg)
	header, payload, err := eng.readTxnPhase(time.Second)
	require.NoError(t, err)
	assert.Equal(t, ptp.KindData, header.Kind)
	assert.Equal(t, []byte{1, 2, 3, 4}, payload)
}

func TestEngineCommandTimeoutBecomesErrTimeout(t *testing.T) {
	tr := mocktransport.New(64)
	tr.QueueRead(nil, ErrTransportTimeout)

	eng := NewEngine(tr, DefaultConfig())
	// The write phase succeeds (mock never fails writes); failure surfaces
	// on the read phase.
	_, err := eng.Command(ptpcode.OperationStandard(ptpcode.GetDeviceInfo), nil, nil, time.Second)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}
