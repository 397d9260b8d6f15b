package ptpusb

import (
	"testing"
	"time"

	"github.com/cuair/go-ptp/ptp"
	"github.com/cuair/go-ptp/ptpcode"
	"github.com/cuair/go-ptp/ptpusb/mocktransport"
	"github.com/stretchr/testify/require"
)

func TestSessionGetStorageIDs(t *testing.T) {
	tr := mocktransport.New(64)
	w := ptp.NewWriter()
	w.U32Vector([]uint32{1, 2})
	tr.QueueRead(ptp.EmitContainer(ptp.KindData, uint16(ptpcode.GetStorageIDs), 0, w.Bytes()), nil)
	tr.QueueRead(ptp.EmitContainer(ptp.KindResponse, uint16(ptpcode.RespOk), 0, nil), nil)

	s := NewSession(tr, DefaultConfig(), time.Second)
	ids, err := s.GetStorageIDs()
	require.NoError(t, err)
	require.Equal(t, []ptp.StorageId{1, 2}, ids)
}

func TestSessionOpenCloseSession(t *testing.T) {
	tr := mocktransport.New(64)
	tr.QueueRead(ptp.EmitContainer(ptp.KindResponse, uint16(ptpcode.RespOk), 0, nil), nil)
	tr.QueueRead(ptp.EmitContainer(ptp.KindResponse, uint16(ptpcode.RespOk), 1, nil), nil)

	s := NewSession(tr, DefaultConfig(), time.Second)
	require.NoError(t, s.OpenSession(3))
	require.NoError(t, s.CloseSession())
}

func TestSessionSendObjectInfoReturnsNewHandle(t *testing.T) {
	tr := mocktransport.New(64)
	w := ptp.NewWriter()
	w.U32(1) // storage id echoed back
	w.U32(uint32(ptp.ObjectHandleRoot()))
	w.U32(42) // new handle
	tr.QueueRead(ptp.EmitContainer(ptp.KindData, uint16(ptpcode.SendObjectInfo), 0, w.Bytes()), nil)
	tr.QueueRead(ptp.EmitContainer(ptp.KindResponse, uint16(ptpcode.RespOk), 0, nil), nil)

	s := NewSession(tr, DefaultConfig(), time.Second)
	handle, err := s.SendObjectInfo(1, ptp.ObjectHandleRoot(), ptp.ObjectInfo{Filename: "a.jpg"})
	require.NoError(t, err)
	require.Equal(t, ptp.ObjectHandle(42), handle)
}

func TestSessionDisconnectReleasesInterface(t *testing.T) {
	tr := mocktransport.New(64)
	tr.QueueRead(ptp.EmitContainer(ptp.KindResponse, uint16(ptpcode.RespOk), 0, nil), nil)

	s := NewSession(tr, DefaultConfig(), time.Second)
	require.NoError(t, s.Disconnect())
	require.True(t, tr.ReleaseInterfaceCalled)
}
