package dgram

import (
	"testing"

	"github.com/sounder/dgram/dgramtestutil"
	"github.com/sounder/dgram/kma"
)

func newTestHandle(format Format, data []byte) *Handle {
	return &Handle{src: dgramtestutil.NewMemSource(data), format: format}
}

func TestReadKMAStream(t *testing.T) {
	iip := dgramtestutil.KMAFrame("#IIP", 0, 0, 0, 0, 0, []byte{6, 0, 0, 0, 0, 0, 'h', 'i'})
	data := append([]byte{}, iip...)

	h := newTestHandle(KMA, data)
	ok, err := h.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !ok {
		t.Fatal("Read returned false for a well-formed stream")
	}
	if h.LastError() != None {
		t.Errorf("LastError() = %v, want None", h.LastError())
	}
	if dgm := h.KMA(); dgm.Kind != kma.KindIIP {
		t.Errorf("Kind = %v, want KindIIP", dgm.Kind)
	}

	ok, err = h.Read()
	if err != nil {
		t.Fatalf("second Read should hit clean EOF, got error: %v", err)
	}
	if ok {
		t.Fatal("second Read should report false at EOF")
	}
	if h.LastError() != None {
		t.Errorf("LastError() after EOF = %v, want None", h.LastError())
	}
}

func TestReadKMATruncatedFrameIsBadData(t *testing.T) {
	iip := dgramtestutil.KMAFrame("#IIP", 0, 0, 0, 0, 0, []byte{6, 0, 0, 0, 0, 0})
	truncated := iip[:len(iip)-3]

	h := newTestHandle(KMA, truncated)
	ok, err := h.Read()
	if ok || err == nil {
		t.Fatal("Read should fail on a truncated frame")
	}
	if h.LastError() != BadData {
		t.Errorf("LastError() = %v, want BadData", h.LastError())
	}
}

func TestReadKMASkipsIgnoredSoundings(t *testing.T) {
	mrzBody := make([]byte, 6)
	mrzBody[0], mrzBody[2], mrzBody[4] = 6, 1, 1 // partition 1/1, NumBytesCmnPart=6
	mrz := dgramtestutil.KMAFrame("#MRZ", 0, 0, 0, 0, 0, mrzBody)

	iip := dgramtestutil.KMAFrame("#IIP", 0, 0, 0, 0, 0, []byte{6, 0, 0, 0, 0, 0})

	data := append(append([]byte{}, mrz...), iip...)
	h := newTestHandle(KMA, data)
	h.SetIgnoreSoundings(true)

	ok, err := h.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !ok {
		t.Fatal("Read should surface the IIP after skipping the MRZ")
	}
	if dgm := h.KMA(); dgm.Kind != kma.KindIIP {
		t.Errorf("Kind = %v, want KindIIP (MRZ should have been skipped)", dgm.Kind)
	}
	if h.Stats().Skipped != 1 {
		t.Errorf("Stats().Skipped = %d, want 1", h.Stats().Skipped)
	}
}

func TestReadEMXStream(t *testing.T) {
	frame := dgramtestutil.EMXFrame('D', 0, 0, 0, 0, 0, []byte{9, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	h := newTestHandle(EMX, frame)

	ok, err := h.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !ok {
		t.Fatal("Read returned false for a well-formed EMX stream")
	}
	dgm := h.EMX()
	if _, isDepth := dgm.Depth(); !isDepth {
		t.Error("expected a Depth datagram")
	}
}

func TestReadEMXBadChecksum(t *testing.T) {
	frame := dgramtestutil.EMXFrame('D', 0, 0, 0, 0, 0, []byte{9, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	frame[len(frame)-1]++ // corrupt the checksum byte

	h := newTestHandle(EMX, frame)
	ok, err := h.Read()
	if ok || err == nil {
		t.Fatal("Read should reject a bad checksum")
	}
	if h.LastError() != BadData {
		t.Errorf("LastError() = %v, want BadData", h.LastError())
	}
}

func TestReadEMXIgnoreChecksumToggle(t *testing.T) {
	frame := dgramtestutil.EMXFrame('D', 0, 0, 0, 0, 0, []byte{9, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	frame[len(frame)-1]++

	h := newTestHandle(EMX, frame)
	h.SetIgnoreChecksum(true)
	ok, err := h.Read()
	if err != nil {
		t.Fatalf("Read should succeed with checksum verification disabled: %v", err)
	}
	if !ok {
		t.Fatal("Read returned false with checksum verification disabled")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	h := newTestHandle(KMA, nil)
	if err := h.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got: %v", err)
	}
}
