package dump_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sounder/dgram/dgram"
	"github.com/sounder/dgram/dgram/dump"
	"github.com/sounder/dgram/dgramtestutil"
)

func openTestHandle(t *testing.T, format dgram.Format, data []byte) *dgram.Handle {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datagrams.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	h, err := dgram.Open(path, format)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestKMADumpsTaggedVariant(t *testing.T) {
	// 6-byte common part (NumBytesCmnPart=6), then the install text.
	body := append([]byte{6, 0, 0, 0, 0, 0}, "install params"...)
	frame := dgramtestutil.KMAFrame("#IIP", 0, 40, 1, 1_700_000_000, 0, body)
	h := openTestHandle(t, dgram.KMA, frame)

	ok, err := h.Read()
	if err != nil || !ok {
		t.Fatalf("Read() = %v, %v", ok, err)
	}
	out := dump.KMA(h.KMA())
	if out == "" {
		t.Fatal("KMA dump is empty")
	}
	if strings.Contains(out, "<nil>") {
		t.Fatalf("KMA dump reported nil for a decoded datagram: %s", out)
	}
}

func TestEMXDumpsTaggedVariant(t *testing.T) {
	frame := dgramtestutil.EMXFrame('I', 0, 40, 1, 1_700_000_000, 0, []byte("install params"))
	h := openTestHandle(t, dgram.EMX, frame)

	ok, err := h.Read()
	if err != nil || !ok {
		t.Fatalf("Read() = %v, %v", ok, err)
	}
	out := dump.EMX(h.EMX())
	if out == "" {
		t.Fatal("EMX dump is empty")
	}
	if strings.Contains(out, "<nil>") {
		t.Fatalf("EMX dump reported nil for a decoded datagram: %s", out)
	}
}

func TestKMADumpNilIsLiteralNil(t *testing.T) {
	if got := dump.KMA(nil); got != "<nil>" {
		t.Fatalf("dump.KMA(nil) = %q, want <nil>", got)
	}
}

func TestEMXDumpNilIsLiteralNil(t *testing.T) {
	if got := dump.EMX(nil); got != "<nil>" {
		t.Fatalf("dump.EMX(nil) = %q, want <nil>", got)
	}
}
