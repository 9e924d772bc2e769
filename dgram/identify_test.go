package dgram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sounder/dgram/dgramtestutil"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datagrams.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestIdentifyKMAPositive(t *testing.T) {
	frame := dgramtestutil.KMAFrame("#IIP", 0, 40, 1, 1_700_000_000, 0, []byte("install params"))
	path := writeTempFile(t, frame)

	got, err := Identify(path, KMA)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got != Positive {
		t.Fatalf("Identify = %v, want Positive", got)
	}
}

func TestIdentifyKMANegativeOnEMXData(t *testing.T) {
	frame := dgramtestutil.EMXFrame('I', 0, 40, 1, 1_700_000_000, 0, []byte("install params"))
	path := writeTempFile(t, frame)

	got, err := Identify(path, KMA)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got != Negative {
		t.Fatalf("Identify = %v, want Negative", got)
	}
}

func TestIdentifyEMXPositive(t *testing.T) {
	frame := dgramtestutil.EMXFrame('I', 0, 40, 1, 1_700_000_000, 0, []byte("install params"))
	path := writeTempFile(t, frame)

	got, err := Identify(path, EMX)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got != Positive {
		t.Fatalf("Identify = %v, want Positive", got)
	}
}

func TestIdentifyEMXNegativeOnKMAData(t *testing.T) {
	frame := dgramtestutil.KMAFrame("#IIP", 0, 40, 1, 1_700_000_000, 0, []byte("install params"))
	path := writeTempFile(t, frame)

	got, err := Identify(path, EMX)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got != Negative {
		t.Fatalf("Identify = %v, want Negative", got)
	}
}

func TestIdentifyEmptyFileIsNegative(t *testing.T) {
	path := writeTempFile(t, nil)

	got, err := Identify(path, KMA)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got != Negative {
		t.Fatalf("Identify = %v, want Negative on empty file", got)
	}
}

func TestIdentifyTruncatedHeaderIsError(t *testing.T) {
	frame := dgramtestutil.KMAFrame("#IIP", 0, 40, 1, 1_700_000_000, 0, []byte("install params"))
	path := writeTempFile(t, frame[:10])

	got, err := Identify(path, KMA)
	if err == nil {
		t.Fatal("Identify on a partial header: want error, got nil")
	}
	if got != Negative {
		t.Fatalf("Identify = %v, want Negative alongside the error", got)
	}
}

func TestIdentifyMissingFileIsError(t *testing.T) {
	_, err := Identify(filepath.Join(t.TempDir(), "does-not-exist.bin"), KMA)
	if err == nil {
		t.Fatal("Identify on a missing file: want error, got nil")
	}
}

func TestIdentifyNRequiresAllExaminedHeadersValid(t *testing.T) {
	good := dgramtestutil.KMAFrame("#IIP", 0, 40, 1, 1_700_000_000, 0, []byte("install params"))
	bad := dgramtestutil.KMAFrame("#MRZ", 0, 40, 1, 1_700_000_001, 0, []byte("soundings"))
	bad[4] = 'X' // break the leading '#' of the 4-byte type tag

	data := append(append([]byte{}, good...), bad...)
	path := writeTempFile(t, data)

	got, err := IdentifyN(path, KMA, 2)
	if err != nil {
		t.Fatalf("IdentifyN: %v", err)
	}
	if got != Negative {
		t.Fatalf("IdentifyN = %v, want Negative when the second header is corrupt", got)
	}

	got, err = IdentifyN(path, KMA, 1)
	if err != nil {
		t.Fatalf("IdentifyN: %v", err)
	}
	if got != Positive {
		t.Fatalf("IdentifyN(n=1) = %v, want Positive since only the first header is examined", got)
	}
}

func TestIdentifyNStopsAtCleanEOFAndStillPositive(t *testing.T) {
	frame := dgramtestutil.KMAFrame("#IIP", 0, 40, 1, 1_700_000_000, 0, []byte("install params"))
	path := writeTempFile(t, frame)

	got, err := IdentifyN(path, KMA, 5)
	if err != nil {
		t.Fatalf("IdentifyN: %v", err)
	}
	if got != Positive {
		t.Fatalf("IdentifyN = %v, want Positive when the stream ends cleanly after one valid header", got)
	}
}
