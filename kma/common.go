package kma

import (
	"fmt"

	"github.com/sounder/dgram/internal/dbg"
	"github.com/sounder/dgram/internal/wire"
)

// Partition is the KMA sub-header that, in principle, supports splitting a
// large datagram into fragments. MRZ, MWC and FCF all begin with one. In
// practice the upstream system already rejoins fragments before storing
// to disk, so this reader requires (DgmNum, NumOfDgms) == (1, 1) and
// rejects anything else with BadData.
type Partition struct {
	NumBytesCmnPart uint16
	NumOfDgms       uint16
	DgmNum          uint16
}

const partitionSize = 6

func decodePartition(c *cursor) (Partition, error) {
	b, err := c.take(partitionSize, "partition")
	if err != nil {
		return Partition{}, err
	}
	v := wire.View{Buf: b}
	p := Partition{}
	p.NumBytesCmnPart, _ = v.U16(0)
	p.NumOfDgms, _ = v.U16(2)
	p.DgmNum, _ = v.U16(4)
	return p, nil
}

// Single reports whether this is the only, unfragmented part (1, 1) --
// the only combination this reader accepts.
func (p Partition) Single() bool { return p.DgmNum == 1 && p.NumOfDgms == 1 }

// partitionError reports a rejected multi-part datagram: only
// part_index == 1 and part_count == 1 is accepted; every other
// combination fails with bad-data.
func partitionError(p Partition) error {
	dbg.Anomaly("partition", p)
	return fmt.Errorf("partition %d/%d rejected: only 1/1 is supported", p.DgmNum, p.NumOfDgms)
}

// SCommon is the small self-describing header shared by SPO, SCL, SDE,
// SHI and CPO ahead of their version-selected data struct: s-common,
// then a version-selected data struct, then a variable-length raw
// sensor data blob.
type SCommon struct {
	NumBytesCmnPart uint16
	SensorSystem    uint16
	SensorStatus    uint16
}

const sCommonSize = 6

func decodeSCommon(c *cursor) (SCommon, error) {
	b, err := c.take(sCommonSize, "s-common")
	if err != nil {
		return SCommon{}, err
	}
	v := wire.View{Buf: b}
	s := SCommon{}
	s.NumBytesCmnPart, _ = v.U16(0)
	s.SensorSystem, _ = v.U16(2)
	s.SensorStatus, _ = v.U16(4)
	return s, nil
}

// skipToDeclaredSize advances c past any bytes of a self-declared section
// not covered by the fixed struct already decoded from it (forward
// version compatibility: a newer firmware may report a larger declared
// size than this reader knows fields for). declaredSize is the section's
// own numBytesXxxPart value; alreadyTaken is how many bytes decodeX
// already consumed for it.
func skipToDeclaredSize(c *cursor, declaredSize, alreadyTaken int, what string) error {
	extra := declaredSize - alreadyTaken
	if extra < 0 {
		return fmt.Errorf("%s: declared size %d is smaller than its fixed fields (%d bytes)", what, declaredSize, alreadyTaken)
	}
	if extra == 0 {
		return nil
	}
	_, err := c.take(extra, what+" padding")
	return err
}
