package kma

import (
	"encoding/binary"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type PartitionSuite struct{}

var _ = check.Suite(&PartitionSuite{})

func le16(v uint16) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, v); return b }

func (s *PartitionSuite) TestSingleAcceptsOnlyOneOfOne(c *check.C) {
	cases := []struct {
		dgmNum, numOfDgms uint16
		want              bool
	}{
		{1, 1, true},
		{1, 2, false},
		{2, 2, false},
		{0, 0, false},
	}
	for _, tc := range cases {
		p := Partition{DgmNum: tc.dgmNum, NumOfDgms: tc.numOfDgms}
		c.Check(p.Single(), check.Equals, tc.want)
	}
}

func (s *PartitionSuite) TestDecodePartitionReadsFieldsInOrder(c *check.C) {
	body := make([]byte, 0, partitionSize)
	body = append(body, le16(6)...)
	body = append(body, le16(1)...)
	body = append(body, le16(1)...)

	cur := newCursor(body)
	p, err := decodePartition(cur)
	c.Assert(err, check.IsNil)
	c.Check(p.NumBytesCmnPart, check.Equals, uint16(6))
	c.Check(p.NumOfDgms, check.Equals, uint16(1))
	c.Check(p.DgmNum, check.Equals, uint16(1))
	c.Check(cur.remaining(), check.Equals, 0)
}

func (s *PartitionSuite) TestPartitionErrorNamesBothCounts(c *check.C) {
	err := partitionError(Partition{DgmNum: 2, NumOfDgms: 3})
	c.Assert(err, check.NotNil)
	c.Check(err.Error(), check.Matches, ".*2.*3.*")
}
