package dgramtestutil

import "encoding/binary"

// KMAFrame assembles one little-endian KMA datagram frame: a 20-byte
// header (typeCode must be 4 ASCII bytes beginning with '#') followed by
// body, followed by the trailing repeated length field.
func KMAFrame(typeCode string, version, systemID uint8, echoSounderID uint16, timeSec, timeNanosec uint32, body []byte) []byte {
	if len(typeCode) != 4 {
		panic("dgramtestutil: KMA type code must be 4 bytes")
	}
	const headerSize = 20
	const trailingSize = 4
	total := headerSize + len(body) + trailingSize

	frame := make([]byte, total)
	binary.LittleEndian.PutUint32(frame[0:], uint32(total))
	copy(frame[4:8], typeCode)
	frame[8] = version
	frame[9] = systemID
	binary.LittleEndian.PutUint16(frame[10:12], echoSounderID)
	binary.LittleEndian.PutUint32(frame[12:16], timeSec)
	binary.LittleEndian.PutUint32(frame[16:20], timeNanosec)
	copy(frame[headerSize:], body)
	binary.LittleEndian.PutUint32(frame[headerSize+len(body):], uint32(total))
	return frame
}

// EMXFrame assembles one EMX datagram frame: length, STX, 19-byte header
// rest, payload, ETX, checksum. The checksum is computed over
// STX-exclusive through the last payload byte, matching the reader's own
// verification.
func EMXFrame(typeCode byte, version, systemID uint8, echoSounderID uint16, timeSec, timeNanosec uint32, payload []byte) []byte {
	const stx, etx = 0x02, 0x03
	const headerRestSize = 19
	total := 4 + 1 + headerRestSize + len(payload) + 2

	frame := make([]byte, total)
	binary.LittleEndian.PutUint32(frame[0:], uint32(total))
	frame[4] = stx
	rest := frame[5 : 5+headerRestSize]
	rest[0] = typeCode
	rest[1] = version
	rest[2] = systemID
	binary.LittleEndian.PutUint16(rest[3:5], echoSounderID)
	binary.LittleEndian.PutUint32(rest[5:9], timeSec)
	binary.LittleEndian.PutUint32(rest[9:13], timeNanosec)

	payloadStart := 5 + headerRestSize
	copy(frame[payloadStart:], payload)

	etxPos := payloadStart + len(payload)
	frame[etxPos] = etx

	var sum byte
	for _, b := range frame[5:etxPos] {
		sum += b
	}
	frame[etxPos+1] = sum
	return frame
}
