package dgram

// Format selects which datagram framing a Handle reads: the legacy EMX
// byte-stream framing or the current KMA (kmall-style) framing.
type Format int

const (
	// KMA selects the current Kongsberg-style framing (length-prefixed,
	// 20-byte fixed header, four-ASCII-byte type tag).
	KMA Format = iota
	// EMX selects the legacy framing (length-prefixed, STX/ETX/checksum,
	// single-byte type code).
	EMX
)

func (f Format) String() string {
	switch f {
	case KMA:
		return "KMA"
	case EMX:
		return "EMX"
	default:
		return "unknown"
	}
}
