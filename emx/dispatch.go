package emx

import "github.com/sounder/dgram/internal/dbg"

// Decode lays out an EMX datagram's payload into dgm according to the
// header's single-byte type code, the same discipline as kma.Decode.
func Decode(h Header, payload []byte, dgm *Datagram) error {
	dgm.reset()
	dgm.Raw = payload
	dgm.Kind = kindForCode(h.DgmType)

	switch dgm.Kind {
	case KindDepth:
		v, err := decodeDepth(payload)
		if err != nil {
			return err
		}
		dgm.depth = v
	case KindRawRange:
		v, err := decodeRawRange(payload)
		if err != nil {
			return err
		}
		dgm.rawRange = v
	case KindSSBeam:
		v, err := decodeSSBeam(payload)
		if err != nil {
			return err
		}
		dgm.ssBeam = v
	case KindAttitude:
		v, err := decodeAttitude(payload)
		if err != nil {
			return err
		}
		dgm.attitude = v
	case KindPosition:
		v, err := decodePosition(payload)
		if err != nil {
			return err
		}
		dgm.position = v
	case KindSVP:
		v, err := decodeSVP(payload)
		if err != nil {
			return err
		}
		dgm.svp = v
	case KindInstallationStart:
		v, err := decodeInstallationStart(payload)
		if err != nil {
			return err
		}
		dgm.installation = v
	case KindRuntimeParam:
		v, err := decodeRuntimeParam(payload)
		if err != nil {
			return err
		}
		dgm.runtime = v
	case KindClock:
		v, err := decodeClock(payload)
		if err != nil {
			return err
		}
		dgm.clock = v
	case KindWatercolumn:
		v, err := decodeWatercolumn(payload)
		if err != nil {
			return err
		}
		dgm.watercolumn = v
	default:
		dbg.Notice("emx: unrecognized type code %q, returning raw", string(h.DgmType))
	}
	return nil
}

// IsWaterColumn reports whether h identifies a water-column datagram, the
// class skipped by Handle.SetIgnoreWaterColumn.
func IsWaterColumn(h Header) bool { return kindForCode(h.DgmType) == KindWatercolumn }
