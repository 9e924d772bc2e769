package kma

import "github.com/sounder/dgram/internal/dbg"

// Decode lays out a KMA datagram's body into dgm according to the header's
// type code. dgm is reset and reused across
// calls, matching the handle's single embedded current-datagram record.
//
// An unknown type code is not an error: dgm is left in the raw/unknown
// state (Kind == KindUnknown, Raw set) and Decode returns nil -- an
// unrecognized type must not cause the read to fail. A recognized type whose body
// fails to parse -- an internal size overrunning numBytesDgm, a rejected
// partition, a truncated array -- returns a non-nil error; the caller
// (dgram.Handle.Read) turns that into a bad-data result.
func Decode(h Header, body []byte, dgm *Datagram) error {
	dgm.reset()
	dgm.Raw = body
	dgm.Kind = kindForType(h.TypeString())

	switch dgm.Kind {
	case KindIIP:
		v, err := decodeInfoPart(body)
		if err != nil {
			return err
		}
		dgm.iip = v
	case KindIOP:
		v, err := decodeInfoPart(body)
		if err != nil {
			return err
		}
		dgm.iop = v
	case KindIBE:
		v, err := decodeBist(body)
		if err != nil {
			return err
		}
		dgm.ibe = v
	case KindIBR:
		v, err := decodeBist(body)
		if err != nil {
			return err
		}
		dgm.ibr = v
	case KindIBS:
		v, err := decodeBist(body)
		if err != nil {
			return err
		}
		dgm.ibs = v
	case KindMRZ:
		v, err := decodeMRZ(body, h.DgmVersion)
		if err != nil {
			return err
		}
		dgm.mrz = v
	case KindMWC:
		v, err := decodeMWC(body)
		if err != nil {
			return err
		}
		dgm.mwc = v
	case KindSPO:
		v, err := decodeSensorData(body, sensorPosition)
		if err != nil {
			return err
		}
		dgm.spo = v
	case KindSKM:
		v, err := decodeSKM(body)
		if err != nil {
			return err
		}
		dgm.skm = v
	case KindSVP:
		v, err := decodeSVP(body)
		if err != nil {
			return err
		}
		dgm.svp = v
	case KindSVT:
		v, err := decodeSVT(body)
		if err != nil {
			return err
		}
		dgm.svt = v
	case KindSCL:
		v, err := decodeSensorData(body, sensorClock)
		if err != nil {
			return err
		}
		dgm.scl = v
	case KindSDE:
		v, err := decodeSDE(body, h.DgmVersion)
		if err != nil {
			return err
		}
		dgm.sde = v
	case KindSHI:
		v, err := decodeSensorData(body, sensorHeight)
		if err != nil {
			return err
		}
		dgm.shi = v
	case KindCPO:
		v, err := decodeSensorData(body, sensorPosition)
		if err != nil {
			return err
		}
		dgm.cpo = v
	case KindCHE:
		v, err := decodeCHE(body)
		if err != nil {
			return err
		}
		dgm.che = v
	case KindFCF:
		v, err := decodeFCF(body)
		if err != nil {
			return err
		}
		dgm.fcf = v
	default:
		dbg.Notice("kma: unrecognized type %q, returning raw", h.TypeString())
	}
	return nil
}

// IsWaterColumn reports whether h identifies an MWC datagram, the class
// skipped by Handle.SetIgnoreWaterColumn.
func IsWaterColumn(h Header) bool { return kindForType(h.TypeString()) == KindMWC }

// IsSoundings reports whether h identifies an MRZ datagram, the class
// skipped by Handle.SetIgnoreSoundings.
func IsSoundings(h Header) bool { return kindForType(h.TypeString()) == KindMRZ }
