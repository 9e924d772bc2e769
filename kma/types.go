package kma

// Kind identifies a KMA datagram's type, the tag of the Datagram sum type
// (Design Note: "Tagged union over datagram kinds" -- replaced here with a
// Go sum type where the tag is the header's type code).
type Kind int

const (
	KindUnknown Kind = iota
	KindIIP
	KindIOP
	KindIBE
	KindIBR
	KindIBS
	KindMRZ
	KindMWC
	KindSPO
	KindSKM
	KindSVP
	KindSVT
	KindSCL
	KindSDE
	KindSHI
	KindCPO
	KindCHE
	KindFCF
)

func (k Kind) String() string {
	switch k {
	case KindIIP:
		return "IIP"
	case KindIOP:
		return "IOP"
	case KindIBE:
		return "IBE"
	case KindIBR:
		return "IBR"
	case KindIBS:
		return "IBS"
	case KindMRZ:
		return "MRZ"
	case KindMWC:
		return "MWC"
	case KindSPO:
		return "SPO"
	case KindSKM:
		return "SKM"
	case KindSVP:
		return "SVP"
	case KindSVT:
		return "SVT"
	case KindSCL:
		return "SCL"
	case KindSDE:
		return "SDE"
	case KindSHI:
		return "SHI"
	case KindCPO:
		return "CPO"
	case KindCHE:
		return "CHE"
	case KindFCF:
		return "FCF"
	default:
		return "unknown"
	}
}

// kindForType maps a header's four-ASCII-byte type tag to a Kind. An
// unmatched tag yields KindUnknown: an unknown type must still be framed
// and returned, not rejected.
func kindForType(typeString string) Kind {
	switch typeString {
	case "#IIP":
		return KindIIP
	case "#IOP":
		return KindIOP
	case "#IBE":
		return KindIBE
	case "#IBR":
		return KindIBR
	case "#IBS":
		return KindIBS
	case "#MRZ":
		return KindMRZ
	case "#MWC":
		return KindMWC
	case "#SPO":
		return KindSPO
	case "#SKM":
		return KindSKM
	case "#SVP":
		return KindSVP
	case "#SVT":
		return KindSVT
	case "#SCL":
		return KindSCL
	case "#SDE":
		return KindSDE
	case "#SHI":
		return KindSHI
	case "#CPO":
		return KindCPO
	case "#CHE":
		return KindCHE
	case "#FCF":
		return KindFCF
	default:
		return KindUnknown
	}
}

// Datagram is the tagged variant holding the parsed view of the current
// KMA datagram's body. Exactly one of the typed fields is non-nil,
// matching the active Kind -- except KindUnknown, whose raw bytes are
// available via Raw. An unrecognized kind leaves the tagged variant in a
// raw/unknown state and Decode still returns successfully.
//
// Every slice and sub-view here aliases the owning Handle's buffer and is
// only valid until the next Read or Close.
type Datagram struct {
	Kind Kind
	Raw  []byte

	iip *InfoPart
	iop *InfoPart
	ibe *Bist
	ibr *Bist
	ibs *Bist
	mrz *MRZ
	mwc *MWC
	spo *SensorData
	skm *SKM
	svp *SVP
	svt *SVT
	scl *SensorData
	sde *SDE
	shi *SensorData
	cpo *SensorData
	che *CHE
	fcf *FCF
}

// IIP returns the parsed view and true iff Kind == KindIIP.
func (d *Datagram) IIP() (*InfoPart, bool) { return d.iip, d.iip != nil }

// IOP returns the parsed view and true iff Kind == KindIOP.
func (d *Datagram) IOP() (*InfoPart, bool) { return d.iop, d.iop != nil }

// IBE returns the parsed view and true iff Kind == KindIBE.
func (d *Datagram) IBE() (*Bist, bool) { return d.ibe, d.ibe != nil }

// IBR returns the parsed view and true iff Kind == KindIBR.
func (d *Datagram) IBR() (*Bist, bool) { return d.ibr, d.ibr != nil }

// IBS returns the parsed view and true iff Kind == KindIBS.
func (d *Datagram) IBS() (*Bist, bool) { return d.ibs, d.ibs != nil }

// MRZ returns the parsed view and true iff Kind == KindMRZ.
func (d *Datagram) MRZ() (*MRZ, bool) { return d.mrz, d.mrz != nil }

// MWC returns the parsed view and true iff Kind == KindMWC.
func (d *Datagram) MWC() (*MWC, bool) { return d.mwc, d.mwc != nil }

// SPO returns the parsed view and true iff Kind == KindSPO.
func (d *Datagram) SPO() (*SensorData, bool) { return d.spo, d.spo != nil }

// SKM returns the parsed view and true iff Kind == KindSKM.
func (d *Datagram) SKM() (*SKM, bool) { return d.skm, d.skm != nil }

// SVP returns the parsed view and true iff Kind == KindSVP.
func (d *Datagram) SVP() (*SVP, bool) { return d.svp, d.svp != nil }

// SVT returns the parsed view and true iff Kind == KindSVT.
func (d *Datagram) SVT() (*SVT, bool) { return d.svt, d.svt != nil }

// SCL returns the parsed view and true iff Kind == KindSCL.
func (d *Datagram) SCL() (*SensorData, bool) { return d.scl, d.scl != nil }

// SDE returns the parsed view and true iff Kind == KindSDE.
func (d *Datagram) SDE() (*SDE, bool) { return d.sde, d.sde != nil }

// SHI returns the parsed view and true iff Kind == KindSHI.
func (d *Datagram) SHI() (*SensorData, bool) { return d.shi, d.shi != nil }

// CPO returns the parsed view and true iff Kind == KindCPO.
func (d *Datagram) CPO() (*SensorData, bool) { return d.cpo, d.cpo != nil }

// CHE returns the parsed view and true iff Kind == KindCHE.
func (d *Datagram) CHE() (*CHE, bool) { return d.che, d.che != nil }

// FCF returns the parsed view and true iff Kind == KindFCF.
func (d *Datagram) FCF() (*FCF, bool) { return d.fcf, d.fcf != nil }

// reset clears every field of the reused Datagram before the dispatcher
// lays out the next one, so a stale pointer from the previous datagram
// can never be observed through an accessor.
func (d *Datagram) reset() {
	*d = Datagram{}
}

// Int16Array is a counted array of little-endian int16 samples packed
// back-to-back with no inter-element padding, aliasing the owning buffer.
type Int16Array struct{ buf []byte }

// Len reports the number of int16 elements.
func (a Int16Array) Len() int { return len(a.buf) / 2 }

// At returns the i'th sample.
func (a Int16Array) At(i int) int16 {
	return int16(uint16(a.buf[2*i]) | uint16(a.buf[2*i+1])<<8)
}
