package emx

// Kind identifies an EMX datagram's single-byte type code.
type Kind int

const (
	KindUnknown Kind = iota
	KindDepth
	KindRawRange
	KindSSBeam
	KindAttitude
	KindPosition
	KindSVP
	KindInstallationStart
	KindRuntimeParam
	KindClock
	KindWatercolumn
)

func (k Kind) String() string {
	switch k {
	case KindDepth:
		return "DEPTH"
	case KindRawRange:
		return "RAW_RANGE"
	case KindSSBeam:
		return "SSBEAM"
	case KindAttitude:
		return "ATTITUDE"
	case KindPosition:
		return "POSITION"
	case KindSVP:
		return "SVP"
	case KindInstallationStart:
		return "INSTALLATION_START"
	case KindRuntimeParam:
		return "RUNTIME_PARAM"
	case KindClock:
		return "CLOCK"
	case KindWatercolumn:
		return "WATERCOLUMN"
	default:
		return "unknown"
	}
}

// Byte-code catalogue for EMX datagrams, named the way Kongsberg's own
// tooling names them ('D' for depth, 'F' for raw range and beam angle,
// and so on).
const (
	codeDepth              = 'D'
	codeRawRange           = 'F'
	codeSSBeam             = 'S'
	codeAttitude           = 'A'
	codePosition           = 'P'
	codeSVP                = 'U'
	codeInstallationStart  = 'I'
	codeRuntimeParam       = 'R'
	codeClock              = 'C'
	codeWatercolumn        = 'k'
)

func kindForCode(code byte) Kind {
	switch code {
	case codeDepth:
		return KindDepth
	case codeRawRange:
		return KindRawRange
	case codeSSBeam:
		return KindSSBeam
	case codeAttitude:
		return KindAttitude
	case codePosition:
		return KindPosition
	case codeSVP:
		return KindSVP
	case codeInstallationStart:
		return KindInstallationStart
	case codeRuntimeParam:
		return KindRuntimeParam
	case codeClock:
		return KindClock
	case codeWatercolumn:
		return KindWatercolumn
	default:
		return KindUnknown
	}
}

// Datagram is the tagged variant holding the parsed view of the current
// EMX datagram's body, the same tagged-union shape as kma.Datagram.
type Datagram struct {
	Kind Kind
	Raw  []byte

	depth      *Depth
	rawRange   *RawRange
	ssBeam     *SSBeam
	attitude   *Attitude
	position   *Position
	svp        *SVP
	installation *InstallationStart
	runtime    *RuntimeParam
	clock      *Clock
	watercolumn *Watercolumn
}

func (d *Datagram) Depth() (*Depth, bool)          { return d.depth, d.depth != nil }
func (d *Datagram) RawRange() (*RawRange, bool)    { return d.rawRange, d.rawRange != nil }
func (d *Datagram) SSBeam() (*SSBeam, bool)        { return d.ssBeam, d.ssBeam != nil }
func (d *Datagram) Attitude() (*Attitude, bool)    { return d.attitude, d.attitude != nil }
func (d *Datagram) Position() (*Position, bool)    { return d.position, d.position != nil }
func (d *Datagram) SVP() (*SVP, bool)              { return d.svp, d.svp != nil }
func (d *Datagram) InstallationStart() (*InstallationStart, bool) {
	return d.installation, d.installation != nil
}
func (d *Datagram) RuntimeParam() (*RuntimeParam, bool) { return d.runtime, d.runtime != nil }
func (d *Datagram) Clock() (*Clock, bool)               { return d.clock, d.clock != nil }
func (d *Datagram) Watercolumn() (*Watercolumn, bool)   { return d.watercolumn, d.watercolumn != nil }

func (d *Datagram) reset() { *d = Datagram{} }
