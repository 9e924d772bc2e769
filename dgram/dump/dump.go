// Package dump provides a thin pretty-printer over the current-datagram
// views, for debugging and test failure output. It does not copy the
// views; every field it prints is read directly from the handle's buffer,
// so KMA and EMX are only meaningful to call immediately after a Read
// (same validity window as the views themselves). The returned string is
// an independent value.
package dump

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/sounder/dgram/emx"
	"github.com/sounder/dgram/kma"
)

var config = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// KMA renders a KMA datagram's tagged variant, following whichever typed
// field is active.
func KMA(d *kma.Datagram) string {
	if d == nil {
		return "<nil>"
	}
	if iip, ok := d.IIP(); ok {
		return config.Sdump(iip)
	}
	if iop, ok := d.IOP(); ok {
		return config.Sdump(iop)
	}
	if v, ok := d.IBE(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.IBR(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.IBS(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.MRZ(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.MWC(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.SPO(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.SKM(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.SVP(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.SVT(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.SCL(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.SDE(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.SHI(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.CPO(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.CHE(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.FCF(); ok {
		return config.Sdump(v)
	}
	return config.Sdump(struct {
		Kind string
		Raw  []byte
	}{d.Kind.String(), d.Raw})
}

// EMX renders an EMX datagram's tagged variant, the same way KMA does.
func EMX(d *emx.Datagram) string {
	if d == nil {
		return "<nil>"
	}
	if v, ok := d.Depth(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.RawRange(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.SSBeam(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.Attitude(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.Position(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.SVP(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.InstallationStart(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.RuntimeParam(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.Clock(); ok {
		return config.Sdump(v)
	}
	if v, ok := d.Watercolumn(); ok {
		return config.Sdump(v)
	}
	return config.Sdump(struct {
		Kind string
		Raw  []byte
	}{d.Kind.String(), d.Raw})
}
