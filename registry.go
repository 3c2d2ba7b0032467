package deepfrac

import (
	"github.com/cfdwalrus/deepfrac/family"
	"github.com/cfdwalrus/deepfrac/fracerr"
)

// DefaultView names a family's starting center and zoom, the per-family
// default §6 calls out alongside default parameters and capability flags.
type DefaultView struct {
	CenterX string
	CenterY string
	Zoom    float64
}

// ExtraParamType enumerates the scalar kinds an ExtraParam.Default can
// hold.
type ExtraParamType int

const (
	ExtraInt ExtraParamType = iota
	ExtraFloat
	ExtraBool
	ExtraEnum
)

// ExtraParam describes one family-specific extra parameter (§6:
// "enumerated extra parameters with names/types/defaults/ranges").
type ExtraParam struct {
	Name    string
	Type    ExtraParamType
	Default interface{}
	Min, Max float64 // meaningful for ExtraInt/ExtraFloat
	Options []string // meaningful for ExtraEnum
}

// FamilyInfo is what Describe returns for one family id: everything a
// driver needs to list the family in a UI and construct a first render
// without consulting any other package.
type FamilyInfo struct {
	ID           family.ID
	Formula      string
	DefaultView  DefaultView
	Capabilities family.Capabilities
	ExtraParams  []ExtraParam
}

// Describe returns the fixed registry entry for id, per §6's "Construct a
// family instance by id" contract.
func Describe(id family.ID) (FamilyInfo, error) {
	caps := family.CapabilitiesFor(id)
	switch id {
	case family.Mandelbrot:
		return FamilyInfo{
			ID: id, Formula: "z^2+c",
			DefaultView:  DefaultView{CenterX: "-0.5", CenterY: "0", Zoom: 1},
			Capabilities: caps,
		}, nil
	case family.Julia:
		return FamilyInfo{
			ID: id, Formula: "z^2+c",
			DefaultView:  DefaultView{CenterX: "0", CenterY: "0", Zoom: 1},
			Capabilities: caps,
			ExtraParams: []ExtraParam{
				{Name: "juliaC.re", Type: ExtraFloat, Default: -0.123, Min: -2, Max: 2},
				{Name: "juliaC.im", Type: ExtraFloat, Default: 0.745, Min: -2, Max: 2},
			},
		}, nil
	case family.BurningShip:
		return FamilyInfo{
			ID: id, Formula: "(|Re z|+i|Im z|)^2+c",
			DefaultView:  DefaultView{CenterX: "-0.5", CenterY: "-0.5", Zoom: 1},
			Capabilities: caps,
			ExtraParams: []ExtraParam{
				{Name: "variant", Type: ExtraEnum, Default: "standard",
					Options: []string{"standard", "partial-re", "partial-im", "buffalo", "celtic"}},
			},
		}, nil
	case family.Tricorn:
		return FamilyInfo{
			ID: id, Formula: "conj(z)^2+c",
			DefaultView:  DefaultView{CenterX: "0", CenterY: "0", Zoom: 1},
			Capabilities: caps,
			ExtraParams: []ExtraParam{
				{Name: "power", Type: ExtraInt, Default: 2, Min: 2, Max: 12},
			},
		}, nil
	case family.Phoenix:
		return FamilyInfo{
			ID: id, Formula: "z^2+c+p*prev",
			DefaultView:  DefaultView{CenterX: "0", CenterY: "0", Zoom: 1},
			Capabilities: caps,
			ExtraParams: []ExtraParam{
				{Name: "p", Type: ExtraFloat, Default: 0.5667, Min: -2, Max: 2},
				{Name: "ushikiMode", Type: ExtraBool, Default: false},
				{Name: "juliaMode", Type: ExtraBool, Default: false},
			},
		}, nil
	case family.Newton:
		return FamilyInfo{
			ID: id, Formula: "z-relaxation*f(z)/f'(z)",
			DefaultView:  DefaultView{CenterX: "0", CenterY: "0", Zoom: 1},
			Capabilities: caps,
			ExtraParams: []ExtraParam{
				{Name: "polynomial", Type: ExtraEnum, Default: "z^3-1",
					Options: []string{"z^3-1", "z^4-1", "z^5-1", "z^6-1", "z^n-1", "z^3-2z+2", "z^4-z"}},
				{Name: "degree", Type: ExtraInt, Default: 3, Min: 2, Max: 24},
				{Name: "novaMode", Type: ExtraBool, Default: false},
				{Name: "tolerance", Type: ExtraFloat, Default: 1e-6, Min: 1e-12, Max: 1e-2},
			},
		}, nil
	case family.Custom:
		return FamilyInfo{
			ID: id, Formula: "z^2+c",
			DefaultView:  DefaultView{CenterX: "-0.5", CenterY: "0", Zoom: 1},
			Capabilities: caps,
			ExtraParams: []ExtraParam{
				{Name: "formula", Type: ExtraEnum, Default: "z^2+c"},
			},
		}, nil
	default:
		return FamilyInfo{}, fracerr.Configuration("deepfrac: unknown family id %d", int(id))
	}
}

// IDs lists every family id the registry can Describe, in family.ID
// declaration order.
func IDs() []family.ID {
	return []family.ID{
		family.Mandelbrot,
		family.Julia,
		family.BurningShip,
		family.Tricorn,
		family.Phoenix,
		family.Newton,
		family.Custom,
	}
}
