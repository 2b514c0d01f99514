package globe

// RegionStyle is the resolved polygon appearance for one display state.
type RegionStyle struct {
	Fill        RGBA
	Stroke      RGBA
	StrokeWidth float64
	Opacity     float64
}

// LabelStyle is the resolved label appearance for one display state.
// Visibility is an opacity of 0 or 1, not a boolean, so the renderer can
// fade labels without a schema change.
type LabelStyle struct {
	Opacity    float64
	Color      RGBA
	FontFamily string
	FontSize   float64
}

// StyleSet bundles the default and highlighted styles for a region and
// its label.
type StyleSet struct {
	Region          RegionStyle
	RegionHighlight RegionStyle
	Label           LabelStyle
	LabelHighlight  LabelStyle
}

// ValueColorMapper maps a numeric aggregate value to a fill color.
// The host's range legend implements this.
type ValueColorMapper interface {
	GetColor(value float64) RGBA
}

// ValueColorFunc adapts a function to the ValueColorMapper interface.
type ValueColorFunc func(value float64) RGBA

// GetColor calls f.
func (f ValueColorFunc) GetColor(value float64) RGBA { return f(value) }

// Baseline appearance when no source defines a setting.
var (
	defaultFill      = Hex("#eeeeee")
	defaultStroke    = Hex("#444444")
	defaultHighlight = Hex("#ffd700")
	defaultLabelInk  = Hex("#000000")
)

const (
	defaultStrokeWidth = 0.5
	defaultFontSize    = 12
	defaultFontFamily  = "sans-serif"
)

// ResolveStyleSet resolves the polygon and label styles for both display
// states against the candidate sources, most specific first. The
// highlighted state inherits every resolved default-state value unless an
// "emphasis." path overrides it; highlighted labels default to visible so
// hovering a region reveals its name. When a legend mapper is active and
// the aggregate value is numeric, the mapped color replaces the resolved
// default-state fill.
func ResolveStyleSet(sources []Settings, value float64, hasValue bool, legend ValueColorMapper) StyleSet {
	region := RegionStyle{
		Fill:        ResolveColor("itemStyle.color", defaultFill, sources...),
		Stroke:      ResolveColor("itemStyle.borderColor", defaultStroke, sources...),
		StrokeWidth: ResolveFloat("itemStyle.borderWidth", defaultStrokeWidth, sources...),
		Opacity:     ResolveFloat("itemStyle.opacity", 1, sources...),
	}
	if legend != nil && hasValue {
		region.Fill = legend.GetColor(value)
	}

	highlight := RegionStyle{
		Fill:        ResolveColor("emphasis.itemStyle.color", defaultHighlight, sources...),
		Stroke:      ResolveColor("emphasis.itemStyle.borderColor", region.Stroke, sources...),
		StrokeWidth: ResolveFloat("emphasis.itemStyle.borderWidth", region.StrokeWidth, sources...),
		Opacity:     ResolveFloat("emphasis.itemStyle.opacity", region.Opacity, sources...),
	}

	label := LabelStyle{
		Opacity:    showToOpacity(ResolveBool("label.show", false, sources...)),
		Color:      ResolveColor("label.color", defaultLabelInk, sources...),
		FontFamily: ResolveString("label.fontFamily", defaultFontFamily, sources...),
		FontSize:   ResolveFloat("label.fontSize", defaultFontSize, sources...),
	}
	labelHighlight := LabelStyle{
		Opacity:    showToOpacity(ResolveBool("emphasis.label.show", true, sources...)),
		Color:      ResolveColor("emphasis.label.color", label.Color, sources...),
		FontFamily: ResolveString("emphasis.label.fontFamily", label.FontFamily, sources...),
		FontSize:   ResolveFloat("emphasis.label.fontSize", label.FontSize, sources...),
	}

	return StyleSet{
		Region:          region,
		RegionHighlight: highlight,
		Label:           label,
		LabelHighlight:  labelHighlight,
	}
}

func showToOpacity(show bool) float64 {
	if show {
		return 1
	}
	return 0
}
