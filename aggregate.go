package globe

// ChartType identifies the series kind this compositor consumes.
// Series of any other type are ignored during aggregation.
const ChartType = "globe"

// DataEntry is one datum within a series: a region name, a value, and
// optional per-entry setting overrides. Value may be any numeric kind;
// non-numeric values do not contribute to the aggregate sum.
type DataEntry struct {
	Name     string
	Value    any
	Settings Settings
}

// Series is one data series handed in by the host chart.
type Series struct {
	Index    int
	Name     string
	Type     string
	MapType  string
	Data     []DataEntry
	Settings Settings
}

// Selection is the host legend's selection mask, keyed by series name.
// Names absent from the mask count as selected.
type Selection map[string]bool

// Enabled reports whether the named series is selected.
func (s Selection) Enabled(name string) bool {
	if s == nil {
		return true
	}
	if on, ok := s[name]; ok {
		return on
	}
	return true
}

// DataPoint is the aggregate record for one region on one map type.
// It is rebuilt from scratch on every aggregation pass and never mutated
// across refreshes.
type DataPoint struct {
	Name string

	// Value is the arithmetic sum of the numeric contributions.
	// HasValue distinguishes a genuine zero sum from no numeric data.
	Value    float64
	HasValue bool

	// SeriesIndices lists the contributing series in first-contribution
	// order, each at most once.
	SeriesIndices []int

	// Settings carries the non-value fields of every contributing entry,
	// later series overwriting earlier ones key by key.
	Settings Settings
}

// contributes records a contribution from the given series index,
// preserving first-contribution order.
func (d *DataPoint) contributes(index int) {
	for _, i := range d.SeriesIndices {
		if i == index {
			return
		}
	}
	d.SeriesIndices = append(d.SeriesIndices, index)
}

// AggregateMap maps map-type to region name to aggregate record.
type AggregateMap map[string]map[string]*DataPoint

// Lookup returns the aggregate record for a region on a map type.
func (a AggregateMap) Lookup(mapType, region string) (*DataPoint, bool) {
	byRegion, ok := a[mapType]
	if !ok {
		return nil, false
	}
	dp, ok := byRegion[region]
	return dp, ok
}

// Aggregate merges the globe-typed, selected series into per-region
// aggregate records grouped by map type. Region names are remapped through
// names before keys are chosen; numeric values sum; non-value settings are
// copied with last-write-wins semantics. Inputs are not mutated. The result
// is deterministic given deterministic input order.
func Aggregate(seriesList []Series, selected Selection, names *NameMap) AggregateMap {
	out := make(AggregateMap)
	for _, s := range seriesList {
		if s.Type != ChartType || !selected.Enabled(s.Name) {
			continue
		}
		byRegion := out[s.MapType]
		if byRegion == nil {
			byRegion = make(map[string]*DataPoint)
			out[s.MapType] = byRegion
		}
		for _, entry := range s.Data {
			name := names.Resolve(entry.Name)
			dp := byRegion[name]
			if dp == nil {
				dp = &DataPoint{Name: name}
				byRegion[name] = dp
			}
			dp.contributes(s.Index)
			if v, ok := toFloat(entry.Value); ok {
				dp.Value += v
				dp.HasValue = true
			}
			if len(entry.Settings) > 0 {
				if dp.Settings == nil {
					dp.Settings = make(Settings, len(entry.Settings))
				}
				for k, v := range entry.Settings {
					dp.Settings[k] = v
				}
			}
		}
	}
	return out
}
