package globe

// Ring is one closed polygon boundary in geographic coordinates.
// The closing edge from the last point back to the first is implicit.
type Ring []GeoPoint

// Region is a named geographic area. A region may own several disjoint
// rings (multi-polygon). Center is the control point used for label
// placement when present.
type Region struct {
	Name      string
	Rings     []Ring
	Center    GeoPoint
	HasCenter bool

	// LabelAnchor pins the label to an explicit geographic point.
	LabelAnchor *GeoPoint

	// LabelOffset shifts the label from the projected control point by a
	// fixed texture-space amount.
	LabelOffset *Point
}

// NameMap aliases free-form region names onto canonical dataset names.
// It overlays per-instance overrides on a shared base table; the base is
// never mutated, so instances cannot interfere with each other.
type NameMap struct {
	base      map[string]string
	overrides map[string]string
}

// NewNameMap creates a name map over a base alias table. The base map is
// used as-is and must not be mutated by the caller afterwards; pass nil
// for no base aliases.
func NewNameMap(base map[string]string) *NameMap {
	return &NameMap{base: base}
}

// Set records a per-instance alias consulted before the base table.
func (m *NameMap) Set(alias, name string) {
	if m.overrides == nil {
		m.overrides = make(map[string]string)
	}
	m.overrides[alias] = name
}

// Resolve maps a name through the overrides, then the base table, and
// falls back to the literal name. A nil map resolves every name to itself.
func (m *NameMap) Resolve(name string) string {
	if m == nil {
		return name
	}
	if to, ok := m.overrides[name]; ok {
		return to
	}
	if to, ok := m.base[name]; ok {
		return to
	}
	return name
}

// AnchorTable holds explicit label anchor points keyed by region name,
// overlaying per-instance overrides on a shared base table.
type AnchorTable struct {
	base      map[string]GeoPoint
	overrides map[string]GeoPoint
}

// NewAnchorTable creates an anchor table over a base table. Pass nil for
// an empty base.
func NewAnchorTable(base map[string]GeoPoint) *AnchorTable {
	return &AnchorTable{base: base}
}

// Set records a per-instance anchor consulted before the base table.
func (t *AnchorTable) Set(region string, anchor GeoPoint) {
	if t.overrides == nil {
		t.overrides = make(map[string]GeoPoint)
	}
	t.overrides[region] = anchor
}

// Lookup returns the anchor for a region, overrides first.
func (t *AnchorTable) Lookup(region string) (GeoPoint, bool) {
	if t == nil {
		return GeoPoint{}, false
	}
	if at, ok := t.overrides[region]; ok {
		return at, true
	}
	at, ok := t.base[region]
	return at, ok
}
