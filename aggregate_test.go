package globe

import "testing"

func TestAggregateSums(t *testing.T) {
	series := []Series{
		{Index: 0, Name: "population", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 67.0},
			{Name: "Chad", Value: 17.0},
		}},
		{Index: 1, Name: "adjustment", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 3},
		}},
	}

	agg := Aggregate(series, nil, nil)

	fr, ok := agg.Lookup("world", "France")
	if !ok {
		t.Fatal("Lookup(France) ok = false, want true")
	}
	if fr.Value != 70 || !fr.HasValue {
		t.Errorf("France Value = %v (HasValue %v), want 70 (true)", fr.Value, fr.HasValue)
	}
	cd, ok := agg.Lookup("world", "Chad")
	if !ok {
		t.Fatal("Lookup(Chad) ok = false, want true")
	}
	if cd.Value != 17 {
		t.Errorf("Chad Value = %v, want 17", cd.Value)
	}
}

func TestAggregateIgnoresOtherTypes(t *testing.T) {
	series := []Series{
		{Index: 0, Name: "bars", Type: "bar", MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 1.0},
		}},
		{Index: 1, Name: "layer", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 2.0},
		}},
	}

	agg := Aggregate(series, nil, nil)
	fr, _ := agg.Lookup("world", "France")
	if fr == nil || fr.Value != 2 {
		t.Errorf("France = %+v, want Value 2 from the globe series only", fr)
	}
	if got := fr.SeriesIndices; len(got) != 1 || got[0] != 1 {
		t.Errorf("SeriesIndices = %v, want [1]", got)
	}
}

func TestAggregateSelection(t *testing.T) {
	series := []Series{
		{Index: 0, Name: "on", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 1.0},
		}},
		{Index: 1, Name: "off", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 100.0},
		}},
	}
	selected := Selection{"off": false}

	agg := Aggregate(series, selected, nil)
	fr, _ := agg.Lookup("world", "France")
	if fr == nil || fr.Value != 1 {
		t.Errorf("France = %+v, want Value 1 with deselected series excluded", fr)
	}
}

func TestSelectionEnabled(t *testing.T) {
	var nilSel Selection
	if !nilSel.Enabled("anything") {
		t.Error("nil Selection.Enabled() = false, want true")
	}
	sel := Selection{"a": false, "b": true}
	if sel.Enabled("a") {
		t.Error("Enabled(a) = true, want false")
	}
	if !sel.Enabled("b") {
		t.Error("Enabled(b) = false, want true")
	}
	if !sel.Enabled("absent") {
		t.Error("Enabled(absent) = false, want true")
	}
}

func TestAggregateSeriesIndicesOrderAndDedup(t *testing.T) {
	series := []Series{
		{Index: 4, Name: "first", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 1.0},
			{Name: "France", Value: 2.0}, // second entry, same series
		}},
		{Index: 2, Name: "second", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 4.0},
		}},
	}

	agg := Aggregate(series, nil, nil)
	fr, _ := agg.Lookup("world", "France")
	if fr == nil {
		t.Fatal("Lookup(France) = nil")
	}
	if fr.Value != 7 {
		t.Errorf("Value = %v, want 7", fr.Value)
	}
	want := []int{4, 2}
	if len(fr.SeriesIndices) != len(want) {
		t.Fatalf("SeriesIndices = %v, want %v", fr.SeriesIndices, want)
	}
	for i, idx := range want {
		if fr.SeriesIndices[i] != idx {
			t.Errorf("SeriesIndices[%d] = %d, want %d", i, fr.SeriesIndices[i], idx)
		}
	}
}

func TestAggregateNonNumericValue(t *testing.T) {
	series := []Series{
		{Index: 0, Name: "s", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: "n/a"},
		}},
	}

	agg := Aggregate(series, nil, nil)
	fr, ok := agg.Lookup("world", "France")
	if !ok {
		t.Fatal("region with non-numeric value should still aggregate")
	}
	if fr.HasValue {
		t.Error("HasValue = true, want false for non-numeric value")
	}
	if fr.Value != 0 {
		t.Errorf("Value = %v, want 0", fr.Value)
	}
	if len(fr.SeriesIndices) != 1 || fr.SeriesIndices[0] != 0 {
		t.Errorf("SeriesIndices = %v, want [0]", fr.SeriesIndices)
	}
}

func TestAggregateZeroSumKeepsHasValue(t *testing.T) {
	series := []Series{
		{Index: 0, Name: "s", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 5.0},
			{Name: "France", Value: -5.0},
		}},
	}

	agg := Aggregate(series, nil, nil)
	fr, _ := agg.Lookup("world", "France")
	if fr == nil || fr.Value != 0 || !fr.HasValue {
		t.Errorf("France = %+v, want Value 0 with HasValue true", fr)
	}
}

func TestAggregateRemapsNames(t *testing.T) {
	names := NewNameMap(map[string]string{"USA": "United States"})
	series := []Series{
		{Index: 0, Name: "s", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "USA", Value: 1.0},
			{Name: "United States", Value: 2.0},
		}},
	}

	agg := Aggregate(series, nil, names)
	us, ok := agg.Lookup("world", "United States")
	if !ok {
		t.Fatal("Lookup(United States) ok = false, want true")
	}
	if us.Value != 3 {
		t.Errorf("Value = %v, want 3 with alias and canonical name merged", us.Value)
	}
	if _, ok := agg.Lookup("world", "USA"); ok {
		t.Error("Lookup(USA) ok = true, want alias key absent")
	}
}

func TestAggregateSettingsLastWriteWins(t *testing.T) {
	series := []Series{
		{Index: 0, Name: "a", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 1.0, Settings: Settings{"color": "#ff0000", "opacity": 0.5}},
		}},
		{Index: 1, Name: "b", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 1.0, Settings: Settings{"color": "#00ff00"}},
		}},
	}

	agg := Aggregate(series, nil, nil)
	fr, _ := agg.Lookup("world", "France")
	if fr == nil {
		t.Fatal("Lookup(France) = nil")
	}
	if got, _ := fr.Settings.Lookup("color"); got != "#00ff00" {
		t.Errorf("Settings color = %v, want #00ff00 (later series wins)", got)
	}
	if got, _ := fr.Settings.Lookup("opacity"); got != 0.5 {
		t.Errorf("Settings opacity = %v, want 0.5 preserved from earlier series", got)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	entrySettings := Settings{"color": "#ff0000"}
	series := []Series{
		{Index: 0, Name: "a", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 1.0, Settings: entrySettings},
		}},
		{Index: 1, Name: "b", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 1.0, Settings: Settings{"color": "#00ff00"}},
		}},
	}

	agg := Aggregate(series, nil, nil)
	if got := entrySettings["color"]; got != "#ff0000" {
		t.Errorf("input settings mutated: color = %v, want #ff0000", got)
	}
	fr, _ := agg.Lookup("world", "France")
	fr.Settings["color"] = "#0000ff"
	if got := entrySettings["color"]; got != "#ff0000" {
		t.Error("aggregate settings share storage with input settings")
	}
}

func TestAggregateGroupsByMapType(t *testing.T) {
	series := []Series{
		{Index: 0, Name: "a", Type: ChartType, MapType: "world", Data: []DataEntry{
			{Name: "France", Value: 1.0},
		}},
		{Index: 1, Name: "b", Type: ChartType, MapType: "europe", Data: []DataEntry{
			{Name: "France", Value: 9.0},
		}},
	}

	agg := Aggregate(series, nil, nil)
	if fr, _ := agg.Lookup("world", "France"); fr == nil || fr.Value != 1 {
		t.Errorf("world France = %+v, want Value 1", fr)
	}
	if fr, _ := agg.Lookup("europe", "France"); fr == nil || fr.Value != 9 {
		t.Errorf("europe France = %+v, want Value 9", fr)
	}
	if _, ok := agg.Lookup("mars", "France"); ok {
		t.Error("Lookup on unknown map type ok = true, want false")
	}
}
