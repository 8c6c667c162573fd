package overpass

// Response is the JSON envelope returned by the Overpass interpreter.
type Response struct {
	Elements []Element `json:"elements"`
}

// Element is a single OSM feature from a query result. Nodes carry lat/lon
// directly; ways and relations carry a bounding box instead.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Bounds *Bounds           `json:"bounds,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Bounds is the bounding box reported for way and relation elements.
type Bounds struct {
	MinLat float64 `json:"minlat"`
	MinLon float64 `json:"minlon"`
	MaxLat float64 `json:"maxlat"`
	MaxLon float64 `json:"maxlon"`
}

// Name returns the feature's display name, empty when untagged.
func (e Element) Name() string {
	return e.Tags["name"]
}

// Position returns a representative coordinate for the element: the node
// position when present, otherwise the midpoint of the bounding box. ok is
// false for elements with neither. A node at exactly 0,0 is treated as
// having no position; no feature in the covered region sits there.
func (e Element) Position() (lat, lon float64, ok bool) {
	if e.Lat != 0 || e.Lon != 0 {
		return e.Lat, e.Lon, true
	}
	if e.Bounds != nil {
		return (e.Bounds.MinLat + e.Bounds.MaxLat) / 2, (e.Bounds.MinLon + e.Bounds.MaxLon) / 2, true
	}
	return 0, 0, false
}
