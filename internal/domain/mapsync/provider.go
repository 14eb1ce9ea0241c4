package mapsync

// LatLng is a WGS84 coordinate pair handed to the mapping provider.
type LatLng struct {
	Lat float64
	Lng float64
}

// Provider is the external mapping capability. The synchronizer drives it
// through this surface only and never assumes anything about rendering.
type Provider interface {
	CreateInstance(center LatLng, zoom int) (Widget, error)
}

// Widget is one live map instance. It is created at most once per session.
type Widget interface {
	SetCenter(center LatLng)
	SetZoom(zoom int)
	CreateMarker(position LatLng, label string) (Marker, error)
}

// Marker is one placed marker; Destroy removes it from the widget.
type Marker interface {
	Destroy()
}

// SignalSink receives the user-visible, non-fatal map signals.
type SignalSink interface {
	NoPlottableCoordinates()
	MappingProviderUnavailable()
}
