package models

import (
	"encoding/json"
	"fmt"
)

// LocationKind discriminates the shapes gig location data arrives in.
type LocationKind string

const (
	LocationCoordinates  LocationKind = "coordinates"
	LocationAddress      LocationKind = "address"
	LocationUnstructured LocationKind = "unstructured"
)

// Location is the parsed form of the loosely-typed location JSON stored on a
// gig row. It is decoded exactly once, at the storage boundary; downstream code
// switches on Kind instead of re-sniffing the raw payload.
type Location struct {
	Kind    LocationKind `json:"kind"`
	Lat     float64      `json:"lat,omitempty"`
	Lng     float64      `json:"lng,omitempty"`
	Address string       `json:"address,omitempty"`
	Raw     string       `json:"raw,omitempty"`
}

// rawLocation covers the shapes observed in stored rows.
type rawLocation struct {
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	FormattedAddress *string  `json:"formatted_address"`
	Address          *string  `json:"address"`
}

// ParseLocation normalizes a stored location payload into a tagged Location.
// A JSON string is treated as a formatted address; an object with lat/lng as
// coordinates; anything else valid is kept verbatim as unstructured. Invalid
// JSON is rejected.
func ParseLocation(data []byte) (*Location, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("location payload is not valid JSON")
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		return &Location{Kind: LocationAddress, Address: asString}, nil
	}

	var raw rawLocation
	if err := json.Unmarshal(data, &raw); err == nil {
		if raw.Lat != nil && raw.Lng != nil {
			return &Location{Kind: LocationCoordinates, Lat: *raw.Lat, Lng: *raw.Lng}, nil
		}
		if raw.FormattedAddress != nil {
			return &Location{Kind: LocationAddress, Address: *raw.FormattedAddress}, nil
		}
		if raw.Address != nil {
			return &Location{Kind: LocationAddress, Address: *raw.Address}, nil
		}
	}

	return &Location{Kind: LocationUnstructured, Raw: string(data)}, nil
}

// EncodeLocation renders a Location back into the stored JSON shape.
func EncodeLocation(loc *Location) ([]byte, error) {
	if loc == nil {
		return nil, nil
	}
	switch loc.Kind {
	case LocationCoordinates:
		return json.Marshal(map[string]float64{"lat": loc.Lat, "lng": loc.Lng})
	case LocationAddress:
		return json.Marshal(map[string]string{"formatted_address": loc.Address})
	case LocationUnstructured:
		return []byte(loc.Raw), nil
	default:
		return nil, fmt.Errorf("unknown location kind %q", loc.Kind)
	}
}
