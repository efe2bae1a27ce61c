package domain

type ActivityKind string

const (
	KindTransport     ActivityKind = "transport"
	KindAccommodation ActivityKind = "accommodation"
	KindLeisure       ActivityKind = "leisure"
)

type TransportMode string

const (
	ModeTrain TransportMode = "train"
	ModeBus   TransportMode = "bus"
	ModePlane TransportMode = "plane"
	ModeCar   TransportMode = "car"
)

type AccommodationClass string

const (
	ClassHostel   AccommodationClass = "hostel"
	ClassStandard AccommodationClass = "standard"
	ClassComfort  AccommodationClass = "comfort"
	ClassLuxury   AccommodationClass = "luxury"
)

// ValidActivityKinds is the canonical set of accepted activity kind strings.
var ValidActivityKinds = map[string]bool{
	"transport": true, "accommodation": true, "leisure": true,
}

// ValidTransportModes is the canonical set of accepted transport mode strings.
var ValidTransportModes = map[string]bool{
	"train": true, "bus": true, "plane": true, "car": true,
}

// ValidAccommodationClasses is the canonical set of accepted accommodation class strings.
var ValidAccommodationClasses = map[string]bool{
	"hostel": true, "standard": true, "comfort": true, "luxury": true,
}
