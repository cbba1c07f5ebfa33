// Package semantic defines the business-level classes of detectable objects,
// decoupled from any particular model's class indices.
package semantic

import "strings"

// Label is a semantic class of detectable object.
type Label string

// The known detectable classes. Anything else maps to LabelUnknown.
const (
	LabelCar        Label = "car"
	LabelTruck      Label = "truck"
	LabelBus        Label = "bus"
	LabelMotorcycle Label = "motorcycle"
	LabelBicycle    Label = "bicycle"
	LabelPedestrian Label = "pedestrian"
	LabelUnknown    Label = "unknown"
)

var knownLabels = map[string]Label{
	string(LabelCar):        LabelCar,
	string(LabelTruck):      LabelTruck,
	string(LabelBus):        LabelBus,
	string(LabelMotorcycle): LabelMotorcycle,
	string(LabelBicycle):    LabelBicycle,
	string(LabelPedestrian): LabelPedestrian,
	string(LabelUnknown):    LabelUnknown,
}

// Class indices as emitted by the detection model.
var classIDLabels = map[int]Label{
	0: LabelPedestrian,
	1: LabelBicycle,
	2: LabelCar,
	3: LabelMotorcycle,
	4: LabelBus,
	5: LabelTruck,
}

// LabelFromString maps a case-insensitive class name to its Label, falling
// back to LabelUnknown.
func LabelFromString(s string) Label {
	if l, ok := knownLabels[strings.ToLower(s)]; ok {
		return l
	}
	return LabelUnknown
}

// LabelFromClassID maps a model class index to its Label, falling back to
// LabelUnknown.
func LabelFromClassID(id int) Label {
	if l, ok := classIDLabels[id]; ok {
		return l
	}
	return LabelUnknown
}

func (l Label) String() string {
	return string(l)
}
