package kml

import "reflect"

// View is the union of the camera-position elements a feature may carry.
type View interface {
	Object
	view()
}

// BaseView carries the position and orientation fields shared by Camera and
// LookAt.
type BaseView struct {
	BaseObject
	Longitude    *float64
	Latitude     *float64
	Altitude     *float64
	Heading      *float64
	Tilt         *float64
	AltitudeMode *AltitudeMode
}

// Camera defines the viewer's position and orientation directly.
type Camera struct {
	BaseView
	Roll *float64
}

func (*Camera) view() {}

// LookAt defines the viewer relative to a point being looked at.
type LookAt struct {
	BaseView
	Range *float64
}

func (*LookAt) view() {}

func registerViewFloat(proto Object, attrName, node string) {
	defaultRegistry.Register(proto, RegistryItem{
		NSIDs:      []string{NSKML, ""},
		Classes:    []reflect.Type{reflect.TypeOf(float64(0))},
		AttrName:   attrName,
		Node:       node,
		GetKwarg:   SubelementFloatKwarg,
		SetElement: FloatSubelement,
	})
}

func init() {
	defaultRegistry.RegisterType(&BaseView{}, TypeSpec{
		Parent: &BaseObject{},
		NSID:   NSKML,
	})
	registerViewFloat(&BaseView{}, "Longitude", "longitude")
	registerViewFloat(&BaseView{}, "Latitude", "latitude")
	registerViewFloat(&BaseView{}, "Altitude", "altitude")
	registerViewFloat(&BaseView{}, "Heading", "heading")
	registerViewFloat(&BaseView{}, "Tilt", "tilt")
	defaultRegistry.Register(&BaseView{}, RegistryItem{
		NSIDs:      []string{NSKML, NSGX},
		Classes:    []reflect.Type{reflect.TypeOf(AltitudeMode(0))},
		AttrName:   "AltitudeMode",
		Node:       "altitudeMode",
		GetKwarg:   SubelementEnumKwarg,
		SetElement: EnumSubelement,
	})

	defaultRegistry.RegisterType(&Camera{}, TypeSpec{
		Parent: &BaseView{},
		NSID:   NSKML,
		Node:   "Camera",
		New:    func() Object { return &Camera{} },
	})
	registerViewFloat(&Camera{}, "Roll", "roll")

	defaultRegistry.RegisterType(&LookAt{}, TypeSpec{
		Parent: &BaseView{},
		NSID:   NSKML,
		Node:   "LookAt",
		New:    func() Object { return &LookAt{} },
	})
	registerViewFloat(&LookAt{}, "Range", "range")
}
