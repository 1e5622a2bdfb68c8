package shift

type ShiftType string

const (
	TypeMorning   ShiftType = "morning"
	TypeAfternoon ShiftType = "afternoon"
	TypeNight     ShiftType = "night"
	TypeOff       ShiftType = "off"
	TypeVacation  ShiftType = "vacation"
	TypeSick      ShiftType = "sick"
	TypePermit    ShiftType = "permit"
)

var ShiftTypeValues = []string{
	string(TypeMorning),
	string(TypeAfternoon),
	string(TypeNight),
	string(TypeOff),
	string(TypeVacation),
	string(TypeSick),
	string(TypePermit),
}

// WorkingTypes are the shift types that count as being on duty, in the fixed
// order the report's summary section uses.
var WorkingTypes = []ShiftType{TypeMorning, TypeAfternoon, TypeNight}

// IsWorking reports whether the type is an on-duty shift.
func (t ShiftType) IsWorking() bool {
	return t == TypeMorning || t == TypeAfternoon || t == TypeNight
}

// Assignment is the shift recorded for one worker on one day. Days without a
// stored assignment resolve to the zero value Default().
type Assignment struct {
	Type  ShiftType
	Place string
	// CoveringID names the resting worker this shift is relieving. Only
	// meaningful on working types; a dangling id resolves as "no coverage".
	CoveringID string
}

// Default is the assignment for any (worker, day) pair with no stored entry.
func Default() Assignment {
	return Assignment{Type: TypeOff}
}

// Key addresses one assignment in a Map.
type Key struct {
	WorkerID string
	Day      string // dateutil day key
}

// Map is a sparse snapshot of assignments for some span of days.
type Map map[Key]Assignment

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
