package domain

// AvailableInterests is the fixed vocabulary the backend accepts.
var AvailableInterests = []string{
	"Fitness",
	"Learning",
	"Movies",
	"Music",
	"Reading",
	"Gaming",
	"Art",
	"Cooking",
	"Meditation",
	"Travel",
}

func KnownInterest(label string) bool {
	for _, interest := range AvailableInterests {
		if interest == label {
			return true
		}
	}
	return false
}

// ToggleInterest flips one label in the selection: present labels are
// removed, absent ones appended. Selection order is preserved for the
// labels that remain.
func ToggleInterest(selection []string, label string) []string {
	for i, selected := range selection {
		if selected == label {
			result := make([]string, 0, len(selection)-1)
			result = append(result, selection[:i]...)
			return append(result, selection[i+1:]...)
		}
	}

	result := make([]string, 0, len(selection)+1)
	result = append(result, selection...)
	return append(result, label)
}

type GateStatus int

const (
	// GateClosed routes the user through interest selection first.
	GateClosed GateStatus = iota
	// GateOpen admits the user straight to the workflow.
	GateOpen
)

func (g GateStatus) String() string {
	if g == GateOpen {
		return "open"
	}
	return "closed"
}
