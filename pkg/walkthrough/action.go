package walkthrough

// Action is a navigation request from an input layer. Input layers map
// their own events (keys, buttons, HTTP verbs) to actions so the controller
// never inspects labels or other display text.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionClose
)

var actionNames = map[Action]string{
	ActionNone:     "none",
	ActionNext:     "next",
	ActionPrevious: "previous",
	ActionClose:    "close",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps an action name back to an Action
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}
