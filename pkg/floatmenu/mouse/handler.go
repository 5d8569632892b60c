package mouse

import tea "github.com/charmbracelet/bubbletea"

// ActionType classifies a mouse message after hit testing.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// Action is the result of HandleMouse.
type Action struct {
	Type   ActionType
	Region *Region // nil when the pointer is over no region
	X, Y   int
}

// Handler turns raw mouse messages into actions against a HitMap.
type Handler struct {
	HitMap *HitMap
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse classifies msg. Only left presses count as clicks; releases
// and other buttons yield ActionNone.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	action := Action{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			action.Type = ActionClick
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
	}
	return action
}

// Clear drops all hit regions.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
