package floatmenu

// Trigger is the always-visible control that opens a menu. It is either a
// DefaultTrigger or a CustomTrigger.
type Trigger interface {
	isTrigger()
}

// DefaultTrigger renders a glyph button in the theme's trigger styles.
type DefaultTrigger struct {
	// Glyph defaults to "⋯".
	Glyph string
	// ShowLabel appends the localized trigger label to the glyph.
	ShowLabel bool
}

// CustomTrigger delegates trigger rendering to the caller.
type CustomTrigger struct {
	Render func(TriggerContext) string
}

func (DefaultTrigger) isTrigger() {}
func (CustomTrigger) isTrigger() {}

// TriggerContext is the state handed to a trigger renderer.
type TriggerContext struct {
	Open         bool
	Focused      bool // the trigger has keyboard focus
	FocusedIndex int  // -1 when no option is focused
	Label        string
	ClassName    string
}
