// Package floatmenu provides a floating context menu for bubbletea programs:
// a trigger, a positioned option panel, keyboard navigation, and dismissal
// by selection, Escape, or interaction outside the menu.
//
// # Quick Start
//
//	coord := floatmenu.NewCoordinator()
//	outside := mouse.NewOutsideRegistry(nil)
//
//	m := floatmenu.New(floatmenu.Config[string]{
//	    Options: []floatmenu.Option[string]{
//	        {Label: "Install", Value: "install", Group: "state", OnClick: install},
//	        {Label: "Copy link", Value: "copy", Group: "share", OnClick: copyLink},
//	    },
//	    Coordinator: coord,
//	    Outside:     outside,
//	})
//
//	// In View(), after laying out the trigger:
//	m.SetTriggerBounds(mouse.Rect{X: col, Y: row, W: lipgloss.Width(trigger), H: 1})
//	frame = m.Overlay(frame, mouse.Rect{W: width, H: height})
//
//	// In Update():
//	if msg, ok := msg.(tea.MouseMsg); ok {
//	    outside.HandleMouse(msg)
//	}
//	if m.Update(msg) {
//	    return model, nil // consumed by the menu
//	}
//
// # Opening
//
// A pointer press on the trigger calls ActivateViaPointer and anchors the
// panel at the pointer. Enter or Space while the trigger has focus calls
// ActivateViaKeyboard, which anchors at the trigger's top-left corner and
// focuses the first option. Both feed the same open transition.
//
// # One open menu
//
// Menus sharing a Coordinator close each other: opening one calls the close
// callback of whichever menu currently holds the coordinator.
package floatmenu
