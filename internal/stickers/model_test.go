package stickers

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func testPacks() []Pack {
	return []Pack{
		{ID: "aaaaaaaa1111", Key: "k1", Title: "Bandit the Cat", Author: "Agnes", Count: 24},
		{ID: "bbbbbbbb2222", Key: "k2", Title: "Chug the Mouse", Author: "Cassie", Count: 20, Status: StatusInstalled},
		{ID: "cccccccc3333", Key: "k3", Title: "Cozy Cats", Author: "Mira", Count: 30},
	}
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.Packs == nil {
		opts.Packs = testPacks()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = func(string) error { return nil }
	}
	m, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.View()
	return m
}

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	m.View()
	return cmd
}

func openCount(m *Model) int {
	n := 0
	for _, menu := range m.menus {
		if menu.IsOpen() {
			n++
		}
	}
	return n
}

func TestKeyboardOpenAndInstall(t *testing.T) {
	m := newTestModel(t, Options{})

	send(m, keyEnter)
	menu := m.Menu(0)
	if !menu.IsOpen() {
		t.Fatal("Enter on a focused row should open its menu")
	}
	if idx, ok := menu.FocusedIndex(); !ok || idx != 0 {
		t.Fatalf("FocusedIndex = %d, %v; want 0, true", idx, ok)
	}

	send(m, keyEnter)
	if menu.IsOpen() {
		t.Error("menu should close after a selection")
	}
	if got := m.Visible()[0].Status; got != StatusInstalled {
		t.Errorf("status = %v, want installed", got)
	}
	if got := m.Status(); got != "Installed Bandit the Cat" {
		t.Errorf("Status() = %q", got)
	}
	if got := menu.Options()[0].Value; got != ActionUninstall {
		t.Errorf("first option after install = %q, want uninstall", got)
	}
}

func TestSpaceOpensMenu(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, keySpace)
	if !m.Menu(0).IsOpen() {
		t.Error("Space on a focused row should open its menu")
	}
}

func TestUninstallInstalledPack(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, keyDown)
	if m.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", m.Cursor())
	}

	send(m, keyEnter)
	send(m, keyEnter)
	if got := m.Visible()[1].Status; got != StatusAvailable {
		t.Errorf("status = %v, want available", got)
	}
}

func TestMouseOpenSwitchesRows(t *testing.T) {
	m := newTestModel(t, Options{})

	second := m.Menu(1).TriggerBounds()
	if second.Empty() {
		t.Fatal("trigger bounds not recorded by View")
	}
	send(m, press(second.X, second.Y))
	if !m.Menu(1).IsOpen() {
		t.Fatal("click on the trigger should open the menu")
	}
	if _, ok := m.Menu(1).FocusedIndex(); ok {
		t.Error("pointer activation should not focus an option")
	}
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor())
	}

	first := m.Menu(0).TriggerBounds()
	send(m, press(first.X, first.Y))
	if !m.Menu(0).IsOpen() || m.Menu(1).IsOpen() {
		t.Errorf("open = [%v %v], want [true false]", m.Menu(0).IsOpen(), m.Menu(1).IsOpen())
	}
	if n := openCount(m); n != 1 {
		t.Errorf("%d menus open, want 1", n)
	}
	if m.OpenMenu() != m.Menu(0) {
		t.Error("OpenMenu should track the row menu that opened last")
	}
}

func TestOutsideClickClosesMenu(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, keyEnter)

	send(m, press(0, 0))
	if m.Menu(0).IsOpen() {
		t.Error("click outside should close the menu")
	}
	if m.coord.Active() {
		t.Error("coordinator should be cleared")
	}
	if m.outside.Len() != 0 {
		t.Errorf("outside registrations = %d, want 0", m.outside.Len())
	}
}

func TestMouseSelectsOption(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, keyEnter)

	panel := m.Menu(0).PanelBounds()
	if panel.Empty() {
		t.Fatal("panel bounds not recorded")
	}
	// Border, title, then the first option.
	send(m, press(panel.X+2, panel.Y+2))
	if m.Menu(0).IsOpen() {
		t.Error("click on an option should close the menu")
	}
	if got := m.Visible()[0].Status; got != StatusInstalled {
		t.Errorf("status = %v, want installed", got)
	}
}

func TestMovingRowFocusClosesOpenMenu(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, keyEnter)

	send(m, runes("j"))
	if m.Menu(0).IsOpen() {
		t.Error("moving focus to another row should close the menu")
	}
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor())
	}
	if !m.Menu(1).TriggerFocused() || m.Menu(0).TriggerFocused() {
		t.Error("trigger focus should follow the cursor")
	}
}

func TestEscapeClosesMenuWithoutAction(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, keyEnter)
	send(m, keyEsc)

	if m.Menu(0).IsOpen() {
		t.Error("Escape should close the menu")
	}
	if m.Status() != "" {
		t.Errorf("Status() = %q, want empty", m.Status())
	}
	if got := m.Visible()[0].Status; got != StatusAvailable {
		t.Errorf("status = %v, want unchanged", got)
	}
}

func TestCopyLink(t *testing.T) {
	var copied string
	m := newTestModel(t, Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}})

	send(m, keyEnter)
	send(m, keyDown)
	cmd := send(m, keyEnter)
	if cmd == nil {
		t.Fatal("copy should return a command")
	}
	send(m, cmd())

	if !strings.Contains(copied, "pack_id=aaaaaaaa1111") || !strings.Contains(copied, "pack_key=k1") {
		t.Errorf("copied %q", copied)
	}
	if got := m.Status(); got != "Copied link for Bandit the Cat" {
		t.Errorf("Status() = %q", got)
	}
}

func TestCopyLinkError(t *testing.T) {
	m := newTestModel(t, Options{Clipboard: func(string) error {
		return errors.New("no clipboard")
	}})

	send(m, keyEnter)
	send(m, keyDown)
	cmd := send(m, keyEnter)
	send(m, cmd())

	if m.Status() != "no clipboard" || !m.statusErr {
		t.Errorf("Status() = %q, err = %v", m.Status(), m.statusErr)
	}
}

func TestDetailsAction(t *testing.T) {
	m := newTestModel(t, Options{})

	send(m, keyEnter)
	for range 3 {
		send(m, keyDown)
	}
	send(m, keyEnter)
	if !m.showDetails || m.details == "" {
		t.Fatal("details should be showing")
	}

	send(m, keyEsc)
	if m.showDetails {
		t.Error("Escape should hide details")
	}
}

func TestFilter(t *testing.T) {
	m := newTestModel(t, Options{})

	send(m, runes("/"))
	if !m.filtering {
		t.Fatal("/ should start filtering")
	}
	send(m, runes("cat"))

	var titles []string
	for _, p := range m.Visible() {
		titles = append(titles, p.Title)
	}
	want := []string{"Bandit the Cat", "Cozy Cats"}
	if diff := cmp.Diff(want, titles, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("visible (-want +got):\n%s", diff)
	}
	if !m.Menu(0).TriggerFocused() {
		t.Error("first visible row should take trigger focus")
	}

	send(m, keyEsc)
	if m.filtering || len(m.Visible()) != 3 {
		t.Errorf("Escape should clear the filter, visible = %d", len(m.Visible()))
	}
}

func TestFilterNoMatches(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, runes("/"))
	send(m, runes("zzz"))

	if len(m.Visible()) != 0 {
		t.Fatalf("visible = %d, want 0", len(m.Visible()))
	}
	if view := m.View(); !strings.Contains(view, `No sticker packs match "zzz"`) {
		t.Errorf("view missing empty message:\n%s", view)
	}
	// Nothing to open.
	send(m, keyEnter)
	if openCount(m) != 0 {
		t.Error("no menu should open without rows")
	}
}

func TestFilterClosesOpenMenu(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, keyEnter)
	send(m, runes("/"))

	if openCount(m) != 0 {
		t.Error("starting a filter should close the open menu")
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runes("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, Options{})
			cmd := send(m, tt.msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
		})
	}
}

func TestViewRowsAndBadges(t *testing.T) {
	m := newTestModel(t, Options{})
	view := m.View()

	for _, want := range []string{"Sticker packs", "Bandit the Cat", "24 stickers", "Installed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	for i := range m.Visible() {
		b := m.Menu(i).TriggerBounds()
		if b.Y != headerLines+i || b.X+b.W != 80 {
			t.Errorf("row %d trigger bounds = %+v", i, b)
		}
	}
}

func TestViewShowsOpenPanel(t *testing.T) {
	m := newTestModel(t, Options{})
	send(m, keyEnter)

	view := m.View()
	for _, want := range []string{"Install", "Copy link", "Forward", "View details"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if n := len(strings.Split(view, "\n")); n != 24 {
		t.Errorf("view has %d lines, want 24", n)
	}
}

func TestLocalizedView(t *testing.T) {
	m := newTestModel(t, Options{Locale: "de_DE.UTF-8"})
	view := m.View()

	for _, want := range []string{"Sticker-Sets", "24 Sticker", "Installiert"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	send(m, keyEnter)
	if got := m.Menu(0).Options()[0].Label; got != "Installieren" {
		t.Errorf("first option = %q", got)
	}
}
