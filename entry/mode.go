// Package entry implements the expression-entry controller (§4.2): a
// mode-state-machine wrapping a neda.Cursor that translates key codes
// into tree edits, manages overlay menus, and keeps a small history of
// past results.
package entry

// Mode is one of the controller's top-level states (§4.2).
type Mode int

const (
	Normal Mode = iota
	Trig
	Const
	Config
	Func
	Recall
	Matrix
	Piecewise
	GraphSelect
	GraphSettings
	GraphViewer
	Logic
	ClearVar
	PeriodicTable
)

// isOverlay reports whether m is one of the scrolling-selection overlay
// modes sharing the single reusable overlay component (§4.2.2).
func isOverlay(m Mode) bool {
	switch m {
	case Trig, Const, Func, Recall, GraphSelect, ClearVar, PeriodicTable:
		return true
	default:
		return false
	}
}
