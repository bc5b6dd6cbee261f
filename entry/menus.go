package entry

import "github.com/nspire-go/neda/eval"

func b(s string) []byte { return []byte(s) }

// trigMenu lists the Trig overlay's fixed entries (§4.2).
func trigMenu() *overlay {
	return newOverlay([]overlayItem{
		{Label: "sin(", Insert: b("sin(")},
		{Label: "cos(", Insert: b("cos(")},
		{Label: "tan(", Insert: b("tan(")},
		{Label: "asin(", Insert: b("asin(")},
		{Label: "acos(", Insert: b("acos(")},
		{Label: "atan(", Insert: b("atan(")},
	}, 6)
}

// constMenu lists the Const overlay's fixed entries.
func constMenu() *overlay {
	return newOverlay([]overlayItem{
		{Label: "pi", Insert: b("pi")},
		{Label: "e", Insert: b("e")},
	}, 6)
}

// funcMenu lists the Func overlay's builtin-function shortcuts.
func funcMenu() *overlay {
	return newOverlay([]overlayItem{
		{Label: "sqrt(", Insert: b("sqrt(")},
		{Label: "abs(", Insert: b("abs(")},
		{Label: "log(", Insert: b("log(")},
		{Label: "ln(", Insert: b("ln(")},
		{Label: "solve(", Insert: b("solve(")},
		{Label: "linReg(", Insert: b("linReg(")},
	}, 6)
}

// recallMenu lists currently-defined variables and functions, sourced
// from the live environment (§4.2.2's "selector_index and scrolling_index
// track the on-screen list").
func recallMenu(env *eval.Environment) *overlay {
	var items []overlayItem
	for name := range env.Vars {
		items = append(items, overlayItem{Label: name, Insert: b(name)})
	}
	for name, fn := range env.Funcs {
		items = append(items, overlayItem{Label: fn.DisplayName, Insert: b(name)})
	}
	return newOverlay(items, 6)
}

// clearVarMenu mirrors recallMenu but only lists variables, since
// ClearVar deletes a variable binding rather than inserting a reference.
func clearVarMenu(env *eval.Environment) *overlay {
	var items []overlayItem
	for name := range env.Vars {
		if name == "Ans" {
			continue
		}
		items = append(items, overlayItem{Label: name, Insert: b(name)})
	}
	return newOverlay(items, 6)
}

// periodicTableMenu is a small representative subset: the full 118-element
// table is static data out of scope for the expression core per §1
// ("periodic-table browser ... only their hooks into the expression core
// are specified").
func periodicTableMenu() *overlay {
	return newOverlay([]overlayItem{
		{Label: "H  Hydrogen", Insert: b("1.008")},
		{Label: "He Helium", Insert: b("4.0026")},
		{Label: "C  Carbon", Insert: b("12.011")},
		{Label: "O  Oxygen", Insert: b("15.999")},
		{Label: "Na Sodium", Insert: b("22.990")},
		{Label: "Fe Iron", Insert: b("55.845")},
	}, 6)
}
