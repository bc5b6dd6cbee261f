package entry

import (
	"testing"

	"github.com/nspire-go/neda/glyph"
	"github.com/nspire-go/neda/keycode"
)

func newTestController() *Controller {
	return New(glyph.NewStore())
}

func pressDigits(c *Controller, s string) {
	for _, r := range s {
		c.HandleKey(keycode.KeyDigit0 + keycode.Code(r-'0'))
	}
}

func TestArithmeticEvaluate(t *testing.T) {
	c := newTestController()
	pressDigits(c, "1")
	c.HandleKey(keycode.KeyPlus)
	pressDigits(c, "2")
	c.HandleKey(keycode.KeyMul)
	pressDigits(c, "3")
	c.HandleKey(keycode.KeyEnter)

	if !c.ShowingResult() {
		t.Fatal("expected result display after Enter")
	}
	if c.resultErr != nil {
		t.Fatalf("unexpected eval error: %v", c.resultErr)
	}
}

func TestDeleteNoOpAtStart(t *testing.T) {
	c := newTestController()
	c.HandleKey(keycode.KeyDelete)
	if c.Tree.ChildCount(c.Tree.Root()) != 0 {
		t.Fatal("expected empty tree after no-op delete")
	}
}

func TestClearDropsResult(t *testing.T) {
	c := newTestController()
	pressDigits(c, "5")
	c.HandleKey(keycode.KeyEnter)
	if !c.ShowingResult() {
		t.Fatal("expected a result to show")
	}
	c.HandleKey(keycode.KeyClear)
	if c.ShowingResult() {
		t.Fatal("expected Clear to discard the result")
	}
}

func TestFreshExpressionSeedsAns(t *testing.T) {
	c := newTestController()
	pressDigits(c, "4")
	c.HandleKey(keycode.KeyEnter)
	c.HandleKey(keycode.KeyPlus) // a binary operator right after a result
	if c.ShowingResult() {
		t.Fatal("expected the old result to be discarded")
	}
	if c.Tree.ChildCount(c.Tree.Root()) != 2 {
		t.Fatalf("expected Ans + operator seeded, got %d children", c.Tree.ChildCount(c.Tree.Root()))
	}
}

func TestHistoryRing(t *testing.T) {
	c := newTestController()
	for i := 1; i <= historySize+2; i++ {
		c.Tree.Clear()
		c.Cursor = c.Tree.AtStart()
		pressDigits(c, "1")
		c.HandleKey(keycode.KeyEnter)
	}
	if c.history.count != historySize {
		t.Fatalf("expected ring to cap at %d, got %d", historySize, c.history.count)
	}
}

func TestOverlayConfirmInsertsText(t *testing.T) {
	c := newTestController()
	c.enterOverlay(Trig, trigMenu())
	c.HandleKey(keycode.KeyEnter)
	if c.Mode != Normal {
		t.Fatal("expected overlay confirm to return to Normal mode")
	}
	if c.Tree.ChildCount(c.Tree.Root()) == 0 {
		t.Fatal("expected the chosen menu text to be inserted")
	}
}

func TestMatrixScratchInsertsMatrix(t *testing.T) {
	c := newTestController()
	c.HandleKey(keycode.KeyMatrix)
	c.HandleKey(keycode.KeyDigit2)
	c.HandleKey(keycode.KeyDigit2)
	c.HandleKey(keycode.KeyEnter)
	if c.Mode != Normal {
		t.Fatal("expected Matrix scratch mode to return to Normal")
	}
	if c.Tree.ChildCount(c.Tree.Root()) != 1 {
		t.Fatal("expected exactly one matrix node inserted")
	}
}

func pressLetter(c *Controller, r byte) {
	c.HandleKey(keycode.KeyLetter(int(r - 'a')))
}

func TestFunctionDefinitionAndCall(t *testing.T) {
	c := newTestController()
	pressLetter(c, 'f')
	c.HandleKey(keycode.KeyLeftParen)
	pressLetter(c, 'x')
	c.HandleKey(keycode.KeyRightParen)
	c.HandleKey(keycode.KeyEquals)
	pressLetter(c, 'x')
	c.HandleKey(keycode.KeyExponent)
	pressDigits(c, "2")
	c.HandleKey(keycode.KeyEnter)
	if c.resultErr != nil {
		t.Fatalf("unexpected error defining f: %v", c.resultErr)
	}

	c.HandleKey(keycode.KeyClear)
	pressLetter(c, 'f')
	c.HandleKey(keycode.KeyLeftParen)
	pressDigits(c, "3")
	c.HandleKey(keycode.KeyRightParen)
	c.HandleKey(keycode.KeyEnter)
	if c.resultErr != nil {
		t.Fatalf("unexpected error calling f: %v", c.resultErr)
	}
}
