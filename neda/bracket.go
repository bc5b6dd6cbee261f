package neda

// resolveBrackets matches LeftBracket/RightBracket children within a single
// container left-to-right (§4.1: "Brackets within a container look both
// sides in the same container for matching partners") and sizes each
// matched pair to the tallest expression strictly between them. An
// unmatched right bracket is left with Match == RefNil: per spec it "is
// consumed as a syntax atom at evaluation time, not at layout time", so at
// layout time it simply renders as a single glyph cell.
func (t *Tree) resolveBrackets(container *Node) {
	var stack []int // indices of unmatched LeftBracket children, within this container
	for i, ref := range container.Children {
		n := t.node(ref)
		switch n.Kind {
		case KindLeftBracket:
			n.Match = RefNil
			stack = append(stack, i)
		case KindRightBracket:
			if len(stack) == 0 {
				n.Match = RefNil
				continue
			}
			li := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			left := t.node(container.Children[li])
			left.Match = ref
			n.Match = container.Children[li]
			t.sizeBracketPair(container, li, i)
		}
	}
	// Anything left on the stack is an unmatched left bracket; leave as-is.
}

func (t *Tree) sizeBracketPair(container *Node, leftIdx, rightIdx int) {
	var tallest, tallestTop int
	for i := leftIdx + 1; i < rightIdx; i++ {
		_, h, top := t.dims(container.Children[i])
		if h > tallest {
			tallest = h
		}
		if top > tallestTop {
			tallestTop = top
		}
	}
	if tallest == 0 {
		tallest, tallestTop = 7, 3 // single glyph cell, nothing enclosed
	}
	left := t.node(container.Children[leftIdx])
	right := t.node(container.Children[rightIdx])
	left.Width, left.Height, left.TopSpacing = 3, tallest, tallestTop
	right.Width, right.Height, right.TopSpacing = 3, tallest, tallestTop
}
