package problems

import (
	"github.com/katalvlaran/lvldsa/linkedlist"
	"github.com/katalvlaran/lvldsa/stack"
)

var closing = map[rune]rune{')': '(', ']': '[', '}': '{'}

// ValidParentheses reports whether every bracket in s is closed in the right
// order. Runes other than ()[]{} are ignored.
func ValidParentheses(s string) bool {
	var open stack.Stack[rune]
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			open.Push(r)
		case ')', ']', '}':
			top, err := open.Pop()
			if err != nil || top != closing[r] {
				return false
			}
		}
	}

	return open.IsEmpty()
}

// MergeSortedLists merges two ascending lists into a new ascending list.
// Equal values take from a first; the inputs are left unchanged.
func MergeSortedLists(a, b *linkedlist.List[int]) *linkedlist.List[int] {
	out := linkedlist.New[int]()
	var x, y *linkedlist.Node[int]
	if a != nil {
		x = a.Head()
	}
	if b != nil {
		y = b.Head()
	}
	for x != nil && y != nil {
		if y.Value < x.Value {
			out.PushBack(y.Value)
			y = y.Next
		} else {
			out.PushBack(x.Value)
			x = x.Next
		}
	}
	for ; x != nil; x = x.Next {
		out.PushBack(x.Value)
	}
	for ; y != nil; y = y.Next {
		out.PushBack(y.Value)
	}

	return out
}
