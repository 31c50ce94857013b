package bst

import (
	"fmt"
	"strconv"
	"strings"
)

// FromTuple builds a Node tree from its nested representation:
//
//	nil              → empty tree
//	int              → leaf with that key
//	Tuple / [3]any   → (left, key, right); key must be an int
//
// Returns ErrBadTuple for any other shape.
func FromTuple(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case int:
		return &Node{Key: x}, nil
	case Tuple:
		return fromTriple(x[0], x[1], x[2])
	case [3]any:
		return fromTriple(x[0], x[1], x[2])
	default:
		return nil, fmt.Errorf("%w: unexpected %T", ErrBadTuple, v)
	}
}

func fromTriple(l, k, r any) (*Node, error) {
	key, ok := k.(int)
	if !ok {
		return nil, fmt.Errorf("%w: key must be int, got %T", ErrBadTuple, k)
	}
	left, err := FromTuple(l)
	if err != nil {
		return nil, err
	}
	right, err := FromTuple(r)
	if err != nil {
		return nil, err
	}

	return &Node{Key: key, Left: left, Right: right}, nil
}

// ToTuple is the inverse of FromTuple: nil for an empty tree, a bare int for
// a leaf, otherwise Tuple{left, key, right}.
func ToTuple(n *Node) any {
	if n == nil {
		return nil
	}
	if n.Left == nil && n.Right == nil {
		return n.Key
	}

	return Tuple{ToTuple(n.Left), n.Key, ToTuple(n.Right)}
}

// FormatTuple renders a tuple value in the lesson's textual notation,
// e.g. "((1, 3, None), 2, None)".
func FormatTuple(v any) string {
	var b strings.Builder
	formatTuple(&b, v)

	return b.String()
}

func formatTuple(b *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		b.WriteString("None")
	case int:
		b.WriteString(strconv.Itoa(x))
	case Tuple:
		b.WriteByte('(')
		formatTuple(b, x[0])
		b.WriteString(", ")
		formatTuple(b, x[1])
		b.WriteString(", ")
		formatTuple(b, x[2])
		b.WriteByte(')')
	case [3]any:
		formatTuple(b, Tuple(x))
	default:
		fmt.Fprintf(b, "%v", x)
	}
}

// ParseTuple reads the textual notation produced by FormatTuple.
// Grammar (whitespace is ignored):
//
//	value := "None" | "nil" | "" | integer | "(" value "," value "," value ")"
//
// An empty value between separators is an empty subtree, so "(,2,)" parses.
func ParseTuple(s string) (any, error) {
	p := &tupleParser{src: s}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: trailing input at %d", ErrBadTuple, p.pos)
	}

	return v, nil
}

// tupleParser is a recursive-descent reader over the tuple grammar.
type tupleParser struct {
	src string
	pos int
}

func (p *tupleParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *tupleParser) value() (any, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, nil
	}
	switch c := p.src[p.pos]; {
	case c == '(':
		p.pos++
		var parts Tuple
		for i := 0; i < 3; i++ {
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			parts[i] = v
			p.skipSpace()
			want := byte(',')
			if i == 2 {
				want = ')'
			}
			if p.pos >= len(p.src) || p.src[p.pos] != want {
				return nil, fmt.Errorf("%w: expected %q at %d", ErrBadTuple, want, p.pos)
			}
			p.pos++
		}
		if _, ok := parts[1].(int); !ok {
			return nil, fmt.Errorf("%w: tuple key must be an integer", ErrBadTuple)
		}

		return parts, nil
	case c == ',' || c == ')':
		return nil, nil
	case c == '-' || (c >= '0' && c <= '9'):
		start := p.pos
		p.pos++
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		n, err := strconv.Atoi(p.src[start:p.pos])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadTuple, err)
		}

		return n, nil
	default:
		for _, word := range []string{"None", "nil"} {
			if strings.HasPrefix(p.src[p.pos:], word) {
				p.pos += len(word)
				return nil, nil
			}
		}

		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrBadTuple, c, p.pos)
	}
}

// InsertNode inserts key into the BST rooted at n and returns the new root.
// Duplicates go to the right subtree.
func InsertNode(n *Node, key int) *Node {
	if n == nil {
		return &Node{Key: key}
	}
	if key < n.Key {
		n.Left = InsertNode(n.Left, key)
	} else {
		n.Right = InsertNode(n.Right, key)
	}

	return n
}

// FromKeys builds a BST by inserting keys in the given order.
func FromKeys(keys ...int) *Node {
	var root *Node
	for _, k := range keys {
		root = InsertNode(root, k)
	}

	return root
}

// BalancedFromSorted builds a minimal-height BST from ascending keys.
func BalancedFromSorted(keys []int) *Node {
	if len(keys) == 0 {
		return nil
	}
	mid := len(keys) / 2

	return &Node{
		Key:   keys[mid],
		Left:  BalancedFromSorted(keys[:mid]),
		Right: BalancedFromSorted(keys[mid+1:]),
	}
}

// InOrderNode returns the keys of n in left-root-right order.
func InOrderNode(n *Node) []int {
	var out []int
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Key)
		walk(n.Right)
	}
	walk(n)

	return out
}

// IsBSTNode reports whether an in-order walk of n is non-decreasing, which
// holds for every tree built by InsertNode.
func IsBSTNode(n *Node) bool {
	keys := InOrderNode(n)
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			return false
		}
	}

	return true
}

// NodeHeight returns the number of levels below and including n.
func NodeHeight(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + max(NodeHeight(n.Left), NodeHeight(n.Right))
}

// Info computes the shape statistics of the tree rooted at n.
func Info(n *Node) Stats {
	var total, leaves int
	var count func(*Node)
	count = func(n *Node) {
		if n == nil {
			return
		}
		total++
		if n.Left == nil && n.Right == nil {
			leaves++
			return
		}
		count(n.Left)
		count(n.Right)
	}
	count(n)

	return Stats{
		Height:   NodeHeight(n),
		Nodes:    total,
		Leaves:   leaves,
		Internal: total - leaves,
	}
}
