package tree

import (
	"github.com/benz9527/xcoll/lib/infra"
)

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// rbtree properties:
// p1. Every node is either red or black.
// p2. All NIL children are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL children goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node has exactly one child, that child must be red,
//   otherwise its NIL descendants would sit at different black depths,
//   violating p4.

type rbNode[K infra.OrderedKey, V any] struct {
	parent *rbNode[K, V]
	left   *rbNode[K, V]
	right  *rbNode[K, V]
	key    K
	val    V
	color  RBColor
}

func (node *rbNode[K, V]) Key() K {
	return node.key
}

func (node *rbNode[K, V]) Val() V {
	return node.val
}

func (node *rbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *rbNode[K, V]) Left() RBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K, V]) Right() RBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K, V]) Parent() RBNode[K, V] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K, V]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *rbNode[K, V]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[K, V]) isRoot() bool {
	return node != nil && node.parent == nil
}

// detached reports whether the node was spliced out of its graph. Removal
// self-links the parent slot so a dangling position can never be mistaken
// for one at a live root.
func (node *rbNode[K, V]) detached() bool {
	return node != nil && node.parent == node
}

func (node *rbNode[K, V]) Direction() RBDirection {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K, V]) sibling() *rbNode[K, V] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:
	}
	return nil
}

func (node *rbNode[K, V]) hasSibling() bool {
	return !node.isRoot() && node.sibling() != nil
}

func (node *rbNode[K, V]) uncle() *rbNode[K, V] {
	return node.parent.sibling()
}

func (node *rbNode[K, V]) hasUncle() bool {
	return !node.isRoot() && node.parent.hasSibling()
}

func (node *rbNode[K, V]) grandpa() *rbNode[K, V] {
	return node.parent.parent
}

func (node *rbNode[K, V]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K, V]) minimum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K, V]) maximum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
// Amortized O(1) over a full reverse traversal: every edge is walked at
// most twice.
func (node *rbNode[K, V]) pred() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack to the ancestor reached through a right-child edge.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *rbNode[K, V]) succ() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to the ancestor reached through a left-child edge.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// deepCopy duplicates the whole subtree with fresh node identities,
// preserving keys, payloads and colors.
func (node *rbNode[K, V]) deepCopy(parent *rbNode[K, V]) *rbNode[K, V] {
	if node == nil {
		return nil
	}
	dup := &rbNode[K, V]{
		key:    node.key,
		val:    node.val,
		color:  node.color,
		parent: parent,
	}
	dup.left = node.left.deepCopy(dup)
	dup.right = node.right.deepCopy(dup)
	return dup
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (core *rbTreeCore[K, V]) leftRotate(x *rbNode[K, V]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		core.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (core *rbTreeCore[K, V]) rightRotate(x *rbNode[K, V]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		core.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	}
	y.parent = p
}

// transplant replaces the subtree rooted at u with the subtree rooted at v
// in u's owning slot. v may be nil.
func (core *rbTreeCore[K, V]) transplant(u, v *rbNode[K, V]) {
	switch u.Direction() {
	case Root:
		core.root = v
	case Left:
		u.parent.left = v
	case Right:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

i1: The parent P is black, nothing to fix.

i2: The parent P is red and P is the root, repaint P into black.

i3: Both the parent P and the uncle U are red. (red-violation)
Repainting G red may push the violation upward, recurse on G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

i4: The parent P is red, the uncle U is black and X is an inner child.
Rotate at P to reach the outer-child shape, then fall through to i5.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

i5: The parent P is red, the uncle U is black and X is an outer child.
One rotation at G and a repaint terminate the fixup.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (core *rbTreeCore[K, V]) insertRebalance(x *rbNode[K, V]) {
	for {
		if x.isRoot() {
			x.color = Black
			return
		}

		if /* i1 */ x.parent.isBlack() {
			return
		}

		if /* i2 */ x.parent.isRoot() {
			x.parent.color = Black
			return
		}

		if /* i3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		}

		dir := x.Direction()
		if /* i4 */ dir != x.parent.Direction() {
			p := x.parent
			switch dir {
			case Left:
				core.rightRotate(p)
			case Right:
				core.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert fixup inner child without direction (i4)")
			}
			x = p // enter i5 to fix
		}

		switch /* i5 */ x.parent.Direction() {
		case Left:
			core.rightRotate(x.grandpa())
		case Right:
			core.leftRotate(x.grandpa())
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert fixup outer child under a root parent (i5)")
		}

		x.parent.color = Black
		x.sibling().color = Red
		return
	}
}

// removeNode splices z out of the graph. Positions referencing the
// surviving nodes keep their meaning: a two-children removal moves the
// successor node into z's slot instead of swapping entries, so no live
// node is ever rebound to a different key.
func (core *rbTreeCore[K, V]) removeNode(z *rbNode[K, V]) {
	if z.detached() {
		panic( /* debug assertion */ "[rbtree] remove a node already spliced out")
	}

	// Replacement pointers for the cached extrema, resolved while z is
	// still linked.
	if core.min == z {
		core.min = z.succ()
	}
	if core.max == z {
		core.max = z.pred()
	}

	y := z
	yColor := y.color
	var x, xParent *rbNode[K, V]

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		core.transplant(z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		core.transplant(z, z.left)
	default:
		y = z.right.minimum()
		yColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			core.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		core.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		// The vacated slot keeps its color; the color of the physically
		// spliced-out node decides whether a fixup is required.
		y.color = z.color
	}

	// Unlink node. The self-linked parent slot marks it detached so a
	// dangling position fails its dereference check instead of reaching
	// the splice logic again.
	z.parent, z.left, z.right = z, nil, nil
	core.count--

	if yColor == Black {
		core.removeRebalance(x, xParent)
	}
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

X carries the missing black after a black node was spliced out. X may be a
NIL child, so its parent is threaded through the loop explicitly.
Sc is the sibling child on X's side (near nephew), Sd the opposite one.

rm1: The sibling S is red, so P, Sc and Sd must be black.
Rotate P toward X's side and swap the P/S colors; X's new sibling is
black, reducing to one of rm2-rm4.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: S, Sc and Sd are all black. Repaint S red to balance p4 locally and
move the missing black up to P; if P is red the loop exits and the final
repaint makes P black.

	  {P}             {P}
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: S is black, the near nephew Sc is red, the far nephew Sd is black.
Rotate at S away from X and swap S/Sc colors, producing a red far nephew
for rm4.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm4: S is black and the far nephew Sd is red. Rotate P toward X's side,
give S the parent's color, paint P and Sd black; terminate.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (core *rbTreeCore[K, V]) removeRebalance(x, parent *rbNode[K, V]) {
	for x != core.root && x.isBlack() {
		if x == parent.left {
			sib := parent.right
			if /* rm1 */ sib.isRed() {
				sib.color = Black
				parent.color = Red
				core.leftRotate(parent)
				sib = parent.right
			}
			if /* rm2 */ sib.left.isBlack() && sib.right.isBlack() {
				sib.color = Red
				x = parent
				parent = x.parent
			} else {
				if /* rm3 */ sib.right.isBlack() {
					sib.left.color = Black
					sib.color = Red
					core.rightRotate(sib)
					sib = parent.right
				}
				/* rm4 */
				sib.color = parent.color
				parent.color = Black
				if sib.right != nil {
					sib.right.color = Black
				}
				core.leftRotate(parent)
				x, parent = core.root, nil
			}
		} else {
			sib := parent.left
			if /* rm1 */ sib.isRed() {
				sib.color = Black
				parent.color = Red
				core.rightRotate(parent)
				sib = parent.left
			}
			if /* rm2 */ sib.left.isBlack() && sib.right.isBlack() {
				sib.color = Red
				x = parent
				parent = x.parent
			} else {
				if /* rm3 */ sib.left.isBlack() {
					sib.right.color = Black
					sib.color = Red
					core.leftRotate(sib)
					sib = parent.left
				}
				/* rm4 */
				sib.color = parent.color
				parent.color = Black
				if sib.left != nil {
					sib.left.color = Black
				}
				core.rightRotate(parent)
				x, parent = core.root, nil
			}
		}
	}
	if x != nil {
		x.color = Black
	}
}
