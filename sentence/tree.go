package sentence

import "sort"

// Tree provides structural navigation over the tokens of one sentence.
//
// It is an index arena over the (immutable) token slice: every method returns
// token indexes, and Token() resolves an index back to the token value. The
// tree never modifies the tokens, and tokens keep belonging to the Doc they
// were parsed into.
//
// Head references can form cycles on malformed parses, and conjunct links are
// cross-links rather than parent/child edges. Every walk that follows head or
// conjunct links is therefore guarded with a visited set.
type Tree struct {
	tokens   []Token
	children [][]int
}

// NewTree builds the navigation index for the tokens of one sentence.
// Tokens must be ordered by Index, which is how the parser exports them.
func NewTree(tokens []Token) *Tree {
	t := &Tree{
		tokens:   tokens,
		children: make([][]int, len(tokens)),
	}

	for i, tok := range tokens {
		if t.isRootAt(i) {
			continue
		}

		head := tok.Head
		if head < 0 || head >= len(tokens) {
			continue
		}

		t.children[head] = append(t.children[head], i)
	}

	return t
}

func (t *Tree) Len() int {
	return len(t.tokens)
}

func (t *Tree) Token(i int) Token {
	return t.tokens[i]
}

func (t *Tree) Tokens() []Token {
	return t.tokens
}

// Head returns the index of the head of token i. For the root it returns i
// itself.
func (t *Tree) Head(i int) int {
	head := t.tokens[i].Head
	if head < 0 || head >= len(t.tokens) {
		return i
	}

	return head
}

func (t *Tree) isRootAt(i int) bool {
	tok := t.tokens[i]
	if tok.Head == tok.Index {
		return true
	}

	return tok.Dep == "ROOT" || tok.Dep == "root"
}

// IsRoot reports whether token i is the sentence root.
func (t *Tree) IsRoot(i int) bool {
	return t.isRootAt(i)
}

// Children returns the indexes of the direct children of token i, ordered by
// sentence position.
func (t *Tree) Children(i int) []int {
	return t.children[i]
}

// Lefts returns the children of i that appear before it in the sentence.
func (t *Tree) Lefts(i int) []int {
	var lefts []int
	for _, c := range t.children[i] {
		if c < i {
			lefts = append(lefts, c)
		}
	}

	return lefts
}

// Rights returns the children of i that appear after it in the sentence.
func (t *Tree) Rights(i int) []int {
	var rights []int
	for _, c := range t.children[i] {
		if c > i {
			rights = append(rights, c)
		}
	}

	return rights
}

// Ancestors returns the chain of heads of token i, nearest first, up to the
// sentence root. A visited set guards against head cycles in malformed
// parses.
func (t *Tree) Ancestors(i int) []int {
	var ancestors []int

	visited := map[int]bool{i: true}
	for cur := i; !t.isRootAt(cur); {
		head := t.Head(cur)
		if visited[head] {
			break
		}

		visited[head] = true
		ancestors = append(ancestors, head)
		cur = head
	}

	return ancestors
}

// Conjuncts returns the coordinated siblings of token i, excluding i itself,
// ordered by sentence position.
//
// Coordination is represented as a "conj" chain hanging off the first
// coordinated token. The whole coordination is found by walking up the chain
// to its start and then collecting every "conj" descendant of it.
func (t *Tree) Conjuncts(i int) []int {
	// walk to the start of the coordination
	start := i
	visited := map[int]bool{start: true}
	for t.tokens[start].Dep == "conj" && !t.isRootAt(start) {
		head := t.Head(start)
		if visited[head] {
			break
		}

		visited[head] = true
		start = head
	}

	seen := map[int]bool{}
	var chain []int
	t.collectConjChain(start, seen, &chain)

	var conjuncts []int
	for _, c := range chain {
		if c != i {
			conjuncts = append(conjuncts, c)
		}
	}

	sort.Ints(conjuncts)
	return conjuncts
}

func (t *Tree) collectConjChain(i int, seen map[int]bool, chain *[]int) {
	if seen[i] {
		return
	}

	seen[i] = true
	*chain = append(*chain, i)

	for _, c := range t.children[i] {
		if t.tokens[c].Dep == "conj" {
			t.collectConjChain(c, seen, chain)
		}
	}
}

// Subtree returns the indexes of token i and all its descendants, ordered by
// sentence position.
func (t *Tree) Subtree(i int) []int {
	seen := map[int]bool{}
	var sub []int
	t.collectSubtree(i, seen, &sub)

	sort.Ints(sub)
	return sub
}

func (t *Tree) collectSubtree(i int, seen map[int]bool, sub *[]int) {
	if seen[i] {
		return
	}

	seen[i] = true
	*sub = append(*sub, i)

	for _, c := range t.children[i] {
		t.collectSubtree(c, seen, sub)
	}
}

// Root returns the index of the sentence root, or -1 for an empty sentence.
func (t *Tree) Root() int {
	for i := range t.tokens {
		if t.isRootAt(i) {
			return i
		}
	}

	if len(t.tokens) > 0 {
		return 0
	}

	return -1
}
