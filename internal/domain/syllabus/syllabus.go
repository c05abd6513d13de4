package syllabus

// Kind is the level of a node in the syllabus hierarchy.
type Kind string

const (
	KindPaper    Kind = "paper"
	KindTopic    Kind = "topic"
	KindSubtopic Kind = "subtopic"
)

// ChildKind returns the kind every child of k must have.
// Subtopics are leaves, so ok is false for them.
func (k Kind) ChildKind() (child Kind, ok bool) {
	switch k {
	case KindPaper:
		return KindTopic, true
	case KindTopic:
		return KindSubtopic, true
	default:
		return "", false
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindPaper || k == KindTopic || k == KindSubtopic
}

// Node is one unit of the curriculum: a paper, a topic or a subtopic.
// Nodes are values; the tree holds no parent back-references.
type Node struct {
	ID              string `json:"id" yaml:"id" validate:"required"`
	Name            string `json:"name" yaml:"name" validate:"required"`
	Code            string `json:"code,omitempty" yaml:"code"`
	Kind            Kind   `json:"kind" yaml:"kind" validate:"required,oneof=paper topic subtopic"`
	TargetQuestions int    `json:"target_questions" yaml:"target_questions"`
	Children        []Node `json:"children,omitempty" yaml:"children" validate:"dive"`
}

// Tree is the static syllabus: an ordered list of papers.
type Tree struct {
	Papers []Node `json:"papers" yaml:"papers" validate:"dive"`
}

// Walk visits every node depth-first in syllabus order. The parent is nil
// for papers. Returning false from fn skips the node's children.
func (t Tree) Walk(fn func(n Node, parent *Node) bool) {
	for i := range t.Papers {
		walk(&t.Papers[i], nil, fn)
	}
}

func walk(n *Node, parent *Node, fn func(Node, *Node) bool) {
	if !fn(*n, parent) {
		return
	}
	for i := range n.Children {
		walk(&n.Children[i], n, fn)
	}
}

// Find returns the node with the given id.
func (t Tree) Find(id string) (Node, bool) {
	var found Node
	ok := false
	t.Walk(func(n Node, _ *Node) bool {
		if ok {
			return false
		}
		if n.ID == id {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// Topics returns every topic node in syllabus order.
func (t Tree) Topics() []Node {
	var topics []Node
	t.Walk(func(n Node, _ *Node) bool {
		if n.Kind == KindTopic {
			topics = append(topics, n)
			return false
		}
		return true
	})
	return topics
}

// Size returns the number of nodes in the tree.
func (t Tree) Size() int {
	count := 0
	t.Walk(func(Node, *Node) bool {
		count++
		return true
	})
	return count
}
