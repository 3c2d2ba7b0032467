package formula

import "github.com/cfdwalrus/deepfrac/dcomplex"

// NodeKind tags which of the six AST shapes below a Node is.
type NodeKind int

const (
	NodeNumber NodeKind = iota
	NodeComplex
	NodeVariable
	NodeBinary
	NodeUnary
	NodeCall
)

// Node is the tagged AST §4.H's parser produces. Only the fields relevant
// to Kind are populated; this mirrors a small tagged union without needing
// a type-switch over interface implementations for six trivial shapes.
type Node struct {
	Kind NodeKind
	Pos  int

	NumberValue  float64
	ComplexValue dcomplex.C

	Name string // NodeVariable's identifier, or NodeCall's function name

	Op    byte // NodeBinary/NodeUnary: '+' '-' '*' '/' '^'
	Left  *Node
	Right *Node

	Operand *Node // NodeUnary

	Args []*Node // NodeCall
}
