/*
File: mathnote/handlers/nodes.go

CallNode is the generic shape the default handlers in this package build.
It is not one of the core's fixed tags (package ast) — it is exactly the
"any additional fields the handlers produce are preserved verbatim" case
spec.md §6 describes, kept here rather than in package ast to keep that
boundary honest: the core never constructs a CallNode itself.
*/
package handlers

import "github.com/mathnote/mathnote/ast"

// CallNode is what every default handler in this package returns: the
// resolved handler name (e.g. "\frac", "\sqrt", "\vec"), its mandatory
// arguments, and its optional arguments in call order.
type CallNode struct {
	Name      string
	Mandatory []ast.Node
	Optional  []ast.Node
}

func (c *CallNode) Tag() string { return c.Name }
