package extract

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// GrammarExtractor parses source files with tree-sitter and collects every
// class and function definition name from the syntax tree. The traversal is
// unscoped: nested classes, methods, and decorated definitions all count,
// at any depth.
type GrammarExtractor struct {
	language     *sitter.Language
	classNode    string
	functionNode string
}

// NewPythonExtractor returns the grammar-based extractor for Python sources.
func NewPythonExtractor() *GrammarExtractor {
	return &GrammarExtractor{
		language:     python.GetLanguage(),
		classNode:    "class_definition",
		functionNode: "function_definition",
	}
}

// Extract parses src and walks the full tree. A tree containing error nodes
// yields a *ParseError; no partial symbols are returned for malformed input.
func (g *GrammarExtractor) Extract(path string, src []byte) (Symbols, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(g.language)

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return Symbols{}, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return Symbols{}, &ParseError{Path: path, Line: firstErrorLine(root)}
	}

	var syms Symbols
	walk(root, func(n *sitter.Node) {
		name := n.ChildByFieldName("name")
		if name == nil {
			return
		}
		switch n.Type() {
		case g.classNode:
			syms.Classes = append(syms.Classes, name.Content(src))
		case g.functionNode:
			syms.Functions = append(syms.Functions, name.Content(src))
		}
	})

	return syms, nil
}

// walk visits every named node in depth-first pre-order, so collected names
// appear in source order.
func walk(n *sitter.Node, visit func(*sitter.Node)) {
	visit(n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walk(n.NamedChild(i), visit)
	}
}

func firstErrorLine(root *sitter.Node) int {
	line := 0
	walk(root, func(n *sitter.Node) {
		if line == 0 && (n.Type() == "ERROR" || n.IsMissing()) {
			line = int(n.StartPoint().Row) + 1
		}
	})
	return line
}
