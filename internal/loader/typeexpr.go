package loader

import (
	"strings"

	"hidlgen/internal/ast"
	"hidlgen/internal/diag"
	"hidlgen/internal/source"
)

var scalarKinds = map[string]ast.ScalarKind{
	"bool":   ast.KindBool,
	"int8":   ast.KindInt8,
	"uint8":  ast.KindUint8,
	"int16":  ast.KindInt16,
	"uint16": ast.KindUint16,
	"int32":  ast.KindInt32,
	"uint32": ast.KindUint32,
	"int64":  ast.KindInt64,
	"uint64": ast.KindUint64,
	"float":  ast.KindFloat,
	"double": ast.KindDouble,
}

// ParseType turns a definition-file type expression into a Type. Supported:
// scalar names, string, handle, vec<...> (nested), and interface names
// (leading I + upper-case letter), which come back as unresolved NamedTypes.
func ParseType(expr string, span source.Span) (ast.Type, *ast.CheckError) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &ast.CheckError{
			Code: diag.TypeEmptyElement, Span: span,
			Msg: "empty type expression",
		}
	}

	if kind, ok := scalarKinds[expr]; ok {
		return &ast.ScalarType{Kind: kind}, nil
	}
	switch expr {
	case "string":
		return &ast.StringType{}, nil
	case "handle":
		return &ast.HandleType{}, nil
	}

	if inner, ok := strings.CutPrefix(expr, "vec<"); ok {
		elemExpr, ok := strings.CutSuffix(inner, ">")
		if !ok {
			return nil, &ast.CheckError{
				Code: diag.TypeUnclosedVec, Span: span,
				Msg: "unclosed vec<> in " + strings.TrimSpace(expr),
			}
		}
		elem, err := ParseType(elemExpr, span)
		if err != nil {
			return nil, err
		}
		return &ast.VecType{Elem: elem, Span: span}, nil
	}

	if isInterfaceName(expr) {
		return &ast.NamedType{Name: expr, Span: span}, nil
	}

	return nil, &ast.CheckError{
		Code: diag.TypeUnknown, Span: span,
		Msg: "unknown type name " + strings.TrimSpace(expr),
	}
}

func isInterfaceName(name string) bool {
	if len(name) < 2 || name[0] != 'I' {
		return false
	}
	c := name[1]
	if c < 'A' || c > 'Z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		ok := c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
		if !ok {
			return false
		}
	}
	return true
}
