// Package loader turns TOML interface definition files into checked-ready
// ast.Interface values. The full IDL grammar is out of scope; definitions
// arrive pre-structured and only type expressions need parsing.
package loader

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"

	"hidlgen/internal/ast"
	"hidlgen/internal/diag"
	"hidlgen/internal/reserved"
	"hidlgen/internal/source"
)

type definitionFile struct {
	Interface interfaceSection `toml:"interface"`
	Methods   []methodSection  `toml:"method"`
}

type interfaceSection struct {
	Name string `toml:"name"`
}

type methodSection struct {
	Name        string              `toml:"name"`
	Oneway      bool                `toml:"oneway"`
	Args        []paramSection      `toml:"args"`
	Returns     []paramSection      `toml:"returns"`
	Annotations []annotationSection `toml:"annotations"`
}

type paramSection struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

type annotationSection struct {
	Name   string            `toml:"name"`
	Params map[string]string `toml:"params"`
}

// LoadInterface parses one definition file into an Interface. User-input
// problems go to the reporter; ok is false when any were errors. NamedTypes
// inside the result stay unresolved until ResolveAll runs.
func LoadInterface(sf *source.File, r diag.Reporter) (iface *ast.Interface, ok bool) {
	fileSpan := source.Span{File: sf.ID, Start: 0, End: uint32(len(sf.Content))} // #nosec G115

	var def definitionFile
	if err := toml.Unmarshal(sf.Content, &def); err != nil {
		diag.ReportError(r, diag.DefSyntaxError, fileSpan, err.Error())
		return nil, false
	}
	if def.Interface.Name == "" {
		diag.ReportError(r, diag.DefMissingInterface, fileSpan,
			"definition file declares no [interface] name")
		return nil, false
	}
	if !isInterfaceName(def.Interface.Name) {
		diag.ReportError(r, diag.DefEmptyName, fileSpan,
			fmt.Sprintf("interface name %q must match I[A-Z]...", def.Interface.Name))
		return nil, false
	}

	iface = ast.NewInterface(def.Interface.Name, fileSpan)
	ok = true

	for _, ms := range def.Methods {
		m, methodOK := buildMethod(iface.Name(), ms, fileSpan, r)
		if !methodOK {
			ok = false
			continue
		}
		if err := iface.AddMethod(m); err != nil {
			reportCheckError(r, err)
			ok = false
		}
	}

	iface.AssignSerials()
	iface.AttachReserved(reserved.Methods(iface.Name()))
	return iface, ok
}

func buildMethod(ifaceName string, ms methodSection, fileSpan source.Span, r diag.Reporter) (*ast.Method, bool) {
	if ms.Name == "" {
		diag.ReportError(r, diag.DefEmptyName, fileSpan,
			fmt.Sprintf("interface %q has a method with no name", ifaceName))
		return nil, false
	}
	if reserved.IsReservedName(ms.Name) {
		diag.ReportError(r, diag.SemReservedMethodName, fileSpan,
			fmt.Sprintf("method %q collides with a built-in method", ms.Name))
		return nil, false
	}
	if ms.Oneway && len(ms.Returns) > 0 {
		diag.ReportError(r, diag.SemOnewayWithResults, fileSpan,
			fmt.Sprintf("oneway method %q must not declare results", ms.Name))
		return nil, false
	}

	args, argsOK := buildParams(ms.Name, "parameter", ms.Args, diag.SemDuplicateParam, fileSpan, r)
	results, resultsOK := buildParams(ms.Name, "result", ms.Returns, diag.SemDuplicateResult, fileSpan, r)
	if !argsOK || !resultsOK {
		return nil, false
	}

	annotations := make([]*ast.Annotation, 0, len(ms.Annotations))
	for _, as := range ms.Annotations {
		annotations = append(annotations, buildAnnotation(as, fileSpan))
	}

	return ast.NewMethod(ms.Name, args, results, ms.Oneway, annotations, fileSpan), true
}

func buildParams(methodName, role string, sections []paramSection,
	dupCode diag.Code, fileSpan source.Span, r diag.Reporter) (*ast.TypedVarVector, bool) {
	v := ast.NewTypedVarVector()
	ok := true
	for _, ps := range sections {
		if ps.Name == "" {
			diag.ReportError(r, diag.SemEmptyParamName, fileSpan,
				fmt.Sprintf("method %q has a %s with no name", methodName, role))
			ok = false
			continue
		}
		typ, err := ParseType(ps.Type, fileSpan)
		if err != nil {
			reportCheckError(r, err)
			ok = false
			continue
		}
		if !v.Add(ast.NewNamedReference(ps.Name, typ, fileSpan)) {
			diag.ReportError(r, dupCode, fileSpan,
				fmt.Sprintf("method %q declares %s %q twice", methodName, role, ps.Name))
			ok = false
		}
	}
	return v, ok
}

func buildAnnotation(as annotationSection, fileSpan source.Span) *ast.Annotation {
	a := &ast.Annotation{Name: as.Name, Span: fileSpan}
	// Sort for determinism: TOML tables carry no order.
	for _, key := range sortedKeys(as.Params) {
		a.Params = append(a.Params, ast.AnnotationParam{Key: key, Value: as.Params[key]})
	}
	return a
}

// ResolveAll links every NamedType in the loaded interfaces against the
// package-wide declaration table. Unknown names stay unresolved and surface
// later as Evaluate errors.
func ResolveAll(ifaces []*ast.Interface) {
	byName := make(map[string]*ast.Interface, len(ifaces))
	for _, iface := range ifaces {
		byName[iface.Name()] = iface
	}
	for _, iface := range ifaces {
		for _, m := range iface.UserMethods() {
			resolveRefs(m.Args(), byName)
			resolveRefs(m.Results(), byName)
		}
	}
}

func resolveRefs(refs []*ast.NamedReference, byName map[string]*ast.Interface) {
	for _, ref := range refs {
		resolveType(ref.Type(), byName)
	}
}

func resolveType(t ast.Type, byName map[string]*ast.Interface) {
	switch tt := t.(type) {
	case *ast.NamedType:
		if target, ok := byName[tt.Name]; ok {
			tt.Resolve(target)
		}
	case *ast.VecType:
		resolveType(tt.Elem, byName)
	}
}

func reportCheckError(r diag.Reporter, err error) {
	if checkErr, ok := err.(*ast.CheckError); ok {
		diag.ReportError(r, checkErr.Code, checkErr.Span, checkErr.Msg)
		return
	}
	diag.ReportError(r, diag.UnknownCode, source.Span{}, err.Error())
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
