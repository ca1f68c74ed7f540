package ast

import (
	"hidlgen/internal/diag"
	"hidlgen/internal/format"
	"hidlgen/internal/source"
)

// Annotation is a declaration-site marker such as @callflow(next="start").
// Params keep declaration order.
type Annotation struct {
	Name   string
	Params []AnnotationParam
	Span   source.Span
}

type AnnotationParam struct {
	Key   string
	Value string
}

func (a *Annotation) Evaluate() error {
	if a.Name == "" {
		return checkErrorf(diag.SemBadAnnotation, a.Span, "annotation name must not be empty")
	}
	return nil
}

func (a *Annotation) Validate() error {
	seen := make(map[string]bool, len(a.Params))
	for _, p := range a.Params {
		if p.Key == "" {
			return checkErrorf(diag.SemBadAnnotation, a.Span,
				"annotation @%s has a parameter with no key", a.Name)
		}
		if seen[p.Key] {
			return checkErrorf(diag.SemAnnotationDuplicate, a.Span,
				"annotation @%s repeats parameter %q", a.Name, p.Key)
		}
		seen[p.Key] = true
	}
	return nil
}

// Dump writes the annotation in declaration syntax, without a trailing newline.
func (a *Annotation) Dump(w *format.Writer) {
	w.WriteString("@")
	w.WriteString(a.Name)
	if len(a.Params) == 0 {
		return
	}
	w.WriteString("(")
	w.Join(len(a.Params), ", ", func(i int) {
		p := a.Params[i]
		w.WriteString(p.Key)
		w.WriteString("=\"")
		w.WriteString(p.Value)
		w.WriteString("\"")
	})
	w.WriteString(")")
}
