package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Definition loading (manifest and interface definition files)
	DefInfo             Code = 1000
	DefReadError        Code = 1001
	DefSyntaxError      Code = 1002
	DefMissingInterface Code = 1003
	DefEmptyName        Code = 1004
	DefBadVersion       Code = 1005

	// Type expressions
	TypeInfo            Code = 2000
	TypeUnknown         Code = 2001
	TypeBadExpression   Code = 2002
	TypeUnclosedVec     Code = 2003
	TypeEmptyElement    Code = 2004
	TypeNotInstantiable Code = 2005

	// Interface/method semantics
	SemInfo                Code = 3000
	SemDuplicateMethod     Code = 3001
	SemDuplicateParam      Code = 3002
	SemDuplicateResult     Code = 3003
	SemOnewayWithResults   Code = 3004
	SemReservedMethodName  Code = 3005
	SemBadAnnotation       Code = 3006
	SemTypeNotResolved     Code = 3007
	SemTypeNotValid        Code = 3008
	SemJavaIncompatible    Code = 3009
	SemEmptyParamName      Code = 3010
	SemAnnotationDuplicate Code = 3011

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Project / manifest
	ProjInfo              Code = 5000
	ProjMissingManifest   Code = 5001
	ProjDuplicateFile     Code = 5002
	ProjMissingDefinition Code = 5003
	ProjBadTargetName     Code = 5004
	ProjBadOutputDir      Code = 5005
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	DefInfo:             "Definition information",
	DefReadError:        "Cannot read definition file",
	DefSyntaxError:      "Definition file is not valid TOML",
	DefMissingInterface: "Definition file declares no interface",
	DefEmptyName:        "Name must not be empty",
	DefBadVersion:       "Invalid package version",

	TypeInfo:            "Type information",
	TypeUnknown:         "Unknown type name",
	TypeBadExpression:   "Malformed type expression",
	TypeUnclosedVec:     "Unclosed vec<> in type expression",
	TypeEmptyElement:    "Missing element type",
	TypeNotInstantiable: "Type cannot be used in this position",

	SemInfo:                "Semantic information",
	SemDuplicateMethod:     "Duplicate method name in interface",
	SemDuplicateParam:      "Duplicate parameter name",
	SemDuplicateResult:     "Duplicate result name",
	SemOnewayWithResults:   "Oneway method must not declare results",
	SemReservedMethodName:  "Method name collides with a built-in method",
	SemBadAnnotation:       "Invalid annotation",
	SemTypeNotResolved:     "Type failed to resolve",
	SemTypeNotValid:        "Type is not legal in this position",
	SemJavaIncompatible:    "Method signature cannot be expressed in the Java binding",
	SemEmptyParamName:      "Parameter name must not be empty",
	SemAnnotationDuplicate: "Duplicate annotation",

	IOLoadFileError:  "I/O load file error",
	IOWriteFileError: "I/O write file error",

	ProjInfo:              "Project information",
	ProjMissingManifest:   "Missing hidlgen.toml manifest",
	ProjDuplicateFile:     "Definition file listed twice",
	ProjMissingDefinition: "Listed definition file does not exist",
	ProjBadTargetName:     "Unknown generation target",
	ProjBadOutputDir:      "Invalid output directory",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DEF%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
