// Package names shapes identifiers for generated code.
package names

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoLower keeps the camel hump of the original identifier intact.
var titleCaser = cases.Title(language.English, cases.NoLower)

// UpperCamel upper-cases the first letter: "getSupportedTypes" becomes
// "GetSupportedTypes". Used for generated Java holder class names.
func UpperCamel(s string) string {
	return titleCaser.String(s)
}

// ResponseClass names the Java holder type for a multi-result method.
func ResponseClass(methodName string) string {
	return UpperCamel(methodName) + "Response"
}

// TransactionConstant names the generated dispatch-code constant.
func TransactionConstant(methodName string) string {
	return "TRANSACTION_" + methodName
}
