// Package ast models checked interface declarations: types, annotations,
// named references and the method descriptor that code generation consumes.
//
// A Method is built once from loaded arguments/results/annotations, optionally
// upgraded to a built-in via FillImplementation, checked (Evaluate then
// Validate) and then read concurrently by the C++ and Java backends. After the
// optional upgrade nothing mutates, so no locking is needed on the read side.
//
// Errors split two ways: user-input problems surface as *CheckError values
// that the driver turns into diagnostics; violations of compiler-internal
// invariants (double fill, serial read before assignment, implementation
// emission on a user-declared method) panic.
package ast
