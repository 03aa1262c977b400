// Package rules contains the built-in lint rules for Nix expressions.
//
// Each rule is a struct embedding lint.Meta for its identity and
// implementing Validate for its behavior. Rules are assembled into the
// process-wide registry in register.go; adding a rule means adding one
// file here and one line there.
package rules
