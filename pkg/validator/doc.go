// Package validator provides small, generic, type-safe validation rules for
// form fields.
//
// A Rule couples a pure predicate over a value with the message reported when
// the predicate does not hold. Rules are grouped per field into an ordered
// Rules list; Evaluate walks the list in order and stops at the first failing
// rule, so the position of a rule decides which message the user sees when
// several rules fail at once.
//
// # Architecture
//
// Each source file groups a family of rule factories (`string_rules.go`,
// `collection_rules.go`, `comparable_rules.go`, `optional_rules.go`,
// `choice_rules.go`, `format_rules.go`, `pattern_rules.go`, `uuid_rules.go`). Every
// factory builds and returns a Rule value; there is no registry and no global
// state, so rules can be declared once and shared by any number of forms.
//
// Core building blocks:
//   - Rule[V]           – name, message and Check func(V) bool
//   - Rules[V]          – ordered list with first-failure-wins Evaluate
//   - ValidationError   – one field-level failure
//   - ValidationErrors  – slice type that implements the error interface
//
// # Usage
//
//	rules := validator.Rules[string]{
//	    validator.NonEmpty("username"),
//	    validator.MinLen(3, "Username is too short"),
//	}
//	if msg, failed := rules.Evaluate(input); failed {
//	    // show msg next to the field
//	}
//
// Messages built from a field name capitalize every word of the name, so
// NonEmpty("username") reports "Username should not be empty".
//
// # Optional values
//
// Optional fields are modelled as pointers. Present fails only for nil, so a
// pointer to 0, false or "" is a present value.
//
// # Performance Considerations
//
// Checks must be pure and fast: no I/O and no blocking. Work that needs I/O,
// such as loading a selected file, belongs to the caller, which should feed
// the outcome into a plain field and validate that.
package validator
