package template

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by Registry.Lookup for an unknown template name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// SchemaError is returned by Load when a template definition violates the
// structural invariants (missing required fields, duplicate capability
// names, undeclared or unused placeholders, empty option sets). Issues holds
// one human-readable message per violation.
type SchemaError struct {
	Template string
	Issues   []string
}

func (e *SchemaError) Error() string {
	subject := e.Template
	if subject == "" {
		subject = "(unnamed)"
	}
	return fmt.Sprintf("template %q: %s", subject, strings.Join(e.Issues, "; "))
}
