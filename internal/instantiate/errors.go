package instantiate

import (
	"fmt"
	"strings"
)

// UnknownCapabilityError reports requested capability names that the
// template does not declare.
type UnknownCapabilityError struct {
	Template string
	Names    []string
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("template %q does not declare capabilities: %s",
		e.Template, strings.Join(e.Names, ", "))
}

// MissingSpecializationError reports declared specialization options that
// the caller did not supply a value for.
type MissingSpecializationError struct {
	Template string
	Missing  []string
}

func (e *MissingSpecializationError) Error() string {
	return fmt.Sprintf("template %q: missing specialization value(s) for: %s",
		e.Template, strings.Join(e.Missing, ", "))
}

// UnknownSpecializationOptionError reports supplied option keys that the
// template does not declare.
type UnknownSpecializationOptionError struct {
	Template string
	Options  []string
}

func (e *UnknownSpecializationOptionError) Error() string {
	return fmt.Sprintf("template %q does not declare specialization option(s): %s",
		e.Template, strings.Join(e.Options, ", "))
}

// InvalidSpecializationError reports a supplied value outside an option's
// allowed set.
type InvalidSpecializationError struct {
	Template string
	Option   string
	Value    string
	Allowed  []string
}

func (e *InvalidSpecializationError) Error() string {
	return fmt.Sprintf("template %q: value %q is not allowed for option %q (allowed: %s)",
		e.Template, e.Value, e.Option, strings.Join(e.Allowed, ", "))
}

// RenderError reports placeholders left unresolved during prompt rendering.
// This is an internal-consistency failure: a registry that passed load-time
// validation can never produce it, so treat it as a defect in the template
// source.
type RenderError struct {
	Template   string
	Unresolved []string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("template %q: unresolved prompt placeholder(s): %s",
		e.Template, strings.Join(e.Unresolved, ", "))
}

// CapabilityUnavailableError reports required tools absent from the caller's
// available tool set.
type CapabilityUnavailableError struct {
	Template     string
	MissingTools []string
}

func (e *CapabilityUnavailableError) Error() string {
	return fmt.Sprintf("template %q requires unavailable tool(s): %s",
		e.Template, strings.Join(e.MissingTools, ", "))
}

// PermissionDeniedError reports required permissions absent from the
// caller's granted permission set.
type PermissionDeniedError struct {
	Template           string
	MissingPermissions []string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("template %q requires ungranted permission(s): %s",
		e.Template, strings.Join(e.MissingPermissions, ", "))
}
