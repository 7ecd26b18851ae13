package instantiate

import (
	"errors"
	"testing"

	"github.com/agentforge-labs/agentforge/internal/template"
)

func TestValidateSpecialization_Valid(t *testing.T) {
	dev := builtinTemplate(t, "developer")

	values := map[string]string{"language": "Rust", "specialty": "systems"}
	got, err := ValidateSpecialization(dev, values)
	if err != nil {
		t.Fatalf("ValidateSpecialization error: %v", err)
	}
	if got["language"] != "Rust" || got["specialty"] != "systems" {
		t.Errorf("resolved = %v", got)
	}
}

func TestValidateSpecialization_Missing(t *testing.T) {
	res := builtinTemplate(t, "researcher")

	// research_type is declared but not supplied.
	_, err := ValidateSpecialization(res, map[string]string{"field": "biology"})
	if err == nil {
		t.Fatal("expected MissingSpecializationError, got nil")
	}
	var missingErr *MissingSpecializationError
	if !errors.As(err, &missingErr) {
		t.Fatalf("error type = %T, want *MissingSpecializationError", err)
	}
	assertStrings(t, "Missing", missingErr.Missing, []string{"research_type"})
}

func TestValidateSpecialization_AllMissing(t *testing.T) {
	dev := builtinTemplate(t, "developer")

	_, err := ValidateSpecialization(dev, nil)
	var missingErr *MissingSpecializationError
	if !errors.As(err, &missingErr) {
		t.Fatalf("error type = %T, want *MissingSpecializationError", err)
	}
	assertStrings(t, "Missing", missingErr.Missing, []string{"language", "specialty"})
}

func TestValidateSpecialization_UnknownOption(t *testing.T) {
	dev := builtinTemplate(t, "developer")

	values := map[string]string{
		"language":  "Rust",
		"specialty": "backend",
		"timezone":  "UTC",
	}
	_, err := ValidateSpecialization(dev, values)
	if err == nil {
		t.Fatal("expected UnknownSpecializationOptionError, got nil")
	}
	var unknownErr *UnknownSpecializationOptionError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *UnknownSpecializationOptionError", err)
	}
	assertStrings(t, "Options", unknownErr.Options, []string{"timezone"})
}

func TestValidateSpecialization_InvalidValue(t *testing.T) {
	dev := builtinTemplate(t, "developer")

	values := map[string]string{"language": "COBOL", "specialty": "backend"}
	_, err := ValidateSpecialization(dev, values)
	if err == nil {
		t.Fatal("expected InvalidSpecializationError, got nil")
	}
	var invalidErr *InvalidSpecializationError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error type = %T, want *InvalidSpecializationError", err)
	}
	if invalidErr.Option != "language" {
		t.Errorf("Option = %q, want %q", invalidErr.Option, "language")
	}
	if invalidErr.Value != "COBOL" {
		t.Errorf("Value = %q, want %q", invalidErr.Value, "COBOL")
	}
	if len(invalidErr.Allowed) == 0 {
		t.Error("Allowed is empty, want the declared option values")
	}
}

func TestValidateSpecialization_NoOptions(t *testing.T) {
	tmpl := &template.AgentTemplate{
		Name:               "greeter",
		BasePromptTemplate: "You greet people warmly.",
	}

	if _, err := ValidateSpecialization(tmpl, nil); err != nil {
		t.Fatalf("ValidateSpecialization(nil) error: %v", err)
	}
	if _, err := ValidateSpecialization(tmpl, map[string]string{}); err != nil {
		t.Fatalf("ValidateSpecialization(empty) error: %v", err)
	}
}
