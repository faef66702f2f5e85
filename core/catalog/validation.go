// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"
	"strings"
)

// ApplianceRule is an appliance catalog validation rule
type ApplianceRule func(ApplianceSpec) error

// TemplateRule is a template validation rule checked against an appliance catalog
type TemplateRule func(*Catalog, RoomTemplate) error

// DefaultApplianceRules returns the standard appliance rules
func DefaultApplianceRules() []ApplianceRule {
	return []ApplianceRule{
		validatePositiveRating,
		validateDescription,
	}
}

// DefaultTemplateRules returns the standard template rules
func DefaultTemplateRules() []TemplateRule {
	return []TemplateRule{
		validateTemplateVocabulary,
		validateTemplateQuantities,
	}
}

// Validate checks both catalogs and returns every violation found
func Validate(c *Catalog, tc *TemplateCatalog) []error {
	var errs []error

	for _, spec := range c.All() {
		for _, rule := range DefaultApplianceRules() {
			if err := rule(spec); err != nil {
				errs = append(errs, fmt.Errorf("appliance %s: %w", spec.Name, err))
			}
		}
	}

	for _, name := range tc.Names() {
		t, _ := tc.Lookup(name)
		for _, rule := range DefaultTemplateRules() {
			if err := rule(c, t); err != nil {
				errs = append(errs, fmt.Errorf("template %s: %w", t.Name, err))
			}
		}
	}

	return errs
}

func validatePositiveRating(s ApplianceSpec) error {
	if s.RatedKw <= 0 {
		return fmt.Errorf("rated power must be positive, got %g", s.RatedKw)
	}
	return nil
}

func validateDescription(s ApplianceSpec) error {
	if strings.TrimSpace(s.Description) == "" {
		return fmt.Errorf("description is empty")
	}
	return nil
}

// validateTemplateVocabulary keeps every template a subset of the appliance catalog
func validateTemplateVocabulary(c *Catalog, t RoomTemplate) error {
	for _, e := range t.Entries {
		if !c.Has(e.Appliance) {
			return fmt.Errorf("references unknown appliance %q", e.Appliance)
		}
	}
	return nil
}

func validateTemplateQuantities(_ *Catalog, t RoomTemplate) error {
	for _, e := range t.Entries {
		if e.Quantity < 0 {
			return fmt.Errorf("negative default quantity %d for %q", e.Quantity, e.Appliance)
		}
	}
	return nil
}

// MustValidate panics if validation fails
func MustValidate(c *Catalog, tc *TemplateCatalog) {
	errs := Validate(c, tc)
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		panic(fmt.Sprintf("catalog has %d validation errors: %s", len(errs), strings.Join(msgs, "; ")))
	}
}

func init() {
	MustValidate(Default(), DefaultTemplates())
}
