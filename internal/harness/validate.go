package harness

import (
	"fmt"
	"strings"
)

// Scenario validation error codes (E200-E299)
const (
	// Scenario errors (E201-E209)
	ErrScenarioNameEmpty   = "E201" // name is required
	ErrScenarioDescEmpty   = "E202" // description is required
	ErrScenarioNoSteps     = "E203" // at least one step required
	ErrScenarioBadConfig   = "E204" // config block fails its schema
	ErrScenarioNoAssertion = "E205" // at least one assertion required

	// Step errors (E210-E219)
	ErrStepNoOperation     = "E210" // step names no operation
	ErrStepManyOperations  = "E211" // step names more than one operation
	ErrStepUnknownExpect   = "E212" // expect_error is not a known error
	ErrStepEmptyForeign    = "E213" // foreign entry is empty
	ErrStepInvalidSubClass = "E214" // subclass step missing super or sub

	// Assertion errors (E220-E229)
	ErrAssertionType       = "E220" // missing or unknown assertion type
	ErrAssertionField      = "E221" // required field missing for the type
	ErrAssertionCollection = "E222" // unknown collection for count
)

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidateScenario checks a parsed scenario for structural errors.
// Returns all errors found (does not fail-fast).
func ValidateScenario(s *Scenario) []ValidationError {
	var errs []ValidationError

	// E201: name is required
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "name is required",
			Code:    ErrScenarioNameEmpty,
		})
	}

	// E202: description is required
	if strings.TrimSpace(s.Description) == "" {
		errs = append(errs, ValidationError{
			Field:   "description",
			Message: "description is required",
			Code:    ErrScenarioDescEmpty,
		})
	}

	// E204: config must satisfy the config schema
	if err := s.Config.Validate(); err != nil {
		errs = append(errs, ValidationError{
			Field:   "config",
			Message: err.Error(),
			Code:    ErrScenarioBadConfig,
		})
	}

	// E203: at least one step
	if len(s.Steps) == 0 {
		errs = append(errs, ValidationError{
			Field:   "steps",
			Message: "steps list is required and must be non-empty",
			Code:    ErrScenarioNoSteps,
		})
	}
	for i := range s.Steps {
		errs = append(errs, validateStep(i, &s.Steps[i])...)
	}

	// E205: at least one assertion
	if len(s.Assertions) == 0 {
		errs = append(errs, ValidationError{
			Field:   "assertions",
			Message: "assertions list is required and must be non-empty",
			Code:    ErrScenarioNoAssertion,
		})
	}
	for i := range s.Assertions {
		errs = append(errs, validateAssertion(i, &s.Assertions[i])...)
	}

	return errs
}

func validateStep(index int, step *Step) []ValidationError {
	var errs []ValidationError
	field := fmt.Sprintf("steps[%d]", index)

	// E210/E211: exactly one operation
	switch ops := step.operations(); len(ops) {
	case 0:
		errs = append(errs, ValidationError{
			Field:   field,
			Message: "step must name one of class, object_property, subclass, some, and, or, not",
			Code:    ErrStepNoOperation,
		})
	case 1:
	default:
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("step names several operations: %s", strings.Join(ops, ", ")),
			Code:    ErrStepManyOperations,
		})
	}

	// E214: subclass needs both sides
	if step.SubClass != nil && (step.SubClass.Super.Op == "" || step.SubClass.Sub.Op == "") {
		errs = append(errs, ValidationError{
			Field:   field + ".subclass",
			Message: "subclass requires super and sub",
			Code:    ErrStepInvalidSubClass,
		})
	}

	// E212: only known errors can be expected
	switch step.ExpectError {
	case "", ExpectForeignReference:
	default:
		errs = append(errs, ValidationError{
			Field:   field + ".expect_error",
			Message: fmt.Sprintf("unknown error %q (supported: %s)", step.ExpectError, ExpectForeignReference),
			Code:    ErrStepUnknownExpect,
		})
	}

	// E213: foreign names must be non-empty
	for j, name := range step.Foreign {
		if name == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.foreign[%d]", field, j),
				Message: "foreign name must be non-empty",
				Code:    ErrStepEmptyForeign,
			})
		}
	}

	return errs
}

func validateAssertion(index int, a *Assertion) []ValidationError {
	field := fmt.Sprintf("assertions[%d]", index)
	missing := func(name string) ValidationError {
		return ValidationError{
			Field:   field + "." + name,
			Message: fmt.Sprintf("%s is required for %s", name, a.Type),
			Code:    ErrAssertionField,
		}
	}

	var errs []ValidationError
	switch a.Type {
	case "":
		errs = append(errs, ValidationError{
			Field:   field + ".type",
			Message: "type is required",
			Code:    ErrAssertionType,
		})
	case AssertDirectSubclasses, AssertDirectSuperclasses:
		if a.Of == nil {
			errs = append(errs, missing("of"))
		}
	case AssertIsDirectSubclass:
		if a.Super == nil {
			errs = append(errs, missing("super"))
		}
		if a.Sub == nil {
			errs = append(errs, missing("sub"))
		}
	case AssertCount:
		if a.Count == nil {
			errs = append(errs, missing("count"))
		}
		if _, ok := collectionSizes[a.Collection]; !ok {
			errs = append(errs, ValidationError{
				Field:   field + ".collection",
				Message: fmt.Sprintf("unknown collection %q", a.Collection),
				Code:    ErrAssertionCollection,
			})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   field + ".type",
			Message: fmt.Sprintf("unknown assertion type %q", a.Type),
			Code:    ErrAssertionType,
		})
	}
	return errs
}
