// Package validation checks study documents against the study JSON schema
// and the running build.
package validation

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/rankine-dev/rankine/internal/application/ports"
	"github.com/rankine-dev/rankine/internal/domain/entities"
)

//go:embed schemas/study.schema.json
var studySchema []byte

const studySchemaURL = "study.schema.json"

// Ensure interface compliance
var _ ports.StudyValidator = (*StudyValidator)(nil)

// StudyValidator validates studies structurally and against the build version.
type StudyValidator struct {
	schema     *jsonschema.Schema
	schemaErr  error
	appVersion string
	once       sync.Once
}

// NewStudyValidator creates a validator for the given build version.
// A version that is not valid semver (e.g. "dev") skips requires checks.
func NewStudyValidator(appVersion string) *StudyValidator {
	return &StudyValidator{appVersion: appVersion}
}

// Validate checks study invariants, the study version and the requires
// constraint.
func (v *StudyValidator) Validate(study *entities.Study) error {
	if err := study.Validate(); err != nil {
		return err
	}

	var problems []string
	if study.Metadata.Version != "" {
		if _, err := semver.NewVersion(study.Metadata.Version); err != nil {
			problems = append(problems, fmt.Sprintf("study version %q is not valid semver", study.Metadata.Version))
		}
	}
	if err := v.checkRequires(study.Metadata.Requires); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("study validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// ValidateSchema validates the study document against the embedded schema.
func (v *StudyValidator) ValidateSchema(ctx context.Context, study *entities.Study) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	schema, err := v.compiled()
	if err != nil {
		return err
	}

	doc, err := toJSONDocument(study)
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func (v *StudyValidator) checkRequires(requires string) error {
	if requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(requires)
	if err != nil {
		return fmt.Errorf("requires %q is not a valid version constraint: %w", requires, err)
	}

	current, err := semver.NewVersion(v.appVersion)
	if err != nil {
		// development builds satisfy every constraint
		return nil
	}

	if !constraint.Check(current) {
		return fmt.Errorf("study requires rankine %s, running %s", requires, current)
	}
	return nil
}

func (v *StudyValidator) compiled() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource(studySchemaURL, bytes.NewReader(studySchema)); err != nil {
			v.schemaErr = fmt.Errorf("failed to add study schema: %w", err)
			return
		}
		v.schema, v.schemaErr = compiler.Compile(studySchemaURL)
		if v.schemaErr != nil {
			v.schemaErr = fmt.Errorf("failed to compile study schema: %w", v.schemaErr)
		}
	})
	return v.schema, v.schemaErr
}

// toJSONDocument renders the study as the generic JSON value the schema
// library validates.
func toJSONDocument(study *entities.Study) (interface{}, error) {
	yamlBytes, err := yaml.Marshal(study)
	if err != nil {
		return nil, fmt.Errorf("encoding study: %w", err)
	}
	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("converting study to JSON: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonBytes))
	decoder.UseNumber()
	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding study JSON: %w", err)
	}
	return doc, nil
}

// formatSchemaValidationError formats a JSON Schema validation error into a readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}
	collectErrors(err)

	if len(messages) == 0 {
		return fmt.Errorf("schema validation failed: %s", err.Message)
	}
	return fmt.Errorf("schema validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
