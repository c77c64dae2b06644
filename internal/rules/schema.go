package rules

import (
	"embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

var (
	schemaOnce  sync.Once
	schemaValue cue.Value
	schemaCtx   *cue.Context
	schemaErr   error
)

// loadSchema compiles the embedded rulebook schema once.
func loadSchema() (cue.Value, *cue.Context, error) {
	schemaOnce.Do(func() {
		content, err := schemaFS.ReadFile("schemas/ruleset.cue")
		if err != nil {
			schemaErr = fmt.Errorf("could not read embedded schema: %w", err)
			return
		}
		schemaCtx = cuecontext.New()
		inst := schemaCtx.CompileBytes(content, cue.Filename("ruleset.cue"))
		if err := inst.Err(); err != nil {
			schemaErr = fmt.Errorf("could not compile embedded schema: %w", err)
			return
		}
		def := inst.LookupPath(cue.ParsePath("#RuleSet"))
		if !def.Exists() {
			schemaErr = fmt.Errorf("embedded schema missing #RuleSet definition")
			return
		}
		schemaValue = def
	})
	return schemaValue, schemaCtx, schemaErr
}

// validateSchema checks a generically-decoded rulebook against the embedded
// CUE schema. Shape errors (missing sections, wrong types, out-of-range
// limits) surface here as configuration errors before any checker runs.
func validateSchema(data map[string]any) error {
	schema, ctx, err := loadSchema()
	if err != nil {
		return err
	}

	dataValue := ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return &ConfigError{Field: "rulebook", Reason: fmt.Sprintf("cannot encode for validation: %v", encErr)}
	}

	unified := schema.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return &ConfigError{Field: "rulebook", Reason: fmt.Sprintf("schema validation failed: %v", err)}
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ConfigError{Field: "rulebook", Reason: fmt.Sprintf("schema validation failed: %v", err)}
	}
	return nil
}
