package diary

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schema.cue
var schemaCUE string

// ValidateDocument checks that data is a well-formed export document:
// a JSON array of events that unifies with the embedded CUE schema.
//
// Import is all-or-nothing - callers must not touch the slot unless
// this returns nil.
func ValidateDocument(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	export := schema.LookupPath(cue.ParsePath("#Export"))
	if err := export.Err(); err != nil {
		return fmt.Errorf("schema missing #Export: %w", err)
	}

	expr, err := cuejson.Extract("document.json", data)
	if err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	value := ctx.BuildExpr(expr)
	if err := value.Err(); err != nil {
		return fmt.Errorf("build document: %w", err)
	}

	unified := export.Unify(value)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return fmt.Errorf("document does not match the event schema: %w", err)
	}
	return nil
}
