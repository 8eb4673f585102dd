package table

import "fmt"

// SchemaError reports a missing table or a missing required column. It is
// fatal: the pipeline aborts rather than producing a table full of nulls.
type SchemaError struct {
	Artifact string
	Column   string
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("schema error: table %q is missing or empty", e.Artifact)
	}
	return fmt.Sprintf("schema error: table %q is missing required column %q", e.Artifact, e.Column)
}
