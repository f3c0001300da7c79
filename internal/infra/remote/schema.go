package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/runoshun/todomaster/internal/domain"
)

const taskSchemaJSON = `{
  "type": "object",
  "required": ["id", "text"],
  "properties": {
    "id": {"type": ["string", "integer"]},
    "text": {"type": "string", "pattern": "\\S"},
    "completed": {"type": "boolean"},
    "createdAt": {"type": ["string", "number", "null"]}
  }
}`

var (
	taskSchema     = jsonschema.MustCompileString("https://todomaster.local/schema/task.json", taskSchemaJSON)
	taskListSchema = jsonschema.MustCompileString("https://todomaster.local/schema/tasks.json",
		`{"type": "array", "items": `+taskSchemaJSON+`}`)
)

// validateTask checks a single task record returned by the service.
func validateTask(body []byte) error {
	return validate(taskSchema, body)
}

// validateTaskList checks the task array returned by the list endpoint.
func validateTaskList(body []byte) error {
	return validate(taskListSchema, body)
}

func validate(schema *jsonschema.Schema, body []byte) error {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidTask, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTask, schemaErrorMessage(err))
	}
	return nil
}

// schemaErrorMessage reduces a validation error to its first leaf cause.
func schemaErrorMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := strings.TrimPrefix(ve.InstanceLocation, "/")
	if loc == "" {
		return ve.Message
	}
	return loc + ": " + ve.Message
}
