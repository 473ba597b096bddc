package validation

import (
	"fmt"
	"sort"
	"strings"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON schema for one request body.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

func MustCompile(name, src string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return &Schema{name: name, schema: s}
}

// Validate checks a raw JSON body. A body that is not JSON is a 400; schema
// violations are a 422 carrying one FieldError per violation.
func (s *Schema) Validate(body []byte) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid JSON body", nil, err)
	}
	if res.Valid() {
		return nil
	}

	errs := make([]response.FieldError, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		errs = append(errs, response.FieldError{Field: fieldName(e), Message: e.Description()})
	}
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return middleware.NewAppError(
		fiber.StatusUnprocessableEntity,
		"Validation failed",
		response.ValidationErrors{Errors: errs},
		fmt.Errorf("%s: %d violation(s)", s.name, len(errs)),
	)
}

func fieldName(e gojsonschema.ResultError) string {
	field := e.Field()
	if e.Type() == "required" {
		if p, ok := e.Details()["property"].(string); ok {
			if field == gojsonschema.STRING_CONTEXT_ROOT {
				return p
			}
			return field + "." + p
		}
	}
	return field
}
