package jsonschema

import (
	"fmt"
	"strings"
)

// replace substitutes {key} placeholders in template with values from
// params. Problem messages and Localize do not go through it.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}
	return template
}
