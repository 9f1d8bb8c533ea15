package jsonschema

import (
	"regexp"
	"unicode/utf8"
)

// validateString runs the string-typed leaf keywords: maxLength, minLength,
// pattern, format. Lengths count Unicode code points, not
// bytes, matching JSON Schema's definition of string length.
func (ctx *validationContext) validateString(node *Node, schema *Schema, result *ValidationResult) {
	start := len(result.Problems)
	length := utf8.RuneCountInString(node.StringValue)

	if schema.MaxLength != nil && float64(length) > *schema.MaxLength {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "maxLength",
			Message: "string is longer than the maximum length of " + formatScalarForMessage(*schema.MaxLength),
			Severity: SeverityError,
		})
	}
	if schema.MinLength != nil && float64(length) < *schema.MinLength {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "minLength",
			Message: "string is shorter than the minimum length of " + formatScalarForMessage(*schema.MinLength),
			Severity: SeverityError,
		})
	}

	if schema.Pattern != nil {
		re := schema.CompiledPattern()
		if re != nil && !re.MatchString(node.StringValue) {
			message := "string does not match the pattern of \"" + *schema.Pattern + "\""
			if schema.PatternErrorMessage != nil {
				message = *schema.PatternErrorMessage
			}
			result.addProblem(Problem{
				Node: node, Schema: schema, Keyword: "pattern",
				Message: message, Severity: SeverityError,
			})
		}
	}

	if schema.Format != nil {
		if validate, known := formatValidators[*schema.Format]; known && !validate(node.StringValue) {
			result.addProblem(Problem{
				Node: node, Schema: schema, Keyword: "format",
				Message: "string does not match format \"" + *schema.Format + "\"", Severity: SeverityWarning,
			})
		}
	}

	if schema.ErrorMessage != nil {
		for _, p := range result.Problems[start:] {
			if p.Severity == SeverityError {
				overrideLastProblemMessage(result, *schema.ErrorMessage)
				break
			}
		}
	}
}

// compileSafeRegexp compiles pattern, returning nil instead of propagating
// an error. Schema.ValidateRegexSyntax is expected to have already reported
// a malformed pattern once at load time; this keeps evaluation
// itself total rather than able to panic or error mid-document.
func compileSafeRegexp(pattern string) *regexp.Regexp {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return re
}

// overrideLastProblemMessage replaces the most recently added error-severity
// problem's message with the schema author's custom "errorMessage" text
// editor extension, used by schemas that want a friendlier
// message than the generic keyword wording.
func overrideLastProblemMessage(result *ValidationResult, message string) {
	for i := len(result.Problems) - 1; i >= 0; i-- {
		if result.Problems[i].Severity == SeverityError {
			result.Problems[i].Message = message
			return
		}
	}
}
