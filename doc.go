// Package jsonschema validates AST documents (JSON or YAML, via ast.go and
// ast_yaml.go) against a JSON Schema across the Draft-04, Draft-07,
// 2019-09, and 2020-12 dialects, producing the diagnostics, applicable
// schemas, and evaluated-property bookkeeping an editor's diagnostics,
// completion, and hover features need.
//
// Schema acquisition, $ref resolution, and caching of parsed schemas are
// the caller's responsibility: a Schema reaching this package's Validator
// is already fully resolved.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for the base
// format validators this package's trimmed format table derives from.
package jsonschema
