package jsonschema

// Validator validates AST documents against a JSON Schema. It carries no
// mutable state: Dialect and Options are fixed at construction, and every
// call to ValidateDocument/GetMatchingSchemas builds its own
// validationContext, so one Validator is safe to share across concurrent
// validation passes.
type Validator struct {
	Dialect Dialect
	Options Options
}

// validationContext threads per-call state through the recursive keyword
// evaluators: the collector a caller wants populated, and the titles side
// table (kept off Schema itself so it stays immutable), which validateNode
// fills with each schema's own title or the nearest enclosing one. The
// table is not read when diagnostics are built: ToDiagnostics labels a
// problem from its own schema's title, url or $id, or the default URI.
type validationContext struct {
	v         *Validator
	collector SchemaCollector
	titles    map[*Schema]string
}

// ValidateDocument validates the root node against schema and returns every
// problem found, with no offset filtering. This is the entry point editor
// diagnostics use directly.
func (v *Validator) ValidateDocument(root *Node, schema *Schema) []Problem {
	result := NewValidationResult()
	ctx := &validationContext{v: v, collector: NoopCollector, titles: map[*Schema]string{}}
	ctx.validateNode(root, schema, result, "")
	return result.Problems
}

// GetMatchingSchemas returns every sub-schema applicable to the document
// position at offset, for hover and completion-shaping callers.
// exclude, when non-nil, filters out any record for that exact node - used
// by a host that already knows the schema covering a position and wants to
// ask "what else applies here besides the one I have".
func (v *Validator) GetMatchingSchemas(root *Node, schema *Schema, offset int, exclude *Node) []ApplicableSchema {
	result := NewValidationResult()
	collector, matches := NewCollectingSchemas(offset, exclude)
	ctx := &validationContext{v: v, collector: collector, titles: map[*Schema]string{}}
	ctx.validateNode(root, schema, result, "")
	return *matches
}

// validateNode is the base traversal: it resolves the
// effective dialect for this subtree, normalizes the boolean-schema forms,
// runs generic keywords applicable to every type, dispatches to the
// type-specific leaf validators, and finally runs the unevaluated*
// post-processing pass for dialects that define it.
func (ctx *validationContext) validateNode(node *Node, schema *Schema, result *ValidationResult, inheritedTitle string) {
	if node == nil || schema == nil {
		return
	}

	if schema.IsDenyAll() {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "false",
			Message: "no value is allowed here", Severity: SeverityError,
		})
		return
	}
	if schema.IsAllowAll() {
		return
	}

	title := inheritedTitle
	if t := schema.EffectiveTitle(); t != "" {
		title = t
	}
	if title != "" {
		ctx.titles[schema] = title
	}

	ctx.collector.Add(ApplicableSchema{Node: node, Schema: schema})

	dialect := effectiveSchema(ctx.v, schema)
	sub := ctx.withDialectOverride(dialect)

	if !sub.checkType(node, schema, result) {
		// A type mismatch still runs the generic composition keywords
		// (allOf/anyOf/oneOf/not, enum, const) since those can legitimately
		// apply across mixed-type alternatives, but skips the type-specific
		// leaf keywords entirely.
		sub.validateGeneric(node, schema, result, title)
		return
	}

	sub.validateGeneric(node, schema, result, title)

	switch node.Kind {
	case KindObject:
		sub.validateObject(node, schema, result)
	case KindArray:
		sub.validateArray(node, schema, result)
	case KindString:
		sub.validateString(node, schema, result)
	case KindNumber:
		sub.validateNumber(node, schema, result)
	}

	if dialect.SupportsUnevaluated() {
		sub.validateUnevaluated(node, schema, result)
	}
}

// withDialectOverride returns a context for descending into a schema whose
// dialect differs from the caller's. The titles/collector state is shared
// (a pointer copy), only the dialect changes, by way of a small wrapper
// since Dialect lives on Validator rather than validationContext. Most
// calls never trigger an override, so this allocates a Validator copy only
// when "_dialect" is actually present.
func (ctx *validationContext) withDialectOverride(dialect Dialect) *validationContext {
	if dialect == ctx.v.Dialect {
		return ctx
	}
	overridden := *ctx.v
	overridden.Dialect = dialect
	return &validationContext{v: &overridden, collector: ctx.collector, titles: ctx.titles}
}

// checkType validates the "type" keyword and reports a mismatch, returning
// false when the node's kind does not satisfy the schema's declared type(s)
// so the caller can skip type-specific leaf keywords.
func (ctx *validationContext) checkType(node *Node, schema *Schema, result *ValidationResult) bool {
	if len(schema.Type) == 0 {
		return true
	}
	for _, t := range schema.Type {
		if node.matchesType(t) {
			return true
		}
	}
	result.addProblem(Problem{
		Node: node, Schema: schema, Keyword: "type",
		Message: typeMismatchMessage(node, schema.Type), Severity: SeverityError,
	})
	return false
}

func typeMismatchMessage(node *Node, expected SchemaType) string {
	msg := "incorrect type. Expected \""
	for i, t := range expected {
		if i > 0 {
			msg += "\" or \""
		}
		msg += t
	}
	return msg + "\""
}

// validateGeneric runs the keywords applicable regardless of node type:
// enum, const, deprecation, and the boolean-composition keywords
// (allOf/anyOf/oneOf/not/if-then-else), each of which can apply to any
// instance type and each of which recurses back into validateNode.
func (ctx *validationContext) validateGeneric(node *Node, schema *Schema, result *ValidationResult, title string) {
	ctx.validateEnum(node, schema, result)
	ctx.validateConst(node, schema, result)
	ctx.validateDeprecation(node, schema, result)

	if len(schema.AllOf) > 0 {
		ctx.validateAllOf(node, schema, result, title)
	}
	if len(schema.AnyOf) > 0 {
		ctx.validateAnyOf(node, schema, result, title)
	}
	if len(schema.OneOf) > 0 {
		ctx.validateOneOf(node, schema, result, title)
	}
	if schema.Not != nil {
		ctx.validateNot(node, schema, result, title)
	}
	if schema.If != nil {
		ctx.validateConditional(node, schema, result, title)
	}
}
