package gdsxml

// NewValidateOptions returns a default, valid options value.
func NewValidateOptions() ValidateOptions {
	return ValidateOptions{}
}

// Validate validates option values.
func (o ValidateOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithMaxDepth sets the record nesting limit (0 uses default, -1 disables it).
func (o ValidateOptions) WithMaxDepth(value int) ValidateOptions {
	o.maxDepth = intOption{value: value, set: true}
	return o
}

// WithMaxDocumentSize sets the decoded document size limit in bytes (0 uses default).
func (o ValidateOptions) WithMaxDocumentSize(value int) ValidateOptions {
	o.maxDocumentSize = intOption{value: value, set: true}
	return o
}

// WithStopOnFirst stops validation at the first violation.
func (o ValidateOptions) WithStopOnFirst(value bool) ValidateOptions {
	o.stopOnFirst = value
	return o
}

// WithSkipPatterns disables pattern facet checks.
func (o ValidateOptions) WithSkipPatterns(value bool) ValidateOptions {
	o.skipPatterns = value
	return o
}
