package gdsxml

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

// ValidateOptions configures validation and decoding. The zero value is valid.
type ValidateOptions struct {
	maxDepth        intOption
	maxDocumentSize intOption
	stopOnFirst     bool
	skipPatterns    bool
}

type resolvedValidateOptions struct {
	limits       xmlDecodeLimits
	maxDepth     int
	stopOnFirst  bool
	skipPatterns bool
}
