package slugfield

// Severity classifies a configuration diagnostic.
type Severity int

const (
	// SeverityWarning marks configuration that is legal but ineffective.
	SeverityWarning Severity = iota
	// SeverityError marks configuration that must be fixed before deployment.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic codes emitted by Check.
const (
	CodeIneffectiveOptions = "fields.W001"
	CodeMalformedMapping   = "fields.E001"
	CodeSourceNotText      = "fields.E002"
	CodeSourceMissing      = "fields.E003"
)

// Diagnostic is a structured configuration finding with a machine-readable
// code, a human message, an optional hint, and a reference to the offending
// field.
type Diagnostic struct {
	Code     string
	Message  string
	Hint     string
	Field    string
	Severity Severity
}

// Kind describes the declared type of a record attribute, as far as the slug
// field cares: text attributes are valid slug sources, everything else is not.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
	KindBool
	KindTime
	KindOther
)

// Schema exposes a record type's declared attributes for validation.
type Schema interface {
	// FieldKind returns the declared kind of the named attribute, or
	// ok=false when the record type does not declare it.
	FieldKind(name string) (kind Kind, ok bool)
}

// MapSchema is a Schema backed by a plain map of attribute kinds.
type MapSchema map[string]Kind

func (s MapSchema) FieldKind(name string) (Kind, bool) {
	kind, ok := s[name]
	return kind, ok
}

// Check validates cfg against the record schema at schema-definition time and
// returns structured diagnostics. fieldName identifies the slug attribute the
// configuration belongs to and is attached to every diagnostic.
//
// Errors are meant to block schema deployment; warnings are not. Check never
// runs at save time.
func Check(fieldName string, cfg Config, schema Schema) []Diagnostic {
	var diags []Diagnostic

	if cfg.AllowManual && (cfg.SourceField != "" || cfg.Overwrite || cfg.SymbolMapping != nil) {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeIneffectiveOptions,
			Message:  "AllowManual is set, so SourceField, Overwrite, and SymbolMapping are ineffective.",
			Field:    fieldName,
		})
	}

	if cfg.SymbolMapping != nil {
		if err := cfg.SymbolMapping.validate(); err != nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeMalformedMapping,
				Message:  "SymbolMapping entries must have exactly two elements each.",
				Hint:     `Each entry should be a [symbol, replacement] pair. Example: [["ç", "c"], ["ö", "o"], ["@", "at"]]`,
				Field:    fieldName,
			})
		}
	}

	if cfg.SourceField != "" && schema != nil {
		kind, ok := schema.FieldKind(cfg.SourceField)
		switch {
		case !ok:
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeSourceMissing,
				Message:  "SourceField must name an existing attribute on the record.",
				Field:    fieldName,
			})
		case kind != KindText:
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeSourceNotText,
				Message:  "SourceField must reference a text attribute.",
				Field:    fieldName,
			})
		}
	}

	return diags
}
