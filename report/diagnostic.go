package report

import "fmt"

// Kind is the kind of a diagnostic.
type Kind int

// Enumeration of diagnostic kinds.
const (
	KindError Kind = iota
	KindWarning
	KindCustom // Displayed using the diagnostic's CustomKind as its tag.
)

// Code identifies the specific problem a diagnostic reports.
type Code string

// Lexical error codes.
const (
	InvalidCharacter Code = "InvalidCharacter"
)

// Syntactic error codes.
const (
	UnexpectedToken      Code = "UnexpectedToken"
	MissingPrefixHandler Code = "MissingPrefixHandler"
	ExpectedCloseParen   Code = "ExpectedCloseParen"
	UnexpectedEOF        Code = "UnexpectedEOF"
	InvalidLiteral       Code = "InvalidLiteral"
	NestingTooDeep       Code = "NestingTooDeep"
)

// Semantic error codes.
const (
	UndefinedIdentifier Code = "UndefinedIdentifier"
	TypeMismatch        Code = "TypeMismatch"
	CannotInferType     Code = "CannotInferType"
	AlreadyDeclared     Code = "AlreadyDeclared"
	CyclicDeclaration   Code = "CyclicDeclaration"
	MissingValue        Code = "MissingValue"
	NotAType            Code = "NotAType"
	TypeAsValue         Code = "TypeAsValue"
	DivisionByZero      Code = "DivisionByZero"
	ConstantOverflow    Code = "ConstantOverflow"
	NegativeExponent    Code = "NegativeExponent"
	ReferenceTooDeep    Code = "ReferenceTooDeep"
)

// Warning codes.
const (
	UnusedDeclaration Code = "UnusedDeclaration"
	VersionMismatch   Code = "VersionMismatch"
)

// Label is a captioned secondary span attached to a diagnostic.
type Label struct {
	Span    Span
	Caption string
}

// Diagnostic is a single message about the source being compiled.  The front
// end only ever constructs and submits diagnostics: turning them into text is
// the job of a Reporter.
type Diagnostic struct {
	Kind Kind

	// The tag displayed for KindCustom diagnostics (eg. "note").
	CustomKind string

	Code Code

	// The primary span of the diagnostic.
	Span Span

	Message string

	// The ordered list of labeled secondary spans.
	Labels []Label
}

// NewError creates a new error diagnostic.  The message is formatted with the
// given arguments.
func NewError(code Code, span Span, msg string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:    KindError,
		Code:    code,
		Span:    span,
		Message: fmt.Sprintf(msg, args...),
	}
}

// NewWarning creates a new warning diagnostic.
func NewWarning(code Code, span Span, msg string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:    KindWarning,
		Code:    code,
		Span:    span,
		Message: fmt.Sprintf(msg, args...),
	}
}

// NewCustom creates a new diagnostic with a custom kind tag.
func NewCustom(tag string, span Span, msg string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:       KindCustom,
		CustomKind: tag,
		Span:       span,
		Message:    fmt.Sprintf(msg, args...),
	}
}

// WithLabel appends a label to the diagnostic and returns it.
func (d *Diagnostic) WithLabel(span Span, caption string, args ...interface{}) *Diagnostic {
	d.Labels = append(d.Labels, Label{Span: span, Caption: fmt.Sprintf(caption, args...)})
	return d
}

// IsError returns whether the diagnostic is an error.
func (d *Diagnostic) IsError() bool {
	return d.Kind == KindError
}

// Tag returns the display tag for the diagnostic's kind.
func (d *Diagnostic) Tag() string {
	switch d.Kind {
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	default:
		return d.CustomKind
	}
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Tag(), d.Message)
}
