package report

import "fmt"

// Enumeration of the different kinds of compile errors.  Each stage of the
// pipeline fails with exactly one of these kinds.
const (
	ErrKindLex    = iota // Tokenization errors: bad characters, bad indentation.
	ErrKindSyntax        // Parse errors: token stream doesn't match the grammar.
	ErrKindName          // Resolution errors: use of an unbound name.
	ErrKindArity         // Call errors: argument count doesn't match the callee.
)

// errKindLabels converts an error kind into its displayable label.
var errKindLabels = []string{
	"lex",    // ErrKindLex
	"syntax", // ErrKindSyntax
	"name",   // ErrKindName
	"arity",  // ErrKindArity
}

// KindLabel returns the displayable label for an error kind.
func KindLabel(kind int) string {
	return errKindLabels[kind]
}

// CompileError is an error produced by some stage of compilation in response
// to erroneous input source text.  It carries the kind of failure and the span
// of source text it occurred over.
type CompileError struct {
	// The error kind.  This must be one of the enumerated error kinds.
	Kind int

	// The span over which the error occurs.
	Span *TextSpan

	// The error message.
	Message string
}

func (ce *CompileError) Error() string {
	return fmt.Sprintf("%s error: %s", KindLabel(ce.Kind), ce.Message)
}

// Raise creates a new compile error of the given kind.
func Raise(kind int, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Span: span, Message: fmt.Sprintf(msg, args...)}
}

// CatchError catches a compile error thrown by a `panic` during a stage of
// compilation and stores it into the given error slot.  In effect, this
// handler determines where errors "unrecoverable" within a stage should stop
// bubbling: each stage defers it once at its public entry point.  Any panic
// that is not a compile error is re-raised.
// NB: This function must ALWAYS be deferred.
func CatchError(err *error) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*CompileError); ok {
			*err = cerr
		} else {
			panic(x)
		}
	}
}
