package lookup

import "fmt"

// Kind classifies lookup failures
type Kind int

const (
	KindNoPhraseGiven Kind = iota + 1
	KindSourceUnavailable
	KindTranslationUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNoPhraseGiven:
		return "no phrase given"
	case KindSourceUnavailable:
		return "source unavailable"
	case KindTranslationUnavailable:
		return "translation unavailable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Messages printed for each failure.
const (
	MsgNoPhraseGiven         = "No phrase given"
	MsgDefinitionNotFound    = "Definition not found"
	MsgPronunciationNotFound = "Pronunciation not found"
	MsgSynonymsNotFound      = "Synonyms not found"
	MsgUnableToTranslate     = "Unable to translate"
	MsgUnableToPlay          = "Unable to play pronunciation"
)

// Error is returned by every source client and by the aggregator.
// Error() yields only the user facing message; the cause is kept for
// logging and errors.Unwrap.
type Error struct {
	Kind    Kind
	Source  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, ErrSourceUnavailable) works for any source.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNoPhraseGiven          = &Error{Kind: KindNoPhraseGiven, Message: MsgNoPhraseGiven}
	ErrSourceUnavailable      = &Error{Kind: KindSourceUnavailable, Message: "Source unavailable"}
	ErrTranslationUnavailable = &Error{Kind: KindTranslationUnavailable, Message: MsgUnableToTranslate}
)

// NewSourceError reports that source could not deliver its data.
func NewSourceError(source, message string, err error) *Error {
	return &Error{
		Kind:    KindSourceUnavailable,
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// NewTranslationError reports a failed translation into lang.
func NewTranslationError(lang Language, err error) *Error {
	return &Error{
		Kind:    KindTranslationUnavailable,
		Source:  "translation:" + lang.Label,
		Message: MsgUnableToTranslate,
		Err:     err,
	}
}
