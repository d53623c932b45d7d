package model

// OutcomeKind tags a FetchOutcome
type OutcomeKind int

const (
	OutcomeFailure OutcomeKind = iota
	OutcomeSuccess
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// FetchOutcome is the result of exactly one data retrieval: a success payload
// or a failure reason. The zero value is a failure with an empty reason.
type FetchOutcome struct {
	Kind        OutcomeKind
	Image       Image
	Title       string
	Explanation string
	Reason      string
}

// Success builds a successful outcome
func Success(image Image, title, explanation string) FetchOutcome {
	return FetchOutcome{
		Kind:        OutcomeSuccess,
		Image:       image,
		Title:       title,
		Explanation: explanation,
	}
}

// Failure builds a failed outcome carrying an opaque reason
func Failure(reason string) FetchOutcome {
	return FetchOutcome{
		Kind:   OutcomeFailure,
		Reason: reason,
	}
}

// IsSuccess reports whether the fetch produced content
func (o FetchOutcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}
