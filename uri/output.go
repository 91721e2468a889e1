package uri

import "strconv"

// OutputForm selects the representation returned by [Compose] and [Normalize].
type OutputForm uint8

const (
	// FormURI requests an immutable [*URI]. It is the default.
	FormURI OutputForm = iota
	// FormBuilder requests a mutable [*Builder].
	FormBuilder
	// FormString requests a [Text] rendered as "scheme://host[:port][path][?query][#fragment]".
	// The user information is omitted and the fragment has every space and "%20" replaced with "-".
	FormString
)

// IsValid reports whether f is one of the known forms.
// Combined forms like FormBuilder|FormString are invalid.
func (f OutputForm) IsValid() bool { return f <= FormString }

func (f OutputForm) String() string {
	switch f {
	case FormURI:
		return "uri"
	case FormBuilder:
		return "builder"
	case FormString:
		return "string"
	default:
		return "OutputForm(" + strconv.Itoa(int(f)) + ")"
	}
}

// Output is a result of [Compose] and [Normalize].
// The concrete type is [*URI], [*Builder] or [Text] depending on the requested [OutputForm].
type Output interface {
	String() string
	Form() OutputForm
}

// Text is the [FormString] output.
type Text string

func (t Text) String() string { return string(t) }

// Form implements [Output].
func (Text) Form() OutputForm { return FormString }

func render(b *Builder, form OutputForm) Output {
	switch form {
	case FormBuilder:
		return b
	case FormString:
		return Text(b.URI().Render(textRenderOpts))
	default:
		return b.URI()
	}
}
