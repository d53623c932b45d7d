package model

// ShowTextKey is the only configuration key the widget reads
const ShowTextKey = "shouldShowText"

// Intent is the opaque, optional configuration supplied by the host.
// Values are loosely typed; only ShowTextKey is ever consulted.
type Intent map[string]interface{}

// ShouldShowText reports whether caption text was requested. Anything other
// than a boolean true, including a nil intent, counts as false.
func (i Intent) ShouldShowText() bool {
	if i == nil {
		return false
	}
	v, ok := i[ShowTextKey].(bool)
	return ok && v
}

// WithShowText returns a copy of the intent with the toggle set
func (i Intent) WithShowText(show bool) Intent {
	out := make(Intent, len(i)+1)
	for k, v := range i {
		out[k] = v
	}
	out[ShowTextKey] = show
	return out
}
