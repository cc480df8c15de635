package provider

// Result represents the outcome of a single provider fetch.
// It never crosses the provider boundary: Resolve turns it into plain text.
type Result struct {
	// Text is the rendered context text. Only meaningful when Err is nil.
	Text string

	// Err is the internal failure detail. If Err is not nil, Text is ignored.
	Err error
}

// Ok wraps successfully rendered text
func Ok(text string) Result {
	return Result{Text: text}
}

// Fail wraps an internal error
func Fail(err error) Result {
	return Result{Err: err}
}

// Resolve returns the text to hand to the caller. On failure onErr is invoked
// with the error and fallback is returned instead.
func (r Result) Resolve(fallback string, onErr func(error)) string {
	if r.Err == nil {
		return r.Text
	}
	if onErr != nil {
		onErr(r.Err)
	}
	return fallback
}

// Output is the text one provider contributed during plugin composition
type Output struct {
	// Name is the provider's identifier
	Name string

	// Text is what the provider returned
	Text string
}
