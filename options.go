package pathregexp

// options are the emission flags threaded through the tokenizer-to-regex
// pipeline. Default is {end: true}, matching the PR_END default of the
// C++ original this package is ported from.
type options struct {
	sensitive bool // case-sensitive matching when set; default is case-insensitive
	strict    bool // require an exact trailing slash when set
	end       bool // anchor the regex to end-of-input when set
}

func defaultOptions() options {
	return options{end: true}
}

// Option configures pattern emission. The zero value of Option set is
// {END}; callers opt into SENSITIVE/STRICT and can clear END for
// prefix-style matching.
type Option func(*options)

// WithSensitive makes matching case-sensitive.
func WithSensitive() Option {
	return func(o *options) { o.sensitive = true }
}

// WithStrict disallows a missing or extra trailing slash.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithEnd anchors the regex to the end of input. This is the default;
// it is exposed for callers that build their Option slice dynamically.
func WithEnd() Option {
	return func(o *options) { o.end = true }
}

// WithoutEnd clears the end-of-input anchor, producing a regex suitable
// for prefix matching (e.g. mounting a sub-router).
func WithoutEnd() Option {
	return func(o *options) { o.end = false }
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Flags describes the two dialect bits carried alongside an emitted
// regex source string.
type Flags struct {
	// IgnoreCase is true unless WithSensitive was given.
	IgnoreCase bool
	// ECMAScript is always true: the emitted source assumes an
	// ECMAScript-flavored engine (non-capturing groups, lookahead,
	// non-greedy quantifiers).
	ECMAScript bool
}

func flagsFor(o options) Flags {
	return Flags{IgnoreCase: !o.sensitive, ECMAScript: true}
}
