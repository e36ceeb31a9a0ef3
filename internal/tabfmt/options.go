package tabfmt

import "golang.org/x/text/language"

// Option configures Write.
type Option func(*options)

// options holds the rendering configuration.
type options struct {
	format Format
	lang   language.Tag
	pkg    string
}

// defaultOptions returns the configuration used by go generate.
func defaultOptions() options {
	return options{
		format: FormatGo,
		lang:   language.English,
		pkg:    "gmath",
	}
}

// WithFormat selects the output format. The default is FormatGo.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithLanguage sets the language used to format numbers in FormatText.
// FormatGo output is locale independent.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithPackage sets the package clause of FormatGo output.
func WithPackage(name string) Option {
	return func(o *options) {
		o.pkg = name
	}
}
