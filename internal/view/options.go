package view

// Option configures a Builder.
type Option func(*Builder)

// WithScale sets the trend scale. Empty gridlines keep the default ones.
func WithScale(s Scale) Option {
	return func(b *Builder) {
		if len(s.Gridlines) == 0 {
			s.Gridlines = b.scale.Gridlines
		}
		b.scale = s
	}
}
