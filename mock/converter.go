package mock

import "github.com/fwojciec/wikimd"

var _ wikimd.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikimd.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
