package mock

import "github.com/fwojciec/wikimd"

var _ wikimd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikimd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
