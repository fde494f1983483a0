package mock

import "github.com/esoxjem/luego"

var _ luego.Converter = (*Converter)(nil)

// Converter is a mock implementation of luego.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
