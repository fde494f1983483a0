package mock

import "github.com/esoxjem/luego"

var _ luego.Parser = (*Parser)(nil)

// Parser is a mock implementation of luego.Parser.
type Parser struct {
	ParseFn func(html string) (luego.Document, error)
}

func (p *Parser) Parse(html string) (luego.Document, error) {
	return p.ParseFn(html)
}
