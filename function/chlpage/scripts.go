package chlpage

import (
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Script is one <script> element of the page, external or inline.
type Script struct {
	Index  int
	Src    string
	Inline string
}

// Scripts enumerates every script element in document order.
func Scripts(r io.Reader) ([]Script, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	var scripts []Script
	doc.Find("script").Each(func(i int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		scripts = append(scripts, Script{
			Index:  i,
			Src:    src,
			Inline: sel.Text(),
		})
	})
	return scripts, nil
}
