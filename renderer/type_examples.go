package renderer

import "github.com/etnz/networth"

// ExampleList is the catalog of example collections.
type ExampleList struct {
	Examples []ExampleItem
}

// ExampleItem is a single example collection.
type ExampleItem struct {
	Index       int
	Label       string
	Slug        string
	Description string
	NetPosition networth.Money
}

// NewExampleList creates the catalog of examples, in currency.
func NewExampleList(currency string) *ExampleList {
	examples := networth.Examples(currency)
	l := &ExampleList{Examples: make([]ExampleItem, 0, len(examples))}
	for i, e := range examples {
		l.Examples = append(l.Examples, ExampleItem{
			Index:       i + 1,
			Label:       e.Label,
			Slug:        networth.Slugify(e.Label),
			Description: e.Description,
			NetPosition: networth.NetPosition(e.Assets).In(currency),
		})
	}
	return l
}
