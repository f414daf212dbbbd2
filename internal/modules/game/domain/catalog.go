package domain

// Item is a warehouse product category. Cells and orders only ever hold
// items from Catalog.
type Item string

const (
	Electronics Item = "Electronics"
	Clothing    Item = "Clothing"
	Food        Item = "Food"
	Books       Item = "Books"
	Toys        Item = "Toys"
)

// VisualTag styles a cell. It carries no game meaning.
type VisualTag string

const (
	TagBlue   VisualTag = "blue"
	TagGreen  VisualTag = "green"
	TagYellow VisualTag = "yellow"
	TagRed    VisualTag = "red"
	TagPurple VisualTag = "purple"
)

// Catalog lists every item in sampling order. Random generation indexes
// into it, so the order is part of the deterministic-seed contract.
var Catalog = []Item{Electronics, Clothing, Food, Books, Toys}

var itemTags = map[Item]VisualTag{
	Electronics: TagBlue,
	Clothing:    TagGreen,
	Food:        TagYellow,
	Books:       TagRed,
	Toys:        TagPurple,
}

func (i Item) Valid() bool {
	_, ok := itemTags[i]
	return ok
}

// Tag returns the visual tag for the item, or "" for items outside Catalog.
func (i Item) Tag() VisualTag {
	return itemTags[i]
}
