package icon

// ID names a habit icon from the closed set below.
type ID string

const (
	Droplet ID = "droplet"
	Flame   ID = "flame"
	Book    ID = "book"
	Moon    ID = "moon"
	Heart   ID = "heart"
	Leaf    ID = "leaf"
	Barbell ID = "barbell"
	Pencil  ID = "pencil"
	Wallet  ID = "wallet"
	Sunrise ID = "sunrise"
	Default ID = Droplet
)

// Icon pairs an icon id with its render glyph and meaning.
type Icon struct {
	ID      ID
	Symbol  string
	Meaning string
}

var catalog = []Icon{
	{ID: Droplet, Symbol: "◉", Meaning: "hydration"},
	{ID: Flame, Symbol: "△", Meaning: "exercise"},
	{ID: Book, Symbol: "▤", Meaning: "reading"},
	{ID: Moon, Symbol: "☾", Meaning: "sleep"},
	{ID: Heart, Symbol: "♥", Meaning: "wellbeing"},
	{ID: Leaf, Symbol: "❧", Meaning: "outdoors"},
	{ID: Barbell, Symbol: "≡", Meaning: "strength"},
	{ID: Pencil, Symbol: "✎", Meaning: "writing"},
	{ID: Wallet, Symbol: "▣", Meaning: "finance"},
	{ID: Sunrise, Symbol: "☀", Meaning: "morning routine"},
}

// All returns the icon catalog in presentation order.
func All() []Icon {
	out := make([]Icon, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves an id to its Icon, falling back to the default glyph for
// unknown ids so rendering never breaks on stale data.
func Lookup(id ID) Icon {
	for _, ic := range catalog {
		if ic.ID == id {
			return ic
		}
	}
	return catalog[0]
}

// Symbol is shorthand for Lookup(id).Symbol.
func Symbol(id ID) string { return Lookup(id).Symbol }
