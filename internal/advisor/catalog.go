package advisor

// Suggestion is a landing shortcut that submits a canned query.
type Suggestion struct {
	Title    string
	Subtitle string
	Query    string
}

// Suggestions are the category shortcuts of the landing view.
var Suggestions = []Suggestion{
	{
		Title:    "Televisores y Audio",
		Subtitle: "Samsung, LG, Sony y más marcas",
		Query:    "¿Qué televisores Samsung tienen disponibles?",
	},
	{
		Title:    "Electrodomésticos",
		Subtitle: "Refrigeradores, lavadoras y más",
		Query:    "¿Cuáles son los mejores refrigeradores?",
	},
	{
		Title:    "Computadores y Gaming",
		Subtitle: "Laptops, PCs y accesorios gaming",
		Query:    "¿Tienen notebooks para gaming?",
	},
}
