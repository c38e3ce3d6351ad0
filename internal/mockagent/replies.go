package mockagent

import "strings"

type cannedReply struct {
	keywords []string
	text     string
}

var cannedReplies = []cannedReply{
	{
		keywords: []string{"televisor", "tv", "samsung"},
		text:     "Tenemos televisores Samsung Crystal UHD de 50\" y 55\", y la línea Neo QLED de 65\". El de 55\" tiene envío gratis esta semana.",
	},
	{
		keywords: []string{"refrigerador", "nevera", "nevecón"},
		text:     "Los más vendidos son el Samsung No Frost de 394 L y el LG InstaView de 635 L. ¿Buscas uno de una puerta o side by side?",
	},
	{
		keywords: []string{"notebook", "laptop", "portátil", "gaming"},
		text:     "Para gaming te recomiendo el ASUS TUF F15 con RTX 4050 o el Lenovo LOQ con RTX 4060. Ambos tienen 16 GB de RAM.",
	},
	{
		keywords: []string{"iphone", "celular", "apple"},
		text:     "Tenemos iPhone 15 y iPhone 15 Pro en 128 y 256 GB. El iPhone 15 de 128 GB tiene 10% de descuento.",
	},
	{
		keywords: []string{"lavadora", "lavar"},
		text:     "Te recomiendo la LG carga frontal de 22 kg o la Whirlpool Xpert de 18 kg. ¿Prefieres carga superior o frontal?",
	},
}

const defaultReply = "¡Hola! Soy tu asesor de productos. Pregúntame por televisores, electrodomésticos, computadores o celulares."

// replyFor picks a canned reply by keyword.
func replyFor(utterance string) string {
	lower := strings.ToLower(utterance)
	for _, r := range cannedReplies {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.text
			}
		}
	}
	return defaultReply
}
