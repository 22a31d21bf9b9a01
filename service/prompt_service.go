package service

import (
	"strings"

	"beautygpt-api/models"
	"beautygpt-api/utils"
)

const productContextHeader = "DATABASE PRODOTTI DISPONIBILI:\n\n"

// systemPromptPreamble is the persona, the behavioral rules and the output format
// the model must follow. The product context is appended after it.
const systemPromptPreamble = `Sei BeautyGPT, un'esperta consulente di skincare e beauty italiana.
Il tuo obiettivo è aiutare le utenti a trovare i prodotti skincare perfetti per le loro esigenze.

REGOLE:
1. Rispondi SEMPRE in italiano
2. Sii amichevole, professionale e appassionata di skincare
3. Fai domande per capire: tipo di pelle, età, budget, problemi specifici
4. Quando consigli prodotti, usa SOLO quelli dal database fornito
5. Per ogni prodotto consigliato, includi SEMPRE il link Amazon
6. Massimo 3 prodotti per risposta, spiega PERCHÉ sono adatti
7. Se non hai abbastanza info, chiedi prima di consigliare
8. Aggiungi consigli su come usare i prodotti (routine, frequenza)

FORMATO RISPOSTA PRODOTTI:
Quando consigli un prodotto, usa questo formato:
**Nome Prodotto** - €prezzo
Perché: [spiegazione personalizzata]
[Link Amazon](url)

`

// FormatProductContext renders the catalog as the text block the model is grounded on.
// One paragraph per product, in catalog order.
func FormatProductContext(products []models.Product) string {
	var b strings.Builder
	b.WriteString(productContextHeader)

	for _, p := range products {
		b.WriteString("\n- ")
		b.WriteString(p.Name)
		b.WriteString(" (")
		b.WriteString(p.Brand)
		b.WriteString(") - €")
		b.WriteString(utils.FormatPrice(p.Price))
		b.WriteString("\n  Categoria: ")
		b.WriteString(p.Category)
		b.WriteString("\n  Tipi di pelle: ")
		b.WriteString(strings.Join(p.SkinTypes, ", "))
		b.WriteString("\n  Età: ")
		b.WriteString(strings.Join(p.AgeRange, ", "))
		b.WriteString("\n  Benefici: ")
		b.WriteString(strings.Join(p.Benefits, ", "))
		b.WriteString("\n  Ingredienti chiave: ")
		b.WriteString(strings.Join(p.KeyIngredients, ", "))
		b.WriteString("\n  Link: ")
		b.WriteString(p.AmazonURL)
		b.WriteString("\n")
	}

	return b.String()
}

// BuildSystemPrompt assembles the system instruction sent with every chat request.
// It is computed once at startup.
func BuildSystemPrompt(products []models.Product) string {
	return systemPromptPreamble + FormatProductContext(products) + "\n"
}
