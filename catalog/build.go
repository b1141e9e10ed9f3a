package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hyperjump/mitsumori/models"
)

// wordPattern extracts candidate keyword tokens from a description.
// Tokens shorter than 3 characters carry too little signal to index.
var wordPattern = regexp.MustCompile(`\b\w{3,}\b`)

// materialSynonyms expands common construction materials into the variant
// terms users actually type for them.
var materialSynonyms = map[string][]string{
	"cement":    {"opc", "ppc", "portland", "binding", "cement bag"},
	"steel":     {"ms", "tor", "tmt", "rebar", "reinforcement", "iron"},
	"aggregate": {"stone", "gravel", "chips", "coarse aggregate"},
	"sand":      {"fine aggregate", "river sand", "mortar sand"},
	"plaster":   {"plastering", "rendering", "finishing"},
	"pipe":      {"pipeline", "piping", "conduit", "tube"},
	"labour":    {"labor", "worker", "manpower", "workforce"},
	"acetylene": {"gas", "welding gas", "gas cylinder"},
	"paint":     {"painting", "coating", "enamel"},
	"brick":     {"bricks", "masonry", "block"},
	"wire":      {"wiring", "electrical", "conductor"},
}

// unitSynonyms maps abbreviated units to their spelled-out variants.
var unitSynonyms = map[string][]string{
	"no":  {"number", "piece", "nos", "each"},
	"mt":  {"metric ton", "tonne", "ton"},
	"kg":  {"kilogram", "kilo"},
	"lit": {"liter", "litre"},
	"cum": {"cubic meter", "m3"},
	"sqm": {"square meter", "m2"},
	"rmt": {"running meter", "linear meter"},
}

// BuildItem turns one extracted record into an immutable catalog item with
// generated keywords, search text, and display text.
func BuildItem(raw *models.RawItem) *models.CatalogItem {
	keywords := generateKeywords(raw)
	return &models.CatalogItem{
		ID:           ItemID(raw),
		Identifier:   raw.Identifier,
		Description:  raw.Description,
		Unit:         raw.Unit,
		PriceCurrent: raw.PriceCurrent,
		PricePrior:   raw.PricePrior,
		Category:     raw.Category,
		Provenance:   raw.Provenance,
		RawText:      rawText(raw),
		Metadata:     raw.Metadata,
		SearchText:   searchText(raw, keywords),
		Keywords:     keywords,
		DisplayText:  displayText(raw),
	}
}

// generateKeywords produces the sorted set of normalized tokens and phrases
// for an item: identifier variants, description words, material synonyms,
// unit synonyms, and the category label.
func generateKeywords(raw *models.RawItem) []string {
	seen := make(map[string]struct{})
	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			seen[kw] = struct{}{}
		}
	}

	add(raw.Category)

	if raw.Identifier != "" {
		id := raw.Identifier
		add(id)
		add("item " + id)
		add("item no " + id)
		add("sr no " + id)
		add("serial " + id)
		add(id + ".")
	}

	desc := strings.ToLower(raw.Description)
	add(desc)
	for _, word := range wordPattern.FindAllString(desc, -1) {
		add(word)
	}
	for material, synonyms := range materialSynonyms {
		if strings.Contains(desc, material) {
			add(material)
			for _, syn := range synonyms {
				add(syn)
			}
		}
	}

	if raw.Unit != "" {
		unit := strings.ToLower(raw.Unit)
		add(unit)
		add("per " + unit)
		for _, syn := range unitSynonyms[unit] {
			add(syn)
		}
	}

	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	// Sorted order keeps item construction deterministic across loads.
	sort.Strings(keywords)
	return keywords
}

// searchTextKeywordLimit bounds the keyword contribution to the embedding
// text so that long keyword lists do not swamp the description.
const searchTextKeywordLimit = 10

// searchText assembles the denormalized blob handed to the embedding and
// fuzzy capabilities.
func searchText(raw *models.RawItem, keywords []string) string {
	parts := []string{"Section: " + raw.Category}
	if raw.Identifier != "" {
		parts = append(parts, "Item "+raw.Identifier)
	}
	parts = append(parts, raw.Description)
	if raw.Unit != "" {
		parts = append(parts, "Unit: "+raw.Unit)
	}
	if raw.PriceCurrent != "" {
		parts = append(parts, "current rate "+raw.PriceCurrent)
	}
	if raw.PricePrior != "" {
		parts = append(parts, "prior rate "+raw.PricePrior)
	}
	limit := searchTextKeywordLimit
	if limit > len(keywords) {
		limit = len(keywords)
	}
	parts = append(parts, keywords[:limit]...)
	return strings.Join(parts, " | ")
}

// displayText renders a short human-readable line for presentation layers.
func displayText(raw *models.RawItem) string {
	var parts []string
	if raw.Identifier != "" {
		parts = append(parts, "#"+raw.Identifier)
	}
	parts = append(parts, raw.Description)
	if raw.Unit != "" {
		parts = append(parts, "("+raw.Unit+")")
	}
	if raw.PriceCurrent != "" {
		parts = append(parts, "- Rs. "+raw.PriceCurrent)
	}
	return strings.Join(parts, " ")
}

// rawText preserves the extractor's raw rendering when present, otherwise
// reconstructs a field dump for provenance display.
func rawText(raw *models.RawItem) string {
	if raw.RawText != "" {
		return raw.RawText
	}
	parts := []string{"description: " + raw.Description}
	if raw.Identifier != "" {
		parts = append([]string{"sr_no: " + raw.Identifier}, parts...)
	}
	if raw.Unit != "" {
		parts = append(parts, "unit: "+raw.Unit)
	}
	if raw.PriceCurrent != "" {
		parts = append(parts, "rate: "+raw.PriceCurrent)
	}
	return strings.Join(parts, " | ")
}

// BuildItems converts extracted records into catalog items, skipping records
// without a description. Returns how many records were skipped.
func BuildItems(raws []models.RawItem) (items []*models.CatalogItem, skipped int) {
	items = make([]*models.CatalogItem, 0, len(raws))
	for i := range raws {
		if strings.TrimSpace(raws[i].Description) == "" {
			skipped++
			continue
		}
		items = append(items, BuildItem(&raws[i]))
	}
	return items, skipped
}

// String renders a provenance reference for logs.
func provenanceRef(item *models.CatalogItem) string {
	return fmt.Sprintf("page %d table %d row %d",
		item.Provenance.Page, item.Provenance.TableIndex, item.Provenance.RowIndex)
}
