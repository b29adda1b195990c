package cafelist

import (
	"strconv"

	"github.com/vcrobe/cafelist/cafe"
	"github.com/vcrobe/cafelist/config"
	"github.com/vcrobe/cafelist/vdom"
)

// CardLabels are the fixed texts and the detail route used on a card.
type CardLabels struct {
	DetailPrefix  string
	Location      string
	Price         string
	PriceFallback string
	MapLink       string
}

// LabelsFrom picks the card labels out of a config.
func LabelsFrom(cfg config.Config) CardLabels {
	return CardLabels{
		DetailPrefix:  cfg.Routes.DetailPrefix,
		Location:      cfg.Messages.LocationLabel,
		Price:         cfg.Messages.PriceLabel,
		PriceFallback: cfg.Messages.PriceFallback,
		MapLink:       cfg.Messages.MapLink,
	}
}

// RenderCafeCards builds one card per cafe, in order. Both the full list and
// search results go through here so they share one markup shape.
func RenderCafeCards(cafes []cafe.Cafe, labels CardLabels) []*vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(cafes))
	for _, c := range cafes {
		cards = append(cards, renderCard(c, labels))
	}
	return cards
}

// CardsHTML is RenderCafeCards serialized to an HTML fragment.
func CardsHTML(cafes []cafe.Cafe, labels CardLabels) string {
	return vdom.HTML(RenderCafeCards(cafes, labels)...)
}

func renderCard(c cafe.Cafe, labels CardLabels) *vdom.VNode {
	detail := labels.DetailPrefix + strconv.Itoa(c.ID)

	return vdom.Div(map[string]any{"class": "cafe-card"},
		vdom.Heading(3, nil,
			vdom.Anchor(detail, nil, vdom.Text(c.Name)),
		),
		vdom.Anchor(detail, nil,
			vdom.Image(c.ImgURL, c.Name, map[string]any{"width": "100%"}),
		),
		vdom.Paragraph(labels.Location+c.Location, nil),
		vdom.Paragraph(labels.Price+c.PriceOr(labels.PriceFallback), nil),
		vdom.Anchor(c.MapURL, map[string]any{"target": "_blank"}, vdom.Text(labels.MapLink)),
	)
}

// message is the inline notice that replaces the list (gray for empty, red for failures).
func message(text, color string) *vdom.VNode {
	return vdom.Paragraph(text, map[string]any{"style": "color: " + color + ";"})
}
