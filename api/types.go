// Package api - request and response types
package api

import (
	"vo-quote/core/cart"
	"vo-quote/core/catalog"
	"vo-quote/core/types"
)

// ResolveRequest selects a card entry and supplies usage parameters.
type ResolveRequest struct {
	Category string         `json:"category"`
	SubType  string         `json:"sub_type"`
	Params   map[string]any `json:"params,omitempty"`
}

// RateDTO is the wire form of a resolved rate entry. Bounds travel as
// strings to keep decimal precision out of float hands.
type RateDTO struct {
	Text          string `json:"text"`
	Low           string `json:"low"`
	High          string `json:"high"`
	Description   string `json:"description"`
	Informational bool   `json:"informational"`
}

// ResolveResponse reports the engine outcome. Resolved is false when
// the engine declined; that is not an error.
type ResolveResponse struct {
	Resolved bool     `json:"resolved"`
	Rate     *RateDTO `json:"rate,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// ItemDTO is the wire form of a cart line.
type ItemDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Rate        string `json:"rate"`
	Low         string `json:"low"`
	High        string `json:"high"`
}

// TotalDTO is the wire form of a cart total.
type TotalDTO struct {
	Low   string `json:"low"`
	High  string `json:"high"`
	Text  string `json:"text"`
	Items int    `json:"items"`
}

// CartResponse is the full cart view.
type CartResponse struct {
	Items []ItemDTO `json:"items"`
	Total TotalDTO  `json:"total"`
}

// AddItemResponse returns the created line and the new total.
type AddItemResponse struct {
	Item  ItemDTO  `json:"item"`
	Total TotalDTO `json:"total"`
}

// CategoryDTO describes one category of the card.
type CategoryDTO struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	SubTypes []string `json:"sub_types"`
}

// CatalogResponse lists the card vocabulary.
type CatalogResponse struct {
	Categories []CategoryDTO `json:"categories"`
}

func rateDTO(entry *types.RateEntry) *RateDTO {
	return &RateDTO{
		Text:          entry.Text,
		Low:           entry.Low.String(),
		High:          entry.High.String(),
		Description:   entry.Description,
		Informational: entry.Informational(),
	}
}

func itemDTO(item cart.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID,
		Description: item.Description,
		Rate:        item.Rate,
		Low:         item.Low.String(),
		High:        item.High.String(),
	}
}

func totalDTO(t cart.Total) TotalDTO {
	return TotalDTO{
		Low:   t.Low.String(),
		High:  t.High.String(),
		Text:  t.Text(),
		Items: t.Items,
	}
}

func categoryDTO(c *catalog.Catalog, cat catalog.Category) CategoryDTO {
	return CategoryDTO{
		Key:      cat.String(),
		Label:    cat.Label(),
		SubTypes: c.SubTypes(cat),
	}
}
