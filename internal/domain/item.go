package domain

import "strings"

// ItemKind identifies a template catalog
type ItemKind string

const (
	ItemKindFish      ItemKind = "fish"
	ItemKindRod       ItemKind = "rod"
	ItemKindBait      ItemKind = "bait"
	ItemKindAccessory ItemKind = "accessory"
	ItemKindTitle     ItemKind = "title"
)

// ItemKinds lists every template kind in display order
var ItemKinds = []ItemKind{
	ItemKindFish,
	ItemKindRod,
	ItemKindBait,
	ItemKindAccessory,
	ItemKindTitle,
}

// ParseItemKind accepts singular or plural kind names ("rods", "Rod")
func ParseItemKind(s string) (ItemKind, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	switch k {
	case "fish", "fishes":
		return ItemKindFish, nil
	case "rod", "rods":
		return ItemKindRod, nil
	case "bait", "baits":
		return ItemKindBait, nil
	case "accessory", "accessories":
		return ItemKindAccessory, nil
	case "title", "titles":
		return ItemKindTitle, nil
	}
	return "", ErrInvalidItemKind
}

// ItemTemplate is a static catalog definition, distinct from an owned instance
type ItemTemplate struct {
	ID          int      `json:"id"`
	Kind        ItemKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rarity      int      `json:"rarity"`
	Price       int      `json:"price"`
}
