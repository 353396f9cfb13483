package domain

// Gacha pool item types. "titles" is plural to match stored pool rows.
const (
	PoolItemRod       = "rod"
	PoolItemBait      = "bait"
	PoolItemAccessory = "accessory"
	PoolItemFish      = "fish"
	PoolItemTitle     = "titles"
	PoolItemCoins     = "coins"
)

// GachaPool is a weighted prize pool players can draw from
type GachaPool struct {
	ID                  int             `json:"pool_id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	CostCoins           int             `json:"cost_coins"`
	CostPremiumCurrency int             `json:"cost_premium_currency"`
	Items               []GachaPoolItem `json:"items,omitempty"`
}

// GachaPoolItem is one weighted entry of a pool
type GachaPoolItem struct {
	ID       int    `json:"gacha_pool_item_id"`
	PoolID   int    `json:"pool_id"`
	ItemType string `json:"item_type"`
	ItemID   int    `json:"item_id"`
	Quantity int    `json:"quantity"`
	Weight   int    `json:"weight"`
}

// PoolItemKind maps a pool item type onto a template kind. Coins have no template.
func PoolItemKind(itemType string) (ItemKind, bool) {
	switch itemType {
	case PoolItemRod:
		return ItemKindRod, true
	case PoolItemBait:
		return ItemKindBait, true
	case PoolItemAccessory:
		return ItemKindAccessory, true
	case PoolItemFish:
		return ItemKindFish, true
	case PoolItemTitle:
		return ItemKindTitle, true
	}
	return "", false
}

// EnrichedPoolItem is a pool item with a resolved display name
type EnrichedPoolItem struct {
	GachaPoolItem
	ItemName string `json:"item_name"`
}

// PoolDetails is the admin view of a single pool
type PoolDetails struct {
	Pool           GachaPool          `json:"pool"`
	Items          []EnrichedPoolItem `json:"items"`
	AllRods        []ItemTemplate     `json:"all_rods"`
	AllBaits       []ItemTemplate     `json:"all_baits"`
	AllAccessories []ItemTemplate     `json:"all_accessories"`
}
