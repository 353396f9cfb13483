package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// TemplateInput is the editable part of an item template
type TemplateInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Rarity      int    `json:"rarity" validate:"min=1,max=10"`
	Price       int    `json:"price" validate:"min=0"`
}

// PoolInput is the editable part of a gacha pool
type PoolInput struct {
	Name                string `json:"name" validate:"required,max=100"`
	Description         string `json:"description" validate:"max=500"`
	CostCoins           int    `json:"cost_coins" validate:"min=0"`
	CostPremiumCurrency int    `json:"cost_premium_currency" validate:"min=0"`
}

// PoolItemInput is the editable part of a gacha pool entry. ItemID is ignored for coins.
type PoolItemInput struct {
	ItemType string `json:"item_type" validate:"required,oneof=rod bait accessory fish titles coins"`
	ItemID   int    `json:"item_id" validate:"min=0"`
	Quantity int    `json:"quantity" validate:"min=1"`
	Weight   int    `json:"weight" validate:"min=1"`
}

var validate = validator.New()

func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (in TemplateInput) apply(t *domain.ItemTemplate) {
	t.Name = in.Name
	t.Description = in.Description
	t.Rarity = in.Rarity
	t.Price = in.Price
}

func (in PoolInput) apply(p *domain.GachaPool) {
	p.Name = in.Name
	p.Description = in.Description
	p.CostCoins = in.CostCoins
	p.CostPremiumCurrency = in.CostPremiumCurrency
}

func (in PoolItemInput) apply(item *domain.GachaPoolItem) {
	item.ItemType = in.ItemType
	item.ItemID = in.ItemID
	if in.ItemType == domain.PoolItemCoins {
		item.ItemID = 0
	}
	item.Quantity = in.Quantity
	item.Weight = in.Weight
}
