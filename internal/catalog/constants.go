package catalog

// Display names for pool items
const (
	CoinsItemNameFormat = "%d coins"
	UnknownItemName     = "Unknown item"
)

// Error message prefixes for wrapped repository faults
const (
	ErrMsgListTemplatesFailed  = "failed to list templates"
	ErrMsgGetTemplateFailed    = "failed to get template"
	ErrMsgCreateTemplateFailed = "failed to create template"
	ErrMsgUpdateTemplateFailed = "failed to update template"
	ErrMsgDeleteTemplateFailed = "failed to delete template"
	ErrMsgListPoolsFailed      = "failed to list gacha pools"
	ErrMsgGetPoolFailed        = "failed to get gacha pool"
	ErrMsgSavePoolFailed       = "failed to save gacha pool"
	ErrMsgDeletePoolFailed     = "failed to delete gacha pool"
	ErrMsgListPoolItemsFailed  = "failed to list gacha pool items"
	ErrMsgSavePoolItemFailed   = "failed to save gacha pool item"
	ErrMsgDeletePoolItemFailed = "failed to delete gacha pool item"
)

// Log messages
const (
	LogMsgTemplateCreated = "Item template created"
	LogMsgTemplateUpdated = "Item template updated"
	LogMsgTemplateDeleted = "Item template deleted"
	LogMsgPoolCreated     = "Gacha pool created"
	LogMsgPoolUpdated     = "Gacha pool updated"
	LogMsgPoolDeleted     = "Gacha pool deleted"
	LogMsgPoolItemAdded   = "Gacha pool item added"
	LogMsgPoolItemUpdated = "Gacha pool item updated"
	LogMsgPoolItemDeleted = "Gacha pool item deleted"
)
