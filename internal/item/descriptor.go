package item

import "github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"

// Descriptor is the declarative definition of one custom item. Optional
// behaviour is expressed by the presence of a feature block: a nil block
// means the corresponding patch step does nothing for this item.
type Descriptor struct {
	ID                   string
	ItemTplToClone       string
	ParentID             string
	HandbookParentID     string
	OverrideProperties   map[string]any
	Locales              map[string]domain.LocaleDetails
	FleaPriceRoubles     float64
	HandbookPriceRoubles float64

	StaticLoot     *StaticLootFeature
	ModSlots       *ModSlotFeature
	InventorySlots *InventorySlotFeature
	Masteries      *MasteryFeature
	Presets        *PresetFeature
	Trader         *TraderFeature
	Bots           *BotFeature
}

// StaticLootFeature places the item into map containers.
type StaticLootFeature struct {
	Containers []ContainerWeight
}

// ContainerWeight is a container reference with the spawn weight of the
// item inside it.
type ContainerWeight struct {
	Container   string  `json:"ContainerName"`
	Probability float64 `json:"Probability,omitempty"`
}

// ModSlotFeature makes the item attachable wherever the cloned template is,
// narrowed to matching slot names. Whitelisted parents always qualify,
// blacklisted ones never do.
type ModSlotFeature struct {
	Slots     []string
	Whitelist []string
	Blacklist []string
}

// InventorySlotFeature makes the item equippable in player inventory slots.
type InventorySlotFeature struct {
	Slots []string
}

// MasteryFeature registers weapon mastery sections.
type MasteryFeature struct {
	Sections []MasterySection
}

// MasterySection is a mastery entry as written in item fragments.
type MasterySection struct {
	Name      string   `json:"Name"`
	Templates []string `json:"Templates"`
	Level2    int      `json:"Level2,omitempty"`
	Level3    int      `json:"Level3,omitempty"`
}

// PresetFeature registers weapon presets.
type PresetFeature struct {
	Presets []PresetDef
}

// PresetDef is a weapon preset as written in item fragments.
type PresetDef struct {
	ChangeWeaponName bool         `json:"_changeWeaponName,omitempty"`
	Encyclopedia     string       `json:"_encyclopedia,omitempty"`
	ID               string       `json:"_id"`
	Items            []PresetPart `json:"_items"`
	Name             string       `json:"_name"`
	Parent           string       `json:"_parent"`
}

// PresetPart is one component of a preset definition.
type PresetPart struct {
	ID       string `json:"_id"`
	Tpl      string `json:"_tpl"`
	ParentID string `json:"parentId,omitempty"`
	SlotID   string `json:"slotId,omitempty"`
}

// TraderFeature lists the item with a trader.
type TraderFeature struct {
	TraderID     string
	Items        []TraderItem
	Barters      []BarterEntry
	LoyaltyLevel *int
}

// TraderItem is one assort listing.
type TraderItem struct {
	UnlimitedCount    bool `json:"unlimitedCount,omitempty"`
	StackObjectsCount int  `json:"stackObjectsCount,omitempty"`
}

// BarterEntry is one purchase option: count units of a currency or item.
type BarterEntry struct {
	Count    float64 `json:"count"`
	Currency string  `json:"_tpl"`
}

// BotFeature copies the cloned template's loot weights to the item.
type BotFeature struct{}

// Config is the merged set of item descriptors, keyed by item id.
type Config struct {
	// Order lists item ids in merge order. A redefined id keeps its
	// first position.
	Order []string
	Items map[string]*Descriptor
}

// NewConfig returns an empty configuration.
func NewConfig() *Config {
	return &Config{Items: make(map[string]*Descriptor)}
}

// Set stores d under id, replacing any earlier descriptor wholesale.
// Returns true when an earlier descriptor was replaced.
func (c *Config) Set(id string, d *Descriptor) bool {
	_, replaced := c.Items[id]
	if !replaced {
		c.Order = append(c.Order, id)
	}
	d.ID = id
	c.Items[id] = d
	return replaced
}

// Len returns the number of items.
func (c *Config) Len() int {
	return len(c.Order)
}

// Descriptors returns the descriptors in merge order.
func (c *Config) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(c.Order))
	for _, id := range c.Order {
		out = append(out, c.Items[id])
	}
	return out
}
