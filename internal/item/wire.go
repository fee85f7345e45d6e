package item

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/invopop/jsonschema"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
)

// wireItem is one item entry as authored in a fragment file. Feature
// blocks are switched on by boolean flags here and converted to optional
// blocks by toDescriptor.
type wireItem struct {
	ItemTplToClone       string                          `json:"itemTplToClone" jsonschema:"required"`
	OverrideProperties   map[string]any                  `json:"overrideProperties,omitempty"`
	ParentID             string                          `json:"parentId,omitempty"`
	HandbookParentID     string                          `json:"handbookParentId,omitempty"`
	FleaPriceRoubles     float64                         `json:"fleaPriceRoubles,omitempty"`
	HandbookPriceRoubles float64                         `json:"handbookPriceRoubles,omitempty"`
	Locales              map[string]domain.LocaleDetails `json:"locales,omitempty"`

	AddToStaticLoot      bool          `json:"addtoStaticLootContainers,omitempty"`
	StaticLootContainers ContainerRefs `json:"StaticLootContainers,omitempty"`
	Probability          float64       `json:"Probability,omitempty"`

	AddToModSlots bool       `json:"addtoModSlots,omitempty"`
	ModSlot       StringList `json:"modSlot,omitempty"`
	Whitelist     StringList `json:"ModdableItemWhitelist,omitempty"`
	Blacklist     StringList `json:"ModdableItemBlacklist,omitempty"`

	InventorySlots StringList `json:"addtoInventorySlots,omitempty"`

	Masteries       bool        `json:"masteries,omitempty"`
	MasterySections MasteryList `json:"masterySections,omitempty"`

	AddWeaponPreset bool        `json:"addweaponpreset,omitempty"`
	WeaponPresets   []PresetDef `json:"weaponpresets,omitempty"`

	AddToTraders    bool          `json:"addtoTraders,omitempty"`
	TraderID        string        `json:"traderId,omitempty"`
	TraderItems     []TraderItem  `json:"traderItems,omitempty"`
	BarterScheme    []BarterEntry `json:"barterScheme,omitempty"`
	LoyalLevelItems *int          `json:"loyallevelitems,omitempty"`

	AddToBots bool `json:"addtoBots,omitempty"`
}

func (w *wireItem) toDescriptor() *Descriptor {
	d := &Descriptor{
		ItemTplToClone:       w.ItemTplToClone,
		ParentID:             w.ParentID,
		HandbookParentID:     w.HandbookParentID,
		OverrideProperties:   w.OverrideProperties,
		Locales:              w.Locales,
		FleaPriceRoubles:     w.FleaPriceRoubles,
		HandbookPriceRoubles: w.HandbookPriceRoubles,
	}

	if w.AddToStaticLoot {
		d.StaticLoot = &StaticLootFeature{Containers: w.StaticLootContainers.weights(w.Probability)}
	}
	if w.AddToModSlots {
		d.ModSlots = &ModSlotFeature{
			Slots:     w.ModSlot,
			Whitelist: w.Whitelist,
			Blacklist: w.Blacklist,
		}
	}
	if len(w.InventorySlots) > 0 {
		d.InventorySlots = &InventorySlotFeature{Slots: w.InventorySlots}
	}
	if w.Masteries {
		d.Masteries = &MasteryFeature{Sections: w.MasterySections}
	}
	if w.AddWeaponPreset {
		d.Presets = &PresetFeature{Presets: w.WeaponPresets}
	}
	if w.AddToTraders {
		d.Trader = &TraderFeature{
			TraderID:     w.TraderID,
			Items:        w.TraderItems,
			Barters:      w.BarterScheme,
			LoyaltyLevel: w.LoyalLevelItems,
		}
	}
	if w.AddToBots {
		d.Bots = &BotFeature{}
	}
	return d
}

// isNullish reports whether a fragment value means "not set". A literal
// false is accepted where a list is expected.
func isNullish(data []byte) bool {
	data = bytes.TrimSpace(data)
	return bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false"))
}

// StringList accepts either a single string or an array of strings.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	if isNullish(data) {
		*l = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New(ErrMsgStringListType)
	}
	*l = list
	return nil
}

// JSONSchema describes the accepted shapes.
func (StringList) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			{Type: "boolean"},
		},
	}
}

// ContainerRefs accepts a single container name, whose weight comes from
// the item's scalar Probability, or an array of weighted entries.
type ContainerRefs struct {
	Single string
	List   []ContainerWeight
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ContainerRefs) UnmarshalJSON(data []byte) error {
	*c = ContainerRefs{}
	if isNullish(data) {
		return nil
	}
	if err := json.Unmarshal(data, &c.Single); err == nil {
		return nil
	}
	if err := json.Unmarshal(data, &c.List); err != nil {
		return errors.New(ErrMsgContainerRefType)
	}
	return nil
}

func (c ContainerRefs) weights(probability float64) []ContainerWeight {
	if c.Single != "" {
		return []ContainerWeight{{Container: c.Single, Probability: probability}}
	}
	return c.List
}

// JSONSchema describes the accepted shapes.
func (ContainerRefs) JSONSchema() *jsonschema.Schema {
	entry := newReflector().Reflect(&ContainerWeight{})
	entry.Version = ""
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: entry},
			{Type: "boolean"},
		},
	}
}

// MasteryList accepts a single mastery section or an array of them.
type MasteryList []MasterySection

// UnmarshalJSON implements json.Unmarshaler.
func (l *MasteryList) UnmarshalJSON(data []byte) error {
	if isNullish(data) {
		*l = nil
		return nil
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var single MasterySection
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return errors.New(ErrMsgMasterySectionType)
		}
		*l = MasteryList{single}
		return nil
	}
	var list []MasterySection
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New(ErrMsgMasterySectionType)
	}
	*l = list
	return nil
}

// JSONSchema describes the accepted shapes.
func (MasteryList) JSONSchema() *jsonschema.Schema {
	section := newReflector().Reflect(&MasterySection{})
	section.Version = ""
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			section,
			{Type: "array", Items: section},
			{Type: "boolean"},
		},
	}
}
