package domain

import "encoding/json"

// Bots holds AI loadout tables keyed by bot type.
type Bots struct {
	Types map[string]*BotType `json:"types"`

	Extra map[string]json.RawMessage `json:"-"`
}

// BotType is one AI role.
type BotType struct {
	Inventory BotInventory `json:"inventory"`

	Extra map[string]json.RawMessage `json:"-"`
}

// BotInventory maps a loot slot category to template weights.
type BotInventory struct {
	Items map[string]map[string]float64 `json:"items"`

	Extra map[string]json.RawMessage `json:"-"`
}

type botsObject Bots

// MarshalJSON writes the declared members and Extra.
func (b Bots) MarshalJSON() ([]byte, error) {
	return encodeObject(botsObject(b), b.Extra)
}

// UnmarshalJSON keeps undeclared members in Extra.
func (b *Bots) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*botsObject)(b))
	if err != nil {
		return err
	}
	b.Extra = extra
	return nil
}

type botTypeObject BotType

func (b BotType) MarshalJSON() ([]byte, error) {
	return encodeObject(botTypeObject(b), b.Extra)
}

func (b *BotType) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*botTypeObject)(b))
	if err != nil {
		return err
	}
	b.Extra = extra
	return nil
}

type botInventoryObject BotInventory

func (i BotInventory) MarshalJSON() ([]byte, error) {
	return encodeObject(botInventoryObject(i), i.Extra)
}

func (i *BotInventory) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*botInventoryObject)(i))
	if err != nil {
		return err
	}
	i.Extra = extra
	return nil
}
