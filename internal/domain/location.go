package domain

import "encoding/json"

// Location is one map. Only static loot is modelled; the base record is
// carried through untouched.
type Location struct {
	Base       json.RawMessage                 `json:"base,omitzero"`
	StaticLoot map[string]*StaticLootContainer `json:"staticLoot,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

// StaticLootContainer describes what spawns inside one container type.
type StaticLootContainer struct {
	ItemCountDistribution []*ItemCountDistribution `json:"itemcountDistribution"`
	ItemDistribution      []*ItemDistribution      `json:"itemDistribution"`
}

// ItemCountDistribution weights how many items a container rolls.
type ItemCountDistribution struct {
	Count               int     `json:"count"`
	RelativeProbability float64 `json:"relativeProbability"`
}

// ItemDistribution weights a single template inside a container.
type ItemDistribution struct {
	Tpl                 string  `json:"tpl"`
	RelativeProbability float64 `json:"relativeProbability"`
}

type locationObject Location

// MarshalJSON writes the declared members and Extra.
func (l Location) MarshalJSON() ([]byte, error) {
	return encodeObject(locationObject(l), l.Extra)
}

// UnmarshalJSON keeps undeclared members in Extra.
func (l *Location) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*locationObject)(l))
	if err != nil {
		return err
	}
	l.Extra = extra
	return nil
}
