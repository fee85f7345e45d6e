package domain

import "encoding/json"

// Globals holds server-wide configuration tables.
type Globals struct {
	Config      GlobalsConfig      `json:"config"`
	ItemPresets map[string]*Preset `json:"ItemPresets"`

	Extra map[string]json.RawMessage `json:"-"`
}

// GlobalsConfig is the subset of global config touched here.
type GlobalsConfig struct {
	Mastering []*Mastering `json:"Mastering"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Mastering is a weapon proficiency section.
type Mastering struct {
	Name      string   `json:"Name"`
	Templates []string `json:"Templates"`
	Level2    int      `json:"Level2"`
	Level3    int      `json:"Level3"`
}

// Preset is a pre-assembled weapon build.
type Preset struct {
	ChangeWeaponName bool          `json:"_changeWeaponName"`
	Encyclopedia     string        `json:"_encyclopedia,omitempty"`
	ID               string        `json:"_id"`
	Items            []*PresetItem `json:"_items"`
	Name             string        `json:"_name"`
	Parent           string        `json:"_parent"`
	Type             string        `json:"_type"`

	Extra map[string]json.RawMessage `json:"-"`
}

// PresetItem is one component of a preset. The root component has no
// parent or slot.
type PresetItem struct {
	ID       string `json:"_id"`
	Tpl      string `json:"_tpl"`
	ParentID string `json:"parentId,omitempty"`
	SlotID   string `json:"slotId,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

type globalsObject Globals

// MarshalJSON writes the declared members and Extra.
func (g Globals) MarshalJSON() ([]byte, error) {
	return encodeObject(globalsObject(g), g.Extra)
}

// UnmarshalJSON keeps undeclared members in Extra.
func (g *Globals) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*globalsObject)(g))
	if err != nil {
		return err
	}
	g.Extra = extra
	return nil
}

type globalsConfigObject GlobalsConfig

func (c GlobalsConfig) MarshalJSON() ([]byte, error) {
	return encodeObject(globalsConfigObject(c), c.Extra)
}

func (c *GlobalsConfig) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*globalsConfigObject)(c))
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

type presetObject Preset

func (p Preset) MarshalJSON() ([]byte, error) {
	return encodeObject(presetObject(p), p.Extra)
}

func (p *Preset) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*presetObject)(p))
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}

type presetItemObject PresetItem

func (i PresetItem) MarshalJSON() ([]byte, error) {
	return encodeObject(presetItemObject(i), i.Extra)
}

func (i *PresetItem) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*presetItemObject)(i))
	if err != nil {
		return err
	}
	i.Extra = extra
	return nil
}
