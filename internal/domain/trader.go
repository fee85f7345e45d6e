package domain

import "encoding/json"

// Trader is a vendor record. The base profile is carried through untouched.
type Trader struct {
	Base   json.RawMessage `json:"base,omitzero"`
	Assort *TraderAssort   `json:"assort,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// TraderAssort is what a trader sells and for what.
type TraderAssort struct {
	Items           []*AssortItem               `json:"items"`
	BarterScheme    map[string][][]*BarterOffer `json:"barter_scheme"`
	LoyalLevelItems map[string]int              `json:"loyal_level_items"`

	Extra map[string]json.RawMessage `json:"-"`
}

// AssortItem is one listed stack. Top-level entries hang off the hideout root.
type AssortItem struct {
	ID       string         `json:"_id"`
	Tpl      string         `json:"_tpl"`
	ParentID string         `json:"parentId"`
	SlotID   string         `json:"slotId"`
	Upd      *AssortItemUpd `json:"upd,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// AssortItemUpd carries stock flags.
type AssortItemUpd struct {
	UnlimitedCount    bool `json:"UnlimitedCount"`
	StackObjectsCount int  `json:"StackObjectsCount"`

	Extra map[string]json.RawMessage `json:"-"`
}

// BarterOffer is one requirement of a barter option.
type BarterOffer struct {
	Count float64 `json:"count"`
	Tpl   string  `json:"_tpl"`
}

// EnsureAssort returns the trader's assort, creating empty tables as needed.
func (t *Trader) EnsureAssort() *TraderAssort {
	if t.Assort == nil {
		t.Assort = &TraderAssort{}
	}
	if t.Assort.BarterScheme == nil {
		t.Assort.BarterScheme = make(map[string][][]*BarterOffer)
	}
	if t.Assort.LoyalLevelItems == nil {
		t.Assort.LoyalLevelItems = make(map[string]int)
	}
	return t.Assort
}

type traderObject Trader

// MarshalJSON writes the declared members and Extra.
func (t Trader) MarshalJSON() ([]byte, error) {
	return encodeObject(traderObject(t), t.Extra)
}

// UnmarshalJSON keeps undeclared members in Extra.
func (t *Trader) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*traderObject)(t))
	if err != nil {
		return err
	}
	t.Extra = extra
	return nil
}

type traderAssortObject TraderAssort

func (a TraderAssort) MarshalJSON() ([]byte, error) {
	return encodeObject(traderAssortObject(a), a.Extra)
}

func (a *TraderAssort) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*traderAssortObject)(a))
	if err != nil {
		return err
	}
	a.Extra = extra
	return nil
}

type assortItemObject AssortItem

func (i AssortItem) MarshalJSON() ([]byte, error) {
	return encodeObject(assortItemObject(i), i.Extra)
}

func (i *AssortItem) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*assortItemObject)(i))
	if err != nil {
		return err
	}
	i.Extra = extra
	return nil
}

type assortItemUpdObject AssortItemUpd

func (u AssortItemUpd) MarshalJSON() ([]byte, error) {
	return encodeObject(assortItemUpdObject(u), u.Extra)
}

func (u *AssortItemUpd) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*assortItemUpdObject)(u))
	if err != nil {
		return err
	}
	u.Extra = extra
	return nil
}
