package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ItemTemplate is one entry of the host's item template table.
type ItemTemplate struct {
	ID     string    `json:"_id"`
	Name   string    `json:"_name"`
	Parent string    `json:"_parent"`
	Type   string    `json:"_type"`
	Props  ItemProps `json:"_props"`
	Proto  string    `json:"_proto,omitempty"`
}

// ItemProps holds template properties. Slots are decoded because the slot
// patches edit them; every other property is carried through verbatim.
type ItemProps struct {
	Slots []*Slot
	Extra map[string]json.RawMessage
}

// MarshalJSON flattens Slots back into the property object.
func (p ItemProps) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.Extra)+1)
	for k, v := range p.Extra {
		out[k] = v
	}
	if p.Slots != nil {
		raw, err := json.Marshal(p.Slots)
		if err != nil {
			return nil, err
		}
		out[PropSlots] = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits Slots out of the property object.
func (p *ItemProps) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Slots = nil
	if slots, ok := raw[PropSlots]; ok {
		delete(raw, PropSlots)
		if err := json.Unmarshal(slots, &p.Slots); err != nil {
			return fmt.Errorf("failed to decode %s: %w", PropSlots, err)
		}
	}
	p.Extra = raw
	return nil
}

// Set stores a single property. Slots are routed to the typed field.
func (p *ItemProps) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode property %s: %w", key, err)
	}
	if key == PropSlots {
		var slots []*Slot
		if err := json.Unmarshal(raw, &slots); err != nil {
			return fmt.Errorf("failed to decode %s: %w", PropSlots, err)
		}
		p.Slots = slots
		return nil
	}
	if p.Extra == nil {
		p.Extra = make(map[string]json.RawMessage)
	}
	p.Extra[key] = raw
	return nil
}

// Slot is an attachment or equipment slot of an item template.
type Slot struct {
	Name                  string    `json:"_name"`
	ID                    string    `json:"_id"`
	Parent                string    `json:"_parent"`
	Props                 SlotProps `json:"_props"`
	Required              bool      `json:"_required"`
	MergeSlotWithChildren bool      `json:"_mergeSlotWithChildren"`
	Proto                 string    `json:"_proto,omitempty"`
}

// SlotProps carries the slot's filter list. Only the first filter is
// consulted by the host.
type SlotProps struct {
	Filters []*SlotFilter `json:"filters,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

// SlotFilter lists the templates accepted by a slot.
type SlotFilter struct {
	Shift          *int     `json:"Shift,omitempty"`
	AnimationIndex *int     `json:"AnimationIndex,omitempty"`
	Locked         *bool    `json:"locked,omitempty"`
	Plate          string   `json:"Plate,omitempty"`
	Filter         []string `json:"Filter"`
	ExcludedFilter []string `json:"ExcludedFilter,omitzero"`
}

// PrimaryFilter returns the first filter, or nil when the slot has none.
func (s *Slot) PrimaryFilter() *SlotFilter {
	if len(s.Props.Filters) == 0 {
		return nil
	}
	return s.Props.Filters[0]
}

// EnsureFilter returns the first filter, creating an empty one on first use.
func (s *Slot) EnsureFilter() *SlotFilter {
	if f := s.PrimaryFilter(); f != nil {
		return f
	}
	animationIndex := 0
	f := &SlotFilter{AnimationIndex: &animationIndex, Filter: []string{}}
	s.Props.Filters = []*SlotFilter{f}
	return f
}

// Accepts reports whether any of tpls is listed in the filter.
func (f *SlotFilter) Accepts(tpls ...string) bool {
	if f == nil {
		return false
	}
	for _, tpl := range tpls {
		if slices.Contains(f.Filter, tpl) {
			return true
		}
	}
	return false
}

// AddUnique appends tpl unless already listed. Returns true on append.
func (f *SlotFilter) AddUnique(tpl string) bool {
	if slices.Contains(f.Filter, tpl) {
		return false
	}
	f.Filter = append(f.Filter, tpl)
	return true
}

type slotPropsObject SlotProps

// MarshalJSON writes the declared members and Extra.
func (p SlotProps) MarshalJSON() ([]byte, error) {
	return encodeObject(slotPropsObject(p), p.Extra)
}

// UnmarshalJSON keeps undeclared members in Extra.
func (p *SlotProps) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*slotPropsObject)(p))
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}
