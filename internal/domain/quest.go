package domain

import "encoding/json"

// Quest is a quest definition. Only the finish conditions are modelled.
type Quest struct {
	ID         string          `json:"_id"`
	QuestName  string          `json:"QuestName,omitempty"`
	TraderID   string          `json:"traderId,omitempty"`
	Conditions QuestConditions `json:"conditions"`

	Extra map[string]json.RawMessage `json:"-"`
}

// QuestConditions groups condition lists by phase.
type QuestConditions struct {
	AvailableForFinish []*QuestCondition `json:"AvailableForFinish"`

	Extra map[string]json.RawMessage `json:"-"`
}

// QuestCondition is a top-level finish condition.
type QuestCondition struct {
	ID            string        `json:"id"`
	ConditionType string        `json:"conditionType"`
	Counter       *QuestCounter `json:"counter,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// QuestCounter aggregates sub-conditions that must hold together.
type QuestCounter struct {
	ID         string              `json:"id"`
	Conditions []*CounterCondition `json:"conditions"`

	Extra map[string]json.RawMessage `json:"-"`
}

// CounterCondition is one sub-condition, e.g. a kill with a listed weapon.
type CounterCondition struct {
	ID            string   `json:"id"`
	ConditionType string   `json:"conditionType"`
	Weapon        []string `json:"weapon,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

// FinishWeapons returns the weapon whitelist of the first counter
// sub-condition of the first finish condition, and false when that path
// does not exist. A condition without a weapon list accepts any weapon and
// also reports false; an explicit empty list is returned as is.
func (q *Quest) FinishWeapons() ([]string, bool) {
	cond := q.finishCounterCondition()
	if cond == nil || cond.Weapon == nil {
		return nil, false
	}
	return cond.Weapon, true
}

// SetFinishWeapons replaces the list returned by FinishWeapons.
func (q *Quest) SetFinishWeapons(weapons []string) bool {
	cond := q.finishCounterCondition()
	if cond == nil {
		return false
	}
	cond.Weapon = weapons
	return true
}

func (q *Quest) finishCounterCondition() *CounterCondition {
	if len(q.Conditions.AvailableForFinish) == 0 {
		return nil
	}
	first := q.Conditions.AvailableForFinish[0]
	if first == nil || first.Counter == nil || len(first.Counter.Conditions) == 0 {
		return nil
	}
	return first.Counter.Conditions[0]
}

type questObject Quest

// MarshalJSON writes the declared members and Extra.
func (q Quest) MarshalJSON() ([]byte, error) {
	return encodeObject(questObject(q), q.Extra)
}

// UnmarshalJSON keeps undeclared members in Extra.
func (q *Quest) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*questObject)(q))
	if err != nil {
		return err
	}
	q.Extra = extra
	return nil
}

type questConditionsObject QuestConditions

func (c QuestConditions) MarshalJSON() ([]byte, error) {
	return encodeObject(questConditionsObject(c), c.Extra)
}

func (c *QuestConditions) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*questConditionsObject)(c))
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

type questConditionObject QuestCondition

func (c QuestCondition) MarshalJSON() ([]byte, error) {
	return encodeObject(questConditionObject(c), c.Extra)
}

func (c *QuestCondition) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*questConditionObject)(c))
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

type questCounterObject QuestCounter

func (c QuestCounter) MarshalJSON() ([]byte, error) {
	return encodeObject(questCounterObject(c), c.Extra)
}

func (c *QuestCounter) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*questCounterObject)(c))
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

type counterConditionObject CounterCondition

func (c CounterCondition) MarshalJSON() ([]byte, error) {
	return encodeObject(counterConditionObject(c), c.Extra)
}

func (c *CounterCondition) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*counterConditionObject)(c))
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}
