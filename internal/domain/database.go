package domain

import "encoding/json"

// Database is the slice of the host's in-memory tables that custom item
// injection reads and mutates. The host owns it; patches only append to
// lists and insert into maps.
type Database struct {
	Templates Templates            `json:"templates"`
	Locations map[string]*Location `json:"locations"`
	Traders   map[string]*Trader   `json:"traders"`
	Bots      Bots                 `json:"bots"`
	Globals   Globals              `json:"globals"`
	Locales   Locales              `json:"locales"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Templates groups the template tables.
type Templates struct {
	Items    map[string]*ItemTemplate `json:"items"`
	Handbook Handbook                 `json:"handbook"`
	Prices   map[string]float64       `json:"prices"`
	Quests   map[string]*Quest        `json:"quests"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Handbook is the in-game item catalogue.
type Handbook struct {
	Categories []*HandbookCategory `json:"Categories,omitzero"`
	Items      []*HandbookItem     `json:"Items"`
}

// HandbookCategory is a catalogue node.
type HandbookCategory struct {
	ID       string `json:"Id"`
	ParentID string `json:"ParentId,omitempty"`
	Icon     string `json:"Icon,omitempty"`
	Color    string `json:"Color,omitempty"`
	Order    string `json:"Order,omitempty"`
}

// HandbookItem places a template in a catalogue category with a base price.
type HandbookItem struct {
	ID       string  `json:"Id"`
	ParentID string  `json:"ParentId"`
	Price    float64 `json:"Price"`
}

// Locales holds translated strings keyed by language, then by string key.
type Locales struct {
	Global map[string]map[string]string `json:"global"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Item returns the template with the given id, or nil.
func (db *Database) Item(id string) *ItemTemplate {
	if db.Templates.Items == nil {
		return nil
	}
	return db.Templates.Items[id]
}

type databaseObject Database

// MarshalJSON writes the declared members and Extra.
func (db Database) MarshalJSON() ([]byte, error) {
	return encodeObject(databaseObject(db), db.Extra)
}

// UnmarshalJSON keeps undeclared members in Extra.
func (db *Database) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*databaseObject)(db))
	if err != nil {
		return err
	}
	db.Extra = extra
	return nil
}

type templatesObject Templates

func (t Templates) MarshalJSON() ([]byte, error) {
	return encodeObject(templatesObject(t), t.Extra)
}

func (t *Templates) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*templatesObject)(t))
	if err != nil {
		return err
	}
	t.Extra = extra
	return nil
}

type localesObject Locales

func (l Locales) MarshalJSON() ([]byte, error) {
	return encodeObject(localesObject(l), l.Extra)
}

func (l *Locales) UnmarshalJSON(data []byte) error {
	extra, err := decodeObject(data, (*localesObject)(l))
	if err != nil {
		return err
	}
	l.Extra = extra
	return nil
}
