package naming

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
)

// Table maps human-readable short names to raw host identifiers.
// Tables are read-only after construction.
type Table map[string]string

// Lookup returns the raw id for name and whether an entry exists.
func (t Table) Lookup(name string) (string, bool) {
	id, ok := t[name]
	return id, ok && id != ""
}

// Resolve returns the raw id for name, or name itself when the table has no
// entry: an unmapped input is treated as a raw id already.
func (t Table) Resolve(name string) string {
	if id, ok := t.Lookup(name); ok {
		return id
	}
	return name
}

// ResolveAll resolves every name in order.
func (t Table) ResolveAll(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = t.Resolve(name)
	}
	return out
}

// KeyFor returns a short name mapping to value (reverse lookup).
func (t Table) KeyFor(value string) (string, bool) {
	for k, v := range t {
		if v == value {
			return k, true
		}
	}
	return "", false
}

// Tables bundles every shorthand table used by item patching.
type Tables struct {
	Items              Table
	BaseClasses        Table
	HandbookCategories Table
	Traders            Table
	Currencies         Table
	BotTypes           Table
	InventorySlots     Table
}

// Default returns the built-in tables. Callers must not mutate them.
func Default() *Tables {
	return &Tables{
		Items:              itemTable,
		BaseClasses:        baseClassTable,
		HandbookCategories: handbookCategoryTable,
		Traders:            traderTable,
		Currencies:         currencyTable,
		BotTypes:           botTypeTable,
		InventorySlots:     inventorySlotTable,
	}
}

// ResolveCurrency resolves a barter requirement: the currency table is
// consulted first, then the item table. There is no literal fallback.
func (t *Tables) ResolveCurrency(ref string) (string, bool) {
	if id, ok := t.Currencies.Lookup(ref); ok {
		return id, true
	}
	return t.Items.Lookup(ref)
}

// LoadOverlay returns a copy of base extended with the entries of a
// versioned overlay file. Overlay entries win over built-in ones. An empty
// path or a missing file yields an unchanged copy.
func LoadOverlay(base *Tables, path string) (*Tables, error) {
	out := base.clone()
	if path == "" {
		return out, nil
	}

	var overlay struct {
		Tables map[string]map[string]string `json:"tables"`
	}
	if err := loadVersionedConfig(path, &overlay, SchemaShorthandOverlay); err != nil {
		return nil, err
	}

	for name, entries := range overlay.Tables {
		table := out.byName(name)
		if table == nil {
			return nil, fmt.Errorf(ErrMsgUnknownTable, name, path)
		}
		maps.Copy(*table, entries)
	}
	return out, nil
}

func (t *Tables) clone() *Tables {
	return &Tables{
		Items:              maps.Clone(t.Items),
		BaseClasses:        maps.Clone(t.BaseClasses),
		HandbookCategories: maps.Clone(t.HandbookCategories),
		Traders:            maps.Clone(t.Traders),
		Currencies:         maps.Clone(t.Currencies),
		BotTypes:           maps.Clone(t.BotTypes),
		InventorySlots:     maps.Clone(t.InventorySlots),
	}
}

func (t *Tables) byName(name string) *Table {
	var table *Table
	switch name {
	case TableItems:
		table = &t.Items
	case TableBaseClasses:
		table = &t.BaseClasses
	case TableHandbookCategories:
		table = &t.HandbookCategories
	case TableTraders:
		table = &t.Traders
	case TableCurrencies:
		table = &t.Currencies
	case TableBotTypes:
		table = &t.BotTypes
	case TableInventorySlots:
		table = &t.InventorySlots
	default:
		return nil
	}
	if *table == nil {
		*table = make(Table)
	}
	return table
}

func loadVersionedConfig(path string, target interface{}, schema string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Wrapper to handle common fields
	var wrapper struct {
		Version string `json:"version"`
		Schema  string `json:"schema"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf(ErrContextFailedToParseConfig+": %w", path, err)
	}

	if wrapper.Version == "" {
		return fmt.Errorf(ErrMsgMissingVersionField, path)
	}
	if wrapper.Schema != schema {
		return fmt.Errorf(ErrMsgInvalidSchema, path, schema, wrapper.Schema)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf(ErrContextFailedToDecodeData+": %w", path, err)
	}

	return nil
}
