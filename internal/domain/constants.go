package domain

// Well-known host identifiers
const (
	// DefaultInventoryTpl is the template whose slots define what a player
	// can equip.
	DefaultInventoryTpl = "55d7217a4bdc2d86028b456d"

	// HideoutRoot is the virtual parent of every top-level assort entry.
	HideoutRoot = "hideout"

	// PresetType is the _type value of weapon presets.
	PresetType = "Preset"
)

// Item property keys
const (
	PropSlots  = "Slots"
	PropPrefab = "Prefab"
)

// Locale key suffixes, joined to the item id with a single space.
const (
	LocaleSuffixName        = "Name"
	LocaleSuffixShortName   = "ShortName"
	LocaleSuffixDescription = "Description"
)

// DefaultLocale is used when a clone request carries no text for a
// language present in the database.
const DefaultLocale = "en"
