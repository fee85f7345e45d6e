package patch

// Step names, used as log attributes and metric labels
const (
	StepClone          = "clone"
	StepStaticLoot     = "static_loot"
	StepModSlots       = "mod_slots"
	StepInventorySlots = "inventory_slots"
	StepMasteries      = "masteries"
	StepPresets        = "weapon_presets"
	StepBots           = "bot_inventories"
	StepTraders        = "traders"
	StepQuests         = "quests"
)

// Quests whose kill conditions accept the custom pistol
const (
	QuestIDSilentCaliber = "596b455186f77457cb50eccb"
	QuestIDPistolKills   = "64e7b99017ab941a6f7bf9d7"

	// QuestPistolTpl is the weapon added to their finish conditions.
	QuestPistolTpl = "665fe0e865683281eb8e7ed6"
)

// PrefabPathFormat builds the default bundle path from the bundle directory
// and the item id.
const PrefabPathFormat = "%s/%s.bundle"

// ==================== Error Messages ====================

const (
	ErrFmtCloneFailed     = "clone of item '%s' failed: %w"
	ErrFmtStepFailed      = "%s step failed for item '%s': %w"
	ErrFmtInvalidCurrency = "%w: '%s' in barter scheme of item '%s'"
	ErrFmtMalformedQuest  = "%w: %s has no finish weapon list"
)

// ==================== Log Messages ====================

// Batch log messages
const (
	LogMsgItemsLoaded   = "Database: Loaded custom items"
	LogMsgNoItemsLoaded = "Database: No custom items loaded"
	LogMsgItemFailed    = "Custom item aborted"
	LogMsgCloningItem   = "Cloning item"
	LogMsgItemExists    = "Item already registered, continuing with remaining steps"
)

// Step log messages
const (
	LogMsgNoStaticLoot         = "No static loot found in location"
	LogMsgUnknownContainer     = "Invalid loot container id in location"
	LogMsgStaticLootAdded      = "Added item to static loot container"
	LogMsgModSlotAdded         = "Added item to mod slot"
	LogMsgNoDefaultInventory   = "Default inventory template not found"
	LogMsgInventorySlotAdded   = "Added item to inventory slot"
	LogMsgMasteryExtended      = "Extended mastery section"
	LogMsgMasteryAdded         = "Added mastery section"
	LogMsgPresetAdded          = "Added weapon preset"
	LogMsgUnknownTrader        = "Unknown trader, skipping assort"
	LogMsgTraderAssortAdded    = "Added item to trader assort"
	LogMsgUnknownBotType       = "Bot type not listed, skipping"
	LogMsgBotLootAdded         = "Added item to bot loot"
	LogMsgQuestMissing         = "Quest not present, skipping"
	LogMsgQuestPatchFailed     = "Failed to patch quest"
	LogMsgQuestWeaponAdded     = "Added weapon to quest finish condition"
	LogMsgQuestAlreadyAccepted = "Quest already accepts weapon"
)
