package naming

// inventorySlotTable maps friendly slot names to equipment slot names of
// the default inventory template.
var inventorySlotTable = Table{
	"primary":   "FirstPrimaryWeapon",
	"secondary": "SecondPrimaryWeapon",
	"holster":   "Holster",
	"melee":     "Scabbard",
	"face":      "FaceCover",
	"head":      "Headwear",
	"ears":      "Earpiece",
	"rig":       "TacticalVest",
	"armor":     "ArmorVest",
	"eyes":      "Eyewear",
	"armband":   "ArmBand",
	"backpack":  "Backpack",
	"secure":    "SecuredContainer",
	"pockets":   "Pockets",
	"dogtag":    "Dogtag",
	"compass":   "Compass",
	"special1":  "SpecialSlot1",
	"special2":  "SpecialSlot2",
	"special3":  "SpecialSlot3",
}
