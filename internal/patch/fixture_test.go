package patch

import (
	"context"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/host"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/naming"
)

// Raw ids used by the fixture, matching the built-in shorthand tables
const (
	tplPistolPM   = "5448bd6b4bdc2dfc2f8b4569" // PISTOL_PM
	tplGlock      = "5a7ae0c351dfba0017554310" // PISTOL_GLOCK17
	tplM4A1       = "5447a9cd4bdc2dbd208b4567" // RIFLE_M4A1
	tplAK74N      = "5644bd2b4bdc2d3b4c8b4572" // RIFLE_AK74N
	tplWeaponBox  = "5909d5ef86f77467974efbd8" // CONTAINER_WEAPON_BOX
	tplRoubles    = "5449016a4bdc2d6f028b456f"
	tplBitcoin    = "59faff1d86f7746c51718c9c"
	traderPrapor  = "54cb50c76803fa8b248b4571"
	classPistol   = "5447b5cf4bdc2d65278b4567"
	newItemID     = "rex_pistol"
	otherParentID = "custom_rail_mount"
)

func intPtr(v int) *int { return &v }

func slot(name, id string, filter ...string) *domain.Slot {
	s := &domain.Slot{Name: name, ID: id}
	if filter != nil {
		s.Props.Filters = []*domain.SlotFilter{{Shift: intPtr(0), Filter: filter}}
	}
	return s
}

func template(id, parent string, slots ...*domain.Slot) *domain.ItemTemplate {
	return &domain.ItemTemplate{
		ID:     id,
		Name:   id,
		Parent: parent,
		Type:   "Item",
		Props:  domain.ItemProps{Slots: slots},
	}
}

// newTestDB builds a small host database:
//   - the PM pistol is the clone source used throughout
//   - the Glock, M4 and AK expose pistol grip slots with different filters
//   - bigmap has a weapon box, factory4_day has static loot without one,
//     hideout has no static loot
func newTestDB() *domain.Database {
	db := &domain.Database{
		Templates: domain.Templates{
			Items: map[string]*domain.ItemTemplate{
				tplPistolPM: template(tplPistolPM, classPistol,
					slot("mod_magazine", "pm_mag", "pm_mag_tpl")),
				tplGlock: template(tplGlock, classPistol,
					slot("mod_pistol_grip", "glock_grip", tplPistolPM),
					slot("mod_scope", "glock_scope", "some_scope")),
				tplM4A1: template(tplM4A1, "rifle",
					slot("mod_pistol_grip", "m4_grip", tplPistolPM)),
				tplAK74N: template(tplAK74N, "rifle",
					slot("Mod_Pistol_Grip", "ak_grip", "ak_grip_tpl")),
				otherParentID: template(otherParentID, "mount",
					slot("mod_pistol_grip", "mount_grip")),
				domain.DefaultInventoryTpl: template(domain.DefaultInventoryTpl, "inventory",
					slot("FirstPrimaryWeapon", "inv_primary", "rifle"),
					slot("Holster", "inv_holster", "pistol"),
					slot("Pockets", "inv_pockets", "pockets_tpl")),
				"bare_item": template("bare_item", "misc"),
			},
			Prices: map[string]float64{},
			Quests: map[string]*domain.Quest{
				QuestIDSilentCaliber: questWithWeapons(QuestIDSilentCaliber, tplPistolPM),
				QuestIDPistolKills:   questWithWeapons(QuestIDPistolKills, tplPistolPM, tplGlock),
			},
		},
		Locations: map[string]*domain.Location{
			"bigmap": {StaticLoot: map[string]*domain.StaticLootContainer{
				tplWeaponBox: {ItemDistribution: []*domain.ItemDistribution{{Tpl: tplPistolPM, RelativeProbability: 20}}},
			}},
			"factory4_day": {StaticLoot: map[string]*domain.StaticLootContainer{
				"other_container": {},
			}},
			"hideout": {},
		},
		Traders: map[string]*domain.Trader{
			traderPrapor: {Assort: &domain.TraderAssort{
				Items:           []*domain.AssortItem{},
				BarterScheme:    map[string][][]*domain.BarterOffer{},
				LoyalLevelItems: map[string]int{},
			}},
		},
		Bots: domain.Bots{Types: map[string]*domain.BotType{
			"assault": {Inventory: domain.BotInventory{Items: map[string]map[string]float64{
				"Holster":  {tplPistolPM: 5, tplGlock: 1},
				"Backpack": {tplGlock: 2},
			}}},
			"bosskilla": {Inventory: domain.BotInventory{Items: map[string]map[string]float64{
				"Holster": {tplPistolPM: 7},
			}}},
			"test": {Inventory: domain.BotInventory{Items: map[string]map[string]float64{
				"Holster": {tplPistolPM: 3},
			}}},
		}},
		Globals: domain.Globals{
			Config: domain.GlobalsConfig{Mastering: []*domain.Mastering{
				{Name: "PM", Templates: []string{tplPistolPM}, Level2: 450, Level3: 900},
			}},
			ItemPresets: map[string]*domain.Preset{},
		},
		Locales: domain.Locales{Global: map[string]map[string]string{"en": {}}},
	}
	host.Normalize(db)
	return db
}

// questWithWeapons builds a quest whose kill condition lists weapons. The
// list is never nil, so a call without weapons yields an explicit empty list.
func questWithWeapons(id string, weapons ...string) *domain.Quest {
	return &domain.Quest{
		ID: id,
		Conditions: domain.QuestConditions{AvailableForFinish: []*domain.QuestCondition{{
			ID:            id + "_finish",
			ConditionType: "CounterCreator",
			Counter: &domain.QuestCounter{
				ID: id + "_counter",
				Conditions: []*domain.CounterCondition{{
					ID:            id + "_kills",
					ConditionType: "Kills",
					Weapon:        append([]string{}, weapons...),
				}},
			},
		}}},
	}
}

// recordingFactory records clone requests and optionally fails them
type recordingFactory struct {
	requests []*domain.CloneRequest
	err      error
}

func (f *recordingFactory) CreateItemFromClone(_ context.Context, req *domain.CloneRequest) error {
	f.requests = append(f.requests, req)
	return f.err
}

func newTestApplier(db *domain.Database) *applier {
	return NewApplier(db, host.NewItemFactory(db), naming.Default(), "WTT-Test").(*applier)
}

func descriptor(id string) *item.Descriptor {
	return &item.Descriptor{ID: id, ItemTplToClone: "PISTOL_PM", ParentID: "PISTOL"}
}

func filterOf(db *domain.Database, tpl string, slotIndex int) []string {
	return db.Item(tpl).Props.Slots[slotIndex].PrimaryFilter().Filter
}
