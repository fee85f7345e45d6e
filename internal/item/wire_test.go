package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeItem(t *testing.T, data string) *Descriptor {
	t.Helper()
	var w wireItem
	require.NoError(t, json.Unmarshal([]byte(data), &w))
	return w.toDescriptor()
}

func TestStringList_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    StringList
		wantErr bool
	}{
		{"single string", `"mod_scope"`, StringList{"mod_scope"}, false},
		{"array", `["mod_scope", "mod_muzzle"]`, StringList{"mod_scope", "mod_muzzle"}, false},
		{"empty string", `""`, nil, false},
		{"null", `null`, nil, false},
		{"false", `false`, nil, false},
		{"number", `7`, nil, true},
		{"mixed array", `["a", 1]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), ErrMsgStringListType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToDescriptor_FeatureBlocks(t *testing.T) {
	t.Run("no flags means no blocks", func(t *testing.T) {
		d := decodeItem(t, `{
			"itemTplToClone":  "PISTOL_PM",
			"modSlot":         "mod_scope",
			"traderId":        "prapor",
			"masterySections": {"Name": "Rex", "Templates": ["x"]}
		}`)

		assert.Nil(t, d.StaticLoot)
		assert.Nil(t, d.ModSlots)
		assert.Nil(t, d.InventorySlots)
		assert.Nil(t, d.Masteries)
		assert.Nil(t, d.Presets)
		assert.Nil(t, d.Trader)
		assert.Nil(t, d.Bots)
	})

	t.Run("single container uses scalar probability", func(t *testing.T) {
		d := decodeItem(t, `{
			"itemTplToClone":            "x",
			"addtoStaticLootContainers": true,
			"StaticLootContainers":      "CONTAINER_WEAPON_BOX",
			"Probability":               150
		}`)

		require.NotNil(t, d.StaticLoot)
		assert.Equal(t, []ContainerWeight{{Container: "CONTAINER_WEAPON_BOX", Probability: 150}}, d.StaticLoot.Containers)
	})

	t.Run("container array carries its own weights", func(t *testing.T) {
		d := decodeItem(t, `{
			"itemTplToClone":            "x",
			"addtoStaticLootContainers": true,
			"StaticLootContainers":      [
				{"ContainerName": "CONTAINER_WEAPON_BOX", "Probability": 10},
				{"ContainerName": "CONTAINER_SAFE", "Probability": 3}
			],
			"Probability": 999
		}`)

		require.NotNil(t, d.StaticLoot)
		assert.Equal(t, []ContainerWeight{
			{Container: "CONTAINER_WEAPON_BOX", Probability: 10},
			{Container: "CONTAINER_SAFE", Probability: 3},
		}, d.StaticLoot.Containers)
	})

	t.Run("mod slot lists", func(t *testing.T) {
		d := decodeItem(t, `{
			"itemTplToClone":        "x",
			"addtoModSlots":         true,
			"modSlot":               ["mod_scope", "mod_tactical"],
			"ModdableItemWhitelist": "RIFLE_AK74",
			"ModdableItemBlacklist": ["RIFLE_M4A1"]
		}`)

		require.NotNil(t, d.ModSlots)
		assert.Equal(t, []string{"mod_scope", "mod_tactical"}, d.ModSlots.Slots)
		assert.Equal(t, []string{"RIFLE_AK74"}, d.ModSlots.Whitelist)
		assert.Equal(t, []string{"RIFLE_M4A1"}, d.ModSlots.Blacklist)
	})

	t.Run("inventory slots enable themselves", func(t *testing.T) {
		d := decodeItem(t, `{"itemTplToClone": "x", "addtoInventorySlots": "Holster"}`)
		require.NotNil(t, d.InventorySlots)
		assert.Equal(t, []string{"Holster"}, d.InventorySlots.Slots)

		d = decodeItem(t, `{"itemTplToClone": "x", "addtoInventorySlots": []}`)
		assert.Nil(t, d.InventorySlots)
	})

	t.Run("mastery object or array", func(t *testing.T) {
		d := decodeItem(t, `{
			"itemTplToClone":  "x",
			"masteries":       true,
			"masterySections": {"Name": "Rex", "Templates": ["a", "b"], "Level2": 100, "Level3": 200}
		}`)
		require.NotNil(t, d.Masteries)
		assert.Equal(t, []MasterySection{{Name: "Rex", Templates: []string{"a", "b"}, Level2: 100, Level3: 200}}, d.Masteries.Sections)

		d = decodeItem(t, `{
			"itemTplToClone":  "x",
			"masteries":       true,
			"masterySections": [{"Name": "A", "Templates": ["a"]}, {"Name": "B", "Templates": ["b"]}]
		}`)
		require.NotNil(t, d.Masteries)
		assert.Len(t, d.Masteries.Sections, 2)
	})

	t.Run("presets", func(t *testing.T) {
		d := decodeItem(t, `{
			"itemTplToClone":    "x",
			"addweaponpreset":   true,
			"weaponpresets":     [{
				"_changeWeaponName": false,
				"_id":               "preset1",
				"_name":             "Rex Default",
				"_parent":           "root1",
				"_items":            [
					{"_id": "root1", "_tpl": "rex_pistol"},
					{"_id": "mag1", "_tpl": "rex_mag", "parentId": "root1", "slotId": "mod_magazine"}
				]
			}]
		}`)

		require.NotNil(t, d.Presets)
		require.Len(t, d.Presets.Presets, 1)
		preset := d.Presets.Presets[0]
		assert.Equal(t, "preset1", preset.ID)
		assert.Equal(t, PresetPart{ID: "mag1", Tpl: "rex_mag", ParentID: "root1", SlotID: "mod_magazine"}, preset.Items[1])
	})

	t.Run("trader and bots", func(t *testing.T) {
		d := decodeItem(t, `{
			"itemTplToClone":  "x",
			"addtoTraders":    true,
			"traderId":        "prapor",
			"traderItems":     [{"unlimitedCount": true, "stackObjectsCount": 99999}],
			"barterScheme":    [{"count": 25000, "_tpl": "RUB"}],
			"loyallevelitems": 2,
			"addtoBots":       true
		}`)

		require.NotNil(t, d.Trader)
		assert.Equal(t, "prapor", d.Trader.TraderID)
		assert.Equal(t, []TraderItem{{UnlimitedCount: true, StackObjectsCount: 99999}}, d.Trader.Items)
		assert.Equal(t, []BarterEntry{{Count: 25000, Currency: "RUB"}}, d.Trader.Barters)
		require.NotNil(t, d.Trader.LoyaltyLevel)
		assert.Equal(t, 2, *d.Trader.LoyaltyLevel)
		assert.NotNil(t, d.Bots)
	})

	t.Run("trader without loyalty level", func(t *testing.T) {
		d := decodeItem(t, `{"itemTplToClone": "x", "addtoTraders": true, "traderId": "prapor"}`)

		require.NotNil(t, d.Trader)
		assert.Nil(t, d.Trader.LoyaltyLevel)
	})
}

func TestFragmentSchemaJSON(t *testing.T) {
	data, err := FragmentSchemaJSON()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "object", schema["type"])

	entry, ok := schema["additionalProperties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"itemTplToClone"}, entry["required"])

	props, ok := entry["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "StaticLootContainers")
	assert.Contains(t, props, "barterScheme")
	assert.Contains(t, props["modSlot"], "oneOf")
}
