package patch

import (
	"context"
	"maps"
	"slices"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
)

// patchBotInventories gives the item the same loot weight as its clone
// source, per bot type and loot slot. Slots where the source has no weight
// are left alone.
func (a *applier) patchBotInventories(ctx context.Context, d *item.Descriptor, srcTpl string) (int, error) {
	if d.Bots == nil {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	added := 0
	for _, botID := range slices.Sorted(maps.Keys(a.db.Bots.Types)) {
		botName, ok := a.names.BotTypes.Lookup(botID)
		if !ok {
			a.warn(ctx, StepBots, LogMsgUnknownBotType, "bot_type", botID)
			continue
		}
		bot := a.db.Bots.Types[botID]
		if bot == nil {
			continue
		}

		for _, lootSlot := range slices.Sorted(maps.Keys(bot.Inventory.Items)) {
			weights := bot.Inventory.Items[lootSlot]
			weight, ok := weights[srcTpl]
			if !ok {
				continue
			}
			weights[d.ID] = weight
			added++
			log.Debug(LogMsgBotLootAdded, "item_id", d.ID, "bot_type", botName, "loot_slot", lootSlot, "weight", weight)
		}
	}
	return added, nil
}
