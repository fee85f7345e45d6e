package patch

import (
	"context"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
)

// patchInventorySlots lets the item be equipped in the listed slots of the
// default inventory. Targets may name a slot by raw name, slot id or
// friendly name.
func (a *applier) patchInventorySlots(ctx context.Context, d *item.Descriptor, _ string) (int, error) {
	if d.InventorySlots == nil {
		return 0, nil
	}

	inventory := a.db.Item(domain.DefaultInventoryTpl)
	if inventory == nil {
		a.warn(ctx, StepInventorySlots, LogMsgNoDefaultInventory, "template", domain.DefaultInventoryTpl)
		return 0, nil
	}
	log := logger.FromContext(ctx)

	added := 0
	for _, slot := range inventory.Props.Slots {
		if !a.inventorySlotTargeted(slot, d.InventorySlots.Slots) {
			continue
		}
		if slot.EnsureFilter().AddUnique(d.ID) {
			added++
			log.Debug(LogMsgInventorySlotAdded, "item_id", d.ID, "slot", slot.Name)
		}
	}
	return added, nil
}

func (a *applier) inventorySlotTargeted(slot *domain.Slot, targets []string) bool {
	alias, hasAlias := a.names.InventorySlots.Lookup(slot.Name)
	for _, target := range targets {
		switch {
		case target == slot.Name, target == slot.ID:
			return true
		case a.names.InventorySlots.Resolve(target) == slot.Name:
			return true
		case hasAlias && target == alias:
			return true
		}
	}
	return false
}
