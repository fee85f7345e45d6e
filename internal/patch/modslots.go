package patch

import (
	"context"
	"maps"
	"slices"

	"golang.org/x/text/cases"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
)

// patchModSlots makes the item fit wherever its clone source fits. A parent
// qualifies when it is whitelisted, or when one of its slots already
// accepts srcTpl and carries a wanted slot name. Blacklisted parents never
// qualify. Slot names compare case-insensitively.
func (a *applier) patchModSlots(ctx context.Context, d *item.Descriptor, srcTpl string) (int, error) {
	f := d.ModSlots
	if f == nil || len(f.Slots) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	wanted := newSlotNameSet(f.Slots)
	whitelist := toSet(a.names.Items.ResolveAll(f.Whitelist))
	blacklist := toSet(a.names.Items.ResolveAll(f.Blacklist))

	added := 0
	for _, parentID := range slices.Sorted(maps.Keys(a.db.Templates.Items)) {
		parent := a.db.Templates.Items[parentID]
		if parent == nil || len(parent.Props.Slots) == 0 {
			continue
		}
		if _, ok := blacklist[parentID]; ok {
			continue
		}
		if _, ok := whitelist[parentID]; !ok && !inheritsSlot(parent, srcTpl, wanted) {
			continue
		}

		for _, slot := range parent.Props.Slots {
			if !wanted.has(slot.Name) {
				continue
			}
			if slot.EnsureFilter().AddUnique(d.ID) {
				added++
				log.Debug(LogMsgModSlotAdded, "item_id", d.ID, "parent", parentID, "slot", slot.Name)
			}
		}
	}
	return added, nil
}

// inheritsSlot reports whether a wanted slot of parent already accepts srcTpl
func inheritsSlot(parent *domain.ItemTemplate, srcTpl string, wanted slotNameSet) bool {
	for _, slot := range parent.Props.Slots {
		if slot.PrimaryFilter().Accepts(srcTpl) && wanted.has(slot.Name) {
			return true
		}
	}
	return false
}

// slotNameSet matches slot names ignoring case
type slotNameSet map[string]struct{}

func newSlotNameSet(names []string) slotNameSet {
	fold := cases.Fold()
	set := make(slotNameSet, len(names))
	for _, name := range names {
		set[fold.String(name)] = struct{}{}
	}
	return set
}

func (s slotNameSet) has(name string) bool {
	_, ok := s[cases.Fold().String(name)]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
