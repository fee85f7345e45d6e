package patch

import (
	"context"
	"maps"
	"slices"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
)

// patchStaticLoot appends the item to the distribution of every listed
// container in every location. Appends are not deduplicated.
func (a *applier) patchStaticLoot(ctx context.Context, d *item.Descriptor, _ string) (int, error) {
	if d.StaticLoot == nil {
		return 0, nil
	}

	tpl := a.names.Items.Resolve(d.ID)
	added := 0
	for _, c := range d.StaticLoot.Containers {
		containerID := a.names.Items.Resolve(c.Container)
		added += a.addToStaticLoot(ctx, containerID, tpl, c.Probability)
	}
	return added, nil
}

func (a *applier) addToStaticLoot(ctx context.Context, containerID, tpl string, probability float64) int {
	log := logger.FromContext(ctx)

	added := 0
	for _, locationID := range slices.Sorted(maps.Keys(a.db.Locations)) {
		location := a.db.Locations[locationID]
		if location == nil || location.StaticLoot == nil {
			a.warn(ctx, StepStaticLoot, LogMsgNoStaticLoot, "location", locationID)
			continue
		}

		container, ok := location.StaticLoot[containerID]
		if !ok || container == nil {
			a.warn(ctx, StepStaticLoot, LogMsgUnknownContainer, "container", containerID, "location", locationID)
			continue
		}

		container.ItemDistribution = append(container.ItemDistribution, &domain.ItemDistribution{
			Tpl:                 tpl,
			RelativeProbability: probability,
		})
		added++
		log.Debug(LogMsgStaticLootAdded, "item_id", tpl, "container", containerID, "location", locationID, "probability", probability)
	}
	return added
}
