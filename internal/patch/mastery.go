package patch

import (
	"context"
	"slices"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
)

// patchMasteries merges mastery sections by name. Templates appended to an
// existing section are not deduplicated.
func (a *applier) patchMasteries(ctx context.Context, d *item.Descriptor, _ string) (int, error) {
	if d.Masteries == nil {
		return 0, nil
	}
	log := logger.FromContext(ctx)
	mastering := &a.db.Globals.Config.Mastering

	changed := 0
	for _, section := range d.Masteries.Sections {
		idx := slices.IndexFunc(*mastering, func(m *domain.Mastering) bool {
			return m != nil && m.Name == section.Name
		})
		if idx >= 0 {
			existing := (*mastering)[idx]
			existing.Templates = append(existing.Templates, section.Templates...)
			log.Debug(LogMsgMasteryExtended, "item_id", d.ID, "mastery", section.Name)
		} else {
			*mastering = append(*mastering, &domain.Mastering{
				Name:      section.Name,
				Templates: slices.Clone(section.Templates),
				Level2:    section.Level2,
				Level3:    section.Level3,
			})
			log.Debug(LogMsgMasteryAdded, "item_id", d.ID, "mastery", section.Name)
		}
		changed++
	}
	return changed, nil
}
