package patch

import (
	"context"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
)

// patchPresets stores each preset under its own id, replacing any preset
// already registered with that id.
func (a *applier) patchPresets(ctx context.Context, d *item.Descriptor, _ string) (int, error) {
	if d.Presets == nil {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	if a.db.Globals.ItemPresets == nil {
		a.db.Globals.ItemPresets = make(map[string]*domain.Preset)
	}

	for _, def := range d.Presets.Presets {
		preset := buildPreset(def)
		a.db.Globals.ItemPresets[preset.ID] = preset
		log.Debug(LogMsgPresetAdded, "item_id", d.ID, "preset", preset.Name, "preset_id", preset.ID)
	}
	return len(d.Presets.Presets), nil
}

func buildPreset(def item.PresetDef) *domain.Preset {
	items := make([]*domain.PresetItem, 0, len(def.Items))
	for _, part := range def.Items {
		items = append(items, &domain.PresetItem{
			ID:       part.ID,
			Tpl:      part.Tpl,
			ParentID: part.ParentID,
			SlotID:   part.SlotID,
		})
	}

	return &domain.Preset{
		ChangeWeaponName: def.ChangeWeaponName,
		Encyclopedia:     def.Encyclopedia,
		ID:               def.ID,
		Items:            items,
		Name:             def.Name,
		Parent:           def.Parent,
		Type:             domain.PresetType,
	}
}
