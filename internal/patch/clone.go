package patch

import (
	"fmt"
	"maps"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/naming"
)

// BuildCloneRequest turns a descriptor into the host's clone request. It
// also returns the resolved source template id, which later steps match
// against instead of the shorthand.
func BuildCloneRequest(d *item.Descriptor, names *naming.Tables) (*domain.CloneRequest, string) {
	srcTpl := names.Items.Resolve(d.ItemTplToClone)

	overrides := maps.Clone(d.OverrideProperties)
	if overrides == nil {
		overrides = make(map[string]any, 1)
	}
	overrides[domain.PropPrefab] = map[string]any{
		"path": prefabPath(d),
		"rcid": "",
	}

	req := &domain.CloneRequest{
		ItemTplToClone:       srcTpl,
		OverrideProperties:   overrides,
		ParentID:             names.BaseClasses.Resolve(d.ParentID),
		NewID:                d.ID,
		FleaPriceRoubles:     d.FleaPriceRoubles,
		HandbookPriceRoubles: d.HandbookPriceRoubles,
		HandbookParentID:     names.HandbookCategories.Resolve(d.HandbookParentID),
		Locales:              d.Locales,
	}
	return req, srcTpl
}

// prefabPath returns the descriptor's own bundle path, or the default one
func prefabPath(d *item.Descriptor) string {
	if prefab, ok := d.OverrideProperties[domain.PropPrefab].(map[string]any); ok {
		if path, ok := prefab["path"].(string); ok && path != "" {
			return path
		}
	}
	return fmt.Sprintf(PrefabPathFormat, item.DefaultPrefabDir, d.ID)
}
