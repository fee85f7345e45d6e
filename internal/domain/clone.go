package domain

// LocaleDetails is the display text of an item in one language.
type LocaleDetails struct {
	Name        string `json:"name,omitempty"`
	ShortName   string `json:"shortName,omitempty"`
	Description string `json:"description,omitempty"`
}

// CloneRequest instructs the host's item factory to derive a new template
// from an existing one.
type CloneRequest struct {
	ItemTplToClone       string                   `json:"itemTplToClone"`
	OverrideProperties   map[string]any           `json:"overrideProperties,omitempty"`
	ParentID             string                   `json:"parentId"`
	NewID                string                   `json:"newId"`
	FleaPriceRoubles     float64                  `json:"fleaPriceRoubles"`
	HandbookPriceRoubles float64                  `json:"handbookPriceRoubles"`
	HandbookParentID     string                   `json:"handbookParentId"`
	Locales              map[string]LocaleDetails `json:"locales,omitempty"`
}

// PrefabPath returns the visual-asset path of the request, if set.
func (r *CloneRequest) PrefabPath() string {
	prefab, ok := r.OverrideProperties[PropPrefab].(map[string]any)
	if !ok {
		return ""
	}
	path, _ := prefab["path"].(string)
	return path
}
