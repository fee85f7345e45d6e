package host

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/utils"
)

// ItemFactory creates item templates by cloning existing ones
type ItemFactory struct {
	db *domain.Database
}

// NewItemFactory creates an ItemFactory over db
func NewItemFactory(db *domain.Database) *ItemFactory {
	Normalize(db)
	return &ItemFactory{db: db}
}

// CreateItemFromClone registers a copy of the source template under the new
// id, then its handbook entry, flea price and display text.
func (f *ItemFactory) CreateItemFromClone(ctx context.Context, req *domain.CloneRequest) error {
	if f.db.Item(req.NewID) != nil {
		return fmt.Errorf(ErrFmtItemRegistered, domain.ErrItemExists, req.NewID)
	}

	src := f.db.Item(req.ItemTplToClone)
	if src == nil {
		return fmt.Errorf(ErrFmtSourceNotFound, domain.ErrTemplateNotFound, req.ItemTplToClone, req.NewID)
	}

	clone, err := utils.DeepClone(src)
	if err != nil {
		return fmt.Errorf(ErrFmtCloneSourceFailed, req.ItemTplToClone, err)
	}
	clone.ID = req.NewID
	if req.ParentID != "" {
		clone.Parent = req.ParentID
	}
	for _, key := range slices.Sorted(maps.Keys(req.OverrideProperties)) {
		if err := clone.Props.Set(key, req.OverrideProperties[key]); err != nil {
			return fmt.Errorf(ErrFmtOverrideFailed, key, req.NewID, err)
		}
	}

	f.db.Templates.Items[req.NewID] = clone
	f.db.Templates.Handbook.Items = append(f.db.Templates.Handbook.Items, &domain.HandbookItem{
		ID:       req.NewID,
		ParentID: req.HandbookParentID,
		Price:    req.HandbookPriceRoubles,
	})
	f.db.Templates.Prices[req.NewID] = req.FleaPriceRoubles
	f.addLocales(ctx, req)

	logger.FromContext(ctx).Debug(LogMsgItemCreated,
		"item_id", req.NewID,
		"source", req.ItemTplToClone,
		"parent", clone.Parent)
	return nil
}

// addLocales writes name, short name and description for every language
// in the database, falling back to the default language's text.
func (f *ItemFactory) addLocales(ctx context.Context, req *domain.CloneRequest) {
	fallback, hasFallback := req.Locales[domain.DefaultLocale]

	for _, lang := range slices.Sorted(maps.Keys(f.db.Locales.Global)) {
		details, ok := req.Locales[lang]
		if !ok {
			if !hasFallback {
				logger.FromContext(ctx).Debug(LogMsgNoLocaleText, "item_id", req.NewID, "lang", lang)
				continue
			}
			details = fallback
		}

		table := f.db.Locales.Global[lang]
		if table == nil {
			table = make(map[string]string)
			f.db.Locales.Global[lang] = table
		}
		table[fmt.Sprintf(LocaleKeyFormat, req.NewID, domain.LocaleSuffixName)] = details.Name
		table[fmt.Sprintf(LocaleKeyFormat, req.NewID, domain.LocaleSuffixShortName)] = details.ShortName
		table[fmt.Sprintf(LocaleKeyFormat, req.NewID, domain.LocaleSuffixDescription)] = details.Description
	}
}
