package host

import (
	"context"
	"fmt"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/utils"
)

// LoadDatabase reads a database export and makes sure every table the
// patch steps write to exists.
func LoadDatabase(ctx context.Context, path string) (*domain.Database, error) {
	var db domain.Database
	if err := utils.LoadJSON(path, &db); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDatabaseFailed, err)
	}
	Normalize(&db)

	logger.FromContext(ctx).Info(LogMsgDatabaseLoaded,
		"path", path,
		"items", len(db.Templates.Items),
		"locations", len(db.Locations),
		"traders", len(db.Traders),
		"quests", len(db.Templates.Quests))
	return &db, nil
}

// SaveDatabase writes the (patched) export back out.
func SaveDatabase(ctx context.Context, path string, db *domain.Database) error {
	if err := utils.SaveJSON(path, db); err != nil {
		return fmt.Errorf(ErrMsgSaveDatabaseFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgDatabaseSaved, "path", path)
	return nil
}

// Normalize allocates the top-level maps of db that are nil.
func Normalize(db *domain.Database) {
	if db.Templates.Items == nil {
		db.Templates.Items = make(map[string]*domain.ItemTemplate)
	}
	if db.Templates.Prices == nil {
		db.Templates.Prices = make(map[string]float64)
	}
	if db.Templates.Quests == nil {
		db.Templates.Quests = make(map[string]*domain.Quest)
	}
	if db.Locations == nil {
		db.Locations = make(map[string]*domain.Location)
	}
	if db.Traders == nil {
		db.Traders = make(map[string]*domain.Trader)
	}
	if db.Bots.Types == nil {
		db.Bots.Types = make(map[string]*domain.BotType)
	}
	if db.Globals.ItemPresets == nil {
		db.Globals.ItemPresets = make(map[string]*domain.Preset)
	}
	if db.Locales.Global == nil {
		db.Locales.Global = make(map[string]map[string]string)
	}
}
