package item

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/iancoleman/orderedmap"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/metrics"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/validation"
)

// Loader reads item fragment files and merges them into one Config
type Loader interface {
	Load(ctx context.Context, dir string) (*Config, error)
}

// Options controls fragment discovery and checking
type Options struct {
	// ExcludePattern skips every file whose name contains it. Empty
	// disables exclusion.
	ExcludePattern string
	// SchemaCheck validates each fragment against FragmentSchema before
	// decoding it.
	SchemaCheck bool
}

type itemLoader struct {
	opts            Options
	schemaValidator validation.SchemaValidator

	registerOnce sync.Once
	registerErr  error
}

// NewLoader creates a new Loader instance
func NewLoader(opts Options) Loader {
	return &itemLoader{
		opts:            opts,
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads every fragment in dir in ascending file name order and merges
// them. A later fragment replaces earlier definitions of the same item id.
// Any unreadable or malformed fragment aborts the load.
func (l *itemLoader) Load(ctx context.Context, dir string) (*Config, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadItemsDirFailed, dir, err)
	}

	config := NewConfig()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if l.opts.ExcludePattern != "" && strings.Contains(entry.Name(), l.opts.ExcludePattern) {
			log.Debug(LogMsgFragmentSkipped, "file", entry.Name())
			continue
		}

		path := filepath.Join(dir, entry.Name())
		ids, items, err := l.loadFragment(path)
		if err != nil {
			return nil, err
		}

		for _, id := range ids {
			if config.Set(id, items[id]) {
				log.Debug(LogMsgItemOverridden, "item_id", id, "file", entry.Name())
			}
		}
		metrics.FragmentsLoaded.Inc()
		log.Debug(LogMsgFragmentLoaded, "file", entry.Name(), "items", len(ids))
	}

	return config, nil
}

// loadFragment decodes one fragment, returning its item ids in textual order
func (l *itemLoader) loadFragment(path string) ([]string, map[string]*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgReadFragmentFailed, path, err)
	}

	if l.opts.SchemaCheck {
		if err := l.registerSchema(); err != nil {
			return nil, nil, err
		}
		if err := l.schemaValidator.ValidateBytes(data, FragmentSchemaID); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgSchemaCheckFailed, path, err)
		}
	}

	ordered := orderedmap.New()
	if err := json.Unmarshal(data, ordered); err != nil {
		return nil, nil, fmt.Errorf(ErrMsgParseFragmentFailed, path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf(ErrMsgParseFragmentFailed, path, err)
	}

	ids := ordered.Keys()
	items := make(map[string]*Descriptor, len(raw))
	for _, id := range ids {
		var w wireItem
		if err := json.Unmarshal(raw[id], &w); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgDecodeItemFailed, id, path, err)
		}
		items[id] = w.toDescriptor()
	}

	return ids, items, nil
}

func (l *itemLoader) registerSchema() error {
	l.registerOnce.Do(func() {
		data, err := FragmentSchemaJSON()
		if err != nil {
			l.registerErr = err
			return
		}
		l.registerErr = l.schemaValidator.RegisterSchema(FragmentSchemaID, data)
	})
	return l.registerErr
}
