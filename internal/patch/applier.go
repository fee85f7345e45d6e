package patch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/metrics"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/naming"
)

// ItemFactory registers cloned item templates with the host database
type ItemFactory interface {
	CreateItemFromClone(ctx context.Context, req *domain.CloneRequest) error
}

// Applier injects custom items into a host database
type Applier interface {
	// Apply patches every item of cfg in order, then runs the quest patch
	// unless cfg is empty. A failing item is recorded and the batch
	// continues.
	Apply(ctx context.Context, cfg *item.Config) *Result
	// ApplyItem clones one item and runs its patch steps.
	ApplyItem(ctx context.Context, d *item.Descriptor) error
	// PatchQuests extends the fixed quests' weapon lists. Returns the
	// number of quests changed.
	PatchQuests(ctx context.Context) int
}

// Result summarises a batch
type Result struct {
	Added         []string
	Failed        []ItemFailure
	QuestsPatched int
}

// ItemFailure is an item whose processing was aborted
type ItemFailure struct {
	ID  string
	Err error
}

type applier struct {
	db      *domain.Database
	factory ItemFactory
	names   *naming.Tables
	modName string
}

// NewApplier creates an Applier that mutates db in place
func NewApplier(db *domain.Database, factory ItemFactory, names *naming.Tables, modName string) Applier {
	return &applier{
		db:      db,
		factory: factory,
		names:   names,
		modName: modName,
	}
}

type step struct {
	name string
	run  func(ctx context.Context, d *item.Descriptor, srcTpl string) (int, error)
}

// steps returns the patch steps in application order. Traders run last so
// that an invalid barter currency leaves nothing half-registered after it.
func (a *applier) steps() []step {
	return []step{
		{StepStaticLoot, a.patchStaticLoot},
		{StepModSlots, a.patchModSlots},
		{StepInventorySlots, a.patchInventorySlots},
		{StepMasteries, a.patchMasteries},
		{StepPresets, a.patchPresets},
		{StepBots, a.patchBotInventories},
		{StepTraders, a.patchTraders},
	}
}

func (a *applier) Apply(ctx context.Context, cfg *item.Config) *Result {
	defer metrics.ObserveBatch(time.Now())
	log := logger.FromContext(ctx)

	result := &Result{}
	for _, d := range cfg.Descriptors() {
		if err := a.ApplyItem(ctx, d); err != nil {
			log.Error(LogMsgItemFailed, "item_id", d.ID, "error", err)
			metrics.RecordItemFailed(err)
			result.Failed = append(result.Failed, ItemFailure{ID: d.ID, Err: err})
			continue
		}
		metrics.ItemsPatched.Inc()
		result.Added = append(result.Added, d.ID)
	}

	if cfg.Len() > 0 {
		result.QuestsPatched = a.PatchQuests(ctx)
	}

	if len(result.Added) > 0 {
		log.Info(LogMsgItemsLoaded, "mod", a.modName, "count", len(result.Added), "failed", len(result.Failed))
	} else {
		log.Info(LogMsgNoItemsLoaded, "mod", a.modName, "failed", len(result.Failed))
	}
	return result
}

func (a *applier) ApplyItem(ctx context.Context, d *item.Descriptor) error {
	log := logger.FromContext(ctx)

	req, srcTpl := BuildCloneRequest(d, a.names)
	log.Debug(LogMsgCloningItem, "item_id", d.ID, "source", srcTpl, "prefab", req.PrefabPath())

	if err := a.factory.CreateItemFromClone(ctx, req); err != nil {
		if !errors.Is(err, domain.ErrItemExists) {
			return fmt.Errorf(ErrFmtCloneFailed, d.ID, err)
		}
		a.warn(ctx, StepClone, LogMsgItemExists, "item_id", d.ID)
	}

	for _, s := range a.steps() {
		n, err := s.run(ctx, d, srcTpl)
		metrics.RecordMutations(s.name, n)
		if err != nil {
			return fmt.Errorf(ErrFmtStepFailed, s.name, d.ID, err)
		}
	}
	return nil
}

// warn reports a reported-and-continue condition
func (a *applier) warn(ctx context.Context, stepName, msg string, args ...any) {
	metrics.RecordWarning(stepName)
	logger.FromContext(ctx).Warn(msg, append([]any{"step", stepName}, args...)...)
}
