package patch

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/metrics"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/naming"
)

func TestApply_Batch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB()
	a := newTestApplier(db)

	good := descriptor("")
	good.StaticLoot = &item.StaticLootFeature{Containers: []item.ContainerWeight{{Container: "CONTAINER_WEAPON_BOX", Probability: 10}}}
	good.Trader = &item.TraderFeature{
		TraderID: "prapor",
		Items:    []item.TraderItem{{StackObjectsCount: 10}},
		Barters:  []item.BarterEntry{{Count: 100, Currency: "RUB"}},
	}

	badCurrency := descriptor("")
	badCurrency.Trader = &item.TraderFeature{
		TraderID: "prapor",
		Items:    []item.TraderItem{{StackObjectsCount: 10}},
		Barters:  []item.BarterEntry{{Count: 1, Currency: "SEASHELLS"}},
	}

	missingSource := descriptor("")
	missingSource.ItemTplToClone = "no_such_template"

	cfg := item.NewConfig()
	cfg.Set("rex_good", good)
	cfg.Set("rex_bad_currency", badCurrency)
	cfg.Set("rex_missing_source", missingSource)
	cfg.Set("rex_plain", descriptor(""))

	failedCurrency := testutil.ToFloat64(metrics.ItemsFailed.WithLabelValues(metrics.ReasonInvalidCurrency))

	result := a.Apply(ctx, cfg)

	assert.Equal(t, []string{"rex_good", "rex_plain"}, result.Added)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, "rex_bad_currency", result.Failed[0].ID)
	assert.ErrorIs(t, result.Failed[0].Err, domain.ErrInvalidCurrency)
	assert.Equal(t, "rex_missing_source", result.Failed[1].ID)
	assert.ErrorIs(t, result.Failed[1].Err, domain.ErrTemplateNotFound)
	assert.Equal(t, 2, result.QuestsPatched)
	assert.Equal(t, failedCurrency+1, testutil.ToFloat64(metrics.ItemsFailed.WithLabelValues(metrics.ReasonInvalidCurrency)))

	assert.NotNil(t, db.Item("rex_good"))
	assert.NotNil(t, db.Item("rex_plain"))
	assert.Nil(t, db.Item("rex_missing_source"))

	// the failed item was cloned but never listed
	assort := db.Traders[traderPrapor].Assort
	require.Len(t, assort.Items, 1)
	assert.Equal(t, "rex_good", assort.Items[0].Tpl)
	assert.NotContains(t, assort.BarterScheme, "rex_bad_currency")
}

func TestApply_Empty(t *testing.T) {
	db := newTestDB()

	result := newTestApplier(db).Apply(context.Background(), item.NewConfig())

	assert.Empty(t, result.Added)
	assert.Empty(t, result.Failed)
	assert.Zero(t, result.QuestsPatched)
	weapons, _ := db.Templates.Quests[QuestIDSilentCaliber].FinishWeapons()
	assert.NotContains(t, weapons, QuestPistolTpl, "quests are left alone without items")
}

func TestApplyItem_NoFeatures(t *testing.T) {
	db := newTestDB()
	mutations := testutil.ToFloat64(metrics.StepMutations.WithLabelValues(StepStaticLoot))

	require.NoError(t, newTestApplier(db).ApplyItem(context.Background(), descriptor(newItemID)))

	assert.NotNil(t, db.Item(newItemID))
	assert.Equal(t, mutations, testutil.ToFloat64(metrics.StepMutations.WithLabelValues(StepStaticLoot)))
	assert.Len(t, db.Locations["bigmap"].StaticLoot[tplWeaponBox].ItemDistribution, 1)
	assert.Len(t, db.Globals.Config.Mastering, 1)
	assert.Empty(t, db.Globals.ItemPresets)
}

func TestApplyItem_ExistingItemContinues(t *testing.T) {
	ctx := context.Background()
	db := newTestDB()
	a := newTestApplier(db)
	warnings := metrics.StepWarnings.WithLabelValues(StepClone)

	d := descriptor(newItemID)
	require.NoError(t, a.ApplyItem(ctx, d))

	before := testutil.ToFloat64(warnings)
	d.Masteries = &item.MasteryFeature{Sections: []item.MasterySection{{Name: "PM", Templates: []string{newItemID}}}}
	require.NoError(t, a.ApplyItem(ctx, d))

	assert.Equal(t, before+1, testutil.ToFloat64(warnings))
	assert.Contains(t, db.Globals.Config.Mastering[0].Templates, newItemID, "steps still ran")
}

func TestApplyItem_FactoryError(t *testing.T) {
	db := newTestDB()
	boom := errors.New("boom")
	factory := &recordingFactory{err: boom}
	a := NewApplier(db, factory, naming.Default(), "WTT-Test")

	d := descriptor(newItemID)
	d.Masteries = &item.MasteryFeature{Sections: []item.MasterySection{{Name: "PM", Templates: []string{newItemID}}}}

	err := a.ApplyItem(context.Background(), d)

	require.ErrorIs(t, err, boom)
	require.Len(t, factory.requests, 1)
	assert.Equal(t, newItemID, factory.requests[0].NewID)
	assert.NotContains(t, db.Globals.Config.Mastering[0].Templates, newItemID, "no step runs after a failed clone")
}
