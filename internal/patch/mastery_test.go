package patch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
)

func TestPatchMasteries(t *testing.T) {
	ctx := context.Background()

	t.Run("extends an existing section without dedup", func(t *testing.T) {
		db := newTestDB()
		a := newTestApplier(db)
		d := descriptor(newItemID)
		d.Masteries = &item.MasteryFeature{Sections: []item.MasterySection{
			{Name: "PM", Templates: []string{newItemID, tplPistolPM}},
		}}

		n, err := a.patchMasteries(ctx, d, tplPistolPM)
		require.NoError(t, err)

		assert.Equal(t, 1, n)
		require.Len(t, db.Globals.Config.Mastering, 1)
		pm := db.Globals.Config.Mastering[0]
		assert.Equal(t, []string{tplPistolPM, newItemID, tplPistolPM}, pm.Templates)
		assert.Equal(t, 450, pm.Level2, "existing levels untouched")
	})

	t.Run("adds a new section", func(t *testing.T) {
		db := newTestDB()
		d := descriptor(newItemID)
		d.Masteries = &item.MasteryFeature{Sections: []item.MasterySection{
			{Name: "RexProdigy", Templates: []string{newItemID}, Level2: 500, Level3: 1000},
		}}

		_, err := newTestApplier(db).patchMasteries(ctx, d, tplPistolPM)
		require.NoError(t, err)

		require.Len(t, db.Globals.Config.Mastering, 2)
		assert.Equal(t, &domain.Mastering{Name: "RexProdigy", Templates: []string{newItemID}, Level2: 500, Level3: 1000},
			db.Globals.Config.Mastering[1])
	})

	t.Run("applying twice duplicates templates", func(t *testing.T) {
		db := newTestDB()
		a := newTestApplier(db)
		d := descriptor(newItemID)
		d.Masteries = &item.MasteryFeature{Sections: []item.MasterySection{
			{Name: "RexProdigy", Templates: []string{newItemID}},
		}}

		_, err := a.patchMasteries(ctx, d, tplPistolPM)
		require.NoError(t, err)
		_, err = a.patchMasteries(ctx, d, tplPistolPM)
		require.NoError(t, err)

		require.Len(t, db.Globals.Config.Mastering, 2)
		assert.Equal(t, []string{newItemID, newItemID}, db.Globals.Config.Mastering[1].Templates)
	})
}
