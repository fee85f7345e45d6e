package patch

import (
	"context"
	"fmt"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/item"
	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/logger"
)

// patchTraders lists the item with its trader. Every barter currency is
// resolved before the assort is touched, so an invalid currency fails the
// item without leaving a partial listing.
func (a *applier) patchTraders(ctx context.Context, d *item.Descriptor, _ string) (int, error) {
	f := d.Trader
	if f == nil {
		return 0, nil
	}

	traderID := a.names.Traders.Resolve(f.TraderID)
	trader := a.db.Traders[traderID]
	if trader == nil {
		a.warn(ctx, StepTraders, LogMsgUnknownTrader, "item_id", d.ID, "trader", f.TraderID)
		return 0, nil
	}

	scheme := make([][]*domain.BarterOffer, 0, len(f.Barters))
	for _, barter := range f.Barters {
		tpl, ok := a.names.ResolveCurrency(barter.Currency)
		if !ok {
			return 0, fmt.Errorf(ErrFmtInvalidCurrency, domain.ErrInvalidCurrency, barter.Currency, d.ID)
		}
		scheme = append(scheme, []*domain.BarterOffer{{Count: barter.Count, Tpl: tpl}})
	}

	assort := trader.EnsureAssort()
	for _, listing := range f.Items {
		assort.Items = append(assort.Items, &domain.AssortItem{
			ID:       d.ID,
			Tpl:      d.ID,
			ParentID: domain.HideoutRoot,
			SlotID:   domain.HideoutRoot,
			Upd: &domain.AssortItemUpd{
				UnlimitedCount:    listing.UnlimitedCount,
				StackObjectsCount: listing.StackObjectsCount,
			},
		})
	}
	assort.BarterScheme[d.ID] = scheme
	changed := len(f.Items) + 1
	// an unset level leaves the item without a loyalty entry
	if f.LoyaltyLevel != nil {
		assort.LoyalLevelItems[d.ID] = *f.LoyaltyLevel
		changed++
	}

	logger.FromContext(ctx).Debug(LogMsgTraderAssortAdded,
		"item_id", d.ID,
		"trader", f.TraderID,
		"listings", len(f.Items),
		"barters", len(scheme))

	return changed, nil
}
