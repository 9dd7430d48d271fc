package usecase

import (
	"time"

	"github.com/samber/lo"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
)

// DayEnd returns the cutoff instant for a selected day: 23:59:59 UTC.
func DayEnd(day time.Time) time.Time {
	y, m, d := day.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}

// sameDay reports whether two instants fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// Reconcile derives one InventorySummary per registered tank size from the
// registry baseline and the movement ledger, as of the end of the selected
// day (cutoff policy):
//
//   - out_for_delivery counts deliveries falling exactly on the selected day
//   - empty is cumulative sales minus cumulative replenishments up to the
//     cutoff, clamped at zero
//   - full is the baseline minus empty minus out-for-delivery, clamped at
//     zero
//
// Pure function of its inputs. The baseline itself is not reduced by tanks
// out for delivery; they are reported as their own bucket.
func Reconcile(tanks []model.Tank, movements []model.Movement, day time.Time) []model.InventorySummary {
	cutoff := DayEnd(day)

	return lo.Map(tanks, func(tank model.Tank, _ int) model.InventorySummary {
		forSize := lo.Filter(movements, func(m model.Movement, _ int) bool {
			return m.TankSize == tank.Size
		})

		deliveredOnDay := sumQuantity(forSize, func(m model.Movement) bool {
			return m.Type == model.MovementDelivery && sameDay(m.Date, day)
		})
		sold := sumQuantity(forSize, func(m model.Movement) bool {
			return m.Type == model.MovementSale && !m.Date.After(cutoff)
		})
		replenished := sumQuantity(forSize, func(m model.Movement) bool {
			return m.Type == model.MovementReplenishment && !m.Date.After(cutoff)
		})

		empty := max(sold-replenished, 0)
		full := max(tank.Quantity-empty-deliveredOnDay, 0)

		return model.InventorySummary{
			Size:           tank.Size,
			TotalTanks:     tank.Quantity,
			FullTanks:      full,
			OutForDelivery: deliveredOnDay,
			EmptyTanks:     empty,
		}
	})
}

func sumQuantity(movements []model.Movement, pred func(model.Movement) bool) int {
	return lo.SumBy(lo.Filter(movements, func(m model.Movement, _ int) bool {
		return pred(m)
	}), func(m model.Movement) int {
		return m.Quantity
	})
}
