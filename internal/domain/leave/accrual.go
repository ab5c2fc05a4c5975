package leave

import (
	"context"
	"time"

	"schoolhr/internal/platform/db"
)

// ApplyAccruals credits one month of accrual to every balance that has
// not yet been credited for the month containing now. Returns how many
// balances were credited.
func ApplyAccruals(ctx context.Context, q db.Querier, now time.Time) (int64, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	tag, err := q.Exec(ctx, `
    UPDATE leave_balances b
    SET balance = b.balance + t.accrual_per_month,
        last_accrual_on = $1
    FROM leave_types t
    WHERE t.id = b.leave_type_id
      AND t.accrual_per_month > 0
      AND (b.last_accrual_on IS NULL OR b.last_accrual_on < $1)
  `, monthStart)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
