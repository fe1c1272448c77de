package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/clock"
	"mtaani/internal/pkg/errs"

	"gorm.io/gorm"
)

// earningsWeekWindow is the rolling window behind the week figure.
const earningsWeekWindow = 7 * 24 * time.Hour

// GetRiderEarningsQueryHandler reads the earnings summary. The today and
// lifetime accumulators live on the rider row and come back via raw SQL;
// the rolling week figure is summed from delivered rows because no
// accumulator tracks it.
type GetRiderEarningsQueryHandler struct {
	db                 *gorm.DB
	deliveryRepository ports.DeliveryRepository
	clock              clock.Clock
}

// NewGetRiderEarningsQueryHandler creates a handler for earnings queries.
func NewGetRiderEarningsQueryHandler(
	db *gorm.DB,
	deliveryRepository ports.DeliveryRepository,
	clk clock.Clock,
) (GetRiderEarningsQueryHandler, error) {
	if db == nil {
		return GetRiderEarningsQueryHandler{}, errs.NewValueIsRequiredError("db")
	}
	if deliveryRepository == nil {
		return GetRiderEarningsQueryHandler{}, errs.NewValueIsRequiredError("deliveryRepository")
	}
	if clk == nil {
		return GetRiderEarningsQueryHandler{}, errs.NewValueIsRequiredError("clock")
	}

	return GetRiderEarningsQueryHandler{
		db:                 db,
		deliveryRepository: deliveryRepository,
		clock:              clk,
	}, nil
}

// Handle returns the rider's earnings summary.
func (h GetRiderEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetRiderEarningsQuery,
) (GetRiderEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRiderEarningsQueryResponse{}, err
	}

	response := GetRiderEarningsQueryResponse{RiderID: query.RiderID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			r.earnings_today,
			r.earnings_total,
			r.rating_avg,
			r.rating_count,
			(
				SELECT COUNT(*)
				FROM deliveries d
				WHERE d.rider_id = r.id AND d.status = 'delivered'
			) AS delivered_count
		FROM riders r
		WHERE r.id = ?
	`, query.RiderID().Bytes()).Row()

	err := row.Scan(
		&response.EarningsToday,
		&response.EarningsTotal,
		&response.RatingAvg,
		&response.RatingCount,
		&response.DeliveredCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRiderEarningsQueryResponse{},
			errs.NewObjectNotFoundError("rider", query.RiderID())
	}
	if err != nil {
		return GetRiderEarningsQueryResponse{}, err
	}

	since := h.clock.Now().Add(-earningsWeekWindow)
	week, err := h.deliveryRepository.SumRiderEarningsSince(ctx, query.RiderID(), since)
	if err != nil {
		return GetRiderEarningsQueryResponse{}, err
	}
	response.EarningsWeek = week

	return response, nil
}
