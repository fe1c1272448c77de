package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery and its session tracking events.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err = r.appendEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery and appends its session tracking events.
// All columns are written so cleared optional fields (the selection window,
// for one) reach the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err = r.appendEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfPending writes the aggregate only when the stored row is still
// pending. The status guard in the WHERE clause is what makes concurrent
// accepts single-winner: the loser sees zero rows affected and gets false.
func (r *GormDeliveryRepository) UpdateIfPending(
	ctx context.Context,
	aggregate *delivery.Delivery,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, delivery.StatusPending.String()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err = r.appendEvents(ctx, aggregate); err != nil {
		return false, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a delivery by its customer-facing code.
func (r *GormDeliveryRepository) GetByCode(ctx context.Context, code string) (*delivery.Delivery, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves every delivery still in pending status, oldest
// first so long-waiting deliveries surface before fresh ones at equal
// distance.
func (r *GormDeliveryRepository) GetAllPending(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "status = ?", delivery.StatusPending.String()).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetActiveByRider retrieves the rider's deliveries in accepted, picked_up,
// or in_transit status.
func (r *GormDeliveryRepository) GetActiveByRider(
	ctx context.Context,
	riderID kernel.UUID,
) ([]*delivery.Delivery, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	active := []string{
		delivery.StatusAccepted.String(),
		delivery.StatusPickedUp.String(),
		delivery.StatusInTransit.String(),
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Order("accepted_at ASC").
		Find(&dtos, "rider_id = ? AND status IN ?", riderID.Bytes(), active).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetTrackingEvents retrieves the full tracking log for a delivery, oldest
// first.
func (r *GormDeliveryRepository) GetTrackingEvents(
	ctx context.Context,
	deliveryID kernel.UUID,
) ([]delivery.TrackingEvent, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&dtos, "delivery_id = ?", deliveryID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	events := make([]delivery.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, eventErr := eventToDomain(dto)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return events, nil
}

// CountDeliveredByCustomer counts the customer's completed deliveries.
func (r *GormDeliveryRepository) CountDeliveredByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) (int64, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("customer_id = ? AND status = ?", customerID.Bytes(), delivery.StatusDelivered.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// SumRiderEarningsSince totals the rider share of deliveries completed at or
// after the given instant.
func (r *GormDeliveryRepository) SumRiderEarningsSince(
	ctx context.Context,
	riderID kernel.UUID,
	since time.Time,
) (float64, error) {
	if err := riderID.Validate(); err != nil {
		return 0, err
	}

	var total float64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Select("COALESCE(SUM(rider_earnings), 0)").
		Where("rider_id = ? AND status = ? AND delivered_at >= ?",
			riderID.Bytes(), delivery.StatusDelivered.String(), since).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *GormDeliveryRepository) appendEvents(ctx context.Context, aggregate *delivery.Delivery) error {
	events := aggregate.TrackingEvents()
	if len(events) == 0 {
		return nil
	}

	dtos := make([]TrackingEventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, eventFromDomain(aggregate.ID(), event))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormDeliveryRepository) toDomainAll(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
