package queries

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"mtaani/internal/core/domain/model/rider"
	"mtaani/internal/core/ports"
	"mtaani/internal/pkg/errs"
)

// GetNearbyRidersQueryHandler shortlists discoverable riders around a point.
// The redis geo feed answers first; when it is unavailable the handler falls
// back to scanning the online riders in postgres, which stays the source of
// truth. Either way the feed result is re-checked against the rider rows so
// stale index entries (riders gone offline since their last fix) never leak.
type GetNearbyRidersQueryHandler struct {
	feed            ports.RiderLocationFeed
	riderRepository ports.RiderRepository
	logger          *slog.Logger
}

// NewGetNearbyRidersQueryHandler creates a handler for nearby-rider queries.
func NewGetNearbyRidersQueryHandler(
	feed ports.RiderLocationFeed,
	riderRepository ports.RiderRepository,
	logger *slog.Logger,
) (GetNearbyRidersQueryHandler, error) {
	if feed == nil {
		return GetNearbyRidersQueryHandler{}, errs.NewValueIsRequiredError("feed")
	}
	if riderRepository == nil {
		return GetNearbyRidersQueryHandler{}, errs.NewValueIsRequiredError("riderRepository")
	}
	if logger == nil {
		return GetNearbyRidersQueryHandler{}, errs.NewValueIsRequiredError("logger")
	}

	return GetNearbyRidersQueryHandler{
		feed:            feed,
		riderRepository: riderRepository,
		logger:          logger.With("component", "get_nearby_riders_handler"),
	}, nil
}

// Handle returns up to limit discoverable riders within the radius, nearest
// first.
func (h GetNearbyRidersQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyRidersQuery,
) ([]GetNearbyRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.fromFeed(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "location feed unavailable, falling back to rider table",
			"error", err)
		candidates, err = h.fromTable(ctx, query)
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].RiderID.String() < candidates[j].RiderID.String()
	})
	if len(candidates) > query.Limit() {
		candidates = candidates[:query.Limit()]
	}

	return candidates, nil
}

func (h GetNearbyRidersQueryHandler) fromFeed(
	ctx context.Context,
	query GetNearbyRidersQuery,
) ([]GetNearbyRidersQueryResponse, error) {
	ids, err := h.feed.NearbyRiders(ctx, query.Origin(), query.RadiusKm(), query.Limit())
	if err != nil {
		return nil, err
	}

	responses := make([]GetNearbyRidersQueryResponse, 0, len(ids))
	for _, id := range ids {
		candidate, getErr := h.riderRepository.Get(ctx, id)
		if getErr != nil {
			// index entry without a row; skip, the feed is rebuildable
			if errors.Is(getErr, errs.ErrObjectNotFound) {
				continue
			}
			return nil, getErr
		}

		response, ok, respErr := h.toResponse(candidate, query)
		if respErr != nil {
			return nil, respErr
		}
		if ok {
			responses = append(responses, response)
		}
	}

	return responses, nil
}

func (h GetNearbyRidersQueryHandler) fromTable(
	ctx context.Context,
	query GetNearbyRidersQuery,
) ([]GetNearbyRidersQueryResponse, error) {
	online, err := h.riderRepository.GetAllOnline(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetNearbyRidersQueryResponse, 0, len(online))
	for _, candidate := range online {
		response, ok, respErr := h.toResponse(candidate, query)
		if respErr != nil {
			return nil, respErr
		}
		if ok {
			responses = append(responses, response)
		}
	}

	return responses, nil
}

func (h GetNearbyRidersQueryHandler) toResponse(
	candidate *rider.Rider,
	query GetNearbyRidersQuery,
) (GetNearbyRidersQueryResponse, bool, error) {
	if !candidate.IsDiscoverable() {
		return GetNearbyRidersQueryResponse{}, false, nil
	}

	distance, err := candidate.DistanceKmTo(query.Origin())
	if err != nil {
		return GetNearbyRidersQueryResponse{}, false, err
	}
	if distance > query.RadiusKm() {
		return GetNearbyRidersQueryResponse{}, false, nil
	}

	return GetNearbyRidersQueryResponse{
		RiderID:     candidate.ID(),
		Name:        candidate.Name(),
		VehicleType: candidate.VehicleType().String(),
		DistanceKm:  distance,
		RatingAvg:   candidate.RatingAvg(),
		RatingCount: candidate.RatingCount(),
	}, true, nil
}
