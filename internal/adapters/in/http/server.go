// Package http exposes the delivery engine over echo handlers. Each handler
// parses transport primitives into a command or query, delegates to the
// application layer, and maps domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"mtaani/internal/core/application/usecases/commands"
	"mtaani/internal/core/application/usecases/queries"
	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/observability"
	"mtaani/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler  commands.CreateDeliveryCommandHandler
	selectPreferredHandler commands.SelectPreferredRidersCommandHandler
	acceptDeliveryHandler  commands.AcceptDeliveryCommandHandler
	rejectDeliveryHandler  commands.RejectDeliveryCommandHandler
	updateStatusHandler    commands.UpdateDeliveryStatusCommandHandler
	cancelDeliveryHandler  commands.CancelDeliveryCommandHandler
	rateDeliveryHandler    commands.RateDeliveryCommandHandler
	createRiderHandler     commands.CreateRiderCommandHandler
	reportLocationHandler  commands.ReportRiderLocationCommandHandler
	setAvailabilityHandler commands.SetRiderAvailabilityCommandHandler

	// Query handlers
	availableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler
	deliveryDetailHandler      queries.GetDeliveryQueryHandler
	deliveryTrackingHandler    queries.GetDeliveryTrackingQueryHandler
	nearbyRidersHandler        queries.GetNearbyRidersQueryHandler
	activeDeliveriesHandler    queries.GetRiderActiveDeliveriesQueryHandler
	riderEarningsHandler       queries.GetRiderEarningsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	selectPreferredHandler commands.SelectPreferredRidersCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	rejectDeliveryHandler commands.RejectDeliveryCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	rateDeliveryHandler commands.RateDeliveryCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	reportLocationHandler commands.ReportRiderLocationCommandHandler,
	setAvailabilityHandler commands.SetRiderAvailabilityCommandHandler,
	availableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler,
	deliveryDetailHandler queries.GetDeliveryQueryHandler,
	deliveryTrackingHandler queries.GetDeliveryTrackingQueryHandler,
	nearbyRidersHandler queries.GetNearbyRidersQueryHandler,
	activeDeliveriesHandler queries.GetRiderActiveDeliveriesQueryHandler,
	riderEarningsHandler queries.GetRiderEarningsQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:      createDeliveryHandler,
		selectPreferredHandler:     selectPreferredHandler,
		acceptDeliveryHandler:      acceptDeliveryHandler,
		rejectDeliveryHandler:      rejectDeliveryHandler,
		updateStatusHandler:        updateStatusHandler,
		cancelDeliveryHandler:      cancelDeliveryHandler,
		rateDeliveryHandler:        rateDeliveryHandler,
		createRiderHandler:         createRiderHandler,
		reportLocationHandler:      reportLocationHandler,
		setAvailabilityHandler:     setAvailabilityHandler,
		availableDeliveriesHandler: availableDeliveriesHandler,
		deliveryDetailHandler:      deliveryDetailHandler,
		deliveryTrackingHandler:    deliveryTrackingHandler,
		nearbyRidersHandler:        nearbyRidersHandler,
		activeDeliveriesHandler:    activeDeliveriesHandler,
		riderEarningsHandler:       riderEarningsHandler,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/available", s.GetAvailableDeliveries)
	api.GET("/deliveries/:code", s.GetDelivery)
	api.GET("/deliveries/:code/tracking", s.GetDeliveryTracking)
	api.POST("/deliveries/:id/preferred-riders", s.SelectPreferredRiders)
	api.POST("/deliveries/:id/accept", s.AcceptDelivery)
	api.POST("/deliveries/:id/reject", s.RejectDelivery)
	api.POST("/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.POST("/deliveries/:id/cancel", s.CancelDelivery)
	api.POST("/deliveries/:id/rating", s.RateDelivery)

	api.POST("/riders", s.CreateRider)
	api.GET("/riders/nearby", s.GetNearbyRiders)
	api.POST("/riders/:id/location", s.ReportRiderLocation)
	api.POST("/riders/:id/availability", s.SetRiderAvailability)
	api.GET("/riders/:id/deliveries", s.GetRiderActiveDeliveries)
	api.GET("/riders/:id/earnings", s.GetRiderEarnings)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req createDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), customerID,
		req.PickupLat, req.PickupLng,
		req.DropoffLat, req.DropoffLng,
		req.PackageType, req.PackageDescription,
		req.PackageWeightKg, req.PackageSize, req.PaymentMethod,
	)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	observability.DeliveriesCreatedTotal.Inc()

	return ctx.JSON(http.StatusCreated, createDeliveryResponse{
		ID:             created.ID().String(),
		Code:           created.Code(),
		Status:         created.Status().String(),
		DistanceKm:     created.DistanceKm(),
		TotalFare:      created.Fare().TotalFare(),
		RiderEarnings:  created.Fare().RiderEarnings(),
		RepeatCustomer: created.RepeatCustomer(),
	})
}

// SelectPreferredRiders handles POST /api/v1/deliveries/:id/preferred-riders.
func (s *Server) SelectPreferredRiders(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req selectPreferredRidersRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	riderIDs := make([]kernel.UUID, 0, len(req.RiderIDs))
	for _, raw := range req.RiderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid rider id: "+raw)
		}
		riderIDs = append(riderIDs, id)
	}

	cmd, err := commands.NewSelectPreferredRidersCommand(deliveryID, customerID, riderIDs)
	if err != nil {
		return badRequest(ctx, "Invalid selection: "+err.Error())
	}

	if err = s.selectPreferredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptDelivery handles POST /api/v1/deliveries/:id/accept.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req riderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, riderID)
	if err != nil {
		return badRequest(ctx, "Invalid accept request: "+err.Error())
	}

	if err = s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrDeliveryNoLongerAvailable) {
			observability.AcceptConflictsTotal.Inc()
		}
		return writeError(ctx, err)
	}

	observability.AcceptsTotal.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// RejectDelivery handles POST /api/v1/deliveries/:id/reject.
func (s *Server) RejectDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req riderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	cmd, err := commands.NewRejectDeliveryCommand(deliveryID, riderID, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid reject request: "+err.Error())
	}

	if err = s.rejectDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, riderID, req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req cancelDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, actorID, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancel request: "+err.Error())
	}

	if err = s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateDelivery handles POST /api/v1/deliveries/:id/rating.
func (s *Server) RateDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req rateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewRateDeliveryCommand(deliveryID, actorID, req.Rating, req.Review)
	if err != nil {
		return badRequest(ctx, "Invalid rating: "+err.Error())
	}

	if err = s.rateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableDeliveries handles GET /api/v1/deliveries/available.
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.QueryParam("rider_id"))
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		if err = echo.QueryParamsBinder(ctx).Int("limit", &limit).BindError(); err != nil {
			return badRequest(ctx, "Invalid limit")
		}
	}

	query, err := queries.NewGetAvailableDeliveriesQuery(riderID, limit)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	started := time.Now()
	result, err := s.availableDeliveriesHandler.Handle(ctx.Request().Context(), query)
	observability.CandidateSearchDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]availableDeliveryResponse, len(result))
	for i, candidate := range result {
		response[i] = availableDeliveryResponse{
			ID:                 candidate.ID.String(),
			Code:               candidate.Code,
			PickupLat:          candidate.Pickup.Latitude(),
			PickupLng:          candidate.Pickup.Longitude(),
			DropoffLat:         candidate.Dropoff.Latitude(),
			DropoffLng:         candidate.Dropoff.Longitude(),
			PickupDistanceKm:   candidate.PickupDistanceKm,
			TripDistanceKm:     candidate.TripDistanceKm,
			TotalFare:          candidate.TotalFare,
			RiderEarnings:      candidate.RiderEarnings,
			PackageSize:        candidate.PackageSize,
			PackageDescription: candidate.PackageDescription,
			PaymentMethod:      candidate.PaymentMethod,
			PreferredRider:     candidate.PreferredRider,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDelivery handles GET /api/v1/deliveries/:code.
func (s *Server) GetDelivery(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryQuery(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery code")
	}

	result, err := s.deliveryDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := deliveryDetailResponse{
		ID:                 result.ID.String(),
		Code:               result.Code,
		Status:             result.Status,
		CustomerID:         result.CustomerID.String(),
		PickupLat:          result.Pickup.Latitude(),
		PickupLng:          result.Pickup.Longitude(),
		DropoffLat:         result.Dropoff.Latitude(),
		DropoffLng:         result.Dropoff.Longitude(),
		DistanceKm:         result.DistanceKm,
		BaseFare:           result.BaseFare,
		DistanceFare:       result.DistanceFare,
		TotalFare:          result.TotalFare,
		PlatformFee:        result.PlatformFee,
		RiderEarnings:      result.RiderEarnings,
		PackageType:        result.PackageType,
		PackageDescription: result.PackageDescription,
		PackageSize:        result.PackageSize,
		PaymentMethod:      result.PaymentMethod,
		PaymentStatus:      result.PaymentStatus,
		AssignmentMode:     result.AssignmentMode,
		SelectionExpiresAt: result.SelectionExpiresAt,
		RepeatCustomer:     result.RepeatCustomer,
		CreatedAt:          result.CreatedAt,
		AcceptedAt:         result.AcceptedAt,
		DeliveredAt:        result.DeliveredAt,
		CancellationReason: result.CancellationReason,
	}
	if result.RiderID != nil {
		response.RiderID = result.RiderID.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryTracking handles GET /api/v1/deliveries/:code/tracking.
func (s *Server) GetDeliveryTracking(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryTrackingQuery(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery code")
	}

	result, err := s.deliveryTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := trackingResponse{
		DeliveryID: result.DeliveryID.String(),
		Code:       result.Code,
		Status:     result.Status,
		RiderName:  result.RiderName,
		Events:     make([]trackingEventResponse, len(result.Events)),
	}
	if result.RiderLocation != nil {
		lat := result.RiderLocation.Latitude()
		lng := result.RiderLocation.Longitude()
		response.RiderLat = &lat
		response.RiderLng = &lng
	}
	for i, event := range result.Events {
		entry := trackingEventResponse{
			Status:    event.Status,
			Note:      event.Note,
			CreatedAt: event.CreatedAt,
		}
		if event.Location != nil {
			lat := event.Location.Latitude()
			lng := event.Location.Longitude()
			entry.Lat = &lat
			entry.Lng = &lng
		}
		response.Events[i] = entry
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRider handles POST /api/v1/riders.
func (s *Server) CreateRider(ctx echo.Context) error {
	var req createRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID := kernel.NewUUID()
	cmd, err := commands.NewCreateRiderCommand(riderID, req.Name, req.VehicleType)
	if err != nil {
		return badRequest(ctx, "Invalid rider data: "+err.Error())
	}

	if err = s.createRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createRiderResponse{ID: riderID.String()})
}

// ReportRiderLocation handles POST /api/v1/riders/:id/location.
func (s *Server) ReportRiderLocation(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	var req reportLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReportRiderLocationCommand(riderID, req.Lat, req.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates: "+err.Error())
	}

	if err = s.reportLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetRiderAvailability handles POST /api/v1/riders/:id/availability.
func (s *Server) SetRiderAvailability(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	var req setAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, req.Online)
	if err != nil {
		return badRequest(ctx, "Invalid availability request: "+err.Error())
	}

	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNearbyRiders handles GET /api/v1/riders/nearby.
func (s *Server) GetNearbyRiders(ctx echo.Context) error {
	var (
		lat      float64
		lng      float64
		radiusKm float64
		limit    int
	)
	err := echo.QueryParamsBinder(ctx).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		Float64("radius_km", &radiusKm).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return badRequest(ctx, "Invalid query parameters")
	}

	query, err := queries.NewGetNearbyRidersQuery(lat, lng, radiusKm, limit)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.nearbyRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]nearbyRiderResponse, len(result))
	for i, candidate := range result {
		response[i] = nearbyRiderResponse{
			ID:          candidate.RiderID.String(),
			Name:        candidate.Name,
			VehicleType: candidate.VehicleType,
			DistanceKm:  candidate.DistanceKm,
			RatingAvg:   candidate.RatingAvg,
			RatingCount: candidate.RatingCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRiderActiveDeliveries handles GET /api/v1/riders/:id/deliveries.
func (s *Server) GetRiderActiveDeliveries(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	query, err := queries.NewGetRiderActiveDeliveriesQuery(riderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.activeDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]activeDeliveryResponse, len(result))
	for i, active := range result {
		response[i] = activeDeliveryResponse{
			ID:            active.ID.String(),
			Code:          active.Code,
			Status:        active.Status,
			PickupLat:     active.Pickup.Latitude(),
			PickupLng:     active.Pickup.Longitude(),
			DropoffLat:    active.Dropoff.Latitude(),
			DropoffLng:    active.Dropoff.Longitude(),
			DistanceKm:    active.DistanceKm,
			RiderEarnings: active.RiderEarnings,
			PaymentMethod: active.PaymentMethod,
			AcceptedAt:    active.AcceptedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRiderEarnings handles GET /api/v1/riders/:id/earnings.
func (s *Server) GetRiderEarnings(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid rider id")
	}

	query, err := queries.NewGetRiderEarningsQuery(riderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.riderEarningsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, earningsResponse{
		RiderID:        result.RiderID.String(),
		EarningsToday:  result.EarningsToday,
		EarningsWeek:   result.EarningsWeek,
		EarningsTotal:  result.EarningsTotal,
		DeliveredCount: result.DeliveredCount,
		RatingAvg:      result.RatingAvg,
		RatingCount:    result.RatingCount,
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps an application error to an HTTP response. Validation
// failures become 400, missing aggregates 404, authorization failures 403,
// and state conflicts (lost accept races, bad transitions, double ratings)
// 409.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, commands.ErrDeliveryNoLongerAvailable),
		errors.Is(err, delivery.ErrNotPending),
		errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, delivery.ErrRiderNotEligible),
		errors.Is(err, delivery.ErrNotDelivered),
		errors.Is(err, delivery.ErrAlreadyRated):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
