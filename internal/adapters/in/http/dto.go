package http

import "time"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createDeliveryRequest struct {
	CustomerID         string   `json:"customer_id"`
	PickupLat          float64  `json:"pickup_lat"`
	PickupLng          float64  `json:"pickup_lng"`
	DropoffLat         float64  `json:"dropoff_lat"`
	DropoffLng         float64  `json:"dropoff_lng"`
	PackageType        string   `json:"package_type"`
	PackageDescription string   `json:"package_description"`
	PackageWeightKg    *float64 `json:"package_weight_kg,omitempty"`
	PackageSize        string   `json:"package_size"`
	PaymentMethod      string   `json:"payment_method"`
}

type createDeliveryResponse struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Status         string  `json:"status"`
	DistanceKm     float64 `json:"distance_km"`
	TotalFare      float64 `json:"total_fare"`
	RiderEarnings  float64 `json:"rider_earnings"`
	RepeatCustomer bool    `json:"repeat_customer"`
}

type selectPreferredRidersRequest struct {
	CustomerID string   `json:"customer_id"`
	RiderIDs   []string `json:"rider_ids"`
}

type riderActionRequest struct {
	RiderID string `json:"rider_id"`
	Reason  string `json:"reason,omitempty"`
}

type updateStatusRequest struct {
	RiderID string `json:"rider_id"`
	Status  string `json:"status"`
}

type cancelDeliveryRequest struct {
	ActorID string `json:"actor_id"`
	Reason  string `json:"reason"`
}

type rateDeliveryRequest struct {
	ActorID string `json:"actor_id"`
	Rating  int    `json:"rating"`
	Review  string `json:"review,omitempty"`
}

type availableDeliveryResponse struct {
	ID                 string  `json:"id"`
	Code               string  `json:"code"`
	PickupLat          float64 `json:"pickup_lat"`
	PickupLng          float64 `json:"pickup_lng"`
	DropoffLat         float64 `json:"dropoff_lat"`
	DropoffLng         float64 `json:"dropoff_lng"`
	PickupDistanceKm   float64 `json:"pickup_distance_km"`
	TripDistanceKm     float64 `json:"trip_distance_km"`
	TotalFare          float64 `json:"total_fare"`
	RiderEarnings      float64 `json:"rider_earnings"`
	PackageSize        string  `json:"package_size,omitempty"`
	PackageDescription string  `json:"package_description"`
	PaymentMethod      string  `json:"payment_method"`
	PreferredRider     bool    `json:"preferred_rider"`
}

type deliveryDetailResponse struct {
	ID                 string     `json:"id"`
	Code               string     `json:"code"`
	Status             string     `json:"status"`
	CustomerID         string     `json:"customer_id"`
	RiderID            string     `json:"rider_id,omitempty"`
	PickupLat          float64    `json:"pickup_lat"`
	PickupLng          float64    `json:"pickup_lng"`
	DropoffLat         float64    `json:"dropoff_lat"`
	DropoffLng         float64    `json:"dropoff_lng"`
	DistanceKm         float64    `json:"distance_km"`
	BaseFare           float64    `json:"base_fare"`
	DistanceFare       float64    `json:"distance_fare"`
	TotalFare          float64    `json:"total_fare"`
	PlatformFee        float64    `json:"platform_fee"`
	RiderEarnings      float64    `json:"rider_earnings"`
	PackageType        string     `json:"package_type"`
	PackageDescription string     `json:"package_description"`
	PackageSize        string     `json:"package_size,omitempty"`
	PaymentMethod      string     `json:"payment_method"`
	PaymentStatus      string     `json:"payment_status"`
	AssignmentMode     string     `json:"assignment_mode"`
	SelectionExpiresAt *time.Time `json:"selection_expires_at,omitempty"`
	RepeatCustomer     bool       `json:"repeat_customer"`
	CreatedAt          time.Time  `json:"created_at"`
	AcceptedAt         *time.Time `json:"accepted_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
}

type activeDeliveryResponse struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	Status        string     `json:"status"`
	PickupLat     float64    `json:"pickup_lat"`
	PickupLng     float64    `json:"pickup_lng"`
	DropoffLat    float64    `json:"dropoff_lat"`
	DropoffLng    float64    `json:"dropoff_lng"`
	DistanceKm    float64    `json:"distance_km"`
	RiderEarnings float64    `json:"rider_earnings"`
	PaymentMethod string     `json:"payment_method"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
}

type nearbyRiderResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	VehicleType string  `json:"vehicle_type"`
	DistanceKm  float64 `json:"distance_km"`
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`
}

type trackingEventResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type trackingResponse struct {
	DeliveryID string                  `json:"delivery_id"`
	Code       string                  `json:"code"`
	Status     string                  `json:"status"`
	RiderName  string                  `json:"rider_name,omitempty"`
	RiderLat   *float64                `json:"rider_lat,omitempty"`
	RiderLng   *float64                `json:"rider_lng,omitempty"`
	Events     []trackingEventResponse `json:"events"`
}

type createRiderRequest struct {
	Name        string `json:"name"`
	VehicleType string `json:"vehicle_type"`
}

type createRiderResponse struct {
	ID string `json:"id"`
}

type reportLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type setAvailabilityRequest struct {
	Online bool `json:"online"`
}

type earningsResponse struct {
	RiderID        string  `json:"rider_id"`
	EarningsToday  float64 `json:"earnings_today"`
	EarningsWeek   float64 `json:"earnings_week"`
	EarningsTotal  float64 `json:"earnings_total"`
	DeliveredCount int64   `json:"delivered_count"`
	RatingAvg      float64 `json:"rating_avg"`
	RatingCount    int     `json:"rating_count"`
}
