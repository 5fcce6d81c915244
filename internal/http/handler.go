package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/fleetflow/internal/model"
	"github.com/nurpe/fleetflow/internal/service"
)

type Handler struct {
	fleet       *service.FleetService
	dispatch    *service.DispatchService
	maintenance *service.MaintenanceService
	recommend   *service.RecommendService
	ranking     *service.RankingService
	analytics   *service.AnalyticsService
	log         zerolog.Logger
}

func NewHandler(
	fleet *service.FleetService,
	dispatch *service.DispatchService,
	maintenance *service.MaintenanceService,
	recommend *service.RecommendService,
	ranking *service.RankingService,
	analytics *service.AnalyticsService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		fleet:       fleet,
		dispatch:    dispatch,
		maintenance: maintenance,
		recommend:   recommend,
		ranking:     ranking,
		analytics:   analytics,
		log:         log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api")
	api.Use(authMiddleware)

	api.POST("/vehicles", h.createVehicle)
	api.GET("/vehicles", h.listVehicles)
	api.GET("/vehicles/:id", h.getVehicle)
	api.POST("/vehicles/:id/retire", h.retireVehicle)
	api.GET("/vehicles/:id/fuel", h.listVehicleFuel)
	api.GET("/vehicles/:id/maintenance", h.listVehicleMaintenance)
	api.GET("/vehicles/:id/roi", h.vehicleROI)

	api.POST("/drivers", h.createDriver)
	api.GET("/drivers", h.listDrivers)
	api.GET("/drivers/:id", h.getDriver)
	api.PATCH("/drivers/:id/status", h.setDriverStatus)

	api.POST("/trips", h.createTrip)
	api.GET("/trips", h.listTrips)
	api.GET("/trips/:id", h.getTrip)
	api.POST("/trips/:id/complete", h.completeTrip)
	api.POST("/trips/:id/cancel", h.cancelTrip)

	api.POST("/fuel", h.addFuelLog)

	api.POST("/maintenance", h.openMaintenance)
	api.POST("/maintenance/:id/close", h.closeMaintenance)

	api.POST("/dispatch/recommend", h.recommendVehicle)
	api.GET("/rankings/drivers", h.rankDrivers)

	api.GET("/analytics/summary", h.fleetSummary)
	api.GET("/analytics/summary/export", h.exportSummary)
	api.GET("/analytics/fuel-efficiency", h.fuelEfficiency)
	api.GET("/analytics/monthly", h.monthlySummary)
	api.GET("/analytics/monthly/export", h.exportMonthly)
}

type createVehicleRequest struct {
	Name            string  `json:"name" binding:"required"`
	LicensePlate    string  `json:"license_plate" binding:"required"`
	Category        string  `json:"category"`
	MaxCapacityKg   float64 `json:"max_capacity_kg" binding:"required"`
	Odometer        float64 `json:"odometer"`
	AcquisitionCost float64 `json:"acquisition_cost"`
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.fleet.CreateVehicle(c.Request.Context(), service.CreateVehicleInput{
		Name:            req.Name,
		LicensePlate:    req.LicensePlate,
		Category:        req.Category,
		MaxCapacityKg:   req.MaxCapacityKg,
		Odometer:        req.Odometer,
		AcquisitionCost: req.AcquisitionCost,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVehicleResponse(*vehicle))
}

func (h *Handler) listVehicles(c *gin.Context) {
	var status *model.VehicleStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := model.ParseVehicleStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		status = &parsed
	}

	vehicles, err := h.fleet.ListVehicles(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponses(vehicles))
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	vehicle, err := h.fleet.GetVehicle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(*vehicle))
}

func (h *Handler) retireVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	vehicle, err := h.fleet.RetireVehicle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(*vehicle))
}

func (h *Handler) listVehicleFuel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	logs, err := h.fleet.ListFuelLogs(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]fuelLogResponse, 0, len(logs))
	for _, f := range logs {
		out = append(out, toFuelLogResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listVehicleMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	logs, err := h.fleet.ListMaintenanceLogs(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]maintenanceLogResponse, 0, len(logs))
	for _, m := range logs {
		out = append(out, toMaintenanceLogResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

type createDriverRequest struct {
	Name          string  `json:"name" binding:"required"`
	LicenseNumber string  `json:"license_number" binding:"required"`
	LicenseExpiry string  `json:"license_expiry" binding:"required"`
	Phone         string  `json:"phone"`
	SafetyScore   float64 `json:"safety_score"`
}

func (h *Handler) createDriver(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	expiry, err := parseDate(req.LicenseExpiry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid license_expiry"})
		return
	}

	driver, err := h.fleet.CreateDriver(c.Request.Context(), service.CreateDriverInput{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: expiry,
		Phone:         req.Phone,
		SafetyScore:   req.SafetyScore,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDriverResponse(*driver))
}

func (h *Handler) listDrivers(c *gin.Context) {
	drivers, err := h.fleet.ListDrivers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDriverResponses(drivers))
}

func (h *Handler) getDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	driver, err := h.fleet.GetDriver(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDriverResponse(*driver))
}

type setDriverStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) setDriverStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req setDriverStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := model.ParseDriverStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	driver, err := h.fleet.SetDriverStatus(c.Request.Context(), id, status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDriverResponse(*driver))
}

type createTripRequest struct {
	VehicleID     string  `json:"vehicle_id" binding:"required"`
	DriverID      string  `json:"driver_id" binding:"required"`
	CargoWeightKg float64 `json:"cargo_weight_kg"`
	DistanceKm    float64 `json:"distance_km"`
	Revenue       float64 `json:"revenue"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Notes         string  `json:"notes"`
	ScheduledAt   string  `json:"scheduled_at"`
	Draft         bool    `json:"draft"`
}

func (h *Handler) createTrip(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicleID, err := uuid.Parse(strings.TrimSpace(req.VehicleID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_id"})
		return
	}
	driverID, err := uuid.Parse(strings.TrimSpace(req.DriverID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid driver_id"})
		return
	}

	var scheduledAt *time.Time
	if req.ScheduledAt != "" {
		parsed, err := parseDate(req.ScheduledAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduled_at"})
			return
		}
		scheduledAt = &parsed
	}

	result, err := h.dispatch.CreateTrip(c.Request.Context(), service.CreateTripInput{
		VehicleID:     vehicleID,
		DriverID:      driverID,
		CargoWeightKg: req.CargoWeightKg,
		DistanceKm:    req.DistanceKm,
		Revenue:       req.Revenue,
		Origin:        req.Origin,
		Destination:   req.Destination,
		Notes:         req.Notes,
		ScheduledAt:   scheduledAt,
		AsDraft:       req.Draft,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTripResultResponse(*result))
}

func (h *Handler) listTrips(c *gin.Context) {
	var status *model.TripStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := model.ParseTripStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		status = &parsed
	}

	trips, err := h.fleet.ListTrips(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripResponses(trips))
}

func (h *Handler) getTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	trip, err := h.fleet.GetTrip(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripResponse(*trip))
}

type completeTripRequest struct {
	EndOdometer float64  `json:"end_odometer" binding:"required"`
	Revenue     *float64 `json:"revenue"`
	DistanceKm  *float64 `json:"distance_km"`
}

func (h *Handler) completeTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req completeTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.dispatch.CompleteTrip(c.Request.Context(), id, service.CompleteTripInput{
		EndOdometer: req.EndOdometer,
		Revenue:     req.Revenue,
		DistanceKm:  req.DistanceKm,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripResponse(*trip))
}

func (h *Handler) cancelTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	trip, err := h.dispatch.CancelTrip(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripResponse(*trip))
}

type addFuelLogRequest struct {
	VehicleID string  `json:"vehicle_id" binding:"required"`
	Liters    float64 `json:"liters" binding:"required"`
	Cost      float64 `json:"cost"`
	Date      string  `json:"date"`
	Odometer  float64 `json:"odometer"`
}

func (h *Handler) addFuelLog(c *gin.Context) {
	var req addFuelLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vehicleID, err := uuid.Parse(strings.TrimSpace(req.VehicleID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_id"})
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
	}

	log, err := h.fleet.AddFuelLog(c.Request.Context(), service.AddFuelLogInput{
		VehicleID: vehicleID,
		Liters:    req.Liters,
		Cost:      req.Cost,
		Date:      date,
		Odometer:  req.Odometer,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFuelLogResponse(*log))
}

type openMaintenanceRequest struct {
	VehicleID   string  `json:"vehicle_id" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Cost        float64 `json:"cost"`
	Date        string  `json:"date"`
}

func (h *Handler) openMaintenance(c *gin.Context) {
	var req openMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vehicleID, err := uuid.Parse(strings.TrimSpace(req.VehicleID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_id"})
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
	}

	log, err := h.maintenance.Open(c.Request.Context(), service.OpenMaintenanceInput{
		VehicleID:   vehicleID,
		Description: req.Description,
		Cost:        req.Cost,
		Date:        date,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMaintenanceLogResponse(*log))
}

func (h *Handler) closeMaintenance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log, err := h.maintenance.Close(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMaintenanceLogResponse(*log))
}

type recommendRequest struct {
	CargoWeightKg float64 `json:"cargo_weight_kg" binding:"required"`
	DistanceKm    float64 `json:"distance_km"`
}

func (h *Handler) recommendVehicle(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.recommend.Recommend(c.Request.Context(), service.RecommendInput{
		CargoWeightKg: req.CargoWeightKg,
		DistanceKm:    req.DistanceKm,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecommendationResponse(*rec))
}

func (h *Handler) rankDrivers(c *gin.Context) {
	rankings, err := h.ranking.Rank(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDriverRankingResponses(rankings))
}

func (h *Handler) fleetSummary(c *gin.Context) {
	summary, err := h.analytics.FleetSummary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) vehicleROI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	roi, err := h.analytics.VehicleROI(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, roi)
}

func (h *Handler) fuelEfficiency(c *gin.Context) {
	efficiency, err := h.analytics.FuelEfficiency(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, efficiency)
}

func (h *Handler) monthlySummary(c *gin.Context) {
	months, err := h.analytics.MonthlySummary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, months)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) exportMonthly(c *gin.Context) {
	result, err := h.analytics.ExportMonthly(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}

func (h *Handler) exportSummary(c *gin.Context) {
	result, err := h.analytics.ExportSummary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var blocked *service.DispatchBlockedError
	switch {
	case errors.As(err, &blocked):
		body := gin.H{"error": blocked.Error(), "reason": string(blocked.Reason)}
		if blocked.Reason == service.ReasonOverloaded {
			body["over_by_kg"] = blocked.OverByKg
		}
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrMaintenanceBlocked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNoEligibleVehicle):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
