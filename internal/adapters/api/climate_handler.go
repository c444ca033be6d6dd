package api

import (
	"net/http"

	"climateapi.app/internal/core/climate"
	"climateapi.app/pkg/errors"
	"climateapi.app/pkg/validation"
	"github.com/gin-gonic/gin"
)

// StationResponse is one row of /api/v1.0/stations
type StationResponse struct {
	ID        int     `json:"id"`
	Station   string  `json:"station"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}

// TemperatureSummaryResponse keeps the capitalised keys clients already
// depend on. Each value is null when no measurement fell in the window.
type TemperatureSummaryResponse struct {
	Minimum *float64 `json:"Minimum"`
	Average *float64 `json:"Average"`
	Maximum *float64 `json:"Maximum"`
}

// temperatureRangeURI is bound only when strict date checking is on.
type temperatureRangeURI struct {
	Start string `uri:"start" binding:"required,isodate"`
	End   string `uri:"end" binding:"omitempty,isodate"`
}

// getPrecipitation handles GET /api/v1.0/precipitation
func (s *HTTPServerAdapter) getPrecipitation(c *gin.Context) {
	precipitation, err := s.climateUseCase.Precipitation(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, precipitation)
}

// getStations handles GET /api/v1.0/stations
func (s *HTTPServerAdapter) getStations(c *gin.Context) {
	stations, err := s.climateUseCase.Stations(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]StationResponse, len(stations))
	for i, station := range stations {
		response[i] = StationResponse{
			ID:        station.ID,
			Station:   station.Code,
			Name:      station.Name,
			Latitude:  station.Latitude,
			Longitude: station.Longitude,
			Elevation: station.Elevation,
		}
	}

	c.JSON(http.StatusOK, response)
}

// getTemperatureObservations handles GET /api/v1.0/tobs
func (s *HTTPServerAdapter) getTemperatureObservations(c *gin.Context) {
	observations, err := s.climateUseCase.TemperatureObservations(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, observations)
}

// getTemperatureRange handles GET /api/v1.0/:start and /api/v1.0/:start/:end
func (s *HTTPServerAdapter) getTemperatureRange(c *gin.Context) {
	request, err := s.temperatureRangeRequest(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	summary, err := s.climateUseCase.TemperatureRange(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, TemperatureSummaryResponse{
		Minimum: summary.Minimum,
		Average: summary.Average,
		Maximum: summary.Maximum,
	})
}

func (s *HTTPServerAdapter) temperatureRangeRequest(c *gin.Context) (climate.TemperatureRangeRequest, error) {
	if !s.config.StrictDates {
		request := climate.TemperatureRangeRequest{Start: c.Param("start")}
		if end, ok := c.Params.Get("end"); ok {
			request.End = &end
		}
		return request, nil
	}

	var uri temperatureRangeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return climate.TemperatureRangeRequest{}, errors.NewValidationError("dates must be valid YYYY-MM-DD values")
	}

	request := climate.TemperatureRangeRequest{Start: uri.Start}
	if _, ok := c.Params.Get("end"); ok {
		if !validation.IsOrderedRange(uri.Start, uri.End) {
			return climate.TemperatureRangeRequest{}, errors.NewValidationError("start date must not be after end date")
		}
		request.End = &uri.End
	}
	return request, nil
}
