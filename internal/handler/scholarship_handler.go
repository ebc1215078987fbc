package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarhub/internal/errors"
	"scholarhub/internal/model"
	"scholarhub/internal/service"
)

// HeaderDataSource tells clients a listing came from the degraded-mode catalogue.
const HeaderDataSource = "X-Data-Source"

// ScholarshipHandler serves scholarship listing, detail and creation.
type ScholarshipHandler struct {
	svc service.ScholarshipService
}

// NewScholarshipHandler creates a scholarship handler.
func NewScholarshipHandler(svc service.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{svc: svc}
}

// CreateScholarshipRequest is the body of POST /add-scholarship.
type CreateScholarshipRequest struct {
	ScholarshipName     string  `json:"scholarshipName" validate:"required"`
	UniversityName      string  `json:"universityName" validate:"required"`
	UniversityImage     string  `json:"universityImage"`
	UniversityCountry   string  `json:"universityCountry"`
	UniversityCity      string  `json:"universityCity"`
	UniversityWorldRank int     `json:"universityWorldRank"`
	SubjectCategory     string  `json:"subjectCategory"`
	ScholarshipCategory string  `json:"scholarshipCategory"`
	Degree              string  `json:"degree"`
	TuitionFees         float64 `json:"tuitionFees" validate:"gte=0"`
	ApplicationFees     float64 `json:"applicationFees" validate:"gte=0"`
	ServiceCharge       float64 `json:"serviceCharge" validate:"gte=0"`
	ApplicationDeadline string  `json:"applicationDeadline"`
	Description         string  `json:"description"`
	PostedUserEmail     string  `json:"postedUserEmail"`
}

func (r CreateScholarshipRequest) toModel() *model.Scholarship {
	return &model.Scholarship{
		ScholarshipName:     r.ScholarshipName,
		UniversityName:      r.UniversityName,
		UniversityImage:     r.UniversityImage,
		UniversityCountry:   r.UniversityCountry,
		UniversityCity:      r.UniversityCity,
		UniversityWorldRank: r.UniversityWorldRank,
		SubjectCategory:     r.SubjectCategory,
		ScholarshipCategory: r.ScholarshipCategory,
		Degree:              r.Degree,
		TuitionFees:         r.TuitionFees,
		ApplicationFees:     r.ApplicationFees,
		ServiceCharge:       r.ServiceCharge,
		ApplicationDeadline: r.ApplicationDeadline,
		Description:         r.Description,
		PostedUserEmail:     r.PostedUserEmail,
	}
}

// InsertResponse reports the id of an inserted document.
type InsertResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// Top godoc
// @Summary Six cheapest scholarships, newest first among equal fees
// @Tags scholarships
// @Produce json
// @Success 200 {array} model.Scholarship
// @Failure 503 {object} errors.ErrorResponse
// @Router / [get]
func (h *ScholarshipHandler) Top(c echo.Context) error {
	listing, err := h.svc.Top(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return writeListing(c, listing)
}

// All godoc
// @Summary All scholarships
// @Tags scholarships
// @Produce json
// @Success 200 {array} model.Scholarship
// @Failure 503 {object} errors.ErrorResponse
// @Router /all-data [get]
func (h *ScholarshipHandler) All(c echo.Context) error {
	listing, err := h.svc.All(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return writeListing(c, listing)
}

func writeListing(c echo.Context, listing *service.Listing) error {
	if listing.Fallback {
		c.Response().Header().Set(HeaderDataSource, "fallback")
	}
	return c.JSON(http.StatusOK, listing.Scholarships)
}

// Detail godoc
// @Summary Scholarship with its reviews
// @Tags scholarships
// @Produce json
// @Param id path string true "Scholarship ID"
// @Success 200 {object} model.ScholarshipDetail
// @Failure 400 {object} errors.ErrorResponse
// @Router /scholarship/{id} [get]
func (h *ScholarshipHandler) Detail(c echo.Context) error {
	detail, err := h.svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if detail == nil {
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, detail)
}

// Create godoc
// @Summary Add a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Param email query string true "Caller email (moderator or admin)"
// @Param scholarship body CreateScholarshipRequest true "Scholarship"
// @Success 200 {object} InsertResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /add-scholarship [post]
func (h *ScholarshipHandler) Create(c echo.Context) error {
	var req CreateScholarshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	id, err := h.svc.Create(c.Request().Context(), req.toModel())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, InsertResponse{Acknowledged: true, InsertedID: id.Hex()})
}
