package records

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/careconnect/careconnect/internal/platform/auth"
	"github.com/careconnect/careconnect/internal/platform/db"
	"github.com/careconnect/careconnect/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/records", h.CreateRecord)
	api.GET("/records/patient/:patientId", h.ListPatientRecords)
	api.POST("/transfers", h.CreateTransfer)
	api.GET("/transfers/patient/:patientId", h.ListPatientTransfers)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func (h *Handler) CreateRecord(c echo.Context) error {
	var req CreateRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uploadedBy := auth.UserIDFromContext(c.Request().Context())
	m, err := h.svc.CreateRecord(c.Request().Context(), uploadedBy, &req)
	if err != nil {
		if db.IsConstraint(err) {
			return echo.NewHTTPError(http.StatusConflict, "patient or uploader does not exist")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListPatientRecords(c echo.Context) error {
	patientID, err := parseID(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	if err := auth.RequireSelf(c, patientID); err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListPatientRecords(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) CreateTransfer(c echo.Context) error {
	var req CreateTransferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t, err := h.svc.CreateTransfer(c.Request().Context(), &req)
	if err != nil {
		if db.IsConstraint(err) {
			return echo.NewHTTPError(http.StatusConflict, "patient or hospital does not exist")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) ListPatientTransfers(c echo.Context) error {
	patientID, err := parseID(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	if err := auth.RequireSelf(c, patientID); err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListPatientTransfers(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
