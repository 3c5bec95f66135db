package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jahooker/int2en/internal/app"
	"github.com/jahooker/int2en/numwords"
)

type Handler struct {
	svc          *app.WordsService
	validate     *validator.Validate
	defaultScale numwords.Scale
}

func NewHandler(svc *app.WordsService, defaultScale numwords.Scale) *Handler {
	return &Handler{
		svc:          svc,
		validate:     validator.New(),
		defaultScale: defaultScale,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/v1/words", h.Words)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Words(c echo.Context) error {
	var q wordsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed query"})
	}
	if err := h.validate.Struct(q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	req := app.ConvertRequest{
		Number:   q.Number,
		Scale:    h.defaultScale,
		Mode:     numwords.Cardinal,
		SayAnd:   q.And != "false",
		Linker:   "-",
		Negation: numwords.NegationNegative,
	}
	if q.Scale == "long" {
		req.Scale = numwords.LongScale
	} else if q.Scale == "short" {
		req.Scale = numwords.ShortScale
	}
	if q.Mode == "ordinal" {
		req.Mode = numwords.Ordinal
	}
	if q.Linker != "" {
		req.Linker = q.Linker
	}
	if q.Negation != "" {
		req.Negation = q.Negation
	}

	resp, err := h.svc.Convert(req)
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, WordsResponse{
		Number: resp.Number,
		Words:  resp.Words,
		Scale:  resp.Scale.String(),
		Mode:   resp.Mode.String(),
		Meta: MetaResp{
			RequestID: requestID,
			Cached:    resp.Cached,
		},
	})
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, app.ErrNotANumber),
		errors.Is(err, app.ErrNumberTooLong),
		errors.Is(err, numwords.ErrNegationWord):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		requestID, _ := c.Get("request_id").(string)
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
