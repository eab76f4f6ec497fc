package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"offerOptimizer/business/optimizer"
	"offerOptimizer/domain"
	"offerOptimizer/pkg/logger"
	"offerOptimizer/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type OptimizerService interface {
	Evaluate(ctx context.Context, req domain.OptimizationRequest) (domain.OptimizationResult, error)
	EvaluateDebug(ctx context.Context, req domain.OptimizationRequest) ([]domain.CandidateDebug, error)
}

type OptimizerHandler struct {
	validate *validator.Validate
	service  OptimizerService
	timeout  time.Duration
}

func NewOptimizerHandler(service OptimizerService, timeout time.Duration) *OptimizerHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OptimizerHandler{
		validate: validator.New(),
		service:  service,
		timeout:  timeout,
	}
}

// POST /api/v1/optimize
func (h *OptimizerHandler) Optimize(c echo.Context) error {
	start := time.Now()

	var req domain.OptimizationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.service.Evaluate(ctx, req)
	if err != nil {
		return optimizerError(c, req.CustomerID, err)
	}

	metrics.OptimizeLatency.Observe(time.Since(start).Seconds())
	metrics.OptimizeRequests.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// POST /api/v1/optimize/debug
func (h *OptimizerHandler) OptimizeDebug(c echo.Context) error {
	var req domain.OptimizationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	candidates, err := h.service.EvaluateDebug(ctx, req)
	if err != nil {
		return optimizerError(c, req.CustomerID, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(candidates))
}

// optimizerError maps the engine's error taxonomy onto transport codes:
// validation failures are client errors, an empty feasible set is
// unprocessable, deadlines are timeouts, anything else is a server fault.
func optimizerError(c echo.Context, customerID string, err error) error {
	var validationErr *optimizer.ValidationError
	var noCandidate *optimizer.NoFeasibleCandidateError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: validationErr.Error()})
	case errors.As(err, &noCandidate):
		return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: noCandidate.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, ResponseError{Message: "optimization timed out"})
	default:
		logger.Error("optimization failed", "customer_id", customerID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
}
