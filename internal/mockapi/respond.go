package mockapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jmerrifield20/spacetraders/pkg/apierr"
	"github.com/jmerrifield20/spacetraders/pkg/schema"
)

// Codes the live API sends that have no entry in the apierr table.
const (
	codeBadRequest    = 400
	codeNotFound      = 404
	codeRateLimited   = 429
	codeValidation    = 422
	codeInternal      = 500
	codeShipNotDocked = 4244
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 20
)

// rejection is a request the game refuses. It carries the HTTP status and
// the error member of the reply.
type rejection struct {
	status int
	err    *apierr.Error
}

func (r *rejection) Error() string { return r.err.Error() }

// reject builds a rejection. Symbols, when given, become the error detail.
func reject(status, code int, msg string, symbols ...string) error {
	e := apierr.New(code, msg)
	if len(symbols) > 0 {
		e.Data = &apierr.Detail{Symbol: symbols}
	}
	return &rejection{status: status, err: e}
}

func rejectf(status, code int, format string, args ...any) error {
	return reject(status, code, fmt.Sprintf(format, args...))
}

func notFound(kind, sym string) error {
	return rejectf(http.StatusNotFound, codeNotFound, "%s %s not found.", kind, sym)
}

// invalid reports a payload validation failure keyed by field name, the
// way the live API does.
func invalid(field, msg string) error {
	e := apierr.New(codeValidation, "Request could not be processed due to an invalid payload.")
	e.Data = &apierr.Detail{Raw: mustJSON(map[string][]string{field: {msg}})}
	return &rejection{status: http.StatusUnprocessableEntity, err: e}
}

// data writes a success envelope.
func (s *Server) data(c *gin.Context, status int, v any) {
	s.recordEnvelope(0)
	c.JSON(status, gin.H{"data": v})
}

// page writes a success envelope for a list endpoint.
func (s *Server) page(c *gin.Context, v any, meta schema.Meta) {
	s.recordEnvelope(0)
	c.JSON(http.StatusOK, gin.H{"data": v, "meta": meta})
}

// fail writes the error envelope for err and aborts the chain.
func (s *Server) fail(c *gin.Context, err error) {
	var r *rejection
	if !errors.As(err, &r) {
		s.logger.Error("unhandled mock error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		r = &rejection{
			status: http.StatusInternalServerError,
			err:    apierr.New(codeInternal, "Internal server error."),
		}
	}
	s.recordEnvelope(r.err.Code)
	c.AbortWithStatusJSON(r.status, gin.H{"error": r.err})
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func (s *Server) recordEnvelope(code int) {
	if s.metrics != nil {
		s.metrics.RecordEnvelope(code)
	}
}

// pagination reads ?page= and ?limit=, applying the live API's defaults
// and bounds.
func pagination(c *gin.Context) (page, limit int, err error) {
	page, limit = 1, defaultPageLimit
	if v := c.Query("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, invalid("page", "page must be a positive integer")
		}
	}
	if v := c.Query("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxPageLimit {
			return 0, 0, invalid("limit", fmt.Sprintf("limit must be between 1 and %d", maxPageLimit))
		}
	}
	return page, limit, nil
}

// paginate returns the requested window of items, never nil.
func paginate[T any](items []T, page, limit int) ([]T, schema.Meta) {
	meta := schema.Meta{Total: len(items), Page: page, Limit: limit}
	// Compare page counts first; (page-1)*limit overflows for huge pages.
	if page-1 >= (len(items)+limit-1)/limit {
		return []T{}, meta
	}
	start := (page - 1) * limit
	end := min(start+limit, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, meta
}
