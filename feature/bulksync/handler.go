package bulksync

import (
	"schema-engine/core/logger"
	"schema-engine/core/reconcile"
	"schema-engine/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bulk sync.
type Handler struct {
	service *Service
	cfg     server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg server.Config) *Handler {
	if cfg.UserHeader == "" {
		cfg.UserHeader = "X-User-Id"
	}
	return &Handler{service: service, cfg: cfg}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleSync)
	group.Post("/export/:qualifiedName", h.HandleExport)
}

// HandleSync runs a bulk sync.
// @Summary Run Bulk Sync
// @Description Reconciles every desired-state document under the schema prefix of the bucket.
// @Tags sync
// @Produce json
// @Param X-User-Id header string true "Acting user"
// @Param dryRun query boolean false "Validate without writing"
// @Param source query string false "External source name"
// @Success 200 {object} Report
// @Failure 207 {object} Report "Some documents failed"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	opts := Options{
		UserID: c.Get(h.cfg.UserHeader),
		Source: h.cfg.SourceOrDefault(c.Query("source")),
		DryRun: c.QueryBool("dryRun", false),
	}

	report, err := h.service.Run(c.Context(), opts)
	if report == nil {
		l.Error("Sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Warn("Sync finished with failures", zap.Int("failed", report.Failed))
		return c.Status(fiber.StatusMultiStatus).JSON(report)
	}
	return c.JSON(report)
}

// HandleExport writes a snapshot of a schema type.
// @Summary Export Schema Type Snapshot
// @Tags sync
// @Produce json
// @Param X-User-Id header string true "Acting user"
// @Param qualifiedName path string true "Qualified name"
// @Success 201 {object} map[string]string "Object key"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sync/export/{qualifiedName} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	key, err := h.service.Export(c.Context(), c.Get(h.cfg.UserHeader), c.Params("qualifiedName"))
	if err != nil {
		status := fiber.StatusInternalServerError
		switch reconcile.KindOf(err) {
		case reconcile.KindInvalidInput:
			status = fiber.StatusBadRequest
		case reconcile.KindAuthorization:
			status = fiber.StatusForbidden
		case reconcile.KindReferenceableNotFound:
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key})
}
