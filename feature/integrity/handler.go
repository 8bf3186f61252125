package integrity

import (
	"schema-engine/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service    *Service
	userHeader string
}

// NewHandler creates a new HTTP handler. userHeader carries the user recorded on fixes.
func NewHandler(service *Service, userHeader string) *Handler {
	if userHeader == "" {
		userHeader = "X-User-Id"
	}
	return &Handler{service: service, userHeader: userHeader}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/store", h.HandleStoreCheck)
	group.Get("/orphans", h.HandleOrphanCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Store, Orphans). Nothing is fixed.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	// Structure
	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	// Store
	if storeReport, err := h.service.CheckStore(); err != nil {
		report["store"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["store"] = storeReport
	}

	// Orphans
	if orphans, err := h.service.CheckOrphans(ctx); err != nil {
		report["orphans"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["orphans"] = map[string]interface{}{"status": "ok", "orphans": orphans}
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the required prefixes exist in the storage bucket. Optionally creates missing ones.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing prefixes"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing prefixes detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing prefixes")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleStoreCheck checks the store schema.
// @Summary Check Store Schema
// @Description Checks that the graph and registry tables exist with the expected columns.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.StoreReport "Store Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/store [get]
func (h *Handler) HandleStoreCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting store schema check")

	report, err := h.service.CheckStore()
	if err != nil {
		l.Error("Store schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleOrphanCheck lists and optionally removes orphaned attributes.
// @Summary Check Orphaned Attributes
// @Description Lists schema attributes no schema type owns. With fix=true they are soft-deleted.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Soft-delete the orphans"
// @Param X-User-Id header string false "Acting user, required with fix"
// @Success 200 {object} map[string]interface{} "Orphan Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/orphans [get]
func (h *Handler) HandleOrphanCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	orphans, err := h.service.CheckOrphans(c.Context())
	if err != nil {
		l.Error("Orphan check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(orphans) > 0 && fix {
		userID := c.Get(h.userHeader)
		if userID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user header " + h.userHeader + " is required to fix"})
		}
		l.Info("Removing orphaned attributes", zap.Int("count", len(orphans)))
		if err := h.service.FixOrphans(c.Context(), userID, orphans); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to remove orphans",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  orphans,
		})
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"orphans": orphans,
	})
}
