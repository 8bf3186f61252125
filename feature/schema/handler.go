package schema

import (
	"strings"

	"schema-engine/core/graph"
	"schema-engine/core/logger"
	"schema-engine/core/reconcile"
	"schema-engine/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for schema reconciliation.
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

// RegisterRoutes registers the schema routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	types := app.Group("/schema-types")
	types.Put("/", h.HandleUpsertSchemaType)
	types.Get("/:qualifiedName", h.HandleDescribeSchemaType)
	types.Delete("/:guid", h.HandleRemoveSchemaType)

	app.Post("/lineage", h.HandleAddLineageMapping)

	assets := app.Group("/assets")
	assets.Put("/", h.HandleUpsertAsset)
	assets.Post("/:qualifiedName/schema-type", h.HandleAttachSchemaType)

	sources := app.Group("/sources")
	sources.Get("/", h.HandleListSources)
	sources.Post("/", h.HandleRegisterSource)
}

// LineageRequest is the body of POST /lineage.
type LineageRequest struct {
	Source         string `json:"source"`
	Target         string `json:"target"`
	ExternalSource string `json:"externalSource"`
}

// EndpointResponse describes how a lineage endpoint resolved.
type EndpointResponse struct {
	QualifiedName string `json:"qualifiedName"`
	GUID          string `json:"guid"`
	TypeName      string `json:"typeName"`
	Resolution    string `json:"resolution"`
}

// LineageResponse is the body returned by POST /lineage.
type LineageResponse struct {
	GUID   string           `json:"guid"`
	Source EndpointResponse `json:"source"`
	Target EndpointResponse `json:"target"`
}

// AttachRequest is the body of POST /assets/:qualifiedName/schema-type.
type AttachRequest struct {
	SchemaType string `json:"schemaType"`
}

// SourceRequest is the body of POST /sources.
type SourceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) user(c *fiber.Ctx) string {
	return c.Get(h.cfg.UserHeader)
}

func (h *Handler) source(c *fiber.Ctx) string {
	return h.cfg.SourceOrDefault(c.Query("source"))
}

func (h *Handler) log(c *fiber.Ctx) *zap.Logger {
	return logger.WithUser(logger.WithRayID(h.service.logger, c), h.user(c))
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
}

// HandleUpsertSchemaType reconciles a schema type.
// @Summary Reconcile Schema Type
// @Description Creates or updates a tabular schema type and its attributes. Attributes missing from the body are left untouched.
// @Tags schema
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user"
// @Param source query string false "External source name"
// @Param schemaType body reconcile.SchemaType true "Desired schema type"
// @Success 200 {object} map[string]string "GUID"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /schema-types [put]
func (h *Handler) HandleUpsertSchemaType(c *fiber.Ctx) error {
	var st reconcile.SchemaType
	if err := c.BodyParser(&st); err != nil {
		return badBody(c, err)
	}

	guid, err := h.service.UpsertSchemaType(c.Context(), h.user(c), st, h.source(c))
	if err != nil {
		h.log(c).Error("Schema type reconciliation failed", zap.String("qualifiedName", st.QualifiedName), zap.Error(err))
		body := fiber.Map{"error": err.Error()}
		if guid != "" {
			body["guid"] = guid
		}
		return c.Status(statusFor(err)).JSON(body)
	}

	return c.JSON(fiber.Map{"guid": guid})
}

// HandleDescribeSchemaType returns a schema type.
// @Summary Get Schema Type
// @Description Returns a schema type and its attributes ordered by position.
// @Tags schema
// @Produce json
// @Param X-User-Id header string true "Acting user"
// @Param qualifiedName path string true "Qualified name"
// @Success 200 {object} reconcile.SchemaType
// @Failure 404 {object} map[string]string "Not Found"
// @Router /schema-types/{qualifiedName} [get]
func (h *Handler) HandleDescribeSchemaType(c *fiber.Ctx) error {
	st, err := h.service.DescribeSchemaType(c.Context(), h.user(c), c.Params("qualifiedName"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(st)
}

// HandleRemoveSchemaType removes a schema type and its attributes.
// @Summary Remove Schema Type
// @Description Deletes every attribute of the schema type, then the schema type.
// @Tags schema
// @Param X-User-Id header string true "Acting user"
// @Param guid path string true "Schema type GUID"
// @Param semantic query string false "SOFT, PURGE or ARCHIVE" default(SOFT)
// @Param source query string false "External source name"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 501 {object} map[string]string "Unsupported Delete Semantic"
// @Router /schema-types/{guid} [delete]
func (h *Handler) HandleRemoveSchemaType(c *fiber.Ctx) error {
	raw := strings.ToUpper(c.Query("semantic", string(graph.DeleteSoft)))
	semantic, ok := graph.ParseDeleteSemantic(raw)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown delete semantic", "semantic": raw})
	}

	guid := c.Params("guid")
	if err := h.service.RemoveSchemaType(c.Context(), h.user(c), guid, h.source(c), semantic); err != nil {
		h.log(c).Error("Schema type removal failed", zap.String("guid", guid), zap.Error(err))
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAddLineageMapping links two referenceables.
// @Summary Add Lineage Mapping
// @Description Links source to target. A schema type endpoint attached to an asset is replaced by the asset.
// @Tags lineage
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user"
// @Param request body LineageRequest true "Lineage endpoints"
// @Success 201 {object} LineageResponse
// @Failure 404 {object} map[string]string "Endpoint Not Found"
// @Router /lineage [post]
func (h *Handler) HandleAddLineageMapping(c *fiber.Ctx) error {
	var req LineageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	lineage, err := h.service.AddLineageMapping(c.Context(), h.user(c), req.Source, req.Target, h.cfg.SourceOrDefault(req.ExternalSource))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(LineageResponse{
		GUID:   lineage.RelationshipGUID,
		Source: endpointResponse(lineage.Source),
		Target: endpointResponse(lineage.Target),
	})
}

func endpointResponse(ep reconcile.Endpoint) EndpointResponse {
	return EndpointResponse{
		QualifiedName: ep.Entity.QualifiedName,
		GUID:          ep.Entity.GUID,
		TypeName:      ep.Entity.TypeName,
		Resolution:    ep.Resolution.String(),
	}
}

// HandleUpsertAsset reconciles an asset.
// @Summary Reconcile Asset
// @Tags assets
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user"
// @Param source query string false "External source name"
// @Param asset body reconcile.Asset true "Desired asset"
// @Success 200 {object} map[string]string "GUID"
// @Router /assets [put]
func (h *Handler) HandleUpsertAsset(c *fiber.Ctx) error {
	var asset reconcile.Asset
	if err := c.BodyParser(&asset); err != nil {
		return badBody(c, err)
	}

	guid, err := h.service.UpsertAsset(c.Context(), h.user(c), asset, h.source(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"guid": guid})
}

// HandleAttachSchemaType attaches a schema type to an asset.
// @Summary Attach Schema Type
// @Tags assets
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user"
// @Param qualifiedName path string true "Asset qualified name"
// @Param source query string false "External source name"
// @Param request body AttachRequest true "Schema type"
// @Success 201 {object} map[string]string "Relationship GUID"
// @Router /assets/{qualifiedName}/schema-type [post]
func (h *Handler) HandleAttachSchemaType(c *fiber.Ctx) error {
	var req AttachRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	guid, err := h.service.AttachSchemaType(c.Context(), h.user(c), c.Params("qualifiedName"), req.SchemaType, h.source(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"guid": guid})
}

// HandleListSources lists external sources.
// @Summary List External Sources
// @Tags sources
// @Produce json
// @Success 200 {array} registry.Source
// @Router /sources [get]
func (h *Handler) HandleListSources(c *fiber.Ctx) error {
	sources, err := h.service.ListSources(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(sources)
}

// HandleRegisterSource registers an external source.
// @Summary Register External Source
// @Tags sources
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user"
// @Param request body SourceRequest true "Source"
// @Success 201 {object} registry.Source
// @Router /sources [post]
func (h *Handler) HandleRegisterSource(c *fiber.Ctx) error {
	var req SourceRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	src, err := h.service.RegisterSource(c.Context(), h.user(c), req.Name, req.Description)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(src)
}
