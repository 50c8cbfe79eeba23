package handler

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hrdocs/internal/service"
)

// HealthCheck reports whether the database dependency is reachable.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a dependency-free liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListCompanyFolders returns one folder per company. A degraded listing
// (stale or static fallback after a fetch failure) is still a 200; the
// payload carries the degraded flag.
func ListCompanyFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ListCompanyFolders(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListEmployeeFolders returns one folder per employee of a company.
func ListEmployeeFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, ok := companyParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_COMPANY", "invalid company name")
		}
		res, err := svc.ListEmployeeFolders(c.UserContext(), company)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListCompanyDocuments returns every document row under a company's
// prefixes, historical aliases included.
func ListCompanyDocuments(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, ok := companyParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_COMPANY", "invalid company name")
		}
		rows, err := svc.ListCompanyDocuments(c.UserContext(), company)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": rows})
	}
}

// ListEmployeeDocuments returns the rows recorded against one employee.
func ListEmployeeDocuments(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := svc.ListEmployeeDocuments(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": rows})
	}
}

// GetDocumentURL resolves a time-limited signed URL for a document.
func GetDocumentURL(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.GetPresignedURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

// GetDocument returns a single document's metadata.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// UploadDocument accepts multipart/form-data with a "file" field plus the
// "company" and optional "employee_id" form values.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		company := c.FormValue("company")
		if company == "" {
			return writeError(c, fiber.StatusBadRequest, "COMPANY_REQUIRED", "company is required")
		}
		employeeID := c.FormValue("employee_id")

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), f, company, employeeID, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// DeleteDocument removes a document's object and metadata.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type invalidateRequest struct {
	Scope string `json:"scope"`
	Key   string `json:"key"`
}

// InvalidateCache drops one cached key, or a whole scope when key is empty.
func InvalidateCache(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req invalidateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Scope == "" {
			return writeError(c, fiber.StatusBadRequest, "SCOPE_REQUIRED", "scope is required")
		}
		svc.Invalidate(req.Scope, req.Key)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// RefreshCache clears every cache and rebuilds the company folder list.
func RefreshCache(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ForceRefresh(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// companyParam extracts and decodes the :company path segment.
func companyParam(c *fiber.Ctx) (string, bool) {
	company, err := url.PathUnescape(c.Params("company"))
	if err != nil || company == "" {
		return "", false
	}
	return company, true
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, folderSvc service.FolderService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/folders", ListCompanyFolders(folderSvc))
	app.Get("/folders/:company/employees", ListEmployeeFolders(folderSvc))
	app.Get("/folders/:company/documents", ListCompanyDocuments(folderSvc))
	app.Get("/employees/:id/documents", ListEmployeeDocuments(folderSvc))

	app.Post("/documents", UploadDocument(docSvc))
	app.Get("/documents/:id", GetDocument(docSvc))
	app.Get("/documents/:id/url", GetDocumentURL(folderSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))

	app.Post("/cache/invalidate", InvalidateCache(folderSvc))
	app.Post("/cache/refresh", RefreshCache(folderSvc))
}
