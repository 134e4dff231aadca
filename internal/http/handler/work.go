package handler

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"studioapi/internal/service"
)

// CreateWork handles the admin submission form: multipart fields plus the
// main image, an optional client logo, and zero or more additional images.
//
// @Summary Create a portfolio work
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Project title"
// @Param category formData string true "Project category"
// @Param main_image formData file true "Main image"
// @Success 201 {object} model.Work
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /works [post]
func CreateWork(svc service.WorkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.CreateWorkInput{
			Title:       c.FormValue("title"),
			Category:    c.FormValue("category"),
			Description: c.FormValue("description"),
			ClientName:  c.FormValue("client_name"),
			PDFURL:      c.FormValue("pdf_url"),
			Team: service.TeamInput{
				WebDeveloper: c.FormValue("web_developer"),
				UIUXDesigner: c.FormValue("ui_ux_designer"),
				Photographer: c.FormValue("photographer"),
				Illustrator:  c.FormValue("illustrator"),
			},
		}

		if fh, err := c.FormFile("main_image"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			in.MainImage = fileInput(f, fh)
		}

		if fh, err := c.FormFile("client_logo"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			in.ClientLogo = fileInput(f, fh)
		}

		if form, err := c.MultipartForm(); err == nil {
			for _, fh := range form.File["additional_images"] {
				f, err := fh.Open()
				if err != nil {
					return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
				}
				defer f.Close()
				in.AdditionalImages = append(in.AdditionalImages, *fileInput(f, fh))
			}
		}

		w, err := svc.Create(c.UserContext(), in)
		if err != nil {
			switch {
			case isValidationError(err):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrDuplicateTitle):
				return writeError(c, fiber.StatusConflict, "DUPLICATE_TITLE", service.ErrDuplicateTitle.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(w)
	}
}

// ListWorks returns display summaries of all works, newest first.
//
// @Summary List works
// @Produce json
// @Success 200 {array} model.WorkSummary
// @Router /works [get]
func ListWorks(svc service.WorkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// GetWork returns one work by ID.
//
// @Summary Get a work
// @Produce json
// @Param id path int true "Work ID"
// @Success 200 {object} model.Work
// @Failure 404 {object} errorPayload
// @Router /works/{id} [get]
func GetWork(svc service.WorkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		w, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrWorkNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "work not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(w)
	}
}

// RelatedWorks returns up to 3 works sharing the category of the given work.
//
// @Summary List related works
// @Produce json
// @Param id path int true "Work ID"
// @Success 200 {array} model.WorkSummary
// @Failure 404 {object} errorPayload
// @Router /works/{id}/related [get]
func RelatedWorks(svc service.WorkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		items, err := svc.Related(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrWorkNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "work not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func fileInput(f multipart.File, fh *multipart.FileHeader) *service.FileInput {
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &service.FileInput{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: ct,
		Size:        fh.Size,
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrCategoryRequired) ||
		errors.Is(err, service.ErrUnknownCategory) ||
		errors.Is(err, service.ErrMainImageRequired)
}
