package handlers

import (
	"io"
	"net/http"
	"strconv"

	request "ponto_eletronica/internal/adapter/http/dto/request"
	response "ponto_eletronica/internal/adapter/http/dto/response"
	"ponto_eletronica/internal/domain/entities"
	"ponto_eletronica/internal/usecase"
	"ponto_eletronica/internal/usecase/form"

	"github.com/gin-gonic/gin"
)

// FieldImages is the multipart field carrying the selected image files.
const FieldImages = "images"

// DraftHandler drives the create/edit form. A draft is the working copy of one
// form session; nothing reaches the collection until it is submitted.
type DraftHandler struct {
	usecase usecase.IServiceOrderUseCase
	drafts  *form.Drafts
	opts    form.Options
}

func NewDraftHandler(uc usecase.IServiceOrderUseCase, drafts *form.Drafts, opts form.Options) *DraftHandler {
	return &DraftHandler{usecase: uc, drafts: drafts, opts: opts}
}

// OpenDraft godoc
// @Summary      Open a form session
// @Description  With edit_id the draft starts from that record; otherwise it is blank, with status "Orçamento" for the quote shortcut.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        payload  body      request.OpenDraftRequest  false  "entry point"
// @Success      201      {object}  response.DraftResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /drafts [post]
func (h *DraftHandler) OpenDraft(c *gin.Context) {
	var payload request.OpenDraftRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeAppError(c, errInvalidPayload)
			return
		}
	}

	var ctrl *form.Controller
	if editID := payload.ResolveEditID(); editID != "" {
		existing, err := h.usecase.GetByID(c.Request.Context(), editID)
		if err != nil {
			writeError(c, err)
			return
		}
		ctrl = form.NewEdit(existing, h.opts)
	} else {
		status := entities.StatusPending
		if payload.Status != "" {
			parsed, ok := entities.ParseStatus(payload.Status)
			if !ok {
				writeError(c, &form.FieldError{Field: "status", Value: payload.Status})
				return
			}
			status = parsed
		}
		ctrl = form.NewCreate(status, h.opts)
	}

	id := h.drafts.Open(ctrl)
	c.JSON(http.StatusCreated, response.FromDraft(id, ctrl))
}

// GetDraft godoc
// @Summary  Current working copy of a draft
// @Tags     drafts
// @Produce  json
// @Param    id   path      string  true  "draft id"
// @Success  200  {object}  response.DraftResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /drafts/{id} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	ctrl, err := h.drafts.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(c.Param("id"), ctrl))
}

// UpdateDraft godoc
// @Summary      Update form fields
// @Description  Only the fields present in the body change. Numeric fields accept text such as "150,50".
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "draft id"
// @Param        payload  body      request.ServiceOrderFormRequest  true  "form fields"
// @Success      200      {object}  response.DraftResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /drafts/{id} [patch]
func (h *DraftHandler) UpdateDraft(c *gin.Context) {
	id := c.Param("id")
	ctrl, err := h.drafts.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}

	var payload request.ServiceOrderFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	if err := ctrl.Apply(payload.ToInput()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(id, ctrl))
}

// AttachImages godoc
// @Summary      Attach photos
// @Description  Files over the size cap or that are not images are skipped with a warning; the others are appended in selection order.
// @Tags         drafts
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      string  true  "draft id"
// @Param        images  formData  file    true  "image files"
// @Success      200     {object}  response.AttachImagesResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /drafts/{id}/images [post]
func (h *DraftHandler) AttachImages(c *gin.Context) {
	id := c.Param("id")
	ctrl, err := h.drafts.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	headers := multipartForm.File[FieldImages]
	files := make([]form.ImageFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, form.ImageFile{
			Name: fh.Filename,
			Size: fh.Size,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		})
	}

	// The upload's temporary files go away with the request, so wait for the reads.
	res, err := ctrl.AttachAndWait(files)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAttachResult(id, ctrl, res))
}

// RemoveImage godoc
// @Summary  Remove an attached photo
// @Tags     drafts
// @Produce  json
// @Param    id     path      string  true  "draft id"
// @Param    index  path      int     true  "image position"
// @Success  200    {object}  response.DraftResponse
// @Failure  404    {object}  pkg.HTTPError
// @Router   /drafts/{id}/images/{index} [delete]
func (h *DraftHandler) RemoveImage(c *gin.Context) {
	id := c.Param("id")
	ctrl, err := h.drafts.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	if err := ctrl.RemoveImage(index); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(id, ctrl))
}

// SubmitDraft godoc
// @Summary      Commit the working copy
// @Description  Creates a new record, or replaces the edited one keeping its id and creation time. The draft is closed on success.
// @Tags         drafts
// @Produce      json
// @Param        id   path      string  true  "draft id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Success      201  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /drafts/{id}/submit [post]
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	id := c.Param("id")
	ctrl, err := h.drafts.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}

	saved, err := ctrl.Submit(c.Request.Context(), h.usecase)
	if err != nil {
		writeError(c, err)
		return
	}
	h.drafts.Forget(id)
	flagStorage(c, h.usecase)

	status := http.StatusOK
	if ctrl.Mode() == form.ModeCreate {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromServiceOrder(saved))
}

// CancelDraft godoc
// @Summary  Discard a draft
// @Tags     drafts
// @Param    id  path  string  true  "draft id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /drafts/{id} [delete]
func (h *DraftHandler) CancelDraft(c *gin.Context) {
	if err := h.drafts.Close(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
