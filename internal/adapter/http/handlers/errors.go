package handlers

import (
	"errors"
	"net/http"
	"strings"

	"ponto_eletronica/internal/usecase"
	"ponto_eletronica/internal/usecase/form"
	"ponto_eletronica/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderStorageWarning is set on mutating responses when the storage slot could
// not be written. The change is kept in memory.
const HeaderStorageWarning = "X-Storage-Warning"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidView    = pkg.NewDomainErrorSimple("INVALID_VIEW", "Unknown view", http.StatusBadRequest)
	errInvalidStatus  = pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status", http.StatusBadRequest)
	errDocumentFailed = pkg.NewDomainErrorSimple("DOCUMENT_GENERATION_FAILED", "Erro ao gerar PDF. Tente novamente.", http.StatusInternalServerError)
)

func mapServiceOrderError(err error) *pkg.AppError {
	var verr *form.ValidationError
	var ferr *form.FieldError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("REQUIRED_FIELDS", "Preencha os campos obrigatórios: "+strings.Join(verr.Fields, ", "), err, http.StatusUnprocessableEntity)
	case errors.As(err, &ferr):
		return pkg.NewDomainError("INVALID_FIELD", "Valor inválido para "+ferr.Field, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_CONFIRMED", "Tem certeza que deseja excluir este registro?", http.StatusPreconditionRequired)
	case errors.Is(err, form.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, form.ErrControllerClosed):
		return pkg.NewDomainErrorSimple("DRAFT_CLOSED", "Draft already submitted or canceled", http.StatusConflict)
	case errors.Is(err, form.ErrImageIndex):
		return pkg.NewDomainErrorSimple("IMAGE_NOT_FOUND", "Image not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapServiceOrderError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// flagStorage marks the response when the last slot write failed.
func flagStorage(c *gin.Context, uc usecase.IServiceOrderUseCase) {
	if err := uc.LastSaveError(); err != nil {
		c.Header(HeaderStorageWarning, "changes were not persisted: "+err.Error())
	}
}
