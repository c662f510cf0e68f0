package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"atrium/internal/application/forms/dto"
	"atrium/internal/application/forms/usecases"
	"atrium/internal/domain/forms"
	"atrium/internal/interfaces/http/middleware"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

// FormHandler serves form intake and the admin-only submission endpoints.
type FormHandler struct {
	submitUseCase *usecases.SubmitFormUseCase
	listUseCase   *usecases.ListSubmissionsUseCase
	deleteUseCase *usecases.DeleteSubmissionUseCase
	logger        logger.Interface
}

func NewFormHandler(
	submitUC *usecases.SubmitFormUseCase,
	listUC *usecases.ListSubmissionsUseCase,
	deleteUC *usecases.DeleteSubmissionUseCase,
	logger logger.Interface,
) *FormHandler {
	return &FormHandler{
		submitUseCase: submitUC,
		listUseCase:   listUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

// SubmitForm stores a new submission. The submitter identity comes from the
// session, never from the request body.
func (h *FormHandler) SubmitForm(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing session")
		return
	}

	var req dto.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	resp, err := h.submitUseCase.Execute(c.Request.Context(), usecases.SubmitFormCommand{
		Input: forms.SubmissionInput{
			FormType: req.FormType,
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Subject:  req.Subject,
			Service:  req.Service,
			Message:  req.Message,
		},
		SubmittedBy:    claims.Name,
		SubmittedEmail: claims.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "form submitted successfully")
}

// bindingErrorMessage maps binding failures to the same wording the intake
// rules use, so clients see one vocabulary regardless of where a value was
// rejected.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "FormType" {
				return "Invalid form type"
			}
		}
	}
	return err.Error()
}

// ListSubmissions returns every stored submission, most recent first.
func (h *FormHandler) ListSubmissions(c *gin.Context) {
	resp, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// DeleteSubmission removes the submission named by the path parameter.
func (h *FormHandler) DeleteSubmission(c *gin.Context) {
	submissionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), submissionID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "submission deleted successfully", nil)
}
