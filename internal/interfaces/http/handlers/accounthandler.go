package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atrium/internal/application/account/dto"
	"atrium/internal/application/account/usecases"
	"atrium/internal/interfaces/http/middleware"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

// AccountHandler serves the session-scoped account endpoint and the
// admin-only account management endpoints.
type AccountHandler struct {
	getCurrentUseCase   *usecases.GetCurrentAccountUseCase
	listUseCase         *usecases.ListAccountsUseCase
	deleteUseCase       *usecases.DeleteAccountUseCase
	updateStatusUseCase *usecases.UpdateAccountStatusUseCase
	logger              logger.Interface
}

func NewAccountHandler(
	getCurrentUC *usecases.GetCurrentAccountUseCase,
	listUC *usecases.ListAccountsUseCase,
	deleteUC *usecases.DeleteAccountUseCase,
	updateStatusUC *usecases.UpdateAccountStatusUseCase,
	logger logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		getCurrentUseCase:   getCurrentUC,
		listUseCase:         listUC,
		deleteUseCase:       deleteUC,
		updateStatusUseCase: updateStatusUC,
		logger:              logger,
	}
}

// CurrentAccount returns the signed-in account.
func (h *AccountHandler) CurrentAccount(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing session")
		return
	}

	resp, err := h.getCurrentUseCase.Execute(c.Request.Context(), claims.AccountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListAccounts returns every account, most recent first.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	resp, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// DeleteAccount removes the account named by the path parameter. Admins
// cannot delete their own account.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	claims, exists := middleware.SessionClaims(c)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing session")
		return
	}

	err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteAccountCommand{
		AccountID:   accountID,
		RequesterID: claims.AccountID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "account deleted successfully", nil)
}

// UpdateAccountStatus switches an account between active and banned.
func (h *AccountHandler) UpdateAccountStatus(c *gin.Context) {
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.updateStatusUseCase.Execute(c.Request.Context(), usecases.UpdateAccountStatusCommand{
		AccountID: accountID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "account status updated", resp)
}

// parseIDParam reads a numeric path parameter, replying 400 on garbage input.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
