package handler

import (
	"net/http"

	"github.com/osse101/cmsadmin/internal/menu"
)

// MenuVisibilityRequest is the body of POST /menu/visibility
type MenuVisibilityRequest struct {
	Rules     []string        `json:"rules" validate:"required,min=1,dive,required"`
	Context   MenuContext     `json:"context"`
	Resources []menu.Resource `json:"resources" validate:"dive"`
}

// MenuContext carries the evaluation context; auto lock defaults to the server setting
type MenuContext struct {
	UserName          string `json:"user_name" validate:"max=255"`
	AutoLockResources *bool  `json:"auto_lock_resources"`
}

// MenuVisibilityResponse reports the decision and the rule that made it
type MenuVisibilityResponse struct {
	Visibility string `json:"visibility"`
	MessageKey string `json:"message_key,omitempty"`
	Rule       string `json:"rule,omitempty"`
}

// HandleMenuVisibility evaluates the named rules in order over the posted resources
// @Summary Evaluate menu visibility
// @Description The first matching rule decides; no match hides the item
// @Tags menu
// @Accept json
// @Produce json
// @Param request body MenuVisibilityRequest true "Rule names, context and resources"
// @Success 200 {object} MenuVisibilityResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /menu/visibility [post]
func HandleMenuVisibility(autoLockResources bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MenuVisibilityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Menu visibility"); err != nil {
			return
		}

		set, err := menu.NewRuleSetByNames("request", req.Rules)
		if err != nil {
			respondServiceError(w, r, ErrMsgEvaluateMenuFailed, err)
			return
		}

		ctx := menu.Context{UserName: req.Context.UserName, AutoLockResources: autoLockResources}
		if req.Context.AutoLockResources != nil {
			ctx.AutoLockResources = *req.Context.AutoLockResources
		}

		mode, rule := set.EvaluateWithRule(ctx, req.Resources)
		respondJSON(w, http.StatusOK, MenuVisibilityResponse{
			Visibility: mode.Visibility.String(),
			MessageKey: mode.MessageKey,
			Rule:       rule,
		})
	}
}

// HandleListMenuRules lists the rule names that can be used in rule sets
// @Summary List menu rules
// @Tags menu
// @Produce json
// @Success 200 {array} string
// @Security ApiKeyAuth
// @Router /menu/rules [get]
func HandleListMenuRules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, menu.RuleNames())
	}
}
