package handler

import (
	"net/http"

	"github.com/osse101/cmsadmin/internal/defaultusers"
)

// DefaultUsersResponse lists the configured default principals
type DefaultUsersResponse struct {
	UserAdmin           string `json:"user_admin"`
	UserGuest           string `json:"user_guest"`
	UserExport          string `json:"user_export"`
	UserDeletedResource string `json:"user_deleted_resource"`
	GroupGuests         string `json:"group_guests"`
}

// HandleGetDefaultUsers returns the configured default user and group names
// @Summary Get default users
// @Tags users
// @Produce json
// @Success 200 {object} DefaultUsersResponse
// @Security ApiKeyAuth
// @Router /users/defaults [get]
func HandleGetDefaultUsers(users *defaultusers.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DefaultUsersResponse{
			UserAdmin:           users.UserAdmin(),
			UserGuest:           users.UserGuest(),
			UserExport:          users.UserExport(),
			UserDeletedResource: users.UserDeletedResource(),
			GroupGuests:         users.GroupGuests(),
		})
	}
}

// HandleCheckUser classifies ?name= against the default users
// @Summary Classify user name
// @Tags users
// @Produce json
// @Param name query string true "User or group name, optionally OU qualified"
// @Success 200 {object} defaultusers.Classification
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /users/check [get]
func HandleCheckUser(users *defaultusers.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, "name")
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, users.Classify(name))
	}
}
