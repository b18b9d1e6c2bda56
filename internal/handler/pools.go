package handler

import (
	"context"
	"net/http"

	"github.com/osse101/cmsadmin/internal/database"
)

// PoolStatus is the health of one named connection pool
type PoolStatus struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// PoolRegistry is the part of database.Manager the pool endpoint needs
type PoolRegistry interface {
	Names() []string
	Connection(ctx context.Context, poolName string) (database.Conn, error)
}

// HandleListPools acquires and releases a connection from every registered pool
// @Summary Check connection pools
// @Tags database
// @Produce json
// @Success 200 {array} PoolStatus
// @Security ApiKeyAuth
// @Router /database/pools [get]
func HandleListPools(pools PoolRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		names := pools.Names()
		statuses := make([]PoolStatus, 0, len(names))
		for _, name := range names {
			status := PoolStatus{Name: name, URL: database.PoolURL(name), OK: true}
			conn, err := pools.Connection(ctx, name)
			if err == nil {
				err = conn.Close(ctx)
			}
			if err != nil {
				status.OK = false
				status.Error = ErrMsgPoolCheckFailed
			}
			statuses = append(statuses, status)
		}
		respondJSON(w, http.StatusOK, statuses)
	}
}
