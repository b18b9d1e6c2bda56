package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/cmsadmin/internal/domain"
)

type fakeConn struct {
	closed bool
}

func (c *fakeConn) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (c *fakeConn) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (c *fakeConn) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (c *fakeConn) Close(context.Context) error {
	c.closed = true
	return nil
}

func TestHandleListPools(t *testing.T) {
	conn := &fakeConn{}
	pools := new(MockPoolRegistry)
	pools.On("Names").Return([]string{"default", "reporting"})
	pools.On("Connection", mock.Anything, "default").Return(conn, nil)
	pools.On("Connection", mock.Anything, "reporting").Return(nil, domain.WrapError(domain.CodeDatabaseError, "acquire", errors.New("refused")))

	w := httptest.NewRecorder()
	HandleListPools(pools).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/database/pools", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"name":"default","url":"cms:pool:default","ok":true},
		{"name":"reporting","url":"cms:pool:reporting","ok":false,"error":"`+ErrMsgPoolCheckFailed+`"}
	]`, w.Body.String())
	assert.True(t, conn.closed, "connection returned to pool")
	pools.AssertExpectations(t)
}
