package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthUnknownAction(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/auth?action=logout", `{}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Action auth tidak dikenali", decode(t, rec).Message)
}

func TestAuthPayloadValidation(t *testing.T) {
	api := newTestAPI(t)

	t.Run("register", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/auth?action=register",
			`{"nama":"Ayu","email":"not-an-email","password":"123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, "Validasi gagal", resp.Message)

		fields := map[string]string{}
		for _, e := range resp.Errors {
			fields[e.Field] = e.Error
		}
		assert.Equal(t, "format email tidak valid", fields["email"])
		assert.Equal(t, "minimal 6 karakter", fields["password"])
	})

	t.Run("login without body", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/auth?action=mitra_login", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode(t, rec)
		require.Len(t, resp.Errors, 2)
		assert.Equal(t, "username", resp.Errors[0].Field)
		assert.Equal(t, "wajib diisi", resp.Errors[0].Error)
	})
}
