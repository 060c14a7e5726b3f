package model

import (
	"encoding/json"
	"testing"

	"github.com/deppfellow/bluewave/internal/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseEmptyListKeepsData(t *testing.T) {
	b, err := json.Marshal(OK([]WisataSummary{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(b))
}

func TestResponseMessageOnly(t *testing.T) {
	b, err := json.Marshal(Message("Wisata berhasil dihapus"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Wisata berhasil dihapus"}`, string(b))
}

func TestFailCarriesFieldErrors(t *testing.T) {
	code := "MISSING_FIELDS"
	httpErr := errs.NewBadRequestError("Field berikut harus diisi: nama", true, &code,
		[]errs.FieldError{{Field: "nama", Error: "wajib diisi"}})

	b, err := json.Marshal(Fail(httpErr, httpErr.Message))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": false,
		"message": "Field berikut harus diisi: nama",
		"code": "MISSING_FIELDS",
		"errors": [{"field": "nama", "error": "wajib diisi"}]
	}`, string(b))
}

func TestDecimalRendersAsNumber(t *testing.T) {
	b, err := json.Marshal(UserDashboard{TotalSpent: decimal.RequireFromString("150000.50")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_tiket":0,"active_tiket":0,"total_spent":150000.5,"favorite_count":0}`, string(b))
}

func TestTicketStatus(t *testing.T) {
	assert.True(t, TicketPaid.CanValidate())
	assert.False(t, TicketUsed.CanValidate())
	assert.False(t, TicketPending.CanValidate())
	assert.True(t, RoleSuperadmin.IsAdmin())
	assert.False(t, RoleMitra.IsAdmin())
}
