package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func TestWisataListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store renders as empty list", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("FROM wisata")).
			WillReturnRows(pgxmock.NewRows([]string{"id", "nama", "kategori", "lokasi", "harga_tiket", "gambar_url"}))

		items, err := NewWisataRepository(mock).ListActive(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("rows", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("WHERE is_active")).
			WillReturnRows(pgxmock.NewRows([]string{"id", "nama", "kategori", "lokasi", "harga_tiket", "gambar_url"}).
				AddRow(int64(1), "Pantai Anyer", "pantai", "Serang", "25000", "https://img/anyer.jpg").
				AddRow(int64(2), "Tanjung Lesung", "pantai", "Pandeglang", "30000", ""))

		items, err := NewWisataRepository(mock).ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Pantai Anyer", items[0].Nama)
		assert.True(t, decimal.NewFromInt(25000).Equal(items[0].HargaTiket))
	})
}

func TestWisataGetActiveNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(q("FROM wisata WHERE id = $1 AND is_active")).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := NewWisataRepository(mock).GetActive(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWisataDeleteMissing(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(q("DELETE FROM wisata WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, NewWisataRepository(mock).Delete(context.Background(), 5), ErrNotFound)
}

var markUsedCols = []string{
	"id", "kode_tiket", "user_id", "wisata_id", "nama_pemesan", "jumlah_tiket",
	"total_harga", "tanggal_berkunjung", "status", "created_at",
}

func TestTiketMarkUsed(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("paid ticket is flipped in one statement", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("UPDATE tiket SET status = $1, used_at = NOW()")).
			WithArgs("used", "BW-001", "paid", int64(3)).
			WillReturnRows(pgxmock.NewRows(markUsedCols).
				AddRow(int64(10), "BW-001", int64(4), int64(3), "Budi", 2, "50000", "2026-06-02", "used", created))

		tk, ok, err := NewTiketRepository(mock).MarkUsed(ctx, "BW-001", 3)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, model.TicketPaid, tk.Status)
		assert.Equal(t, "BW-001", tk.KodeTiket)
		assert.Equal(t, 2, tk.JumlahTiket)
	})

	t.Run("no paid ticket", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("UPDATE tiket SET status = $1")).
			WithArgs("used", "BW-001", "paid", int64(0)).
			WillReturnRows(pgxmock.NewRows(markUsedCols))

		_, ok, err := NewTiketRepository(mock).MarkUsed(ctx, "BW-001", 0)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTiketStatus(t *testing.T) {
	ctx := context.Background()

	mock := newMock(t)
	mock.ExpectQuery(q("SELECT status FROM tiket")).
		WithArgs("BW-002", int64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("used"))
	mock.ExpectQuery(q("SELECT status FROM tiket")).
		WithArgs("BW-404", int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}))

	repo := NewTiketRepository(mock)

	st, err := repo.Status(ctx, "BW-002", 0)
	require.NoError(t, err)
	assert.Equal(t, model.TicketUsed, st)

	_, err = repo.Status(ctx, "BW-404", 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardAdminZeroes(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(q("FROM wisata")).
		WithArgs("active", "2026-10-16", "paid", "used", "2026-10-01", "2026-11-01").
		WillReturnRows(pgxmock.NewRows([]string{"a", "b", "c", "d", "e"}).
			AddRow(int64(0), int64(0), int64(0), int64(0), "0"))

	d, err := NewDashboardRepository(mock).Admin(context.Background(), "2026-10-16", "2026-10-01", "2026-11-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), d.WisataCount)
	assert.True(t, d.PendapatanBulanIni.IsZero())
}

func TestDashboardUser(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(q("FROM favorit WHERE user_id = $1")).
		WithArgs(int64(12), "paid", "used").
		WillReturnRows(pgxmock.NewRows([]string{"a", "b", "c", "d"}).
			AddRow(int64(5), int64(2), "175000", int64(3)))

	d, err := NewDashboardRepository(mock).User(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.TotalTiket)
	assert.Equal(t, int64(2), d.ActiveTiket)
	assert.Equal(t, "175000", d.TotalSpent.String())
	assert.Equal(t, int64(3), d.FavoriteCount)
}

func TestPromoOwnedWritesAreScoped(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)

	mock.ExpectExec(q("WHERE id = $6 AND wisata_id = $7")).
		WithArgs("Diskon Akhir Pekan", "persen", pgxmock.AnyArg(), pgxmock.AnyArg(), "active", int64(8), int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(q("DELETE FROM promo WHERE id = $1 AND wisata_id = $2")).
		WithArgs(int64(8), int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewPromoRepository(mock)
	err := repo.UpdateOwned(ctx, model.PromoInput{
		ID:              8,
		NamaPromo:       "Diskon Akhir Pekan",
		JenisDiskon:     "persen",
		NilaiDiskon:     decimal.NewFromInt(10),
		TanggalBerakhir: "2026-12-31",
		Status:          "active",
	}, 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteOwned(ctx, 8, 3), ErrNotFound)
}

func TestPromoExpireBefore(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(q("UPDATE promo SET status = $1")).
		WithArgs("expired", "active", "2026-10-16").
		WillReturnResult(pgxmock.NewResult("UPDATE", 4))

	n, err := NewPromoRepository(mock).ExpireBefore(context.Background(), "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestMitraUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(q("password_hash = COALESCE(NULLIF($5, ''), password_hash)")).
		WithArgs("Mitra Anyer", "anyer", pgxmock.AnyArg(), "active", "", int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := NewMitraRepository(mock).Update(context.Background(), model.MitraInput{
		ID: 2, NamaMitra: "Mitra Anyer", Username: "anyer", WisataID: 1,
	}, "active", "")
	assert.NoError(t, err)
}

func TestActivityInsert(t *testing.T) {
	mock := newMock(t)
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectExec(q("INSERT INTO admin_activities")).
		WithArgs(int64(1), "admin", "Delete Promo", "Hapus promo ID: 3", ts).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := NewActivityRepository(mock).Insert(context.Background(), model.ActivityEntry{
		ActorID: 1, ActorRole: model.RoleAdmin, Action: "Delete Promo", Description: "Hapus promo ID: 3", Timestamp: ts,
	})
	assert.NoError(t, err)
}

func TestUserFavoritesIdempotent(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(q("ON CONFLICT (user_id, wisata_id) DO NOTHING")).
		WithArgs(int64(4), int64(9)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectExec(q("DELETE FROM favorit")).
		WithArgs(int64(4), int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewUserRepository(mock)
	assert.NoError(t, repo.AddFavorite(context.Background(), 4, 9))
	assert.NoError(t, repo.RemoveFavorite(context.Background(), 4, 9))
}
