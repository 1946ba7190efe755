package form

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"ponto_eletronica/internal/domain/entities"
	"ponto_eletronica/internal/infrastructure/logger"
	"ponto_eletronica/internal/usecase"
	mock_interfaces "ponto_eletronica/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		Now: func() time.Time { return fixedNow },
		Log: logger.Discard(),
	}
}

func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	return data
}

func str(v string) *string { return &v }

func newStore(t *testing.T, initial []entities.ServiceOrder) *usecase.ServiceOrderUseCase {
	t.Helper()
	ctrl := gomock.NewController(t)
	slot := mock_interfaces.NewMockIServiceOrderSlot(ctrl)
	slot.EXPECT().Load(gomock.Any()).Return(initial, nil)
	slot.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	uc := usecase.NewServiceOrderUseCase(slot, logger.Discard())
	uc.Load(context.Background())
	return uc
}

func TestNewCreate_Defaults(t *testing.T) {
	t.Run("new order", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, testOptions())
		got := c.Snapshot()

		assert.Equal(t, ModeCreate, c.Mode())
		assert.Equal(t, entities.EquipmentTV, got.EquipmentType)
		assert.Equal(t, entities.DefaultGuaranteeDays, got.GuaranteeDays)
		assert.Equal(t, "2024-03-05", got.ArrivalDate)
		assert.Equal(t, entities.StatusPending, got.Status)
		assert.NotNil(t, got.Images)
		assert.Empty(t, got.Images)
	})

	t.Run("quote shortcut", func(t *testing.T) {
		c := NewCreate(entities.StatusQuote, testOptions())
		assert.Equal(t, entities.StatusQuote, c.Snapshot().Status)
	})
}

func TestNewEdit_FillsMissingFields(t *testing.T) {
	existing := entities.ServiceOrder{ID: "abc", CustomerName: "Ana", EquipmentBrand: "LG"}
	c := NewEdit(existing, testOptions())
	got := c.Snapshot()

	assert.Equal(t, ModeEdit, c.Mode())
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, entities.EquipmentTV, got.EquipmentType)
	assert.Equal(t, entities.StatusPending, got.Status)
	assert.NotNil(t, got.Images)
}

func TestController_Apply(t *testing.T) {
	t.Run("parses numeric fields at the boundary", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, testOptions())
		err := c.Apply(Input{
			CustomerName:   str("Maria"),
			ServiceValue:   str("150,5"),
			EstimatedValue: str("abc"),
			GuaranteeDays:  str("90"),
		})
		require.NoError(t, err)

		got := c.Snapshot()
		assert.Equal(t, "Maria", got.CustomerName)
		assert.Equal(t, entities.Amount(150.5), got.ServiceValue)
		require.NotNil(t, got.EstimatedValue)
		assert.Equal(t, entities.Amount(0), *got.EstimatedValue)
		assert.Equal(t, 90, got.GuaranteeDays)
	})

	t.Run("negative value is clamped", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, testOptions())
		require.NoError(t, c.Apply(Input{ServiceValue: str("-20")}))
		assert.Equal(t, entities.Amount(0), c.Snapshot().ServiceValue)
	})

	t.Run("blank estimated value clears it", func(t *testing.T) {
		c := NewCreate(entities.StatusQuote, testOptions())
		require.NoError(t, c.Apply(Input{EstimatedValue: str("80")}))
		require.NoError(t, c.Apply(Input{EstimatedValue: str("  ")}))
		assert.Nil(t, c.Snapshot().EstimatedValue)
	})

	t.Run("unknown enum leaves the working copy untouched", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, testOptions())
		err := c.Apply(Input{CustomerName: str("Maria"), Status: str("Arquivado")})

		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "status", fe.Field)
		assert.Empty(t, c.Snapshot().CustomerName)
	})

	t.Run("guarantee outside the offered periods", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, testOptions())
		err := c.Apply(Input{GuaranteeDays: str("45")})
		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, entities.DefaultGuaranteeDays, c.Snapshot().GuaranteeDays)
	})
}

func TestController_Attach(t *testing.T) {
	t.Run("oversized file is skipped and the rest is accepted", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, testOptions())
		res, err := c.AttachAndWait([]ImageFile{
			ImageFromBytes("big.png", pngBytes(3*1024*1024)),
			ImageFromBytes("ok.png", pngBytes(1024*1024)),
		})
		require.NoError(t, err)

		assert.Equal(t, 1, res.Accepted)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "big.png", res.Warnings[0].File)
		assert.Equal(t, WarningImageTooLarge, res.Warnings[0].Code)
		assert.Equal(t, "Imagem muito grande! Máximo 2MB.", res.Warnings[0].Message)

		images := c.Snapshot().Images
		require.Len(t, images, 1)
		assert.Contains(t, images[0], "data:image/png;base64,")
	})

	t.Run("size reported by the client is not trusted", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, Options{MaxImageBytes: 16, Log: logger.Discard()})
		f := ImageFromBytes("liar.png", pngBytes(64))
		f.Size = 10

		res, err := c.AttachAndWait([]ImageFile{f})
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, WarningImageTooLarge, res.Warnings[0].Code)
		assert.Empty(t, c.Snapshot().Images)
	})

	t.Run("non image content", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, testOptions())
		res, err := c.AttachAndWait([]ImageFile{ImageFromBytes("notes.txt", []byte("hello"))})
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, WarningNotAnImage, res.Warnings[0].Code)
	})

	t.Run("read failure", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, testOptions())
		f := ImageFile{Name: "gone.png", Size: 10, Open: func() (io.ReadCloser, error) {
			return nil, errors.New("no such file")
		}}
		res, err := c.AttachAndWait([]ImageFile{f})
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, WarningReadFailed, res.Warnings[0].Code)
	})

	t.Run("images keep the selection order", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, Options{ReadConcurrency: 3, Log: logger.Discard()})

		// The first file is released last.
		release := make(chan struct{})
		slow := ImageFromBytes("a.png", append(pngBytes(8), 'a'))
		open := slow.Open
		slow.Open = func() (io.ReadCloser, error) {
			<-release
			return open()
		}
		mid := ImageFromBytes("b.png", append(pngBytes(8), 'b'))
		last := ImageFromBytes("c.png", append(pngBytes(8), 'c'))

		b, err := c.Attach([]ImageFile{slow, mid, last})
		require.NoError(t, err)
		close(release)
		res := b.Wait()
		assert.Equal(t, 3, res.Accepted)

		want := []string{}
		for _, f := range []ImageFile{slow, mid, last} {
			url, warn := readDataURL(f, DefaultMaxImageBytes)
			require.Nil(t, warn)
			want = append(want, url)
		}
		assert.Equal(t, want, c.Snapshot().Images)
	})

	t.Run("reads finishing after cancel are discarded", func(t *testing.T) {
		c := NewCreate(entities.StatusPending, testOptions())
		release := make(chan struct{})
		f := ImageFromBytes("late.png", pngBytes(32))
		open := f.Open
		f.Open = func() (io.ReadCloser, error) {
			<-release
			return open()
		}

		b, err := c.Attach([]ImageFile{f})
		require.NoError(t, err)
		c.Cancel()
		close(release)
		b.Wait()

		assert.Empty(t, c.Snapshot().Images)
		_, err = c.Attach([]ImageFile{f})
		assert.ErrorIs(t, err, ErrControllerClosed)
	})
}

func TestController_RemoveImage(t *testing.T) {
	existing := entities.ServiceOrder{ID: "x", Images: []string{"a", "b", "c"}}
	c := NewEdit(existing, testOptions())

	require.NoError(t, c.RemoveImage(1))
	assert.Equal(t, []string{"a", "c"}, c.Snapshot().Images)
	assert.Equal(t, []string{"a", "b", "c"}, existing.Images)

	assert.ErrorIs(t, c.RemoveImage(5), ErrImageIndex)
	assert.ErrorIs(t, c.RemoveImage(-1), ErrImageIndex)
}

func TestController_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("create appends one record", func(t *testing.T) {
		store := newStore(t, []entities.ServiceOrder{{ID: "old", CustomerName: "Ana", CreatedAt: fixedNow.Add(-time.Hour)}})
		c := NewCreate(entities.StatusPending, testOptions())
		require.NoError(t, c.Apply(Input{CustomerName: str("Maria"), EquipmentBrand: str("Samsung")}))

		saved, err := c.Submit(ctx, store)
		require.NoError(t, err)

		assert.NotEmpty(t, saved.ID)
		assert.True(t, c.Closed())
		all := store.List(ctx, usecase.Query{})
		require.Len(t, all, 2)
		assert.Equal(t, saved.ID, all[0].ID)
	})

	t.Run("edit keeps id and creation time", func(t *testing.T) {
		created := fixedNow.Add(-48 * time.Hour)
		existing := entities.ServiceOrder{
			ID: "keep-me", CustomerName: "Ana", EquipmentBrand: "LG",
			Status: entities.StatusPending, CreatedAt: created, Images: []string{},
		}
		store := newStore(t, []entities.ServiceOrder{existing})

		c := NewEdit(existing, testOptions())
		require.NoError(t, c.Apply(Input{Status: str("Concluído")}))
		saved, err := c.Submit(ctx, store)
		require.NoError(t, err)

		assert.Equal(t, "keep-me", saved.ID)
		assert.True(t, saved.CreatedAt.Equal(created))
		all := store.List(ctx, usecase.Query{})
		require.Len(t, all, 1)
		assert.Equal(t, entities.StatusCompleted, all[0].Status)
	})

	t.Run("missing required fields block the commit", func(t *testing.T) {
		store := newStore(t, nil)
		c := NewCreate(entities.StatusPending, testOptions())
		require.NoError(t, c.Apply(Input{CustomerName: str("   ")}))

		_, err := c.Submit(ctx, store)
		require.ErrorIs(t, err, ErrRequiredField)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ElementsMatch(t, []string{"customerName", "equipmentBrand"}, verr.Fields)

		assert.False(t, c.Closed())
		assert.Empty(t, store.List(ctx, usecase.Query{}))
	})

	t.Run("malformed date", func(t *testing.T) {
		store := newStore(t, nil)
		c := NewCreate(entities.StatusPending, testOptions())
		require.NoError(t, c.Apply(Input{
			CustomerName: str("Maria"), EquipmentBrand: str("Arno"), DeliveryDate: str("05/03/2024"),
		}))
		_, err := c.Submit(ctx, store)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"deliveryDate"}, verr.Fields)
	})

	t.Run("edit of a record deleted meanwhile", func(t *testing.T) {
		store := newStore(t, nil)
		c := NewEdit(entities.ServiceOrder{ID: "gone", CustomerName: "Ana", EquipmentBrand: "LG"}, testOptions())
		_, err := c.Submit(ctx, store)
		assert.ErrorIs(t, err, usecase.ErrServiceOrderNotFound)
		assert.False(t, c.Closed())
	})

	t.Run("second submit is rejected", func(t *testing.T) {
		store := newStore(t, nil)
		c := NewCreate(entities.StatusPending, testOptions())
		require.NoError(t, c.Apply(Input{CustomerName: str("Maria"), EquipmentBrand: str("Arno")}))
		_, err := c.Submit(ctx, store)
		require.NoError(t, err)

		_, err = c.Submit(ctx, store)
		assert.ErrorIs(t, err, ErrControllerClosed)
		assert.ErrorIs(t, c.Apply(Input{CustomerName: str("x")}), ErrControllerClosed)
		assert.Len(t, store.List(ctx, usecase.Query{}), 1)
	})
}

func TestDrafts(t *testing.T) {
	d := NewDrafts(DraftsOptions{})
	c := NewCreate(entities.StatusPending, testOptions())
	id := d.Open(c)

	got, err := d.Get(id)
	require.NoError(t, err)
	assert.Same(t, c, got)

	require.NoError(t, d.Close(id))
	assert.True(t, c.Closed())
	_, err = d.Get(id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.ErrorIs(t, d.Close(id), ErrDraftNotFound)
}

func TestDrafts_ConcurrentOpen(t *testing.T) {
	d := NewDrafts(DraftsOptions{})
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Open(NewCreate(entities.StatusPending, testOptions()))
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, d.Len())
}

func TestDrafts_IdleExpiry(t *testing.T) {
	clock := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	d := NewDrafts(DraftsOptions{TTL: time.Hour, Now: func() time.Time { return clock }})

	used := NewCreate(entities.StatusPending, testOptions())
	idle := NewCreate(entities.StatusPending, testOptions())
	usedID := d.Open(used)
	idleID := d.Open(idle)

	clock = clock.Add(40 * time.Minute)
	_, err := d.Get(usedID)
	require.NoError(t, err)

	clock = clock.Add(40 * time.Minute)
	_, err = d.Get(idleID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.True(t, idle.Closed(), "expired draft is canceled")

	got, err := d.Get(usedID)
	require.NoError(t, err)
	assert.Same(t, used, got)

	clock = clock.Add(2 * time.Hour)
	d.Open(NewCreate(entities.StatusPending, testOptions()))
	assert.Equal(t, 1, d.Len(), "opening sweeps expired drafts")
	assert.True(t, used.Closed())
}

func TestDrafts_CapEvictsLeastRecentlyUsed(t *testing.T) {
	clock := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	d := NewDrafts(DraftsOptions{Max: 2, Now: func() time.Time { return clock }})

	first := NewCreate(entities.StatusPending, testOptions())
	second := NewCreate(entities.StatusPending, testOptions())
	firstID := d.Open(first)
	clock = clock.Add(time.Minute)
	secondID := d.Open(second)

	clock = clock.Add(time.Minute)
	_, err := d.Get(firstID)
	require.NoError(t, err)

	clock = clock.Add(time.Minute)
	d.Open(NewCreate(entities.StatusPending, testOptions()))

	assert.Equal(t, 2, d.Len())
	assert.True(t, second.Closed())
	assert.False(t, first.Closed())
	_, err = d.Get(secondID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestReadDataURL_Prefix(t *testing.T) {
	url, warn := readDataURL(ImageFromBytes("x.png", pngBytes(16)), DefaultMaxImageBytes)
	require.Nil(t, warn)
	assert.True(t, bytes.HasPrefix([]byte(url), []byte("data:image/png;base64,")))
}
