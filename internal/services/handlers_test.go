package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/campus-exchange/campusmarket/internal/validation"
)

type storeMock struct {
	insertFn   func(ctx context.Context, s *Service) error
	listFromFn func(ctx context.Context, from string) ([]Service, error)
	listAllFn  func(ctx context.Context) ([]Service, error)
	bookFn     func(ctx context.Context, id string) (int64, error)
	existsFn   func(ctx context.Context, id string) (bool, error)
}

var _ Store = (*storeMock)(nil)

func (m *storeMock) Insert(ctx context.Context, s *Service) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, s)
}

func (m *storeMock) ListFrom(ctx context.Context, from string) ([]Service, error) {
	if m.listFromFn == nil {
		return nil, nil
	}
	return m.listFromFn(ctx, from)
}

func (m *storeMock) ListAll(ctx context.Context) ([]Service, error) {
	if m.listAllFn == nil {
		return nil, nil
	}
	return m.listAllFn(ctx)
}

func (m *storeMock) Book(ctx context.Context, id string) (int64, error) {
	if m.bookFn == nil {
		return 1, nil
	}
	return m.bookFn(ctx, id)
}

func (m *storeMock) Exists(ctx context.Context, id string) (bool, error) {
	if m.existsFn == nil {
		return true, nil
	}
	return m.existsFn(ctx, id)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreate_Valid(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var inserted *Service
	h := NewHandler(&storeMock{
		insertFn: func(ctx context.Context, s *Service) error {
			inserted = s
			return nil
		},
	})
	h.now = func() time.Time { return now }

	c, rec := newTestContext(http.MethodPost, "/services",
		`{"title":"Calculus Tutoring","category":"teaching","price":200,"available_date":"2024-05-02","start_time":"14:00","end_time":"16:00"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, inserted)
	require.True(t, inserted.IsAvailable)
	require.NotEmpty(t, inserted.ID)
}

func TestCreate_DateMustBeTomorrowOrLater(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	h := NewHandler(&storeMock{
		insertFn: func(ctx context.Context, s *Service) error {
			t.Fatal("insert must not be reached on invalid input")
			return nil
		},
	})
	h.now = func() time.Time { return now }

	for _, date := range []string{"2024-05-01", "2024-04-30", "2020-01-01"} {
		c, rec := newTestContext(http.MethodPost, "/services",
			`{"title":"Tutoring","category":"teaching","available_date":"`+date+`","start_time":"14:00","end_time":"16:00"}`)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusBadRequest, rec.Code, "date: %s", date)
	}
}

func TestCreate_Validation(t *testing.T) {
	h := NewHandler(&storeMock{})

	bad := []string{
		`{"category":"teaching","available_date":"2030-01-01","start_time":"14:00","end_time":"16:00"}`, // missing title
		`{"title":"x","category":"cleaning","available_date":"2030-01-01","start_time":"14:00","end_time":"16:00"}`,
		`{"title":"x","category":"teaching","available_date":"someday","start_time":"14:00","end_time":"16:00"}`,
		`{"title":"x","category":"teaching","available_date":"2030-01-01","end_time":"16:00"}`, // missing start
		`{"title":"x","category":"teaching","price":-1,"available_date":"2030-01-01","start_time":"14:00","end_time":"16:00"}`,
	}
	for _, body := range bad {
		c, rec := newTestContext(http.MethodPost, "/services", body)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestCreate_PriceOptional(t *testing.T) {
	var inserted *Service
	h := NewHandler(&storeMock{
		insertFn: func(ctx context.Context, s *Service) error {
			inserted = s
			return nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/services",
		`{"title":"Party Prep","category":"party_prep","available_date":"2030-01-01","start_time":"10:00","end_time":"12:00"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Nil(t, inserted.Price)
}

func TestBook_Success(t *testing.T) {
	var bookedID string
	h := NewHandler(&storeMock{
		bookFn: func(ctx context.Context, id string) (int64, error) {
			bookedID = id
			return 1, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/services/s1/book", "")
	c.SetParamNames("id")
	c.SetParamValues("s1")
	require.NoError(t, h.Book(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "s1", bookedID)
}

func TestBook_AlreadyBooked(t *testing.T) {
	h := NewHandler(&storeMock{
		bookFn: func(ctx context.Context, id string) (int64, error) {
			return 0, nil
		},
		existsFn: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/services/s1/book", "")
	c.SetParamNames("id")
	c.SetParamValues("s1")
	require.NoError(t, h.Book(c))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestBook_NotFound(t *testing.T) {
	h := NewHandler(&storeMock{
		bookFn: func(ctx context.Context, id string) (int64, error) {
			return 0, nil
		},
		existsFn: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/services/missing/book", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.Book(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList_QueriesFromToday(t *testing.T) {
	now := time.Date(2024, 5, 10, 23, 30, 0, 0, time.UTC)
	var requestedFrom string
	h := NewHandler(&storeMock{
		listFromFn: func(ctx context.Context, from string) ([]Service, error) {
			requestedFrom = from
			return []Service{
				{ID: "1", Title: "Tutoring", Category: "teaching", AvailableDate: "2024-05-11", IsAvailable: true},
				{ID: "2", Title: "Photo Shoot", Category: "photography", AvailableDate: "2024-05-12", IsAvailable: true},
			}, nil
		},
	})
	h.now = func() time.Time { return now }

	c, rec := newTestContext(http.MethodGet, "/services?category=photography", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "2024-05-10", requestedFrom)
	require.Contains(t, rec.Body.String(), `"id":"2"`)
	require.NotContains(t, rec.Body.String(), `"id":"1"`)
}
