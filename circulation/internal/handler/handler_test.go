package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/library-circulation/circulation/internal/handler/mocks"
)

var (
	authCfg = auth.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
	member  = auth.Principal{ReaderID: 7, Username: "alice", Role: auth.RoleMember}
	staff   = auth.Principal{ReaderID: 1, Username: "admin", Role: auth.RoleStaff}
)

type mocks struct {
	circulation *service_mocks.MockCirculationService
	catalog     *service_mocks.MockCatalogService
	reader      *service_mocks.MockReaderService
}

func newRouter(t *testing.T) (*echo.Echo, mocks) {
	t.Helper()
	c := gomock.NewController(t)
	m := mocks{
		circulation: service_mocks.NewMockCirculationService(c),
		catalog:     service_mocks.NewMockCatalogService(c),
		reader:      service_mocks.NewMockReaderService(c),
	}
	h := handler.New(handler.Services{
		Circulation: m.circulation,
		Catalog:     m.catalog,
		Reader:      m.reader,
	}, authCfg, 100, zap.NewNop())
	return h.NewRouter(), m
}

func bearer(t *testing.T, p auth.Principal) string {
	t.Helper()
	token, _, err := auth.IssueToken(authCfg, p, time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func do(e *echo.Echo, method, target, authorization, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		r.Header.Set(echo.HeaderAuthorization, authorization)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Borrow(t *testing.T) {
	t.Parallel()
	due := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	borrow := model.Borrow{
		ID:         3,
		ReaderID:   member.ReaderID,
		BookID:     5,
		BookTitle:  "Dune",
		BorrowedAt: due.Add(-7 * 24 * time.Hour),
		DueDate:    &due,
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name          string
		target        string
		authorization string
		mockBehavior  mockBehavior
		response      response
	}{
		{
			name:          "ok",
			target:        "/api/v1/books/5/borrow",
			authorization: bearer(t, member),
			mockBehavior: func(m mocks) {
				m.circulation.EXPECT().BorrowSingle(gomock.Any(), member, int64(5)).Return(borrow, nil)
			},
			response: response{expectedCode: http.StatusCreated, expectedBody: mustJSON(t, borrow)},
		},
		{
			name:          "err. unavailable",
			target:        "/api/v1/books/5/borrow",
			authorization: bearer(t, member),
			mockBehavior: func(m mocks) {
				m.circulation.EXPECT().BorrowSingle(gomock.Any(), member, int64(5)).Return(model.Borrow{}, errs.ErrUnavailable)
			},
			response: response{expectedCode: http.StatusConflict, expectedBody: `{"message":"book is not available"}`},
		},
		{
			name:          "err. not found",
			target:        "/api/v1/books/9/borrow",
			authorization: bearer(t, member),
			mockBehavior: func(m mocks) {
				m.circulation.EXPECT().BorrowSingle(gomock.Any(), member, int64(9)).Return(model.Borrow{}, errs.ErrNotFound)
			},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"not found"}`},
		},
		{
			name:          "err. conflict after retries",
			target:        "/api/v1/books/5/borrow",
			authorization: bearer(t, member),
			mockBehavior: func(m mocks) {
				m.circulation.EXPECT().BorrowSingle(gomock.Any(), member, int64(5)).Return(model.Borrow{}, errs.ErrConflict)
			},
			response: response{expectedCode: http.StatusConflict, expectedBody: `{"message":"concurrent update conflict, try again"}`},
		},
		{
			name:          "err. bad id",
			target:        "/api/v1/books/abc/borrow",
			authorization: bearer(t, member),
			mockBehavior:  func(m mocks) {},
			response:      response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"id is invalid"}`},
		},
		{
			name:         "err. no token",
			target:       "/api/v1/books/5/borrow",
			mockBehavior: func(m mocks) {},
			response:     response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"No Authorization Header"}`},
		},
		{
			name:          "err. internal",
			target:        "/api/v1/books/5/borrow",
			authorization: bearer(t, member),
			mockBehavior: func(m mocks) {
				m.circulation.EXPECT().BorrowSingle(gomock.Any(), member, int64(5)).Return(model.Borrow{}, errors.New("db internal"))
			},
			response: response{expectedCode: http.StatusInternalServerError, expectedBody: `{"message":"db internal"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newRouter(t)
			tt.mockBehavior(m)

			w := do(e, http.MethodPost, tt.target, tt.authorization, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "already returned", err: errs.ErrAlreadyReturned, expectedCode: http.StatusConflict, expectedBody: `{"message":"borrow already returned"}`},
		{name: "forbidden", err: errs.ErrForbidden, expectedCode: http.StatusForbidden, expectedBody: `{"message":"forbidden"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newRouter(t)
			m.circulation.EXPECT().ReturnSingle(gomock.Any(), member, int64(11)).Return(model.Borrow{}, tt.err)

			w := do(e, http.MethodPost, "/api/v1/borrows/11/return", bearer(t, member), "")

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Checkout(t *testing.T) {
	t.Parallel()
	due := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	res := model.CheckoutResult{
		Borrows: []model.Borrow{{ID: 1, ReaderID: member.ReaderID, BookID: 2, BookTitle: "Dune", DueDate: &due}},
		Skipped: []int64{4},
	}
	tests := []struct {
		name         string
		res          model.CheckoutResult
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "ok", res: res, expectedCode: http.StatusCreated, expectedBody: mustJSON(t, res)},
		{name: "empty bag", err: errs.ErrBagEmpty, expectedCode: http.StatusUnprocessableEntity, expectedBody: `{"message":"nothing to check out: bag is empty"}`},
		{name: "none available", err: errs.ErrNoneAvailable, expectedCode: http.StatusUnprocessableEntity, expectedBody: `{"message":"nothing to check out: no book in the bag is available"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newRouter(t)
			m.circulation.EXPECT().CheckoutBag(gomock.Any(), member).Return(tt.res, tt.err)

			w := do(e, http.MethodPost, "/api/v1/bag/checkout", bearer(t, member), "")

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Bag(t *testing.T) {
	t.Parallel()
	e, m := newRouter(t)
	gomock.InOrder(
		m.circulation.EXPECT().AddToBag(gomock.Any(), member, int64(3)).Return(true, nil),
		m.circulation.EXPECT().AddToBag(gomock.Any(), member, int64(3)).Return(false, nil),
	)
	m.circulation.EXPECT().GetBag(gomock.Any(), member).Return(model.Bag{ReaderID: member.ReaderID, BookIDs: []int64{3}}, nil)

	w := do(e, http.MethodPost, "/api/v1/bag/3", bearer(t, member), "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, `{"added":true}`, strings.Trim(w.Body.String(), "\n"))

	w = do(e, http.MethodPost, "/api/v1/bag/3", bearer(t, member), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"added":false}`, strings.Trim(w.Body.String(), "\n"))

	w = do(e, http.MethodGet, "/api/v1/bag", bearer(t, member), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"readerId":7,"bookIds":[3]}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_PayFine(t *testing.T) {
	t.Parallel()
	e, m := newRouter(t)
	m.circulation.EXPECT().PayFine(gomock.Any(), member, int64(4)).Return(model.PayFineResult{Paid: true, Amount: 30}, nil)

	w := do(e, http.MethodPost, "/api/v1/borrows/4/pay", bearer(t, member), "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"paid":true,"amount":30}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_StaffOnly(t *testing.T) {
	t.Parallel()
	e, m := newRouter(t)
	rep := model.Report{TotalBooks: 2, TopBooks: []model.BookStat{}, TopReaders: []model.ReaderStat{}}
	m.catalog.EXPECT().Report(gomock.Any(), staff, 3).Return(rep, nil)

	w := do(e, http.MethodGet, "/api/v1/reports?top=3", bearer(t, member), "")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, `{"message":"staff only"}`, strings.Trim(w.Body.String(), "\n"))

	w = do(e, http.MethodGet, "/api/v1/reports?top=3", bearer(t, staff), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, mustJSON(t, rep), strings.Trim(w.Body.String(), "\n"))

	w = do(e, http.MethodGet, "/api/v1/reports?top=x", bearer(t, staff), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	available := true
	list := model.ListBooks{
		Paging: model.Paging{Page: 1, PageSize: 10, TotalElements: 1},
		Items:  []model.Book{{ID: 1, Title: "Dune", Author: "Herbert", Genre: model.GenreScience, Available: true}},
	}
	tests := []struct {
		name         string
		query        string
		mockBehavior func(m mocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "ok",
			query: "?q=dune&genre=science&available=true&page=1&size=10",
			mockBehavior: func(m mocks) {
				m.catalog.EXPECT().ListBooks(gomock.Any(), model.BookFilter{
					Query: "dune", Genre: model.GenreScience, Available: &available, Page: 1, Size: 10,
				}).Return(list, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"id":1,"title":"Dune","author":"Herbert","description":"","genre":"science","available":true}]}`,
		},
		{
			name:         "err. page",
			query:        "?page=x",
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"page is invalid"}`,
		},
		{
			name:         "err. genre",
			query:        "?genre=poetry",
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"genre is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newRouter(t)
			tt.mockBehavior(m)

			w := do(e, http.MethodGet, "/api/v1/books"+tt.query, "", "")

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Auth(t *testing.T) {
	t.Parallel()
	e, m := newRouter(t)
	reader := model.Reader{ID: 7, Username: "alice", Role: auth.RoleMember}

	m.reader.EXPECT().Register(gomock.Any(), model.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	}, auth.RoleMember).Return(reader, nil)
	w := do(e, http.MethodPost, "/api/v1/auth/register", "",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(e, http.MethodPost, "/api/v1/auth/register", "", `{"username":"al","password":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	m.reader.EXPECT().Authenticate(gomock.Any(), model.Credentials{Username: "alice", Password: "secret1"}).Return(reader, nil)
	w = do(e, http.MethodPost, "/api/v1/auth/token", "", `{"username":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var token model.Token
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	p, err := auth.ParseToken(authCfg, token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, member, p)

	m.reader.EXPECT().Authenticate(gomock.Any(), model.Credentials{Username: "alice", Password: "wrong"}).Return(model.Reader{}, errs.ErrInvalidCredentials)
	w = do(e, http.MethodPost, "/api/v1/auth/token", "", `{"username":"alice","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"message":"invalid username or password"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	w := do(e, http.MethodGet, "/manage/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	book := model.Book{ID: 4, Title: "Dune", Author: "Frank Herbert", Genre: model.GenreScience, Available: true}
	tests := []struct {
		name         string
		body         string
		mockBehavior func(m mocks)
		expectedCode int
	}{
		{
			name: "ok",
			body: `{"title":"Dune","author":"Frank Herbert","genre":"science"}`,
			mockBehavior: func(m mocks) {
				m.catalog.EXPECT().CreateBook(gomock.Any(), staff, model.BookInput{
					Title: "Dune", Author: "Frank Herbert", Genre: model.GenreScience,
				}).Return(book, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "err. line break in title",
			body:         `{"title":"Dune\r\nBcc: victim@evil.example","author":"Frank Herbert"}`,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "err. line break in author",
			body:         `{"title":"Dune","author":"Frank\nHerbert"}`,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newRouter(t)
			tt.mockBehavior(m)

			w := do(e, http.MethodPost, "/api/v1/books", bearer(t, staff), tt.body)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
