package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-api/internal/api/handler/router"
	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/ledger-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ledger-api/internal/usecases/bookkeeping"
	bookmocks "github.com/vfg2006/ledger-api/internal/usecases/bookkeeping/mocks"
	"github.com/vfg2006/ledger-api/internal/usecases/reporting"
	reportmocks "github.com/vfg2006/ledger-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/ledger-api/pkg/apiErrors"
	"github.com/vfg2006/ledger-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var member = &domain.Claims{UserID: 7, UserName: "Sato", UserRoleID: domain.RoleMember}

// serve executa a requisição pelo router, com as claims já no contexto
func serve(routes []router.Route, req *http.Request, claims *domain.Claims) *httptest.ResponseRecorder {
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(fakePinger{}), httptest.NewRequest(http.MethodGet, "/healthcheck", nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = serve(Healthcheck(fakePinger{err: errors.New("connection refused")}), httptest.NewRequest(http.MethodGet, "/healthcheck", nil), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrServiceUnavailable, decodeError(t, rec).Code)
}

func TestRouter_NotFoundUsesAPIError(t *testing.T) {
	rec := serve(Healthcheck(nil), httptest.NewRequest(http.MethodGet, "/v1/unknown", nil), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)

	rec = serve(Healthcheck(nil), httptest.NewRequest(http.MethodPost, "/healthcheck", nil), nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().LoginUser(gomock.Any(), "sato@example.com", "password123").Return("signed-token", nil)

	body := strings.NewReader(`{"email":"sato@example.com","password":"password123"}`)
	rec := serve(Authentication(auth), httptest.NewRequest(http.MethodPost, "/v1/login", body), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed-token"}`, rec.Body.String())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))

	body := strings.NewReader(`{"email":"sato@example.com","password":"wrong"}`)
	rec := serve(Authentication(auth), httptest.NewRequest(http.MethodPost, "/v1/login", body), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
}

func TestRegister_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	rec := serve(Authentication(auth), httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader("{")), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
}

func TestGetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().GetUserProfile(gomock.Any(), 7).Return(&domain.User{ID: 7, Name: "Sato", Email: "sato@example.com", Active: true, RoleID: domain.RoleMember}, nil)

	rec := serve(Authentication(auth), httptest.NewRequest(http.MethodGet, "/v1/me", nil), member)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"sato@example.com"`)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = serve(Authentication(auth), httptest.NewRequest(http.MethodGet, "/v1/me", nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListEntries_PassesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	books := bookmocks.NewMockBookkeeper(ctrl)

	expected := domain.FilterConfig{
		Start:       "2024-01-01",
		End:         "2024-01-31",
		Customer:    "株式会社A",
		Kind:        domain.EntryKindSales,
		AmountRange: "100k-300k",
	}
	books.EXPECT().ListEntries(gomock.Any(), 7, expected).Return(nil, nil)

	target := "/v1/entries?start=2024-01-01&end=2024-01-31&customer=%E6%A0%AA%E5%BC%8F%E4%BC%9A%E7%A4%BEA&entry_type=sales&amount_range=100k-300k"
	rec := serve(Entries(books), httptest.NewRequest(http.MethodGet, target, nil), member)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListEntries_InvalidFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		code  string
	}{
		{name: "end before start", query: "start=2024-02-01&end=2024-01-01", code: apiErrors.ErrInvalidDateRange},
		{name: "bad date", query: "start=2024-13-01", code: apiErrors.ErrInvalidFormat},
		{name: "unknown kind", query: "entry_type=refund", code: apiErrors.ErrInvalidFormat},
		{name: "unknown bracket", query: "amount_range=huge", code: apiErrors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			books := bookmocks.NewMockBookkeeper(ctrl)

			rec := serve(Entries(books), httptest.NewRequest(http.MethodGet, "/v1/entries?"+tt.query, nil), member)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestCreateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	books := bookmocks.NewMockBookkeeper(ctrl)

	deposit := "2024-02-10"
	books.EXPECT().CreateEntry(gomock.Any(), 7, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, input domain.EntryInput) (*domain.Entry, error) {
			assert.Equal(t, "株式会社A", input.CustomerName)
			assert.Equal(t, "sales", input.Kind)
			require.NotNil(t, input.Amount)
			assert.True(t, input.Amount.Equal(decimal.NewFromInt(150000)))
			return &domain.Entry{ID: "abc123", UserID: 7, CustomerName: input.CustomerName, Kind: domain.EntryKindSales, Amount: *input.Amount, OccurredOn: input.OccurredOn, DepositDueOn: &deposit}, nil
		})

	body := strings.NewReader(`{"customer_name":"株式会社A","occurred_on":"2024-01-15","entry_type":"sales","amount":150000,"deposit_due_on":"2024-02-10"}`)
	rec := serve(Entries(books), httptest.NewRequest(http.MethodPost, "/v1/entries", body), member)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"abc123"`)
}

func TestCreateEntry_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	books := bookmocks.NewMockBookkeeper(ctrl)

	books.EXPECT().CreateEntry(gomock.Any(), 7, gomock.Any()).
		Return(nil, &bookkeeping.EntryError{Err: bookkeeping.ErrDepositDueRequired, Code: apiErrors.ErrInvalidEntry})

	body := strings.NewReader(`{"customer_name":"株式会社A","occurred_on":"2024-01-15","entry_type":"sales","amount":1000}`)
	rec := serve(Entries(books), httptest.NewRequest(http.MethodPost, "/v1/entries", body), member)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrInvalidEntry, apiErr.Code)
	assert.Equal(t, bookkeeping.ErrDepositDueRequired.Error(), apiErr.Message)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	books := bookmocks.NewMockBookkeeper(ctrl)

	books.EXPECT().UpdateEntry(gomock.Any(), 7, "missing", gomock.Any()).
		Return(nil, &bookkeeping.EntryError{Err: bookkeeping.ErrEntryNotFound, Code: apiErrors.ErrEntryNotFound, EntryID: "missing"})

	body := strings.NewReader(`{"customer_name":"A","occurred_on":"2024-01-15","entry_type":"cost","amount":1000,"payment_date":"2024-01-20"}`)
	rec := serve(Entries(books), httptest.NewRequest(http.MethodPut, "/v1/entries/missing", body), member)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrEntryNotFound, apiErr.Code)
	assert.Equal(t, map[string]any{"entry_id": "missing"}, apiErr.Details)
}

func TestDeleteEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	books := bookmocks.NewMockBookkeeper(ctrl)

	books.EXPECT().DeleteEntry(gomock.Any(), 7, "abc123").Return(nil)

	rec := serve(Entries(books), httptest.NewRequest(http.MethodDelete, "/v1/entries/abc123", nil), member)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestChangeSettlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	books := bookmocks.NewMockBookkeeper(ctrl)

	books.EXPECT().ChangeSettlement(gomock.Any(), 7, "abc123", domain.SettlementCompleted).
		Return(&domain.Entry{ID: "abc123", Kind: domain.EntryKindSales, DepositCompleted: true}, nil)

	rec := serve(Entries(books), httptest.NewRequest(http.MethodPatch, "/v1/entries/abc123/settlement", strings.NewReader(`{"status":"completed"}`)), member)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deposit_completed":true`)

	rec = serve(Entries(books), httptest.NewRequest(http.MethodPatch, "/v1/entries/abc123/settlement", strings.NewReader(`{"status":"done"}`)), member)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestListCustomers_DatabaseErrorHidesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	books := bookmocks.NewMockBookkeeper(ctrl)

	books.EXPECT().ListCustomers(gomock.Any(), 7).
		Return(nil, &bookkeeping.EntryError{Err: bookkeeping.ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Details: "pq: relation does not exist"})

	rec := serve(Entries(books), httptest.NewRequest(http.MethodGet, "/v1/customers", nil), member)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestListAmountBrackets(t *testing.T) {
	ctrl := gomock.NewController(t)
	books := bookmocks.NewMockBookkeeper(ctrl)

	rec := serve(Entries(books), httptest.NewRequest(http.MethodGet, "/v1/amount-ranges", nil), member)

	assert.Equal(t, http.StatusOK, rec.Code)
	var brackets []domain.AmountBracket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &brackets))
	require.Len(t, brackets, 5)
	assert.Equal(t, "under-100k", brackets[1].ID)
}

func TestGetReport_DefaultsViewAndPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportmocks.NewMockReporter(ctrl)

	expected := reporting.ReportRequest{
		Filters:     domain.FilterConfig{Customer: "all"},
		View:        domain.ViewCustomer,
		Granularity: domain.GranularityMonth,
	}
	reporter.EXPECT().GetReport(gomock.Any(), 7, expected).Return(&domain.Report{View: domain.ViewCustomer, ViewTitle: "取引先ごと"}, nil)

	rec := serve(Reports(reporter), httptest.NewRequest(http.MethodGet, "/v1/reports?customer=all&view=bogus", nil), member)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"view_title":"取引先ごと"`)
}

func TestGetReport_PeriodView(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportmocks.NewMockReporter(ctrl)

	reporter.EXPECT().GetReport(gomock.Any(), 7, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, req reporting.ReportRequest) (*domain.Report, error) {
			assert.Equal(t, domain.ViewPeriod, req.View)
			assert.Equal(t, domain.GranularityWeek, req.Granularity)
			return &domain.Report{View: req.View, Granularity: req.Granularity}, nil
		})

	rec := serve(Reports(reporter), httptest.NewRequest(http.MethodGet, "/v1/reports?view=period&period=week", nil), member)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMonthlySummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportmocks.NewMockReporter(ctrl)

	reporter.EXPECT().GetMonthlySummaries(gomock.Any(), 7, 2024).Return([]domain.MonthlySummary{{Period: "2024-01", EntryCount: 3}}, nil)

	rec := serve(Reports(reporter), httptest.NewRequest(http.MethodGet, "/v1/summaries/monthly?year=2024", nil), member)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"period":"2024-01"`)

	rec = serve(Reports(reporter), httptest.NewRequest(http.MethodGet, "/v1/summaries/monthly?year=abc", nil), member)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMonthlySummaries_InvalidYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportmocks.NewMockReporter(ctrl)

	reporter.EXPECT().GetMonthlySummaries(gomock.Any(), 7, 0).
		Return(nil, &reporting.ReportError{Err: reporting.ErrInvalidYear, Code: apiErrors.ErrInvalidFormat})

	rec := serve(Reports(reporter), httptest.NewRequest(http.MethodGet, "/v1/summaries/monthly?year=0", nil), member)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

type fakeTrigger struct {
	started bool
	calls   int
}

func (f *fakeTrigger) TriggerManualSync() bool {
	f.calls++
	return f.started
}

func (f *fakeTrigger) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.started}
}

func TestRunCronJob(t *testing.T) {
	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	trigger := &fakeTrigger{started: true}
	routes := CronJobs(CronJobServices{MonthlySummarySync: trigger})

	rec := serve(routes, httptest.NewRequest(http.MethodPost, "/v1/cron/monthly-summaries/run", nil), admin)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, trigger.calls)

	rec = serve(routes, httptest.NewRequest(http.MethodPost, "/v1/cron/unknown/run", nil), admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(routes, httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil), member)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 1, trigger.calls)
}

func TestGetCronStatus(t *testing.T) {
	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	routes := CronJobs(CronJobServices{MonthlySummarySync: &fakeTrigger{}})

	rec := serve(routes, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil), admin)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"monthly-summaries":{"sync_running":true}}`, rec.Body.String())
}
