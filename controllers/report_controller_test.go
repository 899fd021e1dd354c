package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-backend/services/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReservationPage(t *testing.T) {
	page, pages, err := parseReservationPage("")
	require.NoError(t, err)
	assert.Zero(t, page)
	assert.Nil(t, pages)

	page, pages, err = parseReservationPage("3")
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Nil(t, pages)

	page, pages, err = parseReservationPage(`{"7": 2, "9": 4}`)
	require.NoError(t, err)
	assert.Zero(t, page)
	assert.Equal(t, map[uint]int{7: 2, 9: 4}, pages)

	for _, bad := range []string{"0", "two", `{"7": 0}`, `{"x": 1}`, `{"7":`} {
		_, _, err := parseReservationPage(bad)
		assert.ErrorIs(t, err, report.ErrInvalidPagination, bad)
	}
}

func testContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestParseReportFilters(t *testing.T) {
	c := testContext("propertyId=4&startDate=2024-03-01&endDate=2024-03-31&reservationStatus=confirmed&customerName=ali&city=Denpasar")
	f, err := parseReportFilters(c)
	require.NoError(t, err)
	require.NotNil(t, f.PropertyID)
	assert.Equal(t, uint(4), *f.PropertyID)
	assert.Nil(t, f.RoomTypeID)
	require.NotNil(t, f.StartDate)
	require.NotNil(t, f.EndDate)
	assert.Equal(t, "CONFIRMED", string(f.ReservationStatus))
	assert.Equal(t, "ali", f.CustomerName)
	assert.Equal(t, "Denpasar", f.City)

	_, err = parseReportFilters(testContext("endDate=yesterday"))
	assert.ErrorIs(t, err, report.ErrInvalidDate)
}

func TestParseReportOptions(t *testing.T) {
	o, err := parseReportOptions(testContext("page=2&pageSize=5&reservationPageSize=3&sortBy=revenue&sortDir=desc&fetchAllData=true&search=villa"))
	require.NoError(t, err)
	assert.Equal(t, report.Options{
		Page:                2,
		PageSize:            5,
		ReservationPageSize: 3,
		SortBy:              "revenue",
		SortDir:             "desc",
		Search:              "villa",
		FetchAllData:        true,
	}, o)

	_, err = parseReportOptions(testContext("pageSize=-1"))
	assert.ErrorIs(t, err, report.ErrInvalidPagination)
}

func TestRespondServiceErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{report.ErrNotOwned, http.StatusForbidden},
		{report.ErrNotFound, http.StatusNotFound},
		{report.ErrInvalidDate, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondServiceError(c, tt.err)
		assert.Equal(t, tt.want, w.Code, tt.err.Error())
	}
}
