package calculate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stash-api/internal/api/response"
	"stash-api/internal/domain/plans"
)

func init() {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
}

type fakePlanRepo struct {
	plans map[uint]*plans.Plan
}

func (f *fakePlanRepo) FindByID(id uint) (*plans.Plan, error) {
	if plan, ok := f.plans[id]; ok {
		return plan, nil
	}
	return nil, nil
}

func createCalculateTestRouter() *gin.Engine {
	repo := &fakePlanRepo{plans: map[uint]*plans.Plan{
		1: {
			ID: 1, Name: "個人",
			BasePrice:  decimal.NewFromInt(500),
			PricePerGb: decimal.NewFromInt(50),
		},
	}}

	router := gin.New()
	router.GET("/api/v1/calculate", NewHandler(repo).Calculate)
	return router
}

func getCalculate(t *testing.T, router *gin.Engine, query string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calculate"+query, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return recorder, envelope
}

func Test_Calculate_WithValidQuery_ReturnsQuote(t *testing.T) {
	router := createCalculateTestRouter()

	recorder, envelope := getCalculate(t, router, "?planId=1&storageSize=10")

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, float64(1), data["planId"])
	assert.Equal(t, "個人", data["planName"])
	assert.Equal(t, float64(10), data["storageSize"])
	assert.Equal(t, float64(500), data["basePrice"])
	assert.Equal(t, float64(500), data["storagePrice"])
	assert.Equal(t, float64(1000), data["totalPrice"])
}

func Test_Calculate_WithUnknownPlan_ReturnsNotFound(t *testing.T) {
	router := createCalculateTestRouter()

	recorder, envelope := getCalculate(t, router, "?planId=999&storageSize=10")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, response.CodeNotFound, envelope.Error.Code)
	assert.Equal(t, "Plan not found", envelope.Error.Message)
}

func Test_Calculate_WithStorageSizeOutOfRange_ReturnsValidationError(t *testing.T) {
	router := createCalculateTestRouter()

	for _, query := range []string{
		"?planId=1&storageSize=0",
		"?planId=1&storageSize=10001",
		"?planId=1&storageSize=-3",
	} {
		recorder, envelope := getCalculate(t, router, query)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "query %s", query)
		assert.Equal(t, response.CodeValidationError, envelope.Error.Code)
	}
}

func Test_Calculate_WithMissingParams_ReturnsValidationError(t *testing.T) {
	router := createCalculateTestRouter()

	recorder, envelope := getCalculate(t, router, "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, response.CodeValidationError, envelope.Error.Code)
}

func Test_Calculate_WithNonNumericParams_ReturnsValidationError(t *testing.T) {
	router := createCalculateTestRouter()

	recorder, envelope := getCalculate(t, router, "?planId=abc&storageSize=ten")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, response.CodeValidationError, envelope.Error.Code)
}
