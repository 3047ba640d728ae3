package subscriptions

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stash-api/internal/api/response"
	"stash-api/internal/domain/subscriptions"
)

func storeWithSubscription(t *testing.T) *fakeStore {
	t.Helper()
	store := newFakeStore()
	seedStore(store)
	store.subs[1] = &subscriptions.Subscription{
		ID: 1, UserID: 1, PlanID: 2, StorageSize: 100, Status: "pending",
	}
	store.nextSubID = 2
	return store
}

func Test_AttachOption_WithPerUserOption_StoresSnapshotPrice(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	recorder, envelope := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 1,
		"quantity": 5,
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, float64(1), data["subscriptionId"])
	assert.Equal(t, float64(1), data["optionId"])
	assert.Equal(t, float64(5), data["quantity"])
	assert.Equal(t, float64(500), data["price"])
}

func Test_AttachOption_WithFixedOption_PriceIgnoresQuantity(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	recorder, envelope := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 2,
		"quantity": 7,
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, float64(5000), data["price"])
}

func Test_AttachOption_WithZeroQuantity_ReturnsValidationError(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	recorder, envelope := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 1,
		"quantity": 0,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, response.CodeValidationError, envelope.Error.Code)
	assert.Empty(t, store.subOpts, "nothing may be priced or written for quantity 0")
}

func Test_AttachOption_WithUnknownSubscription_ReturnsNotFound(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	recorder, envelope := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/999/options", gin.H{
		"optionId": 1,
		"quantity": 1,
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Subscription not found", envelope.Error.Message)
}

func Test_AttachOption_WithUnknownOption_ReturnsNotFound(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	recorder, envelope := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 999,
		"quantity": 1,
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Option not found", envelope.Error.Message)
}

func Test_AttachOption_WithDuplicatePair_ReturnsConflict(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	first, _ := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 1,
		"quantity": 5,
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second, envelope := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 1,
		"quantity": 3,
	})

	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, response.CodeConflict, envelope.Error.Code)
	assert.Equal(t, "Option already added to this subscription", envelope.Error.Message)
}

func Test_ListOptions_ReturnsAttachmentsWithOptionDetails(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	attach, _ := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 3,
		"quantity": 50,
	})
	require.Equal(t, http.StatusCreated, attach.Code)

	recorder, envelope := doRequest(t, router, http.MethodGet, "/api/v1/subscriptions/1/options", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	entries := envelope.Data.([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, float64(500), entry["price"])
	option := entry["option"].(map[string]any)
	assert.Equal(t, "バックアップ", option["name"])
	assert.Equal(t, "PER_GB", option["priceType"])
}

func Test_ListOptions_WithUnknownSubscription_ReturnsNotFound(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	recorder, envelope := doRequest(t, router, http.MethodGet, "/api/v1/subscriptions/999/options", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, response.CodeNotFound, envelope.Error.Code)
}

// Changing the option's unit price after attach must not touch the stored
// snapshot: reads keep returning the price written at attach time.
func Test_ListOptions_AfterUnitPriceChange_KeepsStoredPrice(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	attach, _ := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 1,
		"quantity": 5,
	})
	require.Equal(t, http.StatusCreated, attach.Code)

	store.options[1].UnitPrice = decimal.NewFromInt(200)

	recorder, envelope := doRequest(t, router, http.MethodGet, "/api/v1/subscriptions/1/options", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	entries := envelope.Data.([]any)
	entry := entries[0].(map[string]any)
	assert.Equal(t, float64(500), entry["price"])
}

func Test_UpdateOptionQuantity_RecomputesPriceFromCurrentOption(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	attach, _ := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 3, // PER_GB, unit price 10
		"quantity": 50,
	})
	require.Equal(t, http.StatusCreated, attach.Code)

	recorder, envelope := doRequest(t, router, http.MethodPut, "/api/v1/subscriptions/1/options/3", gin.H{
		"quantity": 100,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, float64(100), data["quantity"])
	assert.Equal(t, float64(1000), data["price"])
}

func Test_UpdateOptionQuantity_WithFixedOption_PriceStaysFlat(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	attach, _ := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 2,
		"quantity": 1,
	})
	require.Equal(t, http.StatusCreated, attach.Code)

	recorder, envelope := doRequest(t, router, http.MethodPut, "/api/v1/subscriptions/1/options/2", gin.H{
		"quantity": 9,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, float64(5000), data["price"])
}

func Test_UpdateOptionQuantity_WithZeroQuantity_ReturnsValidationError(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	recorder, envelope := doRequest(t, router, http.MethodPut, "/api/v1/subscriptions/1/options/1", gin.H{
		"quantity": 0,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, response.CodeValidationError, envelope.Error.Code)
}

func Test_UpdateOptionQuantity_WithUnknownPair_ReturnsNotFound(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	recorder, envelope := doRequest(t, router, http.MethodPut, "/api/v1/subscriptions/1/options/3", gin.H{
		"quantity": 10,
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Subscription option not found", envelope.Error.Message)
}

func Test_RemoveOption_DeletesAttachment(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	attach, _ := doRequest(t, router, http.MethodPost, "/api/v1/subscriptions/1/options", gin.H{
		"optionId": 1,
		"quantity": 5,
	})
	require.Equal(t, http.StatusCreated, attach.Code)

	recorder, envelope := doRequest(t, router, http.MethodDelete, "/api/v1/subscriptions/1/options/1", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, envelope.Success)
	assert.Empty(t, store.subOpts)
}

func Test_RemoveOption_WithUnknownPair_ReturnsNotFound(t *testing.T) {
	store := storeWithSubscription(t)
	router := createSubscriptionTestRouter(store)

	recorder, envelope := doRequest(t, router, http.MethodDelete, "/api/v1/subscriptions/1/options/1", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Subscription option not found", envelope.Error.Message)
}
