package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemRequest struct {
	Name       string  `json:"name" validate:"required,max=255"`
	Price      float64 `json:"price" validate:"gte=0"`
	CategoryID int64   `json:"categoryId" validate:"required,gt=0"`
}

func newJSONRequest(body interface{}) *http.Request {
	reqBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestProperty_RequiredFieldValidationWorks(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(includeName bool, includeCategory bool) bool {
			reqMap := map[string]interface{}{"price": 10.5}
			if includeName {
				reqMap["name"] = "Pizza"
			}
			if includeCategory {
				reqMap["categoryId"] = 1
			}

			var item itemRequest
			err := DecodeAndValidate(newJSONRequest(reqMap), &item)

			if includeName && includeCategory {
				return err == nil
			}
			return err != nil
		},
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_NegativePricesAreRejected(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("price below zero fails validation", prop.ForAll(
		func(price float64) bool {
			var item itemRequest
			err := DecodeAndValidate(newJSONRequest(map[string]interface{}{
				"name":       "Soda",
				"price":      price,
				"categoryId": 2,
			}), &item)

			if price >= 0 {
				return err == nil
			}
			return err != nil
		},
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFormatValidationErrors_UsesJSONFieldNames(t *testing.T) {
	var item itemRequest
	err := DecodeAndValidate(newJSONRequest(map[string]interface{}{"name": "Soda"}), &item)
	require.Error(t, err)

	validationErrors := FormatValidationErrors(err)
	require.Len(t, validationErrors, 1)
	assert.Equal(t, "categoryId", validationErrors[0].Field)
	assert.Equal(t, "This field is required", validationErrors[0].Message)
}

func TestRespondWithDecodeError(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("{not json"))
		var item itemRequest
		err := DecodeAndValidate(req, &item)
		require.Error(t, err)

		w := httptest.NewRecorder()
		RespondWithDecodeError(w, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})

	t.Run("validation failure", func(t *testing.T) {
		var item itemRequest
		err := DecodeAndValidate(newJSONRequest(map[string]interface{}{"price": -1}), &item)
		require.Error(t, err)

		w := httptest.NewRecorder()
		RespondWithDecodeError(w, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_errors")
		assert.Contains(t, w.Body.String(), `"field":"name"`)
	})
}
