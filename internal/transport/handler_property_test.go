package transport

import (
	"fmt"
	"net/http"
	"testing"

	"combo-catalog/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_CreatedProductsAreReadable(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a created product is returned unchanged by GET /product/{id}", prop.ForAll(
		func(name string, price float64, categoryID int64) bool {
			api := newTestAPI()

			w := api.do(http.MethodPost, "/product/create", map[string]interface{}{
				"name":       name,
				"price":      price,
				"categoryId": categoryID,
			})
			if w.Code != http.StatusCreated {
				return false
			}

			w = api.do(http.MethodGet, "/product/1", nil)
			if w.Code != http.StatusOK {
				return false
			}

			var product domain.Product
			decodeEnvelope(t, w, &product)
			return product.Name == name && product.Price == price && product.CategoryID == categoryID
		},
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 && len(s) <= 255 }),
		gen.Float64Range(0, 10000),
		gen.Int64Range(1, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_NonNumericIDsAreRejected(t *testing.T) {
	properties := gopter.NewProperties(nil)

	paths := []string{"/product/%s", "/product/delete/%s", "/combo/%s", "/combo/%s/products", "/category/%s"}

	properties.Property("non-numeric path ids answer 400", prop.ForAll(
		func(id string, pathIdx int) bool {
			api := newTestAPI()
			path := fmt.Sprintf(paths[pathIdx], id)

			method := http.MethodGet
			if pathIdx == 1 {
				method = http.MethodDelete
			}
			return api.do(method, path, nil).Code == http.StatusBadRequest
		},
		// the x prefix keeps ids clear of static route segments
		gen.AlphaString().Map(func(s string) string { return "x" + s }),
		gen.IntRange(0, len(paths)-1),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_MissingProductsAre404(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("unknown product ids answer 404 on read, update and delete", prop.ForAll(
		func(id int64) bool {
			api := newTestAPI()
			path := fmt.Sprintf("%d", id)

			return api.do(http.MethodGet, "/product/"+path, nil).Code == http.StatusNotFound &&
				api.do(http.MethodPut, "/product/update/"+path, map[string]string{"name": "x"}).Code == http.StatusNotFound &&
				api.do(http.MethodDelete, "/product/delete/"+path, nil).Code == http.StatusNotFound
		},
		gen.Int64Range(1, 1<<40),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
