package backend

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/relabs-tech/neurai/core/store"
)

// parsePage reads the skip and limit query parameters. Missing parameters fall
// back to store.DefaultPage.
func parsePage(r *http.Request) (store.Page, error) {
	page := store.DefaultPage()
	query := r.URL.Query()
	for key, target := range map[string]*int{"skip": &page.Skip, "limit": &page.Limit} {
		value := query.Get(key)
		if value == "" {
			continue
		}
		i, err := strconv.Atoi(value)
		if err != nil {
			return page, fmt.Errorf("parameter '%s': not an integer", key)
		}
		if i < 0 {
			return page, fmt.Errorf("parameter '%s': must not be negative", key)
		}
		*target = i
	}
	return page, nil
}
