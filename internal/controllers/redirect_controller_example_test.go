package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/golang/mock/gomock"

	"github.com/fsdevblog/shortlinks/internal/controllers/mocksctrl"
	"github.com/fsdevblog/shortlinks/internal/logs"
)

type mockTestHelper struct{}

func (h *mockTestHelper) Errorf(_ string, _ ...interface{}) {}
func (h *mockTestHelper) Fatalf(_ string, _ ...interface{}) {}

// ExampleRedirectController_Redirect переход по короткой ссылке.
func ExampleRedirectController_Redirect() {
	h := new(mockTestHelper)
	ctrl := gomock.NewController(h)
	defer ctrl.Finish()
	mockRedirector := mocksctrl.NewMockRedirector(ctrl)

	router := SetupRouter(RouterParams{
		Redirector: mockRedirector,
		BaseURL:    "http://test.com",
		JWTSecret:  []byte("secret"),
		Logger:     logs.MustNew(logs.WithLevel(logs.LevelTypeError)),
	})

	mockRedirector.EXPECT().
		Resolve(gomock.Any(), "count01", gomock.Any()).
		Return("https://example.com", nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/count01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	fmt.Printf("Status: %d\n", w.Code)
	fmt.Printf("Location: %s\n", w.Header().Get("Location"))

	// Output:
	// Status: 302
	// Location: https://example.com
}
