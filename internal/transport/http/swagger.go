package http

import (
	"net/http"
	"os"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/artistdesk/artistdesk-api/internal/util"
)

// RegisterSwagger serves the API document and the Swagger UI under
// /swagger. The YAML document at specPath is converted to JSON on
// first request and cached for the process lifetime.
func RegisterSwagger(e *echo.Echo, specPath string) {
	var (
		once    sync.Once
		spec    []byte
		loadErr error
	)

	e.GET("/swagger/doc.json", func(c echo.Context) error {
		once.Do(func() {
			data, err := os.ReadFile(specPath)
			if err != nil {
				loadErr = err
				return
			}
			spec, loadErr = yaml.YAMLToJSON(data)
		})
		if loadErr != nil {
			c.Logger().Errorf("swagger document: %v", loadErr)
			return c.JSON(http.StatusInternalServerError, util.Error("swagger document unavailable"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, spec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
