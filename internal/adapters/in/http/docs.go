package http

import (
	"fmt"
	"sync"

	"courier/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc feeds the embedded OpenAPI document to swag, which serves it as
// /swagger/doc.json.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var (
	registerDocOnce sync.Once
	errRegisterDoc  error
)

// RegisterSwagger serves the Swagger UI for api/openapi.yml under /swagger/.
// swag keeps a process-wide registry, so the document is registered once.
func RegisterSwagger(e *echo.Echo) error {
	registerDocOnce.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			errRegisterDoc = fmt.Errorf("load openapi document: %w", err)
			return
		}
		data, err := swagger.MarshalJSON()
		if err != nil {
			errRegisterDoc = fmt.Errorf("marshal openapi document: %w", err)
			return
		}
		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	})
	if errRegisterDoc != nil {
		return errRegisterDoc
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
