package echoapi

import (
	"encoding/base64"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dieti/studyplan/core/plan"
)

type planApi struct {
	svc *plan.Service
}

func registerPlanAPI(g *echo.Group, svc *plan.Service) {
	api := planApi{svc: svc}

	pg := g.Group("/plans")
	pg.POST("/validate", api.validate)
	pg.POST("/generate", api.generate)
}

// Handlers

func (api *planApi) validate(ctx echo.Context) error {
	var data plan.Selection
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Selection")
	}

	vp, err := api.svc.Validate(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, vp)
}

type generateResponse struct {
	FileName       string             `json:"file_name"`
	ContentType    string             `json:"content_type"`
	DocumentBase64 string             `json:"document_base64"`
	Plan           *plan.ValidatedPlan `json:"plan"`
}

func (api *planApi) generate(ctx echo.Context) error {
	var data plan.GenerateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerateRequest")
	}

	doc, vp, err := api.svc.Generate(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, generateResponse{
		FileName:       doc.FileName,
		ContentType:    doc.ContentType,
		DocumentBase64: base64.StdEncoding.EncodeToString(doc.Content),
		Plan:           vp,
	})
}
