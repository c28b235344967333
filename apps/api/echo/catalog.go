package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dieti/studyplan/core/catalog"
	"github.com/dieti/studyplan/core/plan"
)

type catalogApi struct {
	svc *catalog.Service
}

func registerCatalogAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *catalog.Service) {
	api := catalogApi{svc: svc}

	cg := g.Group("/catalog")

	// un-authed endpoints: the catalog is public to students
	cg.GET("", api.overview)
	cg.GET("/paths", api.paths)
	cg.GET("/eligible", api.eligible)

	// coordinator endpoints
	ag := cg.Group("", jwt, coordinatorMiddleware())
	ag.PUT("/subpaths", api.replaceSubPath)
	ag.POST("/free-choice", api.addFreeChoice)
}

// Handlers

func (api *catalogApi) overview(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Overview())
}

func (api *catalogApi) paths(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Paths())
}

type eligibleRequest struct {
	Mode     plan.Mode `query:"mode"`
	MainPath string    `query:"main_path"`
	SubPath  string    `query:"sub_path"`
}

type eligibleResponse struct {
	SubPath string           `json:"sub_path"`
	Courses []catalog.Course `json:"courses"`
}

func (api *catalogApi) eligible(ctx echo.Context) error {
	var data eligibleRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to eligibleRequest")
	}
	if data.Mode == "" {
		data.Mode = plan.ModeStandard
	}

	pair, err := api.svc.SubPath(data.MainPath, data.SubPath)
	if err != nil {
		return err
	}
	curricular := pair.Courses()
	if data.Mode.IsPSI() {
		curricular = curricular[:1]
	}

	return ctx.JSON(http.StatusOK, eligibleResponse{
		SubPath: data.SubPath,
		Courses: api.svc.Eligible(data.SubPath, curricular),
	})
}

func (api *catalogApi) replaceSubPath(ctx echo.Context) error {
	var data catalog.NewSubPath
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubPath")
	}
	if err := api.svc.ReplaceSubPath(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Paths())
}

func (api *catalogApi) addFreeChoice(ctx echo.Context) error {
	var data catalog.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := api.svc.AddFreeChoiceCourse(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, data.Course())
}
