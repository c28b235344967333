package main

import (
	"log"
	"os"

	echoapi "github.com/dieti/studyplan/apps/api/echo"
	"github.com/dieti/studyplan/core"
	"github.com/dieti/studyplan/core/catalog"
	"github.com/dieti/studyplan/core/plan"
	documentsvc "github.com/dieti/studyplan/services/document"
	emailsvc "github.com/dieti/studyplan/services/email"
	logsvc "github.com/dieti/studyplan/services/logger"
	relaysvc "github.com/dieti/studyplan/services/relay"
	inmemcat "github.com/dieti/studyplan/storage/catalog/inmem"
)

func main() {
	std := log.New(os.Stderr, "API : ", log.LstdFlags|log.Lshortfile)

	var logger core.Logger
	if core.Conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	} else {
		logger = core.NewStdLogger(std)
	}

	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	catRepo := inmemcat.NewRepository(inmemcat.Seed())
	catSvc := catalog.NewService(catRepo, logger)
	planSvc := plan.NewService(
		catSvc,
		documentsvc.NewHTMLRenderer(logger),
		relaysvc.NewAppsScriptRelay(logger),
		mailSvc,
		logger,
		plan.DefaultPolicy(),
	)

	app := echoapi.NewServer(
		&echoapi.Options{
			Address:    core.Conf.Server.Addr,
			Logger:     logger,
			CatalogSvc: catSvc,
			PlanSvc:    planSvc,
		},
	)
	app.Start()
}
