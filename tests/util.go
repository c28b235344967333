// Package testutil provides shared helpers for package tests.
package testutil

import (
	"io"
	"log"
	"testing"

	"github.com/dieti/studyplan/core"
	"github.com/dieti/studyplan/core/catalog"
	"github.com/dieti/studyplan/core/plan"
	"github.com/dieti/studyplan/core/staff"
	documentsvc "github.com/dieti/studyplan/services/document"
	relaysvc "github.com/dieti/studyplan/services/relay"
	inmemcat "github.com/dieti/studyplan/storage/catalog/inmem"
)

func NewLogger() core.Logger {
	return core.NewStdLogger(log.New(io.Discard, "", 0))
}

// NewCatalogService returns a catalog service backed by a fresh seeded
// in-memory store.
func NewCatalogService() *catalog.Service {
	return catalog.NewService(inmemcat.NewRepository(inmemcat.Seed()), NewLogger())
}

// NewPlanService wires a plan service over a seeded catalog with the HTML
// renderer and a capturing relay; no mail service.
func NewPlanService() (*plan.Service, *relaysvc.CaptureRelay) {
	logger := NewLogger()
	relay := &relaysvc.CaptureRelay{}
	svc := plan.NewService(
		NewCatalogService(),
		documentsvc.NewHTMLRenderer(logger),
		relay,
		nil,
		logger,
		plan.DefaultPolicy(),
	)
	return svc, relay
}

// ConfigureCoordinator points the configured coordinator account at the
// given credentials for the duration of the test.
func ConfigureCoordinator(t *testing.T, name, email, pwd string) {
	t.Helper()

	hash, err := staff.HashPassword(pwd)
	if err != nil {
		t.Fatalf("ConfigureCoordinator(): %v", err)
	}

	prev := core.Conf.Coordinator
	core.Conf.Coordinator.Name = name
	core.Conf.Coordinator.Email = email
	core.Conf.Coordinator.PasswordHash = hash
	t.Cleanup(func() { core.Conf.Coordinator = prev })
}
