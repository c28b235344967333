// Package inmemcat keeps the whole course catalog in memory. Reads hand out
// the current snapshot; writes rebuild the affected structures and swap them
// in whole, so a concurrent reader never observes a half-applied edit.
package inmemcat

import (
	"sync"

	"github.com/dieti/studyplan/core/catalog"
)

type Repository struct {
	mu   sync.RWMutex
	snap catalog.Snapshot
}

var _ catalog.Repository = (*Repository)(nil)

func NewRepository(seed catalog.Snapshot) *Repository {
	return &Repository{snap: seed}
}

func (repo *Repository) Snapshot() catalog.Snapshot {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.snap
}

func (repo *Repository) ReplaceSubPath(mainPath, subPath string, pair catalog.SubPath) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	curricula := make(catalog.Curriculum, len(repo.snap.Curricula)+1)
	for main, subs := range repo.snap.Curricula {
		curricula[main] = subs
	}
	subs := make(map[string]catalog.SubPath, len(curricula[mainPath])+1)
	for sub, sp := range curricula[mainPath] {
		subs[sub] = sp
	}
	subs[subPath] = pair
	curricula[mainPath] = subs

	snap := repo.snap
	snap.Curricula = curricula
	repo.snap = snap
	return nil
}

func (repo *Repository) AddFreeChoiceCourse(c catalog.Course) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.snap.FreeChoice {
		if existing.NormName() == c.NormName() {
			return catalog.ErrFreeChoiceExists
		}
	}

	pool := make([]catalog.Course, 0, len(repo.snap.FreeChoice)+1)
	pool = append(pool, repo.snap.FreeChoice...)
	pool = append(pool, c)

	snap := repo.snap
	snap.FreeChoice = pool
	repo.snap = snap
	return nil
}
