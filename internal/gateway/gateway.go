package gateway

import (
	"github.com/samandr77/microservices/alvaras/pkg/config"
)

// Gateway groups the typed clients sharing one HTTP client.
type Gateway struct {
	Companies  *Companies
	Permits    *Permits
	Activities *Activities
	Documents  *Documents
	Registry   *Registry
	Auth       *Auth
	Users      *Users
}

func New(cfg config.Console, tokens TokenSource) *Gateway {
	c := NewClient(cfg, tokens)

	return &Gateway{
		Companies:  NewCompanies(c),
		Permits:    NewPermits(c),
		Activities: NewActivities(c),
		Documents:  NewDocuments(c),
		Registry:   NewRegistry(c),
		Auth:       NewAuth(c),
		Users:      NewUsers(c),
	}
}
