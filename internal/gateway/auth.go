package gateway

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

type Auth struct {
	c *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (g *Auth) Register(ctx context.Context, email, password, fullName string) (entity.AuthResult, error) {
	var res entity.AuthResult

	err := g.c.post(ctx, "/auth/register", registerRequest{Email: email, Password: password, FullName: fullName}, &res)

	return res, err
}

// Login returns *entity.RateLimitError with the server's retry delay when
// the account is temporarily locked.
func (g *Auth) Login(ctx context.Context, email, password string) (entity.AuthResult, error) {
	var res entity.AuthResult

	err := g.c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &res)

	return res, err
}

type Users struct {
	c *Client
}

func NewUsers(c *Client) *Users {
	return &Users{c: c}
}

func (g *Users) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User

	err := g.c.get(ctx, "/users", nil, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (g *Users) Delete(ctx context.Context, id uuid.UUID) error {
	return g.c.delete(ctx, "/users/"+id.String())
}
