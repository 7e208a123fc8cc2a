package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

const passwordEnv = "ALVARAS_PASSWORD"

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlags("login", a.out)
	email := fs.String("email", "", "e-mail")
	password := fs.String("senha", "", "senha (ou "+passwordEnv+")")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" {
		*password = os.Getenv(passwordEnv)
	}

	u, err := a.sess.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Bem-vindo, %s. Sessão válida até %s.\n", displayUser(u), a.sess.ExpiresAt().Format("15:04"))

	return nil
}

func runRegister(ctx context.Context, a *app, args []string) error {
	fs := newFlags("register", a.out)
	email := fs.String("email", "", "e-mail")
	password := fs.String("senha", "", "senha (ou "+passwordEnv+")")
	name := fs.String("nome", "", "nome completo")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" {
		*password = os.Getenv(passwordEnv)
	}

	u, err := a.sess.Register(ctx, *email, *password, *name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Conta criada para %s (%s).\n", displayUser(u), u.Role)

	return nil
}

func runLogout(_ context.Context, a *app, _ []string) error {
	err := a.sess.Logout()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Sessão encerrada.")

	return nil
}

func runWhoami(_ context.Context, a *app, _ []string) error {
	u, err := a.sess.User()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> %s, sessão até %s\n",
		displayUser(u), u.Email, u.Role, a.sess.ExpiresAt().Format("02/01/2006 15:04"))

	return nil
}

func runUsers(ctx context.Context, a *app, args []string) error {
	fs := newFlags("usuarios", a.out)
	remove := fs.String("excluir", "", "id do usuário a excluir")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *remove != "" {
		id, err := parseID("excluir", *remove)
		if err != nil {
			return err
		}

		err = a.gw.Users.Delete(ctx, id)
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, "Usuário excluído.")

		return nil
	}

	users, err := a.gw.Users.List(ctx)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tE-MAIL\tNOME\tPAPEL\tCRIADO EM")

	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.FullName, u.Role, u.CreatedAt.Format(dateLayout))
	}

	return tw.Flush()
}

func displayUser(u entity.User) string {
	if u.FullName != "" {
		return u.FullName
	}

	return u.Email
}
