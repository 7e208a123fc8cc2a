package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/gofrs/uuid/v5"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/gateway"
	"github.com/samandr77/microservices/alvaras/internal/session"
	"github.com/samandr77/microservices/alvaras/internal/store"
	"github.com/samandr77/microservices/alvaras/pkg/config"
	"github.com/samandr77/microservices/alvaras/pkg/logger"
)

type app struct {
	cfg       config.Console
	gw        *gateway.Gateway
	sess      *session.Session
	companies *store.Companies
	permits   *store.Permits
	out       io.Writer
	now       func() time.Time
}

type command struct {
	usage string
	// public commands run without a session.
	public bool
	run    func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"login":            {usage: "entrar com e-mail e senha", public: true, run: runLogin},
	"register":         {usage: "criar conta", public: true, run: runRegister},
	"logout":           {usage: "encerrar sessão", public: true, run: runLogout},
	"whoami":           {usage: "usuário da sessão", run: runWhoami},
	"dashboard":        {usage: "resumo e vencimentos próximos", run: runDashboard},
	"clientes":         {usage: "listar clientes", run: runCompanies},
	"cliente-novo":     {usage: "cadastrar cliente a partir do CNPJ", run: runCompanyCreate},
	"cliente-excluir":  {usage: "excluir cliente", run: runCompanyDelete},
	"alvaras":          {usage: "listar alvarás", run: runPermits},
	"alvara-novo":      {usage: "abrir alvará", run: runPermitCreate},
	"alvara-editar":    {usage: "editar alvará", run: runPermitEdit},
	"alvara-finalizar": {usage: "finalizar abertura", run: runPermitFinalize},
	"alvara-renovar":   {usage: "registrar ou finalizar renovação", run: runPermitRenew},
	"alvara-nota":      {usage: "adicionar observação", run: runPermitNote},
	"alvara-excluir":   {usage: "excluir alvará", run: runPermitDelete},
	"atividades":       {usage: "atividades secundárias do cliente", run: runActivities},
	"documentos":       {usage: "documentos do cliente", run: runDocuments},
	"documento-enviar": {usage: "enviar documento", run: runDocumentUpload},
	"documento-baixar": {usage: "baixar documento", run: runDocumentDownload},
	"cidades":          {usage: "municípios de uma UF", run: runCities},
	"exportar":         {usage: "exportar alvarás e clientes para XLSX", run: runExport},
	"usuarios":         {usage: "gerenciar usuários (admin)", run: runUsers},
}

type tokenFunc func() string

func (f tokenFunc) Token() string { return f() }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		printUsage(stderr)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "comando desconhecido: %s\n\n", args[0])
		printUsage(stderr)

		return 2
	}

	cfg, err := config.NewConsole(".env")
	if err != nil {
		fmt.Fprintf(stderr, "configuração: %s\n", err)
		return 1
	}

	logger.NewWithWriter(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}, logger.ParseLevel(cfg.LogLevel))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = logger.SetCommand(ctx, args[0])
	ctx = logger.SetRequestID(ctx, uuid.Must(uuid.NewV4()).String())

	a := newApp(cfg, stdout)

	if !cmd.public && !a.sess.IsAuthenticated() {
		fmt.Fprintln(stderr, entity.ErrSessionExpired.Error()+". Use: alvaras-console login")
		return 1
	}

	if u, err := a.sess.User(); err == nil {
		ctx = logger.SetUserID(ctx, u.ID.String())
	}

	slog.DebugContext(ctx, "command started", "args", len(args)-1)

	err = cmd.run(ctx, a, args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}

		slog.ErrorContext(ctx, "command failed", "error", err)
		printError(stderr, err)

		return 1
	}

	slog.DebugContext(ctx, "command finished")

	return 0
}

func newApp(cfg config.Console, out io.Writer) *app {
	var sess *session.Session

	gw := gateway.New(cfg, tokenFunc(func() string { return sess.Token() }))

	sess = session.New(gw.Auth, session.NewFileStorage(cfg.SessionFile), cfg.SessionTTL, time.Now)
	sess.Hydrate()

	return &app{
		cfg:       cfg,
		gw:        gw,
		sess:      sess,
		companies: store.NewCompanies(gw.Companies),
		permits:   store.NewPermits(gw.Permits, time.Now),
		out:       out,
		now:       time.Now,
	}
}

// author signs permit notes.
func (a *app) author() string {
	if a.cfg.Author != "" {
		return a.cfg.Author
	}

	u, err := a.sess.User()
	if err != nil {
		return "Sistema"
	}

	if u.FullName != "" {
		return u.FullName
	}

	return u.Email
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "uso: alvaras-console <comando> [opções]")
	fmt.Fprintln(w)

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	sort.Strings(names)

	tw := newTable(w)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, commands[name].usage)
	}

	_ = tw.Flush()
}

func printError(w io.Writer, err error) {
	var verr *entity.ValidationError

	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		fmt.Fprintln(w, "Corrija os campos:")

		fields := make([]string, 0, len(verr.Fields))
		for f := range verr.Fields {
			fields = append(fields, f)
		}

		sort.Strings(fields)

		for _, f := range fields {
			fmt.Fprintf(w, "  %s: %s\n", f, verr.Fields[f])
		}

		return
	}

	fmt.Fprintln(w, err.Error())
}
