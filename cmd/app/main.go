package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lucidanalytics/lucid-analytics-client/internal/apiclient"
	"github.com/lucidanalytics/lucid-analytics-client/internal/config"
	"github.com/lucidanalytics/lucid-analytics-client/internal/localstore"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/adminpanel"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/authenticating"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/chatting"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/connecting"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/guard"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/insighting"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/settings"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/theming"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := newApp(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := application.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app concentra o grafo de serviços do painel; cada comando usa o recorte
// de que precisa
type app struct {
	cfg *config.Config

	store   *localstore.Store
	api     *apiclient.Client
	session *authenticating.Service

	meta     *connecting.MetaManager
	lucidbot *connecting.LucidBotManager
	dropi    *connecting.DropiManager
	poller   *connecting.StatusPoller

	insights *insighting.Service
	admin    *adminpanel.Service
	chat     *chatting.Service
	settings *settings.Service
	theme    *theming.Service
}

func newApp(cfg *config.Config) (*app, error) {
	store, err := localstore.New(cfg.Store.StatePath)
	if err != nil {
		return nil, err
	}

	api := apiclient.New(cfg.API.BaseURL, store)
	api.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "Sesión expirada. Inicia sesión de nuevo con `login`.")
	})

	session := authenticating.NewService(api, store)

	meta := connecting.NewMetaManager(api, cfg.Meta)
	lucidbot := connecting.NewLucidBotManager(api)
	dropi := connecting.NewDropiManager(api)

	confirm := &terminalConfirmer{in: bufio.NewReader(os.Stdin)}

	return &app{
		cfg:      cfg,
		store:    store,
		api:      api,
		session:  session,
		meta:     meta,
		lucidbot: lucidbot,
		dropi:    dropi,
		poller:   connecting.NewStatusPoller(meta, lucidbot, dropi, cfg.StatusPoll),
		insights: insighting.NewService(insighting.NewFetcher(api)),
		admin:    adminpanel.NewService(api, confirm),
		chat:     chatting.NewService(api, confirm, cfg.Chat.HistoryLimit),
		settings: settings.NewService(api, session),
		theme:    theming.NewService(store),
	}, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "register":
		return a.cmdRegister(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "dashboard":
		return a.cmdDashboard(ctx, rest)
	case "project":
		return a.cmdProject(ctx, rest)
	case "accounts":
		return a.cmdAccounts(ctx)
	case "connect":
		return a.cmdConnect(ctx, rest)
	case "disconnect":
		return a.cmdDisconnect(ctx, rest)
	case "status":
		return a.cmdStatus(ctx, rest)
	case "admin":
		return a.cmdAdmin(ctx, rest)
	case "chat":
		return a.cmdChat(ctx, rest)
	case "settings":
		return a.cmdSettings(ctx, rest)
	case "theme":
		return a.cmdTheme(rest)
	default:
		usage()
		return fmt.Errorf("comando desconhecido: %s", cmd)
	}
}

// requireSession faz o bootstrap e aplica o guard de rota protegida.
// adminOnly manda usuários não-admin de volta ao dashboard, como no painel.
func (a *app) requireSession(ctx context.Context, adminOnly bool) error {
	state := a.session.Bootstrap(ctx)

	isAdmin := false
	if user := a.session.CurrentUser(); user != nil {
		isAdmin = user.IsAdmin
	}

	decision := guard.Protected(state, isAdmin, adminOnly)
	switch decision.Kind {
	case guard.Redirect:
		if decision.To == guard.LoginPath {
			return fmt.Errorf("no has iniciado sesión. Usa `login -email ... -password ...`")
		}
		return fmt.Errorf("esta acción requiere rol de administrador")
	case guard.ShowLoading:
		// Bootstrap é síncrono no CLI; UNKNOWN aqui é um bug
		return fmt.Errorf("sessão em estado desconhecido após bootstrap")
	}

	return nil
}

// requireAnonymous espelha o guard público: logado não vê login/registro
func (a *app) requireAnonymous(ctx context.Context) error {
	state := a.session.Bootstrap(ctx)

	if decision := guard.Public(state); decision.Kind == guard.Redirect {
		return fmt.Errorf("ya has iniciado sesión. Usa `logout` primero.")
	}

	return nil
}

// terminalConfirmer pergunta no terminal antes de ações destrutivas
type terminalConfirmer struct {
	in *bufio.Reader
}

func (c *terminalConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [s/N]: ", prompt)

	answer, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "s" || answer == "si" || answer == "sí" || answer == "y"
}

func usage() {
	fmt.Println(`Lucid Analytics — painel de análise de tráfego

Uso: lucid-analytics <comando> [flags]

Comandos:
  login        Iniciar sessão
  register     Criar conta com código de convite
  logout       Encerrar sessão
  whoami       Mostrar o usuário em sessão
  dashboard    Métricas de anúncios do período, com filtros
  project      Projetor de utilidade por taxa de entrega
  accounts     Listar contas de anúncio conectadas
  connect      Conectar integração (meta|lucidbot|dropi)
  disconnect   Desconectar integração (lucidbot|dropi)
  status       Estado das três integrações
  admin        Códigos de convite, usuários e sincronizações
  chat         Conversa com o assistente
  settings     Perfil, senha e chave de API
  theme        Tema do painel (show|toggle|set)`)
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
