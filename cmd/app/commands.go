package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lucidanalytics/lucid-analytics-client/internal/oauthcb"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/connecting"
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/insighting"
	"github.com/lucidanalytics/lucid-analytics-client/pkg/utils"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "e-mail da conta")
	password := fs.String("password", "", "senha")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.requireAnonymous(ctx); err != nil {
		return err
	}

	user, err := a.session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Printf("Bienvenido, %s\n", user.Name)
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "nome")
	email := fs.String("email", "", "e-mail")
	password := fs.String("password", "", "senha")
	invite := fs.String("invite", "", "código de convite")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.requireAnonymous(ctx); err != nil {
		return err
	}

	user, err := a.session.Register(ctx, *name, *email, *password, *invite)
	if err != nil {
		return err
	}

	fmt.Printf("Cuenta creada. Bienvenido, %s\n", user.Name)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	a.session.Bootstrap(ctx)
	a.session.Logout()
	fmt.Println("Sesión cerrada.")
	return nil
}

func (a *app) cmdWhoami(ctx context.Context) error {
	if err := a.requireSession(ctx, false); err != nil {
		return err
	}

	user := a.session.CurrentUser()
	role := "usuario"
	if user.IsAdmin {
		role = "admin"
	}

	fmt.Printf("%s <%s> (%s)\n", user.Name, user.Email, role)
	return nil
}

// parseSelection converte a flag de filtro em uma seleção: vazio é "todas"
func parseSelection(raw string) insighting.Selection {
	if raw == "" {
		return insighting.SelectAll()
	}

	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}

	return insighting.SelectSubset(names...)
}

// resolveRange monta o período consultado: datas explícitas (-start/-end)
// têm precedência sobre -days
func resolveRange(days int, start, end string) (utils.DateRange, error) {
	if start == "" && end == "" {
		return utils.LastDays(days), nil
	}
	if start == "" || end == "" {
		return utils.DateRange{}, fmt.Errorf("informe -start e -end juntos, no formato 2006-01-02")
	}

	from, err := utils.ParseDate(start)
	if err != nil {
		return utils.DateRange{}, fmt.Errorf("data inicial inválida: %s", start)
	}
	to, err := utils.ParseDate(end)
	if err != nil {
		return utils.DateRange{}, fmt.Errorf("data final inválida: %s", end)
	}
	if to.Before(*from) {
		return utils.DateRange{}, fmt.Errorf("a data final precede a inicial")
	}

	return utils.DateRange{Start: *from, End: *to}, nil
}

func (a *app) cmdDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	account := fs.String("account", "", "conta de anúncio")
	days := fs.Int("days", 7, "período em dias, terminando hoje")
	start := fs.String("start", "", "início do período (2006-01-02)")
	end := fs.String("end", "", "fim do período (2006-01-02)")
	campaigns := fs.String("campaigns", "", "filtro de campanhas, separadas por vírgula")
	bands := fs.String("bands", "", "filtro de status de CPA, separados por vírgula")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *account == "" {
		return fmt.Errorf("informe a conta com -account (veja `accounts`)")
	}

	dateRange, err := resolveRange(*days, *start, *end)
	if err != nil {
		return err
	}

	if err := a.requireSession(ctx, false); err != nil {
		return err
	}

	view, err := a.insights.Load(ctx, *account, dateRange)
	if err != nil {
		return err
	}

	campaignSel := parseSelection(*campaigns)
	bandSel := parseSelection(*bands)

	derived := view.Derive(campaignSel, bandSel)
	renderDashboard(view, derived)

	return nil
}

func (a *app) cmdProject(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	account := fs.String("account", "", "conta de anúncio")
	days := fs.Int("days", 7, "período em dias")
	start := fs.String("start", "", "início do período (2006-01-02)")
	end := fs.String("end", "", "fim do período (2006-01-02)")
	rate := fs.Float64("rate", 0, "taxa de entrega projetada, em % (0 a 100)")
	pending := fs.Int("pending", 0, "pedidos pendentes (padrão: en ruta do período)")
	campaigns := fs.String("campaigns", "", "campanhas consideradas no gasto")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *account == "" {
		return fmt.Errorf("informe a conta com -account (veja `accounts`)")
	}

	dateRange, err := resolveRange(*days, *start, *end)
	if err != nil {
		return err
	}

	if err := a.requireSession(ctx, false); err != nil {
		return err
	}

	view, err := a.insights.Load(ctx, *account, dateRange)
	if err != nil {
		return err
	}

	projection := view.Project(insighting.ProjectionInput{
		DeliveryRatePct:  *rate,
		Pending:          *pending,
		AdSpendCampaigns: parseSelection(*campaigns),
	})

	renderProjection(projection)
	return nil
}

func (a *app) cmdAccounts(ctx context.Context) error {
	if err := a.requireSession(ctx, false); err != nil {
		return err
	}

	accounts, err := a.meta.Accounts(ctx)
	if err != nil {
		return err
	}

	if len(accounts) == 0 {
		fmt.Println("Ninguna cuenta conectada. Usa `connect meta`.")
		return nil
	}

	for _, acc := range accounts {
		fmt.Printf("%s\t%s\n", acc.AccountID, acc.AccountName)
	}
	return nil
}

func (a *app) cmdConnect(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: connect <meta|lucidbot|dropi> [flags]")
	}

	if err := a.requireSession(ctx, false); err != nil {
		return err
	}

	switch args[0] {
	case "meta":
		return a.connectMeta(ctx)
	case "lucidbot":
		fs := flag.NewFlagSet("connect lucidbot", flag.ContinueOnError)
		token := fs.String("token", "", "token de API do LucidBot")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		if err := a.lucidbot.Connect(ctx, *token); err != nil {
			return err
		}
		fmt.Println("LucidBot conectado.")
		return nil
	case "dropi":
		fs := flag.NewFlagSet("connect dropi", flag.ContinueOnError)
		email := fs.String("email", "", "e-mail do Dropi")
		password := fs.String("password", "", "senha do Dropi")
		country := fs.String("country", "CO", "país da conta")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		err := a.dropi.Connect(ctx, connecting.DropiCredentials{
			Email:    *email,
			Password: *password,
			Country:  *country,
		})
		if err != nil {
			return err
		}
		fmt.Println("Dropi conectado.")
		return nil
	default:
		return fmt.Errorf("integração desconhecida: %s", args[0])
	}
}

// connectMeta abre o fluxo OAuth: imprime a URL de autorização e espera o
// redirect no servidor local de callback
func (a *app) connectMeta(ctx context.Context) error {
	server := oauthcb.New(a.cfg.OAuthCb, a.meta)

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- server.Run(ctx)
	}()

	fmt.Println("Abre esta URL en tu navegador para autorizar Meta Ads:")
	fmt.Println()
	fmt.Println("  " + a.meta.AuthorizeURL())
	fmt.Println()
	fmt.Println("Esperando el callback...")

	select {
	case result := <-server.Results():
		<-serverDone

		if result.Type != oauthcb.MetaAuthSuccess {
			return fmt.Errorf("autorización fallida: %s", result.Detail)
		}
		fmt.Println("Meta Ads conectado.")
		return nil
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("tiempo de espera agotado para el callback OAuth")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *app) cmdDisconnect(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: disconnect <lucidbot|dropi>")
	}

	if err := a.requireSession(ctx, false); err != nil {
		return err
	}

	switch args[0] {
	case "lucidbot":
		if err := a.lucidbot.Disconnect(ctx); err != nil {
			return err
		}
		fmt.Println("LucidBot desconectado.")
	case "dropi":
		if err := a.dropi.Disconnect(ctx); err != nil {
			return err
		}
		fmt.Println("Dropi desconectado.")
	default:
		return fmt.Errorf("integração desconhecida: %s", args[0])
	}

	return nil
}

func (a *app) cmdStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	watch := fs.Bool("watch", false, "revalidar periodicamente conforme o cron configurado")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *watch && !a.poller.Enabled() {
		return fmt.Errorf("la revalidación periódica está deshabilitada; activa STATUS_POLL_ENABLED para usar -watch")
	}

	if err := a.requireSession(ctx, false); err != nil {
		return err
	}

	a.poller.PollOnce(ctx)
	renderStatus(a.meta, a.lucidbot, a.dropi)

	if !*watch {
		return nil
	}

	if err := a.poller.Start(ctx); err != nil {
		return err
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	return nil
}

func (a *app) cmdTheme(args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		fmt.Println(a.theme.Current())
	case "toggle":
		next, err := a.theme.Toggle()
		if err != nil {
			return err
		}
		fmt.Println(next)
	case "set":
		fs := flag.NewFlagSet("theme set", flag.ContinueOnError)
		value := fs.String("t", "dark", "tema (dark|light)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if err := a.theme.Set(*value); err != nil {
			return err
		}
		fmt.Println(a.theme.Current())
	default:
		return fmt.Errorf("uso: theme <show|toggle|set -t dark|light>")
	}

	return nil
}
