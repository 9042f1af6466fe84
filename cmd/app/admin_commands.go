package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/lucidanalytics/lucid-analytics-client/pkg/format"
)

func (a *app) cmdAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: admin <codes|create-code|delete-code|users|toggle-user|set-token|sync-user|sync-all|clear-contacts> [flags]")
	}

	if err := a.requireSession(ctx, true); err != nil {
		return err
	}

	switch args[0] {
	case "codes":
		codes, err := a.admin.ListInviteCodes(ctx)
		if err != nil {
			return err
		}

		for _, code := range codes {
			status := "Activo"
			if code.Exhausted() {
				status = "Agotado"
			} else if !code.IsActive {
				status = "Inactivo"
			}
			fmt.Printf("%d\t%s\t%d/%d\t%s\t%s\n",
				code.ID, code.Code, code.Uses, code.MaxUses, format.DateString(code.ExpiresAt), status)
		}
		return nil

	case "create-code":
		fs := flag.NewFlagSet("admin create-code", flag.ContinueOnError)
		maxUses := fs.Int("max-uses", 1, "quantos registros o código aceita")
		expires := fs.Int("expires-days", 7, "validade em dias")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		code, err := a.admin.CreateInviteCode(ctx, *maxUses, *expires)
		if err != nil {
			return err
		}

		fmt.Printf("Código creado: %s\n", code)
		return nil

	case "delete-code":
		fs := flag.NewFlagSet("admin delete-code", flag.ContinueOnError)
		id := fs.Int("id", 0, "id do código")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		if err := a.admin.DeleteInviteCode(ctx, *id); err != nil {
			return err
		}

		fmt.Println("Código eliminado")
		return nil

	case "users":
		users, err := a.admin.ListUsers(ctx)
		if err != nil {
			return err
		}

		for _, user := range users {
			status := "Activo"
			if !user.IsActive {
				status = "Inactivo"
			}
			role := ""
			if user.IsAdmin {
				role = "admin"
			}
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n", user.ID, user.Name, user.Email, status, role)
		}
		return nil

	case "toggle-user":
		fs := flag.NewFlagSet("admin toggle-user", flag.ContinueOnError)
		id := fs.Int("id", 0, "id do usuário")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		users, err := a.admin.ListUsers(ctx)
		if err != nil {
			return err
		}

		for _, user := range users {
			if user.ID != *id {
				continue
			}

			if err := a.admin.ToggleUserActive(ctx, user, a.session.CurrentUser().ID); err != nil {
				return err
			}

			if user.IsActive {
				fmt.Println("Usuario desactivado")
			} else {
				fmt.Println("Usuario activado")
			}
			return nil
		}

		return fmt.Errorf("usuario %d no encontrado", *id)

	case "set-token":
		fs := flag.NewFlagSet("admin set-token", flag.ContinueOnError)
		userID := fs.Int("user", 0, "id do usuário")
		token := fs.String("token", "", "JWT do LucidBot")
		pageID := fs.String("page", "", "page id do LucidBot")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		contacts, err := a.admin.SetUserToken(ctx, *userID, *token, *pageID)
		if err != nil {
			return err
		}

		fmt.Printf("Token configurado. Contactos en LucidBot: %d\n", contacts)
		return nil

	case "sync-user":
		fs := flag.NewFlagSet("admin sync-user", flag.ContinueOnError)
		userID := fs.Int("user", 0, "id do usuário")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		if err := a.admin.SyncUser(ctx, *userID); err != nil {
			return err
		}

		fmt.Println("Sincronización iniciada. Vuelve a consultar en unos minutos.")
		return nil

	case "sync-all":
		if err := a.admin.SyncAll(ctx); err != nil {
			return err
		}

		fmt.Println("Sincronización general iniciada.")
		return nil

	case "clear-contacts":
		fs := flag.NewFlagSet("admin clear-contacts", flag.ContinueOnError)
		userID := fs.Int("user", 0, "id do usuário")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		if err := a.admin.ClearContacts(ctx, *userID); err != nil {
			return err
		}

		fmt.Println("Contactos eliminados.")
		return nil

	default:
		return fmt.Errorf("subcomando admin desconhecido: %s", args[0])
	}
}

func (a *app) cmdChat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"history"}
	}

	if err := a.requireSession(ctx, false); err != nil {
		return err
	}

	switch args[0] {
	case "history":
		if err := a.chat.LoadHistory(ctx); err != nil {
			return err
		}
		renderChat(a.chat.Messages())
		return nil

	case "send":
		fs := flag.NewFlagSet("chat send", flag.ContinueOnError)
		text := fs.String("m", "", "mensagem para o assistente")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		// O histórico local precisa existir antes do eco otimista
		if err := a.chat.LoadHistory(ctx); err != nil {
			return err
		}

		sendErr := a.chat.Send(ctx, *text)
		renderChat(a.chat.Messages())
		return sendErr

	case "clear":
		if err := a.chat.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("Historial borrado.")
		return nil

	default:
		return fmt.Errorf("uso: chat <history|send -m ...|clear>")
	}
}

func (a *app) cmdSettings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: settings <profile|password|key> [flags]")
	}

	if err := a.requireSession(ctx, false); err != nil {
		return err
	}

	switch args[0] {
	case "profile":
		fs := flag.NewFlagSet("settings profile", flag.ContinueOnError)
		name := fs.String("name", "", "novo nome")
		email := fs.String("email", "", "novo e-mail")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		current := a.session.CurrentUser()
		if *name == "" {
			*name = current.Name
		}
		if *email == "" {
			*email = current.Email
		}

		if _, err := a.settings.UpdateProfile(ctx, *name, *email); err != nil {
			return err
		}

		fmt.Println("Perfil actualizado correctamente")
		return nil

	case "password":
		fs := flag.NewFlagSet("settings password", flag.ContinueOnError)
		current := fs.String("current", "", "senha atual")
		next := fs.String("new", "", "nova senha")
		confirm := fs.String("confirm", "", "confirmação da nova senha")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		if err := a.settings.ChangePassword(ctx, *current, *next, *confirm); err != nil {
			return err
		}

		fmt.Println("Contraseña actualizada correctamente")
		return nil

	case "key":
		if len(args) < 2 {
			args = append(args, "show")
		}

		switch args[1] {
		case "show":
			status, err := a.settings.AnthropicKey(ctx)
			if err != nil {
				return err
			}
			if !status.HasKey {
				fmt.Println("Ninguna clave configurada.")
				return nil
			}
			fmt.Printf("Clave configurada: %s\n", status.MaskedKey)
			return nil

		case "set":
			fs := flag.NewFlagSet("settings key set", flag.ContinueOnError)
			key := fs.String("key", "", "chave de API do assistente")
			if err := fs.Parse(args[2:]); err != nil {
				return err
			}

			if err := a.settings.SetAnthropicKey(ctx, *key); err != nil {
				return err
			}
			fmt.Println("Clave guardada.")
			return nil

		case "delete":
			if err := a.settings.DeleteAnthropicKey(ctx); err != nil {
				return err
			}
			fmt.Println("Clave eliminada.")
			return nil

		default:
			return fmt.Errorf("uso: settings key <show|set -key ...|delete>")
		}

	default:
		return fmt.Errorf("subcomando settings desconhecido: %s", args[0])
	}
}
