// Package guard decide o que cada rota faz com o estado atual da sessão.
// As decisões são puras: quem renderiza (ou navega) é a camada de cima.
package guard

import (
	"github.com/lucidanalytics/lucid-analytics-client/internal/usecases/authenticating"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Kind é o tipo de decisão de um guard
type Kind int

const (
	// ShowLoading vale enquanto a sessão ainda está UNKNOWN: a rota não
	// pode mostrar a visão errada antes do bootstrap terminar
	ShowLoading Kind = iota
	Render
	Redirect
)

type Decision struct {
	Kind Kind
	// To só é preenchido em decisões Redirect
	To string
}

// Protected gate de rotas autenticadas. adminOnly redireciona usuários
// autenticados não-admin para o dashboard.
func Protected(state authenticating.State, isAdmin bool, adminOnly bool) Decision {
	switch state {
	case authenticating.StateUnknown:
		return Decision{Kind: ShowLoading}
	case authenticating.StateAnonymous:
		return Decision{Kind: Redirect, To: LoginPath}
	}

	if adminOnly && !isAdmin {
		return Decision{Kind: Redirect, To: DashboardPath}
	}

	return Decision{Kind: Render}
}

// Public é o espelho: usuário logado não vê login/registro
func Public(state authenticating.State) Decision {
	switch state {
	case authenticating.StateUnknown:
		return Decision{Kind: ShowLoading}
	case authenticating.StateAuthenticated:
		return Decision{Kind: Redirect, To: DashboardPath}
	}

	return Decision{Kind: Render}
}

// legalPaths ficam fora dos dois guards: sempre acessíveis
var legalPaths = map[string]bool{
	"/privacy": true,
	"/terms":   true,
}

// IsLegal indica se a rota é uma página legal pública
func IsLegal(path string) bool {
	return legalPaths[path]
}
