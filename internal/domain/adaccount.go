package domain

import "github.com/mitchellh/mapstructure"

// AdAccount é o modelo interno de uma conta publicitária do Meta
type AdAccount struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// NormalizeAdAccounts converte a resposta do backend para o modelo interno.
// O backend ora devolve account_id/account_name, ora id/name; o decode em
// duas passadas cobre os dois formatos sem acesso a campos opcionais
// espalhado pelos consumidores.
func NormalizeAdAccounts(raw []map[string]any) ([]AdAccount, error) {
	accounts := make([]AdAccount, 0, len(raw))

	for _, entry := range raw {
		var canonical struct {
			AccountID   string `mapstructure:"account_id"`
			AccountName string `mapstructure:"account_name"`
		}
		if err := mapstructure.WeakDecode(entry, &canonical); err != nil {
			return nil, err
		}

		var legacy struct {
			ID   string `mapstructure:"id"`
			Name string `mapstructure:"name"`
		}
		if err := mapstructure.WeakDecode(entry, &legacy); err != nil {
			return nil, err
		}

		account := AdAccount{
			AccountID:   canonical.AccountID,
			AccountName: canonical.AccountName,
		}
		if account.AccountID == "" {
			account.AccountID = legacy.ID
		}
		if account.AccountName == "" {
			account.AccountName = legacy.Name
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}
