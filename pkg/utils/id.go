package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera IDs curtos para correlação de requisições e ecos locais do chat
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
