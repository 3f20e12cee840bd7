package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 12

// GenerateID gera o identificador opaco de um lançamento
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
