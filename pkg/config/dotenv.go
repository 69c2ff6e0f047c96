package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotEnv exporta para o ambiente as variáveis dos arquivos informados
// (default ".env"), sem sobrescrever as que já existem. Arquivos ausentes
// são ignorados, já que no Lambda o ambiente vem da própria função.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
