package scaffold

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// AppKeyVar is the variable `ace generate:key` writes into .env.
const AppKeyVar = "APP_KEY"

// appKeyPresent parses the env file at path and reports whether APP_KEY is set.
// A missing file reports false without error.
func appKeyPresent(path string) (bool, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return strings.TrimSpace(env[AppKeyVar]) != "", nil
}
