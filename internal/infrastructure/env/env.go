package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultAppEnv = "dev"

type EnvService struct {
	appEnv string
	loaded []string
}

// NewEnvService loads .env from dir, then overlays .env.$APP_ENV. Missing
// files are not an error.
func NewEnvService(dir string) *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = defaultAppEnv
	}

	svc := &EnvService{appEnv: appEnv}

	base := join(dir, ".env")
	if err := godotenv.Load(base); err == nil {
		svc.loaded = append(svc.loaded, base)
	}

	overlay := join(dir, fmt.Sprintf(".env.%s", appEnv))
	if err := godotenv.Overload(overlay); err == nil {
		svc.loaded = append(svc.loaded, overlay)
	}

	return svc
}

func join(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + string(os.PathSeparator) + name
}

func (e *EnvService) AppEnv() string {
	return e.appEnv
}

// Loaded lists the files that were read, in load order.
func (e *EnvService) Loaded() []string {
	return append([]string(nil), e.loaded...)
}

func (e *EnvService) Get(key string) string {
	return os.Getenv(key)
}
