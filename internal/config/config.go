package config

import (
	"os"

	"github.com/BurntSushi/toml"
	authservice "github.com/goserg/trucoserver/auth/service"
)

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	AdminPass        string `toml:"admin_pass"`
}

// TLS is enabled when both paths are set. With Generate a missing pair is
// created as a self-signed certificate on startup.
type TLS struct {
	Cert     string   `toml:"cert"`
	Key      string   `toml:"key"`
	Generate bool     `toml:"generate"`
	Hosts    []string `toml:"hosts"`
}

func (t TLS) Enabled() bool {
	return t.Cert != "" && t.Key != ""
}

type Server struct {
	Host       string             `toml:"host"`
	Port       int                `toml:"port"`
	Debug      bool               `toml:"debug_mode"`
	SqliteFile string             `toml:"sqlite_file"`
	PageSize   int                `toml:"page_size"`
	TLS        TLS                `toml:"tls"`
	Auth       authservice.Config `toml:"auth"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

const defaultPageSize = 10

func New(serverConfigPath string, botConfigPath string) (Config, error) {
	var tgBotCfg TgBot
	_, err := toml.DecodeFile(botConfigPath, &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	serverCfg := Server{
		Host:       "0.0.0.0",
		Port:       3000,
		SqliteFile: "truco.sqlite",
		PageSize:   defaultPageSize,
	}
	_, err = toml.DecodeFile(serverConfigPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if serverCfg.PageSize <= 0 {
		serverCfg.PageSize = defaultPageSize
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
