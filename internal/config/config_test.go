package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name string, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestNew(t *testing.T) {
	server := write(t, "server.toml", `
port = 8083
debug_mode = true
sqlite_file = "test.sqlite"

[tls]
cert = "cert.pem"
key = "key.pem"
generate = true

[auth]
token = "secret"
expiration = "24h"
root_password = "root"

[[auth.rules]]
name = "api"
path = "^/api"
method = ["*"]
allow = ["*"]
`)
	bot := write(t, "bot.toml", `
enabled = false
telegram_apitoken = "from-file"
admin_pass = "pass"
`)
	t.Setenv("TELEGRAM_APITOKEN", "from-env")

	cfg, err := New(server, bot)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8083, cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "test.sqlite", cfg.Server.SqliteFile)
	assert.Equal(t, defaultPageSize, cfg.Server.PageSize)
	assert.True(t, cfg.Server.TLS.Enabled())
	assert.True(t, cfg.Server.TLS.Generate)
	assert.Equal(t, "secret", cfg.Server.Auth.Token)
	require.Len(t, cfg.Server.Auth.Rules, 1)
	assert.Equal(t, "^/api", cfg.Server.Auth.Rules[0].Path)
	assert.Equal(t, "from-env", cfg.TgBot.TelegramApiToken)
	assert.Equal(t, "pass", cfg.TgBot.AdminPass)
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New("nope.toml", "nope.toml")
	assert.Error(t, err)
}

func TestTLS_Enabled(t *testing.T) {
	assert.False(t, TLS{}.Enabled())
	assert.False(t, TLS{Cert: "cert.pem"}.Enabled())
	assert.True(t, TLS{Cert: "cert.pem", Key: "key.pem"}.Enabled())
}
