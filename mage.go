//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput          = "gen"
	sqliteFileLocation = "truco.sqlite"
	serverBin          = "./bin/server"
	certgenBin         = "./bin/certgen"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

const (
	testServerConfigPath = "test_configs/server.toml"
	testBotConfigPath    = "test_configs/bot.toml"
	testSqliteFile       = "tests/truco-test.sqlite"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", serverBin, "./cmd")
}

// Certgen builds the self-signed certificate generator
func Certgen() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", certgenBin, "./cmd/certgen")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-server-config", "configs/server.toml", "-bot-config", "configs/bot.toml")
}

// GenJet regenerates the jet models from a migrated database
func GenJet() error {
	mg.Deps(buildJetTool)
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteFileLocation, "-path", jetOutput)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// AutoTest runs the browser suite against a freshly built server
func AutoTest() error {
	mg.Deps(Build)
	if err := sh.Rm(testSqliteFile); err != nil {
		return err
	}
	if err := os.Chdir("tests"); err != nil {
		return err
	}
	return sh.RunV(
		"go", "test", "-v", "./...",
		"-args", "-server-config", testServerConfigPath, "-bot-config", testBotConfigPath,
	)
}
