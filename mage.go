//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput                = "gen"
	jetBotOutput             = "bot/gen"
	sqliteEventsFileLocation = "events.sqlite"
	sqliteBotFileLocation    = "bot.sqlite"
	serverBin                = "./bin/server"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "cmd/main.go")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

// GenJet regenerates the typed SQL packages from the sqlite files.
func GenJet() error {
	mg.Deps(buildJetTool)
	if err := sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteEventsFileLocation, "-path", jetOutput); err != nil {
		return err
	}
	if err := sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteBotFileLocation, "-path", jetBotOutput); err != nil {
		return err
	}
	return nil
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

func Test() error {
	return sh.Run("go", "test", "./...")
}
