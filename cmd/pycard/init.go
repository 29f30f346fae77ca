package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/ini.v1"

	"github.com/lostpackets/pycard/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file interactively",
	Long: `Create a starter pycard.conf interactively.

You will be prompted for:
  - CardDAV resource URL
  - Username and password
  - Auth mode (basic or digest)
  - TLS certificate verification
  - Local database path

The file is written to the user configuration directory, or to the
path given with --config.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	target, _ := cmd.Flags().GetString(config.FlagConfig)
	if target == "" {
		// First candidate is the XDG config home.
		target = config.CandidatePaths()[0]
	}

	if _, err := os.Stat(target); err == nil {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite it", target),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	resourcePrompt := promptui.Prompt{
		Label: "CardDAV resource URL",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("resource URL is required")
			}
			parsedURL, parseErr := url.Parse(input)
			if parseErr != nil {
				return fmt.Errorf("invalid URL: %w", parseErr)
			}
			if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
				return errors.New("URL must start with http:// or https://")
			}
			return nil
		},
	}
	resource, err := resourcePrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	userPrompt := promptui.Prompt{Label: "Username"}
	user, err := userPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	passwdPrompt := promptui.Prompt{
		Label: "Password (leave empty to be asked at run time)",
		Mask:  '*',
	}
	passwd, err := passwdPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	authSelect := promptui.Select{
		Label: "Auth mode",
		Items: []string{config.AuthBasic, config.AuthDigest},
	}
	_, auth, err := authSelect.Run()
	if err != nil {
		return handlePromptError(err)
	}

	verify := "True"
	verifyPrompt := promptui.Prompt{
		Label:     "Verify TLS certificates",
		IsConfirm: true,
		Default:   "y",
	}
	if _, promptErr := verifyPrompt.Run(); promptErr != nil {
		verify = "False"
	}

	dbPrompt := promptui.Prompt{
		Label:   "Database path",
		Default: "~/.pycard/abook.db",
	}
	dbPath, err := dbPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	if err := writeConfigFile(target, resource, user, passwd, auth, verify, dbPath); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", target)
	return nil
}

// writeConfigFile renders the INI file and writes it with owner-only
// permissions, since it may hold the dav password.
func writeConfigFile(target, resource, user, passwd, auth, verify, dbPath string) error {
	file := ini.Empty()

	dav := file.Section(config.SectionDAV)
	dav.Key("user").SetValue(user)
	dav.Key("passwd").SetValue(passwd)
	dav.Key("resource").SetValue(resource)
	dav.Key("auth").SetValue(auth)
	dav.Key("verify").SetValue(verify)

	file.Section(config.SectionDB).Key("path").SetValue(dbPath)

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
