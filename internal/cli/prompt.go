package cli

import (
	stderrors "errors"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/rileyhilliard/workmon/internal/config"
	"github.com/rileyhilliard/workmon/internal/errors"
)

// credentialAnswers are the raw strings typed into the prompt.
type credentialAnswers struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// promptCredentials asks for the five connection settings. Every field shows
// the current value as its placeholder and keeps it when left blank.
func promptCredentials(db *config.DatabaseConfig) error {
	var a credentialAnswers

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder(db.User).
				Value(&a.User),
			huh.NewInput().
				Title("Password").
				Placeholder("press enter to keep the configured password").
				EchoMode(huh.EchoModePassword).
				Value(&a.Password),
			huh.NewInput().
				Title("Database name").
				Placeholder(db.Name).
				Value(&a.Name),
			huh.NewInput().
				Title("Host").
				Placeholder(db.Host).
				Value(&a.Host),
			huh.NewInput().
				Title("Port").
				Placeholder(strconv.Itoa(db.Port)).
				Value(&a.Port).
				Validate(validatePortInput),
		).Title("Connect to the SAS metadata database"),
	)

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return errors.New(errors.ErrPrompt, "Prompt cancelled", "Pass --no-prompt to use the configured credentials.")
		}
		return errors.WrapWithCode(err, errors.ErrPrompt, "Credential prompt failed",
			"Pass --no-prompt to skip the prompt.")
	}

	return applyAnswers(db, a)
}

// applyAnswers sanitizes each answer and falls back to the current value
// when it is blank.
func applyAnswers(db *config.DatabaseConfig, a credentialAnswers) error {
	db.User = config.OrDefault(a.User, db.User)
	db.Password = config.OrDefault(a.Password, db.Password)
	db.Name = config.OrDefault(a.Name, db.Name)
	db.Host = config.OrDefault(a.Host, db.Host)

	if config.Sanitize(a.Port) != "" {
		port, err := config.ParsePort(a.Port)
		if err != nil {
			return err
		}
		db.Port = port
	}
	return nil
}

func validatePortInput(s string) error {
	if config.Sanitize(s) == "" {
		return nil
	}
	_, err := config.ParsePort(s)
	if err != nil {
		return stderrors.New("port must be a number between 1 and 65535")
	}
	return nil
}
