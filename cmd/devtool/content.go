package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"

	"github.com/osse101/cmsadmin/internal/decorator"
	"github.com/osse101/cmsadmin/internal/defaultusers"
	"github.com/osse101/cmsadmin/internal/formsession"
)

func outOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// DecorateCommand runs the decorator over an HTML file offline
type DecorateCommand struct {
	out io.Writer
}

func (c *DecorateCommand) Name() string {
	return "decorate"
}

func (c *DecorateCommand) Description() string {
	return "Decorate an HTML file: decorate <config.xml> <locale> <file.html>"
}

func (c *DecorateCommand) Run(args []string) error {
	if len(args) < 3 {
		return usageError("decorate <config.xml> <locale> <file.html>")
	}
	locale, err := language.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", args[1], err)
	}
	content, err := os.ReadFile(args[2])
	if err != nil {
		return err
	}

	dir, name := filepath.Split(args[0])
	if dir == "" {
		dir = "."
	}
	provider, err := decorator.NewProvider(os.DirFS(dir), name, 1)
	if err != nil {
		return err
	}
	d, err := provider.Decorator(locale)
	if err != nil {
		return err
	}
	decorated, err := d.Decorate(string(content))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(outOrStdout(c.out), decorated)
	return err
}

// FormValuesCommand prints the element values of a structured content file
type FormValuesCommand struct {
	out io.Writer
}

func (c *FormValuesCommand) Name() string {
	return "form-values"
}

func (c *FormValuesCommand) Description() string {
	return "Print the values of a content XML file: form-values <file.xml> <locale>"
}

func (c *FormValuesCommand) Run(args []string) error {
	if len(args) < 2 {
		return usageError("form-values <file.xml> <locale>")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	locale, err := language.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", args[1], err)
	}

	values, err := formsession.Values(content, locale)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := outOrStdout(c.out)
	for _, k := range keys {
		if _, err := fmt.Fprintf(out, "%s=%s\n", k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// CheckUserCommand classifies a name against the configured default users
type CheckUserCommand struct {
	out io.Writer
}

func (c *CheckUserCommand) Name() string {
	return "check-user"
}

func (c *CheckUserCommand) Description() string {
	return "Classify a name against the CMS_USER_* and CMS_GROUP_* settings"
}

func (c *CheckUserCommand) Run(args []string) error {
	if len(args) < 1 {
		return usageError("check-user <name>")
	}
	users, err := defaultusers.NewRegistry(
		getEnv("CMS_USER_ADMIN", defaultusers.DefaultUserAdmin),
		getEnv("CMS_USER_GUEST", defaultusers.DefaultUserGuest),
		getEnv("CMS_USER_EXPORT", defaultusers.DefaultUserExport),
		os.Getenv("CMS_USER_DELETED_RESOURCE"),
		getEnv("CMS_GROUP_GUESTS", defaultusers.DefaultGroupGuests),
	)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(outOrStdout(c.out))
	enc.SetIndent("", "  ")
	return enc.Encode(users.Classify(args[0]))
}
