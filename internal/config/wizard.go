package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// rotateChoices maps the wizard's rotation options to interval seconds.
var rotateChoices = []struct {
	Label    string
	Interval int
}{
	{"off    — keep a single background", 0},
	{"fast   — every 30 seconds", 30},
	{"normal — every 90 seconds", 90},
	{"slow   — every 5 minutes", 300},
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string, articleSlugs []string) (*Config, error) {
	fmt.Println("Welcome to homepage! Let's set up your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title must not be empty")
			}
			return nil
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}
	cfg.Title = strings.TrimSpace(title)

	// 2. Default article: where / redirects to.
	if len(articleSlugs) > 0 {
		articlePrompt := promptui.Select{
			Label: "Default article (the / route redirects here)",
			Items: articleSlugs,
		}
		_, slug, err := articlePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("default article selection: %w", err)
		}
		cfg.DefaultArticle = slug
	}

	// 3. Background rotation.
	labels := make([]string, len(rotateChoices))
	for i, c := range rotateChoices {
		labels[i] = c.Label
	}
	rotatePrompt := promptui.Select{
		Label: "Background rotation",
		Items: labels,
	}
	rotateIdx, _, err := rotatePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("rotation selection: %w", err)
	}
	cfg.RotateInterval = rotateChoices[rotateIdx].Interval

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("port must be a number")
			}
			if n < 1 || n > 65535 {
				return fmt.Errorf("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", path)
	fmt.Println("Run `homepage serve` to start the site.")

	return cfg, nil
}
