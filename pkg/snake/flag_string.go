package snake

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/pflag"
)

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

// PromptFlagString asks for the value of a string flag. An empty answer
// keeps the default; required flags with no default refuse it.
func PromptFlagString(f *pflag.Flag, required bool, stdin io.Reader, stdout io.Writer) (string, error) {
	_, _ = fmt.Fprintf(stdout, "%s: %s\n", asFlags(f), f.Usage)

	validate := func(input string) error {
		if required && len(input) == 0 && len(f.DefValue) == 0 {
			return errors.New("empty")
		}
		return nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	prompt := promptui.Prompt{
		Label:     f.Name,
		Default:   f.DefValue,
		Templates: templates,
		Validate:  validate,
		Stdin:     io.NopCloser(stdin),
		Stdout:    NopCloser(stdout),
	}

	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	if result == "" {
		result = f.DefValue
	}
	return result, nil
}
