package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyenvanduocit/envitrans/pkg/translator"
)

var Translate = &cobra.Command{
	Use:     "translate [text]",
	Short:   "Translate a single text from the command line",
	Example: `envitrans translate --from vi "Xin chào"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runTranslate,
}

func init() {
	Translate.Flags().StringP("from", "f", "en", "language of the input text (en or vi)")
	Translate.Flags().IntP("max-length", "m", translator.DefaultMaxLength, "maximum number of generated tokens")
	Translate.Flags().Bool("raw", false, "print the raw model output instead of the cleaned text")
	Translate.Flags().String("runner-url", "http://localhost:9000", "base URL of the model runner")
	Translate.Flags().Duration("timeout", 120*time.Second, "per-call model runner timeout")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	maxLength, _ := cmd.Flags().GetInt("max-length")

	req, err := translator.NewRequest(args[0], from, maxLength)
	if err != nil {
		return err
	}

	runnerURL, _ := cmd.Flags().GetString("runner-url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	runner := translator.NewRunner(runnerURL, timeout)

	result, err := translator.NewEnViT5(runner, translator.Config{}).Translate(cmd.Context(), req)
	if err != nil {
		return err
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Println(result.RawOutput)
	} else {
		fmt.Println(result.TranslatedText)
	}

	return nil
}
