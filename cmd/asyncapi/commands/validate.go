package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/spf13/cobra"
)

// stdinIndicator is the conventional Unix indicator to read from stdin.
const stdinIndicator = "-"

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an AsyncAPI document",
	Long: `Validate an AsyncAPI 3.0 document for compliance with the AsyncAPI Specification.

This command will parse and validate the provided document, checking for:
- Structural validity according to the AsyncAPI Specification
- Required fields and proper data types
- Reference pointer grammar and registry name patterns
- Specification extension key patterns

Use '-' as the file argument to read from stdin:
  cat spec.yaml | asyncapi validate -`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	if err := validateDocument(cmd.Context(), args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validateDocument(ctx context.Context, file string) error {
	reader, err := openInput(file)
	if err != nil {
		return err
	}
	defer reader.Close()

	_, validationErrors, err := asyncapi.Unmarshal(ctx, reader)
	if err != nil {
		return fmt.Errorf("failed to unmarshal file: %w", err)
	}

	if len(validationErrors) == 0 {
		fmt.Fprintf(os.Stderr, "AsyncAPI document is valid - 0 errors\n")
		return nil
	}

	fmt.Fprintf(os.Stderr, "AsyncAPI document is invalid - %d errors:\n\n", len(validationErrors))

	for i, validationErr := range validationErrors {
		fmt.Fprintf(os.Stderr, "%d. %s\n", i+1, validationErr.Error())
	}

	return errors.New("asyncapi document validation failed")
}

func openInput(file string) (io.ReadCloser, error) {
	if file == stdinIndicator {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(filepath.Clean(file))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}
