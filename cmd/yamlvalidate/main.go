// Command yamlvalidate validates a YAML or JSON document against a JSON
// Schema and prints the resulting diagnostics, as a thin CLI wrapper around
// the jsonschema package for local testing and CI use outside an editor.
package main

import (
	"fmt"
	"os"

	yamlparser "github.com/goccy/go-yaml/parser"
	"github.com/spf13/cobra"

	jsonschema "github.com/redhat-developer/yaml-language-server-sub002"
)

func main() {
	var (
		schemaPath string
		dialect    string
		kubernetes bool
		debug      bool
	)

	root := &cobra.Command{
		Use:   "yamlvalidate [document]",
		Short: "Validate a YAML or JSON document against a JSON Schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := jsonschema.NewCLILogger(debug)

			schemaBytes, err := os.ReadFile(schemaPath)
			if err != nil {
				logger.Error("failed to read schema", "path", schemaPath, "err", err)
				return err
			}
			schema, err := jsonschema.CompileSchemaBytes(schemaBytes)
			if err != nil {
				logger.Error("failed to parse schema", "path", schemaPath, "err", err)
				return err
			}
			if err := schema.ValidateRegexSyntax(); err != nil {
				logger.Error("schema contains invalid regular expressions", "err", err)
				return err
			}

			docPath := args[0]
			docBytes, err := os.ReadFile(docPath)
			if err != nil {
				logger.Error("failed to read document", "path", docPath, "err", err)
				return err
			}

			astFile, err := yamlparser.ParseBytes(docBytes, yamlparser.ParseComments)
			if err != nil {
				logger.Error("failed to parse document", "path", docPath, "err", err)
				return err
			}
			if len(astFile.Docs) == 0 {
				logger.Warn("document is empty", "path", docPath)
				return nil
			}

			root := jsonschema.FromYAMLNode(astFile.Docs[0])
			validator := jsonschema.NewValidator(dialect, jsonschema.Options{IsKubernetes: kubernetes})
			problems := validator.ValidateDocument(root, schema)

			doc := jsonschema.NewPlainTextDocument(string(docBytes))
			problems = jsonschema.ApplySuppressions(problems, doc, jsonschema.LineComments(string(docBytes)))
			diagnostics := jsonschema.ToDiagnostics(problems, doc, schemaPath)

			for _, d := range diagnostics {
				fmt.Printf("%s:%d:%d: %s (%s)\n", docPath, d.Range.Start.Line+1, d.Range.Start.Character+1, d.Message, d.Source)
			}
			logger.Info("validation complete", "document", docPath, "problems", len(diagnostics))
			if len(diagnostics) > 0 {
				os.Exit(1)
			}
			return nil
		},
	}

	root.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the JSON Schema document")
	root.Flags().StringVarP(&dialect, "dialect", "d", "draft-07", "schema dialect: draft-04, draft-07, 2019-09, 2020-12")
	root.Flags().BoolVarP(&kubernetes, "kubernetes", "k", false, "use Kubernetes-flavored best-match arbitration")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	_ = root.MarkFlagRequired("schema")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
