package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mike-north/formspec/pkg/declaration"
	"github.com/mike-north/formspec/pkg/orchestrator"
)

func main() {
	input := flag.String("input", "form.yaml", "declaration document (JSON or YAML)")
	schemaOut := flag.String("schema", "", "JSON Schema output file (stdout if empty)")
	uiOut := flag.String("ui", "", "UI Schema output file (stdout if empty)")
	mode := flag.String("mode", "report", "validation mode: report, strict, or skip")
	labels := flag.Bool("labels", false, "generate labels for fields declared without one")
	flag.Parse()

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read declaration: %v", err)
	}

	spec, err := declaration.Parse(data)
	if err != nil {
		log.Fatalf("parse declaration: %v", err)
	}

	options := []orchestrator.Option{orchestrator.WithValidationMode(parseMode(*mode))}
	if *labels {
		options = append(options, orchestrator.WithGeneratedLabels())
	}

	result, err := orchestrator.New(options...).Generate(context.Background(), spec)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	for _, issue := range result.Validation.Issues {
		log.Printf("%s: %s (%s)", issue.Severity, issue.Message, issue.Path)
	}

	if err := emit(*schemaOut, result.Schema); err != nil {
		log.Fatalf("write schema: %v", err)
	}
	if err := emit(*uiOut, result.Layout); err != nil {
		log.Fatalf("write ui schema: %v", err)
	}
}

func parseMode(raw string) orchestrator.ValidationMode {
	switch raw {
	case "report":
		return orchestrator.ModeReport
	case "strict":
		return orchestrator.ModeStrict
	case "skip":
		return orchestrator.ModeSkip
	default:
		log.Fatalf("unknown validation mode %q", raw)
		return orchestrator.ModeReport
	}
}

func emit(path string, artifact any) error {
	payload, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println(string(payload))
		return nil
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	fmt.Printf("written to %s\n", path)
	return nil
}
