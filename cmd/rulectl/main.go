// rulectl is the authoring-side command line for the rule catalogue:
// listing interaction types and rules, rendering rule descriptions,
// evaluating sample answers, and linting the catalogue.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grishamjindal/oppia/internal/logger"
	"github.com/grishamjindal/oppia/rules"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error("command failed", "error", err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var engine *rules.Engine

	root := &cobra.Command{
		Use:           "rulectl",
		Short:         "Inspect and exercise the interaction rule catalogue",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			engine, err = rules.NewEngine()
			return err
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "interactions",
		Short: "List interaction types",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range engine.Registry().Interactions() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "rules <interaction>",
		Short: "List an interaction type's rules in declaration order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := engine.ListRules(args[0])
			if err != nil {
				return err
			}
			for _, name := range names {
				spec, err := engine.GetSpec(args[0], name)
				if err != nil {
					return err
				}
				params := make([]string, len(spec.Params))
				for i, p := range spec.Params {
					params[i] = p.Name + ":" + string(p.Type)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s(%s)\n", name, strings.Join(params, ", "))
			}
			return nil
		},
	})

	var renderInputs string
	render := &cobra.Command{
		Use:   "render <interaction> <rule>",
		Short: "Render a rule's description with concrete parameter values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := decodeInputs(renderInputs)
			if err != nil {
				return err
			}
			description, err := engine.Render(args[0], args[1], inputs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), description)
			return nil
		},
	}
	render.Flags().StringVar(&renderInputs, "inputs", "{}", "parameter values as inline YAML, e.g. '{x: 10, tol: 2}'")
	root.AddCommand(render)

	var evalInputs, evalAnswer string
	eval := &cobra.Command{
		Use:   "eval <interaction> <rule>",
		Short: "Classify an answer against a rule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := decodeInputs(evalInputs)
			if err != nil {
				return err
			}
			var answer any
			if err := yaml.Unmarshal([]byte(evalAnswer), &answer); err != nil {
				return fmt.Errorf("failed to parse answer: %w", err)
			}
			matched, err := engine.Classify(args[0], args[1], answer, inputs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), matched)
			return nil
		},
	}
	eval.Flags().StringVar(&evalInputs, "inputs", "{}", "parameter values as inline YAML")
	eval.Flags().StringVar(&evalAnswer, "answer", "", "answer as inline YAML")
	root.AddCommand(eval)

	root.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Lint the catalogue: schemas, templates, predicate coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := engine.Registry().ValidateAgainst(engine); err != nil {
				return err
			}
			total := 0
			for _, interaction := range engine.Registry().Interactions() {
				names, err := engine.ListRules(interaction)
				if err != nil {
					return err
				}
				total += len(names)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d interaction types, %d rules\n",
				len(engine.Registry().Interactions()), total)
			return nil
		},
	})

	return root
}

func decodeInputs(raw string) (map[string]any, error) {
	inputs := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse inputs: %w", err)
	}
	return inputs, nil
}
