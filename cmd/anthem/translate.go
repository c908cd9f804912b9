package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthem-go/anthem/internal/fol"
	"github.com/anthem-go/anthem/internal/translate"
)

var translateWith string

var translateCmd = &cobra.Command{
	Use:   "translate [FILE]",
	Short: "translate a program to first-order logic",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := readProgram(args)
		if err != nil {
			return err
		}

		var formulas []fol.Formula
		switch translateWith {
		case "tau-star":
			formulas = translate.TauStar(program)
		case "gamma":
			formulas = translate.TauStar(program)
			for i, f := range formulas {
				formulas[i] = translate.Gamma(f)
			}
		case "completion":
			completed, ok := translate.Complete(translate.TauStar(program))
			if !ok {
				return fatalf("the program could not be completed: a translated rule is not a closed implication concluding an atom or falsity")
			}
			formulas = completed
		default:
			return fatalf("unknown --with %q (expected one of completion, gamma, tau-star)", translateWith)
		}

		for _, f := range formulas {
			fmt.Println(f.String())
		}
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVar(&translateWith, "with", "", "translation to apply (completion, gamma, tau-star)")
	translateCmd.MarkFlagRequired("with")
}
