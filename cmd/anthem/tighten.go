package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anthem-go/anthem/internal/asp"
	"github.com/anthem-go/anthem/internal/translate"
)

var tightenCmd = &cobra.Command{
	Use:   "tighten [FILE]",
	Short: "rewrite a program into an equivalent tight one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := readProgram(args)
		if err != nil {
			return err
		}
		tightened := translate.Tighten(program)
		fmt.Print(asp.Format(tightened))
		return nil
	},
}
